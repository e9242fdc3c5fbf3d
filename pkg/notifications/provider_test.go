package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeServer is a minimal stand-in for the notification API. It stores
// notifications in insertion order reversed (newest first), like the real
// server's list endpoint.
type fakeServer struct {
	mu    sync.Mutex
	items []Notification
	next  int

	rejectAuth bool
}

func (f *fakeServer) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/notifications", func(w http.ResponseWriter, r *http.Request) {
		if f.unauthorized(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()

		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]any{"notifications": f.items})
		case http.MethodPost:
			var input CreateInput
			json.NewDecoder(r.Body).Decode(&input)
			f.next++
			notif := Notification{
				ID:      "n-" + strconv.Itoa(f.next),
				Title:   input.Title,
				Message: input.Message,
				Type:    input.Type,
			}
			f.items = append([]Notification{notif}, f.items...)
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"notification": notif})
		case http.MethodDelete:
			deleted := len(f.items)
			f.items = nil
			json.NewEncoder(w).Encode(map[string]any{"success": true, "deleted": deleted})
		}
	})
	mux.HandleFunc("/api/v1/notifications/", func(w http.ResponseWriter, r *http.Request) {
		if f.unauthorized(w, r) {
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()

		id := strings.TrimPrefix(r.URL.Path, "/api/v1/notifications/")
		markRead := strings.HasSuffix(id, "/read")
		id = strings.TrimSuffix(id, "/read")

		for i := range f.items {
			if f.items[i].ID != id {
				continue
			}
			switch {
			case markRead && r.Method == http.MethodPut:
				f.items[i].IsRead = true
				json.NewEncoder(w).Encode(map[string]any{"success": true})
			case r.Method == http.MethodDelete:
				f.items = append(f.items[:i], f.items[i+1:]...)
				json.NewEncoder(w).Encode(map[string]any{"success": true})
			default:
				json.NewEncoder(w).Encode(map[string]any{"notification": f.items[i]})
			}
			return
		}

		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error": "Resource not found"})
	})
	return mux
}

func (f *fakeServer) unauthorized(w http.ResponseWriter, r *http.Request) bool {
	if !f.rejectAuth && strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
		return false
	}
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]any{"error": "Authentication required"})
	return true
}

func (f *fakeServer) seed(items ...Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = items
}

func newTestProvider(t *testing.T, fake *fakeServer) *Provider {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)
	return NewProvider(NewClient(srv.URL, "test-token"))
}

func TestProvider_RefreshReplacesCache(t *testing.T) {
	fake := &fakeServer{}
	fake.seed(
		Notification{ID: "b", Title: "newer"},
		Notification{ID: "a", Title: "older", IsRead: true},
	)
	p := newTestProvider(t, fake)
	ctx := context.Background()

	require.NoError(t, p.Refresh(ctx))

	items := p.Notifications()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ID)
	assert.Equal(t, 1, p.UnreadCount())

	// A stale entry disappears after the server-side state changes.
	fake.seed(Notification{ID: "b", Title: "newer"})
	require.NoError(t, p.Refresh(ctx))
	assert.Len(t, p.Notifications(), 1)
}

func TestProvider_CreatePrepends(t *testing.T) {
	fake := &fakeServer{}
	p := newTestProvider(t, fake)
	ctx := context.Background()

	first, err := p.Create(ctx, CreateInput{Title: "first", Message: "m", Type: "system"})
	require.NoError(t, err)
	second, err := p.Create(ctx, CreateInput{Title: "second", Message: "m", Type: "system"})
	require.NoError(t, err)

	items := p.Notifications()
	require.Len(t, items, 2)
	assert.Equal(t, second.ID, items[0].ID)
	assert.Equal(t, first.ID, items[1].ID)
	assert.Equal(t, 2, p.UnreadCount())
}

func TestProvider_MarkAsRead(t *testing.T) {
	fake := &fakeServer{}
	fake.seed(Notification{ID: "a", Title: "t"})
	p := newTestProvider(t, fake)
	ctx := context.Background()

	require.NoError(t, p.Refresh(ctx))
	require.Equal(t, 1, p.UnreadCount())

	require.NoError(t, p.MarkAsRead(ctx, "a"))
	assert.Equal(t, 0, p.UnreadCount())
	assert.True(t, p.Notifications()[0].IsRead)
}

func TestProvider_MarkAsReadNotFoundConverges(t *testing.T) {
	fake := &fakeServer{}
	fake.seed(Notification{ID: "a", Title: "t"})
	p := newTestProvider(t, fake)
	ctx := context.Background()

	require.NoError(t, p.Refresh(ctx))

	// Another session deleted it server-side; the local copy is stale.
	fake.seed()

	require.NoError(t, p.MarkAsRead(ctx, "a"))
	assert.Empty(t, p.Notifications())
}

func TestProvider_DeleteNotFoundConverges(t *testing.T) {
	fake := &fakeServer{}
	fake.seed(Notification{ID: "a", Title: "t"})
	p := newTestProvider(t, fake)
	ctx := context.Background()

	require.NoError(t, p.Refresh(ctx))
	fake.seed()

	require.NoError(t, p.Delete(ctx, "a"))
	assert.Empty(t, p.Notifications())
}

func TestProvider_ClearAll(t *testing.T) {
	fake := &fakeServer{}
	fake.seed(
		Notification{ID: "a", Title: "t"},
		Notification{ID: "b", Title: "t"},
	)
	p := newTestProvider(t, fake)
	ctx := context.Background()

	require.NoError(t, p.Refresh(ctx))
	require.NoError(t, p.ClearAll(ctx))

	assert.Empty(t, p.Notifications())
	assert.Equal(t, 0, p.UnreadCount())
}

func TestProvider_UnauthenticatedSurfacesSentinel(t *testing.T) {
	fake := &fakeServer{rejectAuth: true}
	p := newTestProvider(t, fake)

	err := p.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Empty(t, p.Notifications())
}

func TestClient_APIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"error": "Internal server error"})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL, "test-token")
	_, err := c.list(context.Background())

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Internal server error", apiErr.Message)
}
