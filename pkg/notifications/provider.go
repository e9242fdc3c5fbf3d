package notifications

import (
	"context"
	"errors"
	"sync"
)

// Provider owns the client-side notification cache. Mutations call the API
// first and then reconcile the local copy; a NotFound from the server is a
// convergence signal (the record is gone, or was never ours) and drops the
// local entry instead of surfacing an error. Operations are not serialized
// against each other; after a burst of concurrent activity, Refresh is the
// reconciliation point.
type Provider struct {
	client *Client

	mu    sync.RWMutex
	items []Notification
}

func NewProvider(client *Client) *Provider {
	return &Provider{client: client}
}

// Refresh replaces the whole local cache with the server's list. It is the
// only operation that can repair staleness caused by another tab or session.
func (p *Provider) Refresh(ctx context.Context) error {
	items, err := p.client.list(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.items = items
	p.mu.Unlock()
	return nil
}

// Create posts a new notification and prepends it locally, matching the
// server's newest-first order.
func (p *Provider) Create(ctx context.Context, input CreateInput) (*Notification, error) {
	notif, err := p.client.create(ctx, input)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.items = append([]Notification{*notif}, p.items...)
	p.mu.Unlock()
	return notif, nil
}

// MarkAsRead flips the read flag on the server and mirrors it locally in
// place, preserving order. A NotFound removes the local entry and is not an
// error.
func (p *Provider) MarkAsRead(ctx context.Context, id string) error {
	err := p.client.markAsRead(ctx, id)
	if errors.Is(err, ErrNotFound) {
		p.removeLocal(id)
		return nil
	}
	if err != nil {
		return err
	}

	p.mu.Lock()
	for i := range p.items {
		if p.items[i].ID == id {
			p.items[i].IsRead = true
			break
		}
	}
	p.mu.Unlock()
	return nil
}

// Delete removes the notification on the server and locally. NotFound also
// converges to removal.
func (p *Provider) Delete(ctx context.Context, id string) error {
	err := p.client.delete(ctx, id)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return err
	}

	p.removeLocal(id)
	return nil
}

// ClearAll deletes every notification owned by the user and empties the
// cache regardless of how many records the server reports removed.
func (p *Provider) ClearAll(ctx context.Context) error {
	if err := p.client.clearAll(ctx); err != nil {
		return err
	}

	p.mu.Lock()
	p.items = nil
	p.mu.Unlock()
	return nil
}

// Notifications returns a snapshot of the cached list in server order.
func (p *Provider) Notifications() []Notification {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([]Notification, len(p.items))
	copy(out, p.items)
	return out
}

// UnreadCount is derived from the cache, not fetched.
func (p *Provider) UnreadCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	count := 0
	for i := range p.items {
		if !p.items[i].IsRead {
			count++
		}
	}
	return count
}

func (p *Provider) removeLocal(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i := range p.items {
		if p.items[i].ID == id {
			p.items = append(p.items[:i], p.items[i+1:]...)
			return
		}
	}
}
