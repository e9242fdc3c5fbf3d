package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"kakeibo-dashboard/internal/domain"
)

// memoryNotificationRepository is the in-memory reference implementation of
// the notification store. It honors the same ownership contract as the
// Postgres store and is what the unit tests exercise the service against.
type memoryNotificationRepository struct {
	mu    sync.RWMutex
	items map[string]domain.Notification
	seq   map[string]int64
	next  int64
}

func NewMemoryNotificationRepository() NotificationRepository {
	return &memoryNotificationRepository{
		items: make(map[string]domain.Notification),
		seq:   make(map[string]int64),
	}
}

func (r *memoryNotificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	notif.ID = uuid.New().String()
	notif.CreatedAt = now
	notif.UpdatedAt = now

	r.next++
	r.items[notif.ID] = *notif
	r.seq[notif.ID] = r.next
	return nil
}

func (r *memoryNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	notifications := make([]domain.Notification, 0)
	for _, n := range r.items {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}

	// Newest first; insertion order breaks created_at ties.
	sort.Slice(notifications, func(i, j int) bool {
		a, b := notifications[i], notifications[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return r.seq[a.ID] > r.seq[b.ID]
	})
	return notifications, nil
}

func (r *memoryNotificationRepository) GetByID(ctx context.Context, id string, userID uuid.UUID) (*domain.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n, ok := r.items[id]
	if !ok || n.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return &n, nil
}

func (r *memoryNotificationRepository) MarkAsRead(ctx context.Context, id string, userID uuid.UUID) (*domain.Notification, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.items[id]
	if !ok || n.UserID != userID {
		return nil, domain.ErrNotFound
	}

	n.IsRead = true
	n.UpdatedAt = time.Now()
	r.items[id] = n
	return &n, nil
}

func (r *memoryNotificationRepository) Delete(ctx context.Context, id string, userID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	n, ok := r.items[id]
	if !ok || n.UserID != userID {
		return domain.ErrNotFound
	}

	delete(r.items, id)
	delete(r.seq, id)
	return nil
}

func (r *memoryNotificationRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for id, n := range r.items {
		if n.UserID == userID {
			delete(r.items, id)
			delete(r.seq, id)
			removed++
		}
	}
	return removed, nil
}
