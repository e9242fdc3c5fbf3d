package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"kakeibo-dashboard/internal/domain"
)

const demoIDPrefix = "demo-"

// demoNotificationRepository backs demo deployments that run without a
// database. Nothing is ever persisted: List always returns an empty set,
// Create echoes the input with a synthetic id, and the remaining mutations
// report success without touching storage. This is a documented degraded
// mode, response shapes stay identical to the real store.
type demoNotificationRepository struct{}

func NewDemoNotificationRepository() NotificationRepository {
	return &demoNotificationRepository{}
}

func (r *demoNotificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	now := time.Now()
	notif.ID = demoIDPrefix + uuid.New().String()
	notif.IsRead = false
	notif.CreatedAt = now
	notif.UpdatedAt = now
	return nil
}

func (r *demoNotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	return []domain.Notification{}, nil
}

// GetByID keeps empty-store semantics: nothing was persisted, so nothing can
// be fetched back.
func (r *demoNotificationRepository) GetByID(ctx context.Context, id string, userID uuid.UUID) (*domain.Notification, error) {
	return nil, domain.ErrNotFound
}

func (r *demoNotificationRepository) MarkAsRead(ctx context.Context, id string, userID uuid.UUID) (*domain.Notification, error) {
	now := time.Now()
	return &domain.Notification{
		ID:        id,
		UserID:    userID,
		Priority:  domain.PriorityMedium,
		IsRead:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

func (r *demoNotificationRepository) Delete(ctx context.Context, id string, userID uuid.UUID) error {
	return nil
}

func (r *demoNotificationRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	return 0, nil
}
