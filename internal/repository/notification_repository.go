package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kakeibo-dashboard/internal/domain"
)

// NotificationRepository is the notification store. Every read and mutation
// takes the requesting user id as a mandatory filter: a record belonging to
// another user is indistinguishable from a missing one, both surface as
// domain.ErrNotFound.
type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error)
	GetByID(ctx context.Context, id string, userID uuid.UUID) (*domain.Notification, error)
	MarkAsRead(ctx context.Context, id string, userID uuid.UUID) (*domain.Notification, error)
	Delete(ctx context.Context, id string, userID uuid.UUID) error
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.Notification) error {
	notif.ID = uuid.New().String()

	query := `
		INSERT INTO notifications (id, user_id, type, title, message, target_date, priority, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.UserID, notif.Type, notif.Title, notif.Message,
		notif.TargetDate, notif.Priority, notif.Data,
	).Scan(&notif.CreatedAt, &notif.UpdatedAt)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Notification, error) {
	var notifications []domain.Notification
	query := `
		SELECT * FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &notifications, query, userID); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id string, userID uuid.UUID) (*domain.Notification, error) {
	var notif domain.Notification
	query := `SELECT * FROM notifications WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &notif, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &notif, nil
}

// MarkAsRead is a single conditional update so the ownership check and the
// mutation cannot race. It does not filter on is_read, making a repeat call
// on an already-read notification a successful no-op.
func (r *notificationRepository) MarkAsRead(ctx context.Context, id string, userID uuid.UUID) (*domain.Notification, error) {
	var notif domain.Notification
	query := `
		UPDATE notifications
		SET is_read = true, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING *`

	err := r.db.GetContext(ctx, &notif, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &notif, nil
}

func (r *notificationRepository) Delete(ctx context.Context, id string, userID uuid.UUID) error {
	query := `DELETE FROM notifications WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *notificationRepository) DeleteAllByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `DELETE FROM notifications WHERE user_id = $1`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
