package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

func (p NotificationPriority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// Notification is a user-visible alert. The id is an opaque string so demo
// deployments can hand out recognizably synthetic ids. Content fields are
// immutable after creation; the only mutation ever applied is the read flag.
type Notification struct {
	ID         string               `json:"id" db:"id"`
	UserID     uuid.UUID            `json:"user_id" db:"user_id"`
	Type       string               `json:"type" db:"type"`
	Title      string               `json:"title" db:"title"`
	Message    string               `json:"message" db:"message"`
	TargetDate *time.Time           `json:"target_date,omitempty" db:"target_date"`
	Priority   NotificationPriority `json:"priority" db:"priority"`
	IsRead     bool                 `json:"is_read" db:"is_read"`
	Data       json.RawMessage      `json:"data,omitempty" db:"data"`
	CreatedAt  time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at" db:"updated_at"`
}

type CreateNotificationInput struct {
	Title      string            `json:"title" validate:"required,max=100"`
	Message    string            `json:"message" validate:"required,max=500"`
	Type       string            `json:"type" validate:"required,max=50"`
	TargetDate *string           `json:"target_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Priority   string            `json:"priority,omitempty" validate:"omitempty,oneof=low medium high"`
	Data       map[string]string `json:"data,omitempty"`
}
