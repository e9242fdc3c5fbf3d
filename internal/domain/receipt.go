package domain

import (
	"time"

	"github.com/google/uuid"
)

type Receipt struct {
	ID            uuid.UUID `json:"id" db:"id"`
	TransactionID uuid.UUID `json:"transaction_id" db:"transaction_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	FileName      string    `json:"file_name" db:"file_name"`
	FileSize      int64     `json:"file_size" db:"file_size"`
	MimeType      string    `json:"mime_type" db:"mime_type"`
	StoragePath   string    `json:"-" db:"storage_path"`
	URL           string    `json:"url,omitempty" db:"-"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
