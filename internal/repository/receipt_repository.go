package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kakeibo-dashboard/internal/domain"
)

type ReceiptRepository interface {
	Create(ctx context.Context, receipt *domain.Receipt) error
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Receipt, error)
	ListByTransaction(ctx context.Context, transactionID uuid.UUID, userID uuid.UUID) ([]domain.Receipt, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type receiptRepository struct {
	db *sqlx.DB
}

func NewReceiptRepository(db *sqlx.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) Create(ctx context.Context, receipt *domain.Receipt) error {
	query := `
		INSERT INTO receipts (id, transaction_id, user_id, file_name, file_size, mime_type, storage_path)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		receipt.ID, receipt.TransactionID, receipt.UserID,
		receipt.FileName, receipt.FileSize, receipt.MimeType, receipt.StoragePath,
	).Scan(&receipt.CreatedAt)
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Receipt, error) {
	var receipt domain.Receipt
	query := `SELECT * FROM receipts WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &receipt, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) ListByTransaction(ctx context.Context, transactionID uuid.UUID, userID uuid.UUID) ([]domain.Receipt, error) {
	var receipts []domain.Receipt
	query := `
		SELECT * FROM receipts
		WHERE transaction_id = $1 AND user_id = $2
		ORDER BY created_at DESC`

	if err := r.db.SelectContext(ctx, &receipts, query, transactionID, userID); err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM receipts WHERE id = $1 AND user_id = $2`, id, userID)
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
