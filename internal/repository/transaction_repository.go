package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"kakeibo-dashboard/internal/domain"
)

type MonthTotals struct {
	Income  decimal.Decimal `db:"income"`
	Expense decimal.Decimal `db:"expense"`
}

type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Transaction, error)
	ListByUser(ctx context.Context, userID uuid.UUID, month *time.Time, params domain.PaginationParams) ([]domain.Transaction, int64, error)
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	SummarizeMonth(ctx context.Context, userID uuid.UUID, from, to time.Time) (MonthTotals, []domain.CategoryTotal, error)
}

type transactionRepository struct {
	db *sqlx.DB
}

func NewTransactionRepository(db *sqlx.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, type, amount, category, description, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		tx.ID, tx.UserID, tx.Type, tx.Amount, tx.Category, tx.Description, tx.OccurredAt,
	).Scan(&tx.CreatedAt, &tx.UpdatedAt)
}

func (r *transactionRepository) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Transaction, error) {
	var tx domain.Transaction
	query := `SELECT * FROM transactions WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &tx, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *transactionRepository) ListByUser(ctx context.Context, userID uuid.UUID, month *time.Time, params domain.PaginationParams) ([]domain.Transaction, int64, error) {
	params.Validate()

	var total int64
	var transactions []domain.Transaction

	if month != nil {
		from := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 1, 0)

		countQuery := `SELECT COUNT(*) FROM transactions WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3`
		if err := r.db.GetContext(ctx, &total, countQuery, userID, from, to); err != nil {
			return nil, 0, err
		}

		query := `
			SELECT * FROM transactions
			WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3
			ORDER BY occurred_at DESC, created_at DESC
			LIMIT $4 OFFSET $5`
		err := r.db.SelectContext(ctx, &transactions, query, userID, from, to, params.PageSize, params.Offset())
		return transactions, total, err
	}

	countQuery := `SELECT COUNT(*) FROM transactions WHERE user_id = $1`
	if err := r.db.GetContext(ctx, &total, countQuery, userID); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT * FROM transactions
		WHERE user_id = $1
		ORDER BY occurred_at DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	err := r.db.SelectContext(ctx, &transactions, query, userID, params.PageSize, params.Offset())
	return transactions, total, err
}

func (r *transactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $1, amount = $2, category = $3, description = $4, occurred_at = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		tx.Type, tx.Amount, tx.Category, tx.Description, tx.OccurredAt, tx.ID, tx.UserID,
	).Scan(&tx.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
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

func (r *transactionRepository) SummarizeMonth(ctx context.Context, userID uuid.UUID, from, to time.Time) (MonthTotals, []domain.CategoryTotal, error) {
	var totals MonthTotals
	totalsQuery := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE type = 'income'), 0)  AS income,
			COALESCE(SUM(amount) FILTER (WHERE type = 'expense'), 0) AS expense
		FROM transactions
		WHERE user_id = $1 AND occurred_at >= $2 AND occurred_at < $3`

	if err := r.db.GetContext(ctx, &totals, totalsQuery, userID, from, to); err != nil {
		return MonthTotals{}, nil, err
	}

	var categories []domain.CategoryTotal
	categoriesQuery := `
		SELECT category, SUM(amount) AS total
		FROM transactions
		WHERE user_id = $1 AND type = 'expense' AND occurred_at >= $2 AND occurred_at < $3
		GROUP BY category
		ORDER BY total DESC`

	if err := r.db.SelectContext(ctx, &categories, categoriesQuery, userID, from, to); err != nil {
		return MonthTotals{}, nil, err
	}
	return totals, categories, nil
}
