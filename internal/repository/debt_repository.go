package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"kakeibo-dashboard/internal/domain"
)

type DebtRepository interface {
	Create(ctx context.Context, debt *domain.Debt) error
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Debt, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error)
	Update(ctx context.Context, debt *domain.Debt) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

type debtRepository struct {
	db *sqlx.DB
}

func NewDebtRepository(db *sqlx.DB) DebtRepository {
	return &debtRepository{db: db}
}

func (r *debtRepository) Create(ctx context.Context, debt *domain.Debt) error {
	query := `
		INSERT INTO debts (id, user_id, name, balance, interest_rate, minimum_payment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		debt.ID, debt.UserID, debt.Name, debt.Balance, debt.InterestRate, debt.MinimumPayment,
	).Scan(&debt.CreatedAt, &debt.UpdatedAt)
}

func (r *debtRepository) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Debt, error) {
	var debt domain.Debt
	query := `SELECT * FROM debts WHERE id = $1 AND user_id = $2`

	err := r.db.GetContext(ctx, &debt, query, id, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &debt, nil
}

func (r *debtRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error) {
	var debts []domain.Debt
	query := `SELECT * FROM debts WHERE user_id = $1 ORDER BY created_at ASC`

	if err := r.db.SelectContext(ctx, &debts, query, userID); err != nil {
		return nil, err
	}
	return debts, nil
}

func (r *debtRepository) Update(ctx context.Context, debt *domain.Debt) error {
	query := `
		UPDATE debts
		SET name = $1, balance = $2, interest_rate = $3, minimum_payment = $4, updated_at = NOW()
		WHERE id = $5 AND user_id = $6
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		debt.Name, debt.Balance, debt.InterestRate, debt.MinimumPayment, debt.ID, debt.UserID,
	).Scan(&debt.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM debts WHERE id = $1 AND user_id = $2`, id, userID)
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
