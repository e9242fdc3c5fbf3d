package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

type Transaction struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"user_id" db:"user_id"`
	Type        TransactionType `json:"type" db:"type"`
	Amount      decimal.Decimal `json:"amount" db:"amount"`
	Category    string          `json:"category" db:"category"`
	Description *string         `json:"description,omitempty" db:"description"`
	OccurredAt  time.Time       `json:"occurred_at" db:"occurred_at"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" db:"updated_at"`
}

type CreateTransactionInput struct {
	Type        string  `json:"type" validate:"required,oneof=income expense"`
	Amount      string  `json:"amount" validate:"required"`
	Category    string  `json:"category" validate:"required,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
	OccurredAt  string  `json:"occurred_at" validate:"required,datetime=2006-01-02"`
}

type UpdateTransactionInput struct {
	Type        *string `json:"type,omitempty" validate:"omitempty,oneof=income expense"`
	Amount      *string `json:"amount,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=50"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=255"`
	OccurredAt  *string `json:"occurred_at,omitempty" validate:"omitempty,datetime=2006-01-02"`
}
