package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Debt struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	UserID         uuid.UUID       `json:"user_id" db:"user_id"`
	Name           string          `json:"name" db:"name"`
	Balance        decimal.Decimal `json:"balance" db:"balance"`
	InterestRate   decimal.Decimal `json:"interest_rate" db:"interest_rate"`
	MinimumPayment decimal.Decimal `json:"minimum_payment" db:"minimum_payment"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

type CreateDebtInput struct {
	Name           string `json:"name" validate:"required,max=100"`
	Balance        string `json:"balance" validate:"required"`
	InterestRate   string `json:"interest_rate" validate:"required"`
	MinimumPayment string `json:"minimum_payment" validate:"required"`
}

type UpdateDebtInput struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Balance        *string `json:"balance,omitempty"`
	InterestRate   *string `json:"interest_rate,omitempty"`
	MinimumPayment *string `json:"minimum_payment,omitempty"`
}

// DebtPlanEntry is one row of the suggested payoff order. Ordering only;
// no amortization or interest projection is computed.
type DebtPlanEntry struct {
	Position int  `json:"position"`
	Debt     Debt `json:"debt"`
}
