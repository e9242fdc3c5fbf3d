package domain

import "github.com/shopspring/decimal"

type CategoryTotal struct {
	Category string          `json:"category" db:"category"`
	Total    decimal.Decimal `json:"total" db:"total"`
}

// MonthlySummary is the dashboard aggregate for one calendar month.
type MonthlySummary struct {
	Month      string          `json:"month"`
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	Net        decimal.Decimal `json:"net"`
	Categories []CategoryTotal `json:"categories"`
}
