package debt

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"kakeibo-dashboard/internal/domain"
	"kakeibo-dashboard/internal/repository"
	"kakeibo-dashboard/internal/validation"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateDebtInput) (*domain.Debt, error)
	List(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, input domain.UpdateDebtInput) (*domain.Debt, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	Plan(ctx context.Context, userID uuid.UUID) ([]domain.DebtPlanEntry, error)
}

type service struct {
	debtRepo repository.DebtRepository
}

func NewService(debtRepo repository.DebtRepository) Service {
	return &service{debtRepo: debtRepo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreateDebtInput) (*domain.Debt, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	balance, err := parseNonNegative("Balance", input.Balance)
	if err != nil {
		return nil, err
	}
	rate, err := parseNonNegative("InterestRate", input.InterestRate)
	if err != nil {
		return nil, err
	}
	minimum, err := parseNonNegative("MinimumPayment", input.MinimumPayment)
	if err != nil {
		return nil, err
	}

	debt := &domain.Debt{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           input.Name,
		Balance:        balance,
		InterestRate:   rate,
		MinimumPayment: minimum,
	}

	if err := s.debtRepo.Create(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if debts == nil {
		debts = []domain.Debt{}
	}
	return debts, nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, input domain.UpdateDebtInput) (*domain.Debt, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	debt, err := s.debtRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		debt.Name = *input.Name
	}
	if input.Balance != nil {
		balance, err := parseNonNegative("Balance", *input.Balance)
		if err != nil {
			return nil, err
		}
		debt.Balance = balance
	}
	if input.InterestRate != nil {
		rate, err := parseNonNegative("InterestRate", *input.InterestRate)
		if err != nil {
			return nil, err
		}
		debt.InterestRate = rate
	}
	if input.MinimumPayment != nil {
		minimum, err := parseNonNegative("MinimumPayment", *input.MinimumPayment)
		if err != nil {
			return nil, err
		}
		debt.MinimumPayment = minimum
	}

	if err := s.debtRepo.Update(ctx, debt); err != nil {
		return nil, err
	}
	return debt, nil
}

func (s *service) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	return s.debtRepo.Delete(ctx, id, userID)
}

// Plan orders the user's debts highest interest rate first (ties broken by
// smaller balance) and numbers the positions. Presentation only: no payoff
// dates or interest projections are computed.
func (s *service) Plan(ctx context.Context, userID uuid.UUID) ([]domain.DebtPlanEntry, error) {
	debts, err := s.debtRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(debts, func(i, j int) bool {
		if !debts[i].InterestRate.Equal(debts[j].InterestRate) {
			return debts[i].InterestRate.GreaterThan(debts[j].InterestRate)
		}
		return debts[i].Balance.LessThan(debts[j].Balance)
	})

	plan := make([]domain.DebtPlanEntry, 0, len(debts))
	for i, d := range debts {
		plan = append(plan, domain.DebtPlanEntry{Position: i + 1, Debt: d})
	}
	return plan, nil
}

func parseNonNegative(field, raw string) (decimal.Decimal, error) {
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &domain.ValidationErrors{Fields: []domain.FieldError{
			{Field: field, Message: "must be a decimal number"},
		}}
	}
	if value.IsNegative() {
		return decimal.Zero, &domain.ValidationErrors{Fields: []domain.FieldError{
			{Field: field, Message: "must not be negative"},
		}}
	}
	return value, nil
}
