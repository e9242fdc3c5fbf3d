package debt_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"kakeibo-dashboard/internal/domain"
	"kakeibo-dashboard/internal/service/debt"
)

type mockDebtRepository struct {
	mock.Mock
}

func (m *mockDebtRepository) Create(ctx context.Context, d *domain.Debt) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDebtRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Debt, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *mockDebtRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*domain.Debt, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *mockDebtRepository) Update(ctx context.Context, d *domain.Debt) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *mockDebtRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	args := m.Called(ctx, id, userID)
	return args.Error(0)
}

func newDebt(name, balance, rate string) domain.Debt {
	return domain.Debt{
		ID:             uuid.New(),
		Name:           name,
		Balance:        decimal.RequireFromString(balance),
		InterestRate:   decimal.RequireFromString(rate),
		MinimumPayment: decimal.RequireFromString("10"),
	}
}

func TestDebtService_PlanOrdersByRateThenBalance(t *testing.T) {
	mockRepo := new(mockDebtRepository)
	svc := debt.NewService(mockRepo)
	ctx := context.Background()
	userID := uuid.New()

	debts := []domain.Debt{
		newDebt("Car loan", "8000", "3.5"),
		newDebt("Credit card A", "2000", "18.0"),
		newDebt("Credit card B", "500", "18.0"),
		newDebt("Student loan", "12000", "1.2"),
	}
	mockRepo.On("ListByUser", ctx, userID).Return(debts, nil).Once()

	plan, err := svc.Plan(ctx, userID)
	require.NoError(t, err)
	require.Len(t, plan, 4)

	// Highest rate first; equal rates break ties toward the smaller balance.
	assert.Equal(t, "Credit card B", plan[0].Debt.Name)
	assert.Equal(t, "Credit card A", plan[1].Debt.Name)
	assert.Equal(t, "Car loan", plan[2].Debt.Name)
	assert.Equal(t, "Student loan", plan[3].Debt.Name)

	for i, entry := range plan {
		assert.Equal(t, i+1, entry.Position)
	}
	mockRepo.AssertExpectations(t)
}

func TestDebtService_PlanEmpty(t *testing.T) {
	mockRepo := new(mockDebtRepository)
	svc := debt.NewService(mockRepo)
	ctx := context.Background()
	userID := uuid.New()

	mockRepo.On("ListByUser", ctx, userID).Return([]domain.Debt{}, nil).Once()

	plan, err := svc.Plan(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, plan)
	assert.NotNil(t, plan)
}

func TestDebtService_CreateRejectsNegativeBalance(t *testing.T) {
	mockRepo := new(mockDebtRepository)
	svc := debt.NewService(mockRepo)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Create(ctx, userID, domain.CreateDebtInput{
		Name:           "Bad debt",
		Balance:        "-100",
		InterestRate:   "5",
		MinimumPayment: "10",
	})

	var validationErrs *domain.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "Balance", validationErrs.Fields[0].Field)
	mockRepo.AssertNotCalled(t, "Create")
}

func TestDebtService_CreateRejectsNonNumericAmount(t *testing.T) {
	mockRepo := new(mockDebtRepository)
	svc := debt.NewService(mockRepo)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.Create(ctx, userID, domain.CreateDebtInput{
		Name:           "Bad debt",
		Balance:        "1000",
		InterestRate:   "five percent",
		MinimumPayment: "10",
	})

	var validationErrs *domain.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Equal(t, "InterestRate", validationErrs.Fields[0].Field)
}

func TestDebtService_UpdateAppliesPartialInput(t *testing.T) {
	mockRepo := new(mockDebtRepository)
	svc := debt.NewService(mockRepo)
	ctx := context.Background()
	userID := uuid.New()

	existing := newDebt("Credit card", "2000", "18.0")
	existing.UserID = userID

	mockRepo.On("GetByID", ctx, existing.ID, userID).Return(&existing, nil).Once()
	mockRepo.On("Update", ctx, mock.AnythingOfType("*domain.Debt")).Return(nil).Once()

	newBalance := "1500"
	updated, err := svc.Update(ctx, userID, existing.ID, domain.UpdateDebtInput{
		Balance: &newBalance,
	})
	require.NoError(t, err)
	assert.True(t, updated.Balance.Equal(decimal.RequireFromString("1500")))
	assert.Equal(t, "Credit card", updated.Name)
	mockRepo.AssertExpectations(t)
}

func TestDebtService_UpdateNotFoundForStranger(t *testing.T) {
	mockRepo := new(mockDebtRepository)
	svc := debt.NewService(mockRepo)
	ctx := context.Background()
	stranger := uuid.New()
	debtID := uuid.New()

	mockRepo.On("GetByID", ctx, debtID, stranger).Return(nil, domain.ErrNotFound).Once()

	name := "hijacked"
	_, err := svc.Update(ctx, stranger, debtID, domain.UpdateDebtInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockRepo.AssertNotCalled(t, "Update")
}
