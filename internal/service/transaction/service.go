package transaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"kakeibo-dashboard/internal/domain"
	"kakeibo-dashboard/internal/repository"
	"kakeibo-dashboard/internal/validation"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, input domain.CreateTransactionInput) (*domain.Transaction, error)
	Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Transaction, error)
	List(ctx context.Context, userID uuid.UUID, month *time.Time, params domain.PaginationParams) (domain.PaginatedResponse[domain.Transaction], error)
	Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, input domain.UpdateTransactionInput) (*domain.Transaction, error)
	Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
}

type service struct {
	txRepo repository.TransactionRepository
	redis  *redis.Client
}

func NewService(txRepo repository.TransactionRepository, redisClient *redis.Client) Service {
	return &service{
		txRepo: txRepo,
		redis:  redisClient,
	}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, input domain.CreateTransactionInput) (*domain.Transaction, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	amount, err := parseAmount(input.Amount)
	if err != nil {
		return nil, err
	}

	occurredAt, err := time.Parse("2006-01-02", input.OccurredAt)
	if err != nil {
		return nil, &domain.ValidationErrors{Fields: []domain.FieldError{
			{Field: "OccurredAt", Message: "must be a date in 2006-01-02 format"},
		}}
	}

	tx := &domain.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        domain.TransactionType(input.Type),
		Amount:      amount,
		Category:    input.Category,
		Description: input.Description,
		OccurredAt:  occurredAt,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, userID)
	return tx, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Transaction, error) {
	return s.txRepo.GetByID(ctx, id, userID)
}

func (s *service) List(ctx context.Context, userID uuid.UUID, month *time.Time, params domain.PaginationParams) (domain.PaginatedResponse[domain.Transaction], error) {
	transactions, total, err := s.txRepo.ListByUser(ctx, userID, month, params)
	if err != nil {
		return domain.PaginatedResponse[domain.Transaction]{}, err
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}

	return domain.NewPaginatedResponse(transactions, params.Page, params.PageSize, total), nil
}

func (s *service) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, input domain.UpdateTransactionInput) (*domain.Transaction, error) {
	if err := validation.Struct(input); err != nil {
		return nil, err
	}

	tx, err := s.txRepo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	if input.Type != nil {
		tx.Type = domain.TransactionType(*input.Type)
	}
	if input.Amount != nil {
		amount, err := parseAmount(*input.Amount)
		if err != nil {
			return nil, err
		}
		tx.Amount = amount
	}
	if input.Category != nil {
		tx.Category = *input.Category
	}
	if input.Description != nil {
		tx.Description = input.Description
	}
	if input.OccurredAt != nil {
		occurredAt, err := time.Parse("2006-01-02", *input.OccurredAt)
		if err != nil {
			return nil, &domain.ValidationErrors{Fields: []domain.FieldError{
				{Field: "OccurredAt", Message: "must be a date in 2006-01-02 format"},
			}}
		}
		tx.OccurredAt = occurredAt
	}

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	s.invalidateSummary(ctx, userID)
	return tx, nil
}

func (s *service) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if err := s.txRepo.Delete(ctx, id, userID); err != nil {
		return err
	}

	s.invalidateSummary(ctx, userID)
	return nil
}

func (s *service) invalidateSummary(ctx context.Context, userID uuid.UUID) {
	if s.redis == nil {
		return
	}

	pattern := fmt.Sprintf("dashboard:%s:*", userID)
	keys, _ := s.redis.Keys(ctx, pattern).Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &domain.ValidationErrors{Fields: []domain.FieldError{
			{Field: "Amount", Message: "must be a decimal number"},
		}}
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, &domain.ValidationErrors{Fields: []domain.FieldError{
			{Field: "Amount", Message: "must be greater than zero"},
		}}
	}
	return amount, nil
}
