package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"kakeibo-dashboard/internal/domain"
	"kakeibo-dashboard/internal/repository"
)

const summaryCacheTTL = 5 * time.Minute

type Service interface {
	Summary(ctx context.Context, userID uuid.UUID, month string) (*domain.MonthlySummary, error)
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

func (s *service) Summary(ctx context.Context, userID uuid.UUID, month string) (*domain.MonthlySummary, error) {
	if month == "" {
		month = time.Now().Format("2006-01")
	}

	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return nil, &domain.ValidationErrors{Fields: []domain.FieldError{
			{Field: "month", Message: "must be a month in 2006-01 format"},
		}}
	}

	cacheKey := fmt.Sprintf("dashboard:%s:%s", userID, month)
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var summary domain.MonthlySummary
			if json.Unmarshal([]byte(cached), &summary) == nil {
				return &summary, nil
			}
		}
	}

	from := time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	totals, categories, err := s.txRepo.SummarizeMonth(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []domain.CategoryTotal{}
	}

	summary := &domain.MonthlySummary{
		Month:      month,
		Income:     totals.Income,
		Expense:    totals.Expense,
		Net:        totals.Income.Sub(totals.Expense),
		Categories: categories,
	}

	if s.redis != nil {
		if encoded, err := json.Marshal(summary); err == nil {
			_ = s.redis.Set(ctx, cacheKey, encoded, summaryCacheTTL).Err()
		}
	}

	return summary, nil
}
