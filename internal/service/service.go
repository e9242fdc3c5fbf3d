package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"kakeibo-dashboard/internal/config"
	"kakeibo-dashboard/internal/repository"
	"kakeibo-dashboard/internal/service/auth"
	"kakeibo-dashboard/internal/service/dashboard"
	"kakeibo-dashboard/internal/service/debt"
	"kakeibo-dashboard/internal/service/email"
	"kakeibo-dashboard/internal/service/notification"
	"kakeibo-dashboard/internal/service/receipt"
	"kakeibo-dashboard/internal/service/transaction"
)

type Services struct {
	Auth         auth.Service
	Email        email.Service
	Notification notification.Service
	Transaction  transaction.Service
	Debt         debt.Service
	Dashboard    dashboard.Service
	Receipt      receipt.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)

	return &Services{
		Auth:         auth.NewService(repos.User, repos.Session, cfg),
		Email:        emailService,
		Notification: notification.NewService(repos.Notification, repos.User, emailService),
		Transaction:  transaction.NewService(repos.Transaction, redisClient),
		Debt:         debt.NewService(repos.Debt),
		Dashboard:    dashboard.NewService(repos.Transaction, redisClient),
		Receipt:      receipt.NewService(repos.Receipt, repos.Transaction, minioClient, cfg),
	}
}
