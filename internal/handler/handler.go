package handler

import (
	"github.com/gofiber/fiber/v2"

	"kakeibo-dashboard/internal/domain"
	"kakeibo-dashboard/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	Notification *NotificationHandler
	Transaction  *TransactionHandler
	Debt         *DebtHandler
	Dashboard    *DashboardHandler
	Receipt      *ReceiptHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth),
		Notification: NewNotificationHandler(services.Notification),
		Transaction:  NewTransactionHandler(services.Transaction),
		Debt:         NewDebtHandler(services.Debt),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Receipt:      NewReceiptHandler(services.Receipt),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()
	if err := c.QueryParser(&params); err != nil {
		return domain.DefaultPagination()
	}
	params.Validate()
	return params
}
