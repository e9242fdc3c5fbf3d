package handler

import (
	"github.com/gofiber/fiber/v2"

	"kakeibo-dashboard/internal/middleware"
	"kakeibo-dashboard/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardService dashboard.Service
}

func NewDashboardHandler(dashboardService dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	summary, err := h.dashboardService.Summary(c.Context(), userID, c.Query("month"))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}
