package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kakeibo-dashboard/internal/domain"
	"kakeibo-dashboard/internal/middleware"
	"kakeibo-dashboard/internal/service/debt"
)

type DebtHandler struct {
	debtService debt.Service
}

func NewDebtHandler(debtService debt.Service) *DebtHandler {
	return &DebtHandler{debtService: debtService}
}

func (h *DebtHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.CreateDebtInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	d, err := h.debtService.Create(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(d)
}

func (h *DebtHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	debts, err := h.debtService.List(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"debts": debts,
	})
}

func (h *DebtHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	debtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid debt ID")
	}

	var input domain.UpdateDebtInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	d, err := h.debtService.Update(c.Context(), userID, debtID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(d)
}

func (h *DebtHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	debtID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid debt ID")
	}

	if err := h.debtService.Delete(c.Context(), userID, debtID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

func (h *DebtHandler) Plan(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	plan, err := h.debtService.Plan(c.Context(), userID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"plan": plan,
	})
}
