package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kakeibo-dashboard/internal/domain"
	"kakeibo-dashboard/internal/middleware"
	"kakeibo-dashboard/internal/service/transaction"
)

type TransactionHandler struct {
	txService transaction.Service
}

func NewTransactionHandler(txService transaction.Service) *TransactionHandler {
	return &TransactionHandler{txService: txService}
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var input domain.CreateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	tx, err := h.txService.Create(c.Context(), userID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(tx)
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	var month *time.Time
	if raw := c.Query("month"); raw != "" {
		parsed, err := time.Parse("2006-01", raw)
		if err != nil {
			return middleware.BadRequest("Invalid month, expected YYYY-MM")
		}
		month = &parsed
	}

	params := getPaginationParams(c)

	result, err := h.txService.List(c.Context(), userID, month, params)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid transaction ID")
	}

	tx, err := h.txService.Get(c.Context(), userID, txID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tx)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid transaction ID")
	}

	var input domain.UpdateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	tx, err := h.txService.Update(c.Context(), userID, txID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(tx)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid transaction ID")
	}

	if err := h.txService.Delete(c.Context(), userID, txID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
