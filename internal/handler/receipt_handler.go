package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kakeibo-dashboard/internal/middleware"
	"kakeibo-dashboard/internal/service/receipt"
)

type ReceiptHandler struct {
	receiptService receipt.Service
}

func NewReceiptHandler(receiptService receipt.Service) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

func (h *ReceiptHandler) Upload(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid transaction ID")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return middleware.BadRequest("Missing file upload")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return middleware.BadRequest("Unable to read uploaded file")
	}
	defer file.Close()

	mimeType := fileHeader.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	r, err := h.receiptService.Upload(c.Context(), userID, txID, fileHeader.Filename, fileHeader.Size, mimeType, file)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(r)
}

func (h *ReceiptHandler) ListByTransaction(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	txID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid transaction ID")
	}

	receipts, err := h.receiptService.ListByTransaction(c.Context(), userID, txID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"receipts": receipts,
	})
}

func (h *ReceiptHandler) Delete(c *fiber.Ctx) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return err
	}

	receiptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid receipt ID")
	}

	if err := h.receiptService.Delete(c.Context(), userID, receiptID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}
