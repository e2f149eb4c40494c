package handler

import (
	"inventorytrack/internal/model"
	"inventorytrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	service service.InventoryService
}

func NewTransactionHandler(s service.InventoryService) *TransactionHandler {
	return &TransactionHandler{service: s}
}

// CreateTransaction records one stock movement and returns the updated
// product together with its new ledger entry.
func (h *TransactionHandler) CreateTransaction(c *fiber.Ctx) error {
	var in model.MovementInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	product, entry, err := h.service.ApplyMovement(&in)
	if err != nil {
		return fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"product":     product,
		"transaction": entry,
	})
}

func (h *TransactionHandler) GetTransactions(c *fiber.Ctx) error {
	transactions, err := h.service.GetAllTransactions()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(transactions)
}

func (h *TransactionHandler) GetTransaction(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction ID"})
	}

	tx, err := h.service.GetTransactionByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
	}
	return c.JSON(tx)
}
