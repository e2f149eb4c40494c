package handler

import (
	"strconv"

	"inventorytrack/internal/service"

	"github.com/gofiber/fiber/v2"
)

// fail maps a service error onto the response: known client errors are 400
// with their exact message, anything else is a storage failure and stays 500.
func fail(c *fiber.Ctx, err error) error {
	if service.IsClientError(err) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Internal Server Error"})
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
