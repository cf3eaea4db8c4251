package handler

import (
	"errors"

	"go-warehouse-ledger/internal/repository"
	"go-warehouse-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Helpers to pull user info from the JWT context (set by RequireAuth)
func getUserID(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system" // shouldn't happen in protected routes
	}
	return userID.(string)
}

func getUserName(c *fiber.Ctx) string {
	userName := c.Locals("user_name")
	if userName == nil {
		return "Unknown"
	}
	return userName.(string)
}

func parseUUID(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}

// statusForError maps the service error taxonomy onto HTTP status codes:
// missing references are 404, stock/fulfillment/pricing conflicts are
// 409, everything else (validation) is 400. The error message itself is
// surfaced verbatim.
func statusForError(err error) int {
	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrDepotNotFound),
		errors.Is(err, service.ErrPartnerNotFound),
		errors.Is(err, service.ErrPricelistNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrOrderLineNotFound),
		errors.Is(err, service.ErrImportNotFound),
		errors.Is(err, service.ErrExportNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, repository.ErrInsufficientStock),
		errors.Is(err, repository.ErrOverFulfillment),
		errors.Is(err, repository.ErrNoPricelist),
		errors.Is(err, service.ErrProductUnpriced):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}

func errorJSON(c *fiber.Ctx, err error) error {
	return c.Status(statusForError(err)).JSON(fiber.Map{"error": err.Error()})
}
