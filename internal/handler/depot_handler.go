package handler

import (
	"go-warehouse-ledger/internal/model"
	"go-warehouse-ledger/internal/repository"
	"go-warehouse-ledger/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// DepotHandler serves depot reference data and the per-depot inventory
// query. Depots have no business logic of their own, so the handler
// talks to the repository directly.
type DepotHandler struct {
	depotRepo repository.DepotRepository
}

func NewDepotHandler(depotRepo repository.DepotRepository) *DepotHandler {
	return &DepotHandler{depotRepo: depotRepo}
}

func (h *DepotHandler) CreateDepot(c *fiber.Ctx) error {
	var depot model.Depot
	if err := c.BodyParser(&depot); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&depot); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Depot name is required"})
	}

	depot.CreatedBy = getUserID(c)
	depot.UpdatedBy = getUserID(c)
	if err := h.depotRepo.Create(&depot); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create depot"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Depot created", "data": depot})
}

func (h *DepotHandler) GetDepots(c *fiber.Ctx) error {
	depots, err := h.depotRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(depots)
}

// GetInventory reports the stock level of one product at one depot.
// GET /api/v1/depots/:id/inventory/:productId
func (h *DepotHandler) GetInventory(c *fiber.Ctx) error {
	depotID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid depot ID"})
	}
	productID, err := parseUUID(c.Params("productId"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if _, err := h.depotRepo.FindByID(depotID); err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Depot not found"})
	}

	inventory, err := h.depotRepo.GetInventory(productID, depotID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(fiber.Map{
		"depot_id":   depotID,
		"product_id": productID,
		"inventory":  inventory,
	})
}
