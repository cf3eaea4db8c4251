package handler

import (
	"go-warehouse-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PricingHandler struct {
	service service.PricingService
}

func NewPricingHandler(s service.PricingService) *PricingHandler {
	return &PricingHandler{service: s}
}

func (h *PricingHandler) CreatePricelist(c *fiber.Ctx) error {
	var req service.CreatePricelistRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	pricelist, err := h.service.CreatePricelist(&req, getUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Pricelist created", "data": pricelist})
}

func (h *PricingHandler) GetPricelists(c *fiber.Ctx) error {
	pricelists, err := h.service.GetAllPricelists()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(pricelists)
}

func (h *PricingHandler) GetCurrentPricelist(c *fiber.Ctx) error {
	pricelist, err := h.service.CurrentPricelist()
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(pricelist)
}

// SetPrice upserts one product's price inside a pricelist.
// PUT /api/v1/pricelists/:id/prices
func (h *PricingHandler) SetPrice(c *fiber.Ctx) error {
	pricelistID, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid pricelist ID"})
	}

	var req service.SetPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	price, err := h.service.SetProductPrice(pricelistID, &req, getUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(fiber.Map{"message": "Price set", "data": price})
}
