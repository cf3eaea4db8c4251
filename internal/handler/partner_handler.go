package handler

import (
	"go-warehouse-ledger/internal/model"
	"go-warehouse-ledger/internal/repository"
	"go-warehouse-ledger/pkg/validator"

	"github.com/gofiber/fiber/v2"
)

// PartnerHandler serves business partner reference data.
type PartnerHandler struct {
	partnerRepo repository.PartnerRepository
}

func NewPartnerHandler(partnerRepo repository.PartnerRepository) *PartnerHandler {
	return &PartnerHandler{partnerRepo: partnerRepo}
}

func (h *PartnerHandler) CreatePartner(c *fiber.Ctx) error {
	var partner model.BusinessPartner
	if err := c.BodyParser(&partner); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(&partner); len(errs) > 0 {
		first := errs[0]
		return c.Status(400).JSON(fiber.Map{
			"error": "Validation failed: field '" + first.FailedField + "' failed on tag '" + first.Tag + "'",
		})
	}

	partner.CreatedBy = getUserID(c)
	partner.UpdatedBy = getUserID(c)
	if err := h.partnerRepo.Create(&partner); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create partner"})
	}
	return c.Status(201).JSON(fiber.Map{"message": "Partner created", "data": partner})
}

func (h *PartnerHandler) GetPartners(c *fiber.Ctx) error {
	partners, err := h.partnerRepo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(partners)
}

func (h *PartnerHandler) GetPartner(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid partner ID"})
	}

	partner, err := h.partnerRepo.FindByID(id)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Partner not found"})
	}
	return c.JSON(partner)
}
