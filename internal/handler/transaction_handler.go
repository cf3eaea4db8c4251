package handler

import (
	"go-warehouse-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TransactionHandler serves the three document types: orders, imports and
// exports. Creation commits atomically in the services; committed
// documents have no update or delete routes.
type TransactionHandler struct {
	orderService  service.OrderService
	importService service.ImportService
	exportService service.ExportService
}

func NewTransactionHandler(orderService service.OrderService, importService service.ImportService, exportService service.ExportService) *TransactionHandler {
	return &TransactionHandler{
		orderService:  orderService,
		importService: importService,
		exportService: exportService,
	}
}

func (h *TransactionHandler) CreateOrder(c *fiber.Ctx) error {
	var req service.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	order, err := h.orderService.CreateOrder(&req, getUserID(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Order committed", "data": order})
}

func (h *TransactionHandler) GetOrders(c *fiber.Ctx) error {
	orders, err := h.orderService.GetAllOrders()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(orders)
}

func (h *TransactionHandler) GetOrder(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid order ID"})
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(order)
}

func (h *TransactionHandler) CreateImport(c *fiber.Ctx) error {
	var req service.CreateImportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	form, err := h.importService.CreateImport(&req, getUserID(c), getUserName(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Import committed", "data": form})
}

func (h *TransactionHandler) GetImports(c *fiber.Ctx) error {
	imports, err := h.importService.GetAllImports()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(imports)
}

func (h *TransactionHandler) GetImport(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid import ID"})
	}

	form, err := h.importService.GetImport(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(form)
}

func (h *TransactionHandler) CreateExport(c *fiber.Ctx) error {
	var req service.CreateExportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	form, err := h.exportService.CreateExport(&req, getUserID(c), getUserName(c))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Export committed", "data": form})
}

func (h *TransactionHandler) GetExports(c *fiber.Ctx) error {
	exports, err := h.exportService.GetAllExports()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
	}
	return c.JSON(exports)
}

func (h *TransactionHandler) GetExport(c *fiber.Ctx) error {
	id, err := parseUUID(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid export ID"})
	}

	form, err := h.exportService.GetExport(id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(form)
}
