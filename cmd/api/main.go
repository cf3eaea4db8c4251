package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-warehouse-ledger/internal/handler"
	"go-warehouse-ledger/internal/middleware"
	"go-warehouse-ledger/internal/model"
	"go-warehouse-ledger/internal/repository"
	"go-warehouse-ledger/internal/service"
	"go-warehouse-ledger/internal/ws"
	"go-warehouse-ledger/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// 2. Setup Database
	db := database.ConnectDB()
	db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Depot{},
		&model.ProductDepot{},
		&model.Pricelist{},
		&model.ProductPrice{},
		&model.BusinessPartner{},
		&model.OrderForm{},
		&model.OrderDetail{},
		&model.ImportForm{},
		&model.ImportDetail{},
		&model.ExportForm{},
		&model.ExportDetail{},
	)

	// 3. Seed default admin user
	seedAdmin(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	catalogRepo := repository.NewCatalogRepo(db)
	depotRepo := repository.NewDepotRepo(db)
	pricingRepo := repository.NewPricingRepo(db)
	partnerRepo := repository.NewPartnerRepo(db)
	formRepo := repository.NewFormRepo(db)
	userRepo := repository.NewUserRepo(db)

	strictPricing := os.Getenv("STRICT_PRICING") == "true"

	catalogService := service.NewCatalogService(catalogRepo, depotRepo, pricingRepo)
	pricingService := service.NewPricingService(pricingRepo, catalogRepo)
	orderService := service.NewOrderService(formRepo, catalogRepo, depotRepo, partnerRepo, db)
	importService := service.NewImportService(formRepo, depotRepo, db, wsHub)
	exportService := service.NewExportService(formRepo, catalogRepo, depotRepo, partnerRepo, pricingRepo, db, wsHub, strictPricing)
	authService := service.NewAuthService(userRepo)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	depotHandler := handler.NewDepotHandler(depotRepo)
	partnerHandler := handler.NewPartnerHandler(partnerRepo)
	pricingHandler := handler.NewPricingHandler(pricingService)
	txHandler := handler.NewTransactionHandler(orderService, importService, exportService)
	authHandler := handler.NewAuthHandler(authService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: "Warehouse Ledger v1.0",
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// ============ PUBLIC ROUTES ============
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/reset-password", authHandler.ResetPassword)
	auth.Post("/validate-token", authHandler.ValidateToken)

	// ============ PROTECTED ROUTES ============
	protected := api.Group("", middleware.RequireAuth(userRepo))

	// Catalog
	protected.Get("/products", catalogHandler.GetProducts)
	protected.Get("/products/:id", catalogHandler.GetProduct)
	protected.Post("/products", catalogHandler.CreateProduct)
	protected.Get("/categories", catalogHandler.GetCategories)

	// Depots & inventory
	protected.Get("/depots", depotHandler.GetDepots)
	protected.Post("/depots", depotHandler.CreateDepot)
	protected.Get("/depots/:id/inventory/:productId", depotHandler.GetInventory)

	// Partners
	protected.Get("/partners", partnerHandler.GetPartners)
	protected.Get("/partners/:id", partnerHandler.GetPartner)
	protected.Post("/partners", partnerHandler.CreatePartner)

	// Pricing
	protected.Get("/pricelists", pricingHandler.GetPricelists)
	protected.Get("/pricelists/current", pricingHandler.GetCurrentPricelist)
	protected.Post("/pricelists", pricingHandler.CreatePricelist)
	protected.Put("/pricelists/:id/prices", pricingHandler.SetPrice)

	// Documents: orders, imports, exports (create + read only; committed
	// documents are immutable)
	protected.Get("/orders", txHandler.GetOrders)
	protected.Get("/orders/:id", txHandler.GetOrder)
	protected.Post("/orders", txHandler.CreateOrder)
	protected.Get("/imports", txHandler.GetImports)
	protected.Get("/imports/:id", txHandler.GetImport)
	protected.Post("/imports", txHandler.CreateImport)
	protected.Get("/exports", txHandler.GetExports)
	protected.Get("/exports/:id", txHandler.GetExport)
	protected.Post("/exports", txHandler.CreateExport)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		port := os.Getenv("PORT")
		if port == "" {
			port = "3000"
		}
		if err := app.Listen(":" + port); err != nil {
			log.Panic(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedAdmin creates the default admin user if it doesn't exist
func seedAdmin(db *gorm.DB) {
	userRepo := repository.NewUserRepo(db)

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@example.com"
	}

	if _, err := userRepo.FindByEmail(email); err == nil {
		return
	}

	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	admin := &model.User{
		Email:    email,
		FullName: "Administrator",
		IsActive: true,
	}
	admin.CreatedBy = "system"
	admin.UpdatedBy = "system"

	if err := admin.SetPassword(password); err != nil {
		log.Printf("Warning: Failed to hash admin password: %v", err)
		return
	}
	if err := userRepo.Create(admin); err != nil {
		log.Printf("Warning: Failed to create admin user: %v", err)
		return
	}
	log.Printf("Admin user created: %s", email)
}
