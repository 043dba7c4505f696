package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/tillworks/pos-api/internal/application/service"
	"github.com/tillworks/pos-api/internal/config"
	"github.com/tillworks/pos-api/internal/infrastructure/database"
	"github.com/tillworks/pos-api/internal/infrastructure/repository"
	"github.com/tillworks/pos-api/internal/presentation/http/handler"
	"github.com/tillworks/pos-api/internal/presentation/http/routes"
	"github.com/tillworks/pos-api/pkg/printer"
	"github.com/tillworks/pos-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	workLogRepo := repository.NewWorkLogRepository(db)
	inventoryRepo := repository.NewInventoryRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	tableRepo := repository.NewTableRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.Target,
		cfg.Printer.Target,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, saleRepo, cfg.Printer.Type, cfg.Printer.Width, cfg.App.Name)

	// Initialize services
	pricingEngine := service.NewPricingEngine()
	paymentRegistry := service.NewPaymentRegistry()
	stockDeductor := service.NewStockDeductor(inventoryRepo, ingredientRepo, menuRepo)
	settlementService := service.NewSettlementService(
		pricingEngine,
		paymentRegistry,
		stockDeductor,
		saleRepo,
		tableRepo,
		printerService,
		cfg.Pricing.DefaultDiscountRate,
		cfg.Pricing.DefaultTaxRate,
	)
	authService := service.NewAuthService(employeeRepo, workLogRepo, jwtManager)
	reportService := service.NewReportService(saleRepo)
	inventoryService := service.NewInventoryService(inventoryRepo, ingredientRepo)
	menuService := service.NewMenuService(menuRepo, categoryRepo)
	tableService := service.NewTableService(tableRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		Settlement: handler.NewSettlementHandler(settlementService),
		Report:     handler.NewReportHandler(reportService),
		Inventory:  handler.NewInventoryHandler(inventoryService),
		Menu:       handler.NewMenuHandler(menuService),
		Table:      handler.NewTableHandler(tableService),
		Printer:    handler.NewPrinterHandler(printerService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
