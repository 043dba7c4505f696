package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tillworks/pos-api/internal/config"
	domainRepo "github.com/tillworks/pos-api/internal/domain/repository"
	"github.com/tillworks/pos-api/internal/presentation/http/handler"
	"github.com/tillworks/pos-api/internal/presentation/http/middleware"
	"github.com/tillworks/pos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth       *handler.AuthHandler
	Settlement *handler.SettlementHandler
	Report     *handler.ReportHandler
	Inventory  *handler.InventoryHandler
	Menu       *handler.MenuHandler
	Table      *handler.TableHandler
	Printer    *handler.PrinterHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		v1.POST("/auth/login", h.Auth.Login)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-terminal rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/auth/me", h.Auth.Me)

	// Settlements
	registerSettlementRoutes(protected, h, deps)

	// Sales log
	registerSaleRoutes(protected, h)

	// Inventory ledger
	registerInventoryRoutes(protected, h)

	// Menu catalog
	registerMenuRoutes(protected, h)

	// Dining floor
	registerTableRoutes(protected, h)

	// Staff (admin)
	registerEmployeeRoutes(protected, h)

	// Printer
	registerPrinterRoutes(protected, h)
}

func registerSettlementRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	settlements := protected.Group("/settlements")
	{
		// Settlement uses required idempotency keys so an operator retry
		// replays the receipt instead of deducting stock twice
		settlements.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Settlement.Settle)
		settlements.POST("/quote", h.Settlement.Quote)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Report.List)
		sales.GET("/summary", h.Report.Summary)
		sales.GET("/:receipt_no", h.Report.Get)
	}
}

func registerInventoryRoutes(protected *gin.RouterGroup, h *Handlers) {
	inventory := protected.Group("/inventory")
	{
		inventory.GET("", h.Inventory.List)
		inventory.POST("", h.Inventory.Create)
		inventory.POST("/restock", h.Inventory.Restock)
		inventory.GET("/low-stock", h.Inventory.LowStock)
		inventory.GET("/expired", h.Inventory.Expired)
		inventory.GET("/:id", h.Inventory.Get)
		inventory.PUT("/:id", h.Inventory.Update)
		inventory.DELETE("/:id", h.Inventory.Delete)
	}

	ingredients := protected.Group("/ingredients")
	{
		ingredients.GET("", h.Inventory.ListIngredients)
		ingredients.PUT("", h.Inventory.UpsertIngredient)
		ingredients.DELETE("/:id", h.Inventory.DeleteIngredient)
	}
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	menu := protected.Group("/menu")
	{
		menu.GET("", h.Menu.List)
		menu.POST("", middleware.RequireRole("admin", "manager"), h.Menu.Create)
		menu.GET("/:id", h.Menu.Get)
		menu.PUT("/:id", middleware.RequireRole("admin", "manager"), h.Menu.Update)
		menu.DELETE("/:id", middleware.RequireRole("admin", "manager"), h.Menu.Delete)
	}

	categories := protected.Group("/categories")
	{
		categories.GET("", h.Menu.ListCategories)
		categories.POST("", middleware.RequireRole("admin", "manager"), h.Menu.CreateCategory)
		categories.DELETE("/:id", middleware.RequireRole("admin", "manager"), h.Menu.DeleteCategory)
	}
}

func registerTableRoutes(protected *gin.RouterGroup, h *Handlers) {
	tables := protected.Group("/tables")
	{
		tables.GET("", h.Table.List)
		tables.GET("/vacant", h.Table.Vacant)
		tables.POST("", middleware.RequireRole("admin", "manager"), h.Table.Create)
		tables.POST("/:table_no/occupy", h.Table.Occupy)
		tables.POST("/:table_no/free", h.Table.Free)
	}
}

func registerEmployeeRoutes(protected *gin.RouterGroup, h *Handlers) {
	employees := protected.Group("/employees")
	employees.Use(middleware.RequireRole("admin"))
	{
		employees.GET("", h.Auth.ListEmployees)
		employees.POST("", h.Auth.CreateEmployee)
		employees.GET("/:id", h.Auth.GetEmployee)
		employees.PUT("/:id", h.Auth.UpdateEmployee)
		employees.DELETE("/:id", h.Auth.DeleteEmployee)
		employees.GET("/:id/worklogs", h.Auth.ListWorkLogs)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printerGroup := protected.Group("/printer")
	{
		printerGroup.GET("/status", h.Printer.Status)
		printerGroup.POST("/test", h.Printer.Test)
		printerGroup.POST("/reprint/:receipt_no", h.Printer.Reprint)
	}
}
