package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/internal/config"
	"github.com/restopos/restopos-api/internal/domain/enum"
	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/internal/presentation/http/handler"
	"github.com/restopos/restopos-api/internal/presentation/http/middleware"
	"github.com/restopos/restopos-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth           *handler.AuthHandler
	Outlet         *handler.OutletHandler
	User           *handler.UserHandler
	Menu           *handler.MenuHandler
	Order          *handler.OrderHandler
	Billing        *handler.BillingHandler
	Stock          *handler.StockHandler
	Reconciliation *handler.ReconciliationHandler
	Report         *handler.ReportHandler
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
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-outlet rate limiter
		rateLimiter := middleware.NewOutletRateLimiter(middleware.RateLimiterConfig{
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

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	protected.GET("/auth/profile", h.Auth.Profile)
	protected.POST("/auth/change-password", h.Auth.ChangePassword)

	manage := middleware.RequireRole(enum.RoleOwner, enum.RoleAdmin)
	cashier := middleware.RequireRole(enum.RoleOwner, enum.RoleAdmin, enum.RoleCashier)
	floor := middleware.RequireRole(enum.RoleOwner, enum.RoleAdmin, enum.RoleCashier, enum.RoleWaiter)
	orderStatus := middleware.RequireRole(enum.RoleAdmin, enum.RoleCashier, enum.RoleWaiter)

	// Outlets and staff
	outlets := protected.Group("/outlets")
	{
		outlets.POST("", middleware.RequireRole(enum.RoleOwner), h.Outlet.Create)
		outlets.PUT("/:id", middleware.RequireRole(enum.RoleOwner), h.Outlet.Update)
		outlets.GET("", h.Outlet.List)
		outlets.GET("/:id", h.Outlet.Get)
		outlets.GET("/:id/users", manage, h.User.ListByOutlet)
		outlets.GET("/:id/dining-tables", h.Outlet.ListTables)
		outlets.GET("/:id/foods", h.Menu.ListFoods)
		outlets.GET("/:id/discounts", manage, h.Menu.ListDiscounts)
		outlets.GET("/:id/ingredients", h.Stock.ListIngredients)
		outlets.GET("/:id/reconciliations", manage, h.Reconciliation.List)
		outlets.GET("/:id/reconciliations/:date", cashier, h.Reconciliation.Get)
		outlets.GET("/:id/reports/daily-revenue", manage, h.Report.DailyRevenue)
		outlets.GET("/:id/reports/sales-summary", manage, h.Report.SalesSummary)
		outlets.GET("/:id/reports/sales-detail", manage, h.Report.SalesDetail)
		outlets.GET("/:id/reports/sales-detail/export", manage, h.Report.ExportSalesDetail)
		outlets.GET("/:id/reports/ingredient-usage", manage, h.Report.IngredientUsage)
		outlets.GET("/:id/billings/:receipt", cashier, h.Billing.GetByReceipt)
	}

	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{Repo: deps.IdempotencyRepo})
	protected.POST("/outlets/:id/billings/:receipt/void", manage, idempotency, h.Billing.VoidByReceipt)

	users := protected.Group("/users", manage)
	{
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
	}

	tables := protected.Group("/dining-tables", manage)
	{
		tables.POST("", h.Outlet.CreateTable)
		tables.PUT("/:id", h.Outlet.UpdateTable)
		tables.DELETE("/:id", h.Outlet.DeleteTable)
	}

	// Menu catalog
	foods := protected.Group("/foods")
	{
		foods.POST("", manage, h.Menu.CreateFood)
		foods.GET("/:id", h.Menu.GetFood)
		foods.PUT("/:id", manage, h.Menu.UpdateFood)
		foods.DELETE("/:id", manage, h.Menu.DeleteFood)
		foods.PUT("/:id/prices", manage, h.Menu.SetFoodPrice)
		foods.POST("/:id/options", manage, h.Menu.CreateFoodOption)
		foods.PUT("/:id/ingredients", manage, h.Menu.SetFoodIngredient)
	}

	prices := protected.Group("/food-prices", manage)
	{
		prices.DELETE("/:id", h.Menu.DeleteFoodPrice)
	}

	recipes := protected.Group("/food-ingredients", manage)
	{
		recipes.DELETE("/:id", h.Menu.DeleteFoodIngredient)
	}

	options := protected.Group("/food-options", manage)
	{
		options.PUT("/:id", h.Menu.UpdateFoodOption)
		options.DELETE("/:id", h.Menu.DeleteFoodOption)
	}

	protected.GET("/order-types", h.Menu.ListOrderTypes)
	protected.PUT("/discounts", manage, h.Menu.SetDiscount)
	protected.DELETE("/discounts/:id", manage, h.Menu.DeleteDiscount)

	// Orders and billing
	orders := protected.Group("/orders")
	{
		orders.POST("", floor, h.Order.Create)
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("/:id/items", floor, h.Order.AddItems)
		orders.PATCH("/:id/items", floor, h.Order.BatchUpdateItems)
		orders.PATCH("/:id/status", orderStatus, h.Order.UpdateStatus)
		orders.POST("/:id/billing", cashier, idempotency, h.Billing.Create)
		orders.POST("/:id/billing/void", manage, idempotency, h.Billing.Void)
		orders.GET("/:id/billing", cashier, h.Billing.GetByOrder)
	}

	protected.GET("/billings", cashier, h.Billing.List)

	// Inventory
	ingredients := protected.Group("/ingredients", manage)
	{
		ingredients.POST("", h.Stock.CreateIngredient)
		ingredients.GET("/:id", h.Stock.GetIngredient)
		ingredients.PUT("/:id", h.Stock.UpdateIngredient)
		ingredients.DELETE("/:id", h.Stock.DeleteIngredient)
	}

	stockLogs := protected.Group("/stock-logs")
	{
		stockLogs.POST("", manage, h.Stock.CreateStockEntry)
		stockLogs.GET("", manage, h.Stock.ListStockLogs)
	}

	// Reconciliation
	reconciliations := protected.Group("/reconciliations")
	{
		reconciliations.POST("", cashier, idempotency, h.Reconciliation.Submit)
		reconciliations.POST("/unlock", middleware.RequireRole(enum.RoleAdmin, enum.RoleOwner), h.Reconciliation.Unlock)
	}
}
