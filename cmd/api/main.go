package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/restopos/restopos-api/internal/application/service"
	"github.com/restopos/restopos-api/internal/config"
	"github.com/restopos/restopos-api/internal/infrastructure/database"
	"github.com/restopos/restopos-api/internal/infrastructure/repository"
	"github.com/restopos/restopos-api/internal/presentation/http/handler"
	"github.com/restopos/restopos-api/internal/presentation/http/routes"
	"github.com/restopos/restopos-api/pkg/oauth"
	"github.com/restopos/restopos-api/pkg/utils"
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
	if err := database.SeedDefaultData(db, cfg.Seed.SuperuserEmail, cfg.Seed.SuperuserPassword); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	txManager := repository.NewTxManager(db)
	outletRepo := repository.NewOutletRepository(db)
	userRepo := repository.NewUserRepository(db)
	foodRepo := repository.NewFoodRepository(db)
	priceRepo := repository.NewFoodPriceRepository(db)
	optionRepo := repository.NewFoodOptionRepository(db)
	foodIngredientRepo := repository.NewFoodIngredientRepository(db)
	orderTypeRepo := repository.NewOrderTypeRepository(db)
	tableRepo := repository.NewDiningTableRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	billingRepo := repository.NewBillingRepository(db)
	counterRepo := repository.NewCounterRepository(db)
	discountRepo := repository.NewOrderTypeDiscountRepository(db)
	ingredientRepo := repository.NewIngredientRepository(db)
	stockLogRepo := repository.NewStockLogRepository(db)
	reconciliationRepo := repository.NewReconciliationRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager, googleOAuthService)
	outletService := service.NewOutletService(outletRepo, tableRepo)
	userService := service.NewUserService(userRepo, outletRepo)
	menuService := service.NewMenuService(foodRepo, priceRepo, optionRepo, foodIngredientRepo, ingredientRepo, orderTypeRepo, discountRepo)
	orderService := service.NewOrderService(txManager, orderRepo, orderTypeRepo, foodRepo, priceRepo, optionRepo, tableRepo, counterRepo)
	inventoryService := service.NewInventoryService(txManager, ingredientRepo, stockLogRepo, foodIngredientRepo)
	discountResolver := service.NewDiscountResolver(discountRepo)
	billingService := service.NewBillingService(txManager, billingRepo, orderRepo, counterRepo, discountResolver, service.ZeroTaxPolicy{}, inventoryService)
	reconciliationService := service.NewReconciliationService(txManager, reconciliationRepo, billingRepo)
	reportService := service.NewReportService(reportRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:           handler.NewAuthHandler(authService, googleOAuthService),
		Outlet:         handler.NewOutletHandler(outletService),
		User:           handler.NewUserHandler(userService),
		Menu:           handler.NewMenuHandler(menuService),
		Order:          handler.NewOrderHandler(orderService),
		Billing:        handler.NewBillingHandler(billingService),
		Stock:          handler.NewStockHandler(inventoryService),
		Reconciliation: handler.NewReconciliationHandler(reconciliationService),
		Report:         handler.NewReportHandler(reportService),
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

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	if err := database.Close(db); err != nil {
		log.Printf("Database close error: %v", err)
	}
	log.Println("Server stopped")
}
