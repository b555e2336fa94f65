package database

import (
	"fmt"
	"log"
	"time"

	"github.com/restopos/restopos-api/internal/config"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn
	if cfg.Debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// Close drains the connection pool on shutdown
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Tenancy and staff
		&entity.Outlet{},
		&entity.User{},
		&entity.DiningTable{},

		// Menu catalog
		&entity.OrderType{},
		&entity.OrderTypeDiscount{},
		&entity.Food{},
		&entity.FoodPrice{},
		&entity.FoodOption{},
		&entity.FoodIngredient{},

		// Inventory
		&entity.Ingredient{},
		&entity.IngredientStockLog{},

		// Transactions
		&entity.Order{},
		&entity.OrderItem{},
		&entity.OrderItemOption{},
		&entity.Billing{},
		&entity.DailyCashReconciliation{},

		// Sequence counters
		&entity.OrderNumberCounter{},
		&entity.ReceiptNumberCounter{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with the fixed order types and a
// superuser account when none exists yet
func SeedDefaultData(db *gorm.DB, superuserEmail, superuserPassword string) error {
	log.Println("Seeding default data...")

	orderTypes := []string{
		entity.OrderTypeDineIn,
		entity.OrderTypeTakeAway,
		"GoFood",
		"GrabFood",
		"ShopeeFood",
		entity.OrderTypeBoss,
		entity.OrderTypeStaff,
	}

	for _, name := range orderTypes {
		var existing entity.OrderType
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.OrderType{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create order type %s: %v", name, err)
			}
		}
	}

	if superuserEmail == "" {
		return nil
	}

	var superuser entity.User
	if err := db.Where("email = ?", superuserEmail).First(&superuser).Error; err == nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(superuserPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash superuser password: %w", err)
	}

	superuser = entity.User{
		Name:     "Superuser",
		Email:    superuserEmail,
		Password: string(hash),
		Role:     enum.RoleSuperuser,
		IsActive: true,
	}
	if err := db.Create(&superuser).Error; err != nil {
		return fmt.Errorf("failed to create superuser: %w", err)
	}

	log.Printf("Seeded superuser account %s", superuserEmail)
	return nil
}
