package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/pkg/pagination"
)

// FoodRepository defines the interface for menu item data operations
type FoodRepository interface {
	Create(ctx context.Context, food *entity.Food) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Food, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Food, error)
	Update(ctx context.Context, food *entity.Food) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, outletID uuid.UUID, params *pagination.PaginationParams) ([]entity.Food, int64, error)
}

// FoodPriceRepository defines the interface for per-order-type price lookups
type FoodPriceRepository interface {
	// GetPrice returns the FoodPrice row for (food, order type), or nil
	// when no price is configured for the pair.
	GetPrice(ctx context.Context, foodID, orderTypeID uuid.UUID) (*entity.FoodPrice, error)
	Upsert(ctx context.Context, price *entity.FoodPrice) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FoodOptionRepository defines the interface for food option data operations
type FoodOptionRepository interface {
	Create(ctx context.Context, option *entity.FoodOption) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOption, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.FoodOption, error)
	Update(ctx context.Context, option *entity.FoodOption) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// FoodIngredientRepository defines the interface for bill-of-materials edges
type FoodIngredientRepository interface {
	Upsert(ctx context.Context, edge *entity.FoodIngredient) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByFoodIDs(ctx context.Context, foodIDs []uuid.UUID) ([]entity.FoodIngredient, error)
}

// OrderTypeRepository defines the interface for order type lookups
type OrderTypeRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderType, error)
	GetByName(ctx context.Context, name string) (*entity.OrderType, error)
	List(ctx context.Context) ([]entity.OrderType, error)
}

// DiningTableRepository defines the interface for dining table data operations
type DiningTableRepository interface {
	Create(ctx context.Context, table *entity.DiningTable) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error)
	Update(ctx context.Context, table *entity.DiningTable) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, outletID uuid.UUID) ([]entity.DiningTable, error)
}
