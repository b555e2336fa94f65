package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/pkg/pagination"
)

// IngredientRepository defines the interface for ingredient stock records
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Ingredient, error)
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, outletID uuid.UUID, params *pagination.PaginationParams) ([]entity.Ingredient, int64, error)
	// DecrementStockGuarded subtracts qty from the ingredient's stock only
	// if the stock would stay non-negative. It reports false when the guard
	// rejected the decrement; nothing is written in that case.
	DecrementStockGuarded(ctx context.Context, id uuid.UUID, qty float64) (bool, error)
	IncrementStock(ctx context.Context, id uuid.UUID, qty float64) error
}

// StockLogRepository defines the interface for the append-only ingredient
// stock ledger
type StockLogRepository interface {
	Create(ctx context.Context, log *entity.IngredientStockLog) error
	CreateBatch(ctx context.Context, logs []entity.IngredientStockLog) error
	// GetActiveByOrder returns the order's ledger rows whose type is not
	// VOID. The void handler restores stock from every row returned here
	// regardless of type; see the design notes.
	GetActiveByOrder(ctx context.Context, outletID, orderID uuid.UUID) ([]entity.IngredientStockLog, error)
	MarkVoidByOrder(ctx context.Context, outletID, orderID uuid.UUID) error
	// ExistsDailyEntry reports whether a ledger row already exists for the
	// (ingredient, type, business day) triple, used to reject duplicate
	// manual daily entries with a conflict.
	ExistsDailyEntry(ctx context.Context, ingredientID uuid.UUID, logType enum.StockLogType, date time.Time) (bool, error)
	List(ctx context.Context, params *StockLogFilterParams) ([]entity.IngredientStockLog, int64, error)
}

// StockLogFilterParams contains filtering parameters for stock log queries
type StockLogFilterParams struct {
	Pagination   *pagination.PaginationParams
	OutletID     *uuid.UUID
	IngredientID *uuid.UUID
	Type         *enum.StockLogType
	StartDate    *time.Time
	EndDate      *time.Time
}
