package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/pkg/pagination"
)

// OrderRepository defines the interface for order data operations
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error
	// ApplyTotalsDelta adds delta to Subtotal and Total iff the order's
	// Version still equals expectedVersion, bumping Version by one. It
	// reports false when the optimistic check failed (a concurrent writer
	// got there first).
	ApplyTotalsDelta(ctx context.Context, id uuid.UUID, expectedVersion int64, delta int64) (bool, error)
	CreateItems(ctx context.Context, items []entity.OrderItem) error
	UpdateItem(ctx context.Context, item *entity.OrderItem) error
	UpdateItemOption(ctx context.Context, option *entity.OrderItemOption) error
}

// OrderFilterParams contains filtering parameters for order queries
type OrderFilterParams struct {
	Pagination  *pagination.PaginationParams
	OutletID    *uuid.UUID
	WaiterID    *uuid.UUID
	Status      *enum.OrderStatus
	OrderTypeID *uuid.UUID
	StartDate   *time.Time
	EndDate     *time.Time
	Search      string
}
