package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
)

// OrderTypeDiscountRepository defines the interface for rule-based discount
// configuration per (outlet, order type)
type OrderTypeDiscountRepository interface {
	// GetActive returns the active discount row for the pair, or nil when
	// none is configured.
	GetActive(ctx context.Context, outletID, orderTypeID uuid.UUID) (*entity.OrderTypeDiscount, error)
	Upsert(ctx context.Context, discount *entity.OrderTypeDiscount) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, outletID uuid.UUID) ([]entity.OrderTypeDiscount, error)
}
