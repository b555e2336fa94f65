package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
)

// DiscountResolver picks the discount amount for a billing. Dine In and
// Take Away take the cashier's manual amount; every other order type uses
// the configured percentage for the (outlet, order type) pair when an active
// rule with a positive percentage exists, and otherwise falls back to the
// manual amount. The result never exceeds the subtotal.
type DiscountResolver struct {
	discountRepo repository.OrderTypeDiscountRepository
}

// NewDiscountResolver creates a new discount resolver
func NewDiscountResolver(discountRepo repository.OrderTypeDiscountRepository) *DiscountResolver {
	return &DiscountResolver{discountRepo: discountRepo}
}

func clampManual(manualAmount, subtotal int64) (int64, error) {
	if manualAmount < 0 {
		return 0, apperror.NewBadRequestError("Discount must not be negative")
	}
	if manualAmount > subtotal {
		return subtotal, nil
	}
	return manualAmount, nil
}

// Resolve returns the discount to apply to subtotal for the given order type.
// An active positive-percentage rule wins over the cashier-entered manual
// amount; without one the manual amount applies for every order type.
func (r *DiscountResolver) Resolve(ctx context.Context, outletID uuid.UUID, orderType *entity.OrderType, subtotal, manualAmount int64) (int64, error) {
	if orderType.UsesManualDiscount() {
		return clampManual(manualAmount, subtotal)
	}

	rule, err := r.discountRepo.GetActive(ctx, outletID, orderType.ID)
	if err != nil {
		return 0, err
	}
	if rule == nil || rule.Percentage <= 0 {
		return clampManual(manualAmount, subtotal)
	}

	discount := int64(float64(subtotal) * rule.Percentage / 100)
	if discount > subtotal {
		discount = subtotal
	}
	return discount, nil
}
