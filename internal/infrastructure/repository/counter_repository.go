package repository

import (
	"context"

	"github.com/google/uuid"
	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new counter repository
func NewCounterRepository(db *gorm.DB) domainRepo.CounterRepository {
	return &counterRepository{db: db}
}

// NextOrderNumber advances the outlet's order counter and returns the new
// value. The upsert-increment is a single statement, so concurrent callers
// serialize on the counter row and never see the same value.
func (r *counterRepository) NextOrderNumber(ctx context.Context, outletID uuid.UUID) (int64, error) {
	return r.next(ctx, "order_number_counters", outletID)
}

// NextReceiptNumber advances the outlet's receipt counter and returns the
// new value.
func (r *counterRepository) NextReceiptNumber(ctx context.Context, outletID uuid.UUID) (int64, error) {
	return r.next(ctx, "receipt_number_counters", outletID)
}

func (r *counterRepository) next(ctx context.Context, table string, outletID uuid.UUID) (int64, error) {
	var current int64
	err := dbFrom(ctx, r.db).Raw(`
		INSERT INTO `+table+` (id, outlet_id, current, created_at, updated_at)
		VALUES (?, ?, 1, NOW(), NOW())
		ON CONFLICT (outlet_id)
		DO UPDATE SET current = `+table+`.current + 1, updated_at = NOW()
		RETURNING current
	`, uuid.New(), outletID).Scan(&current).Error
	if err != nil {
		return 0, err
	}
	return current, nil
}
