package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type reconciliationRepository struct {
	db *gorm.DB
}

// NewReconciliationRepository creates a new reconciliation repository
func NewReconciliationRepository(db *gorm.DB) domainRepo.ReconciliationRepository {
	return &reconciliationRepository{db: db}
}

func (r *reconciliationRepository) GetByOutletAndDate(ctx context.Context, outletID uuid.UUID, date time.Time) (*entity.DailyCashReconciliation, error) {
	var row entity.DailyCashReconciliation
	err := dbFrom(ctx, r.db).
		First(&row, "outlet_id = ? AND date = ?", outletID, date).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &row, err
}

func (r *reconciliationRepository) Create(ctx context.Context, row *entity.DailyCashReconciliation) error {
	return dbFrom(ctx, r.db).Create(row).Error
}

func (r *reconciliationRepository) Update(ctx context.Context, row *entity.DailyCashReconciliation) error {
	// Select forces zeroed amounts and cleared flags to persist
	return dbFrom(ctx, r.db).Model(row).
		Select("previous_day_balance", "daily_cash_revenue", "cash_deposit",
			"adjustment_amount", "remaining_balance", "is_locked",
			"submitted_by_cashier_name", "remarks").
		Updates(row).Error
}

func (r *reconciliationRepository) ListByOutlet(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]entity.DailyCashReconciliation, error) {
	var rows []entity.DailyCashReconciliation
	err := dbFrom(ctx, r.db).
		Where("outlet_id = ? AND date >= ? AND date < ?", outletID, start, end).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
