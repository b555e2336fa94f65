package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
	"gorm.io/gorm"
)

type billingRepository struct {
	db *gorm.DB
}

// NewBillingRepository creates a new billing repository
func NewBillingRepository(db *gorm.DB) domainRepo.BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) Create(ctx context.Context, billing *entity.Billing) error {
	err := dbFrom(ctx, r.db).Create(billing).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Two concurrent settlements can both pass the application-level
		// duplicate check; the unique index on order_id decides the race.
		return apperror.NewConflictError("Order is already billed")
	}
	return err
}

func (r *billingRepository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Billing, error) {
	var billing entity.Billing
	err := dbFrom(ctx, r.db).First(&billing, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &billing, err
}

func (r *billingRepository) GetByReceipt(ctx context.Context, outletID uuid.UUID, receiptNumber string) (*entity.Billing, error) {
	var billing entity.Billing
	err := dbFrom(ctx, r.db).
		Preload("Order").
		First(&billing, "outlet_id = ? AND receipt_number = ?", outletID, receiptNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &billing, err
}

func (r *billingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BillingStatus) error {
	return dbFrom(ctx, r.db).Model(&entity.Billing{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *billingRepository) List(ctx context.Context, params *domainRepo.BillingFilterParams) ([]entity.Billing, int64, error) {
	var billings []entity.Billing
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Billing{})

	if params.OutletID != nil {
		query = query.Where("outlet_id = ?", *params.OutletID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.PaymentType != nil {
		query = query.Where("payment_type = ?", *params.PaymentType)
	}
	if params.StartDate != nil {
		query = query.Where("paid_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("paid_at < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Order.OrderType").
		Order("paid_at DESC").
		Find(&billings).Error

	return billings, total, err
}

func (r *billingRepository) SumCashRevenue(ctx context.Context, outletID uuid.UUID, start, end time.Time) (int64, error) {
	var sum int64
	err := dbFrom(ctx, r.db).Raw(`
		SELECT COALESCE(SUM(b.total), 0)
		FROM billings b
		JOIN orders o ON o.id = b.order_id
		JOIN order_types ot ON ot.id = o.order_type_id
		WHERE b.outlet_id = ?
		  AND b.status = ?
		  AND b.payment_type = ?
		  AND b.paid_at >= ? AND b.paid_at < ?
		  AND ot.name NOT IN (?, ?)
	`, outletID, enum.BillingStatusPaid, enum.PaymentTypeCash, start, end,
		entity.OrderTypeBoss, entity.OrderTypeStaff).Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	return sum, nil
}
