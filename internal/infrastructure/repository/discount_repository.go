package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type orderTypeDiscountRepository struct {
	db *gorm.DB
}

// NewOrderTypeDiscountRepository creates a new order type discount repository
func NewOrderTypeDiscountRepository(db *gorm.DB) domainRepo.OrderTypeDiscountRepository {
	return &orderTypeDiscountRepository{db: db}
}

func (r *orderTypeDiscountRepository) GetActive(ctx context.Context, outletID, orderTypeID uuid.UUID) (*entity.OrderTypeDiscount, error) {
	var discount entity.OrderTypeDiscount
	err := dbFrom(ctx, r.db).
		First(&discount, "outlet_id = ? AND order_type_id = ? AND is_active = true", outletID, orderTypeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &discount, err
}

func (r *orderTypeDiscountRepository) Upsert(ctx context.Context, discount *entity.OrderTypeDiscount) error {
	return dbFrom(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outlet_id"}, {Name: "order_type_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"percentage", "is_active", "updated_at"}),
	}).Create(discount).Error
}

func (r *orderTypeDiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.OrderTypeDiscount{}, "id = ?", id).Error
}

func (r *orderTypeDiscountRepository) List(ctx context.Context, outletID uuid.UUID) ([]entity.OrderTypeDiscount, error) {
	var discounts []entity.OrderTypeDiscount
	err := dbFrom(ctx, r.db).
		Preload("OrderType").
		Where("outlet_id = ?", outletID).
		Find(&discounts).Error
	return discounts, err
}
