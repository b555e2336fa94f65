package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	// Items and options travel as nested associations in one insert batch
	return dbFrom(ctx, r.db).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := dbFrom(ctx, r.db).
		Preload("OrderType").
		Preload("Outlet").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := dbFrom(ctx, r.db).
		Preload("OrderType").
		Preload("Outlet").
		Preload("DiningTable").
		Preload("Items.Food").
		Preload("Items.Options").
		First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Order{})

	if params.OutletID != nil {
		query = query.Where("outlet_id = ?", *params.OutletID)
	}
	if params.WaiterID != nil {
		query = query.Where("waiter_id = ?", *params.WaiterID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.OrderTypeID != nil {
		query = query.Where("order_type_id = ?", *params.OrderTypeID)
	}
	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("created_at < ?", *params.EndDate)
	}
	if params.Search != "" {
		query = query.Where("order_number ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("OrderType").
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	return dbFrom(ctx, r.db).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepository) ApplyTotalsDelta(ctx context.Context, id uuid.UUID, expectedVersion int64, delta int64) (bool, error) {
	result := dbFrom(ctx, r.db).Model(&entity.Order{}).
		Where("id = ? AND version = ?", id, expectedVersion).
		Updates(map[string]interface{}{
			"subtotal": gorm.Expr("subtotal + ?", delta),
			"total":    gorm.Expr("total + ?", delta),
			"version":  gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *orderRepository) CreateItems(ctx context.Context, items []entity.OrderItem) error {
	return dbFrom(ctx, r.db).Create(&items).Error
}

func (r *orderRepository) UpdateItem(ctx context.Context, item *entity.OrderItem) error {
	// Select forces zero values (quantity 0, total 0 on cancel) to persist
	return dbFrom(ctx, r.db).Model(item).
		Select("quantity", "unit_price", "total_price", "status").
		Updates(item).Error
}

func (r *orderRepository) UpdateItemOption(ctx context.Context, option *entity.OrderItemOption) error {
	return dbFrom(ctx, r.db).Model(option).
		Select("quantity", "unit_price", "total_price", "status").
		Updates(option).Error
}
