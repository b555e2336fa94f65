package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/pagination"
	"gorm.io/gorm"
)

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) domainRepo.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	return dbFrom(ctx, r.db).Create(ingredient).Error
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	var ingredient entity.Ingredient
	err := dbFrom(ctx, r.db).First(&ingredient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ingredient, err
}

func (r *ingredientRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Ingredient, error) {
	var ingredients []entity.Ingredient
	err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	return dbFrom(ctx, r.db).Save(ingredient).Error
}

func (r *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Ingredient{}, "id = ?", id).Error
}

func (r *ingredientRepository) List(ctx context.Context, outletID uuid.UUID, params *pagination.PaginationParams) ([]entity.Ingredient, int64, error) {
	var ingredients []entity.Ingredient
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Ingredient{}).Where("outlet_id = ?", outletID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&ingredients).Error

	return ingredients, total, err
}

func (r *ingredientRepository) DecrementStockGuarded(ctx context.Context, id uuid.UUID, qty float64) (bool, error) {
	// The WHERE guard makes the decrement and the non-negativity check one
	// atomic statement; RowsAffected == 0 means the stock would have gone
	// negative and nothing was written.
	result := dbFrom(ctx, r.db).Model(&entity.Ingredient{}).
		Where("id = ? AND stock_qty >= ?", id, qty).
		Update("stock_qty", gorm.Expr("stock_qty - ?", qty))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *ingredientRepository) IncrementStock(ctx context.Context, id uuid.UUID, qty float64) error {
	return dbFrom(ctx, r.db).Model(&entity.Ingredient{}).
		Where("id = ?", id).
		Update("stock_qty", gorm.Expr("stock_qty + ?", qty)).Error
}

type stockLogRepository struct {
	db *gorm.DB
}

// NewStockLogRepository creates a new stock log repository
func NewStockLogRepository(db *gorm.DB) domainRepo.StockLogRepository {
	return &stockLogRepository{db: db}
}

func (r *stockLogRepository) Create(ctx context.Context, log *entity.IngredientStockLog) error {
	return dbFrom(ctx, r.db).Create(log).Error
}

func (r *stockLogRepository) CreateBatch(ctx context.Context, logs []entity.IngredientStockLog) error {
	return dbFrom(ctx, r.db).Create(&logs).Error
}

func (r *stockLogRepository) GetActiveByOrder(ctx context.Context, outletID, orderID uuid.UUID) ([]entity.IngredientStockLog, error) {
	var logs []entity.IngredientStockLog
	err := dbFrom(ctx, r.db).
		Where("outlet_id = ? AND order_id = ? AND type <> ?", outletID, orderID, enum.StockLogTypeVoid).
		Find(&logs).Error
	return logs, err
}

func (r *stockLogRepository) MarkVoidByOrder(ctx context.Context, outletID, orderID uuid.UUID) error {
	return dbFrom(ctx, r.db).Model(&entity.IngredientStockLog{}).
		Where("outlet_id = ? AND order_id = ? AND type <> ?", outletID, orderID, enum.StockLogTypeVoid).
		Update("type", enum.StockLogTypeVoid).Error
}

func (r *stockLogRepository) ExistsDailyEntry(ctx context.Context, ingredientID uuid.UUID, logType enum.StockLogType, date time.Time) (bool, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.IngredientStockLog{}).
		Where("ingredient_id = ? AND type = ? AND transaction_date = ?", ingredientID, logType, date).
		Count(&count).Error
	return count > 0, err
}

func (r *stockLogRepository) List(ctx context.Context, params *domainRepo.StockLogFilterParams) ([]entity.IngredientStockLog, int64, error) {
	var logs []entity.IngredientStockLog
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.IngredientStockLog{})

	if params.OutletID != nil {
		query = query.Where("outlet_id = ?", *params.OutletID)
	}
	if params.IngredientID != nil {
		query = query.Where("ingredient_id = ?", *params.IngredientID)
	}
	if params.Type != nil {
		query = query.Where("type = ?", *params.Type)
	}
	if params.StartDate != nil {
		query = query.Where("transaction_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("transaction_date < ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Ingredient").
		Order("created_at DESC").
		Find(&logs).Error

	return logs, total, err
}
