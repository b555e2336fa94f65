package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	domainRepo "github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/pagination"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type foodRepository struct {
	db *gorm.DB
}

// NewFoodRepository creates a new food repository
func NewFoodRepository(db *gorm.DB) domainRepo.FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) Create(ctx context.Context, food *entity.Food) error {
	return dbFrom(ctx, r.db).Create(food).Error
}

func (r *foodRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	var food entity.Food
	err := dbFrom(ctx, r.db).
		Preload("Prices").
		Preload("Options").
		Preload("Ingredients.Ingredient").
		First(&food, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &food, err
}

func (r *foodRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Food, error) {
	var foods []entity.Food
	err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&foods).Error
	return foods, err
}

func (r *foodRepository) Update(ctx context.Context, food *entity.Food) error {
	return dbFrom(ctx, r.db).Save(food).Error
}

func (r *foodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.Food{}, "id = ?", id).Error
}

func (r *foodRepository) List(ctx context.Context, outletID uuid.UUID, params *pagination.PaginationParams) ([]entity.Food, int64, error) {
	var foods []entity.Food
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Food{}).Where("outlet_id = ?", outletID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Prices.OrderType").
		Preload("Options").
		Order("name ASC").
		Find(&foods).Error

	return foods, total, err
}

type foodPriceRepository struct {
	db *gorm.DB
}

// NewFoodPriceRepository creates a new food price repository
func NewFoodPriceRepository(db *gorm.DB) domainRepo.FoodPriceRepository {
	return &foodPriceRepository{db: db}
}

func (r *foodPriceRepository) GetPrice(ctx context.Context, foodID, orderTypeID uuid.UUID) (*entity.FoodPrice, error) {
	var price entity.FoodPrice
	err := dbFrom(ctx, r.db).
		First(&price, "food_id = ? AND order_type_id = ?", foodID, orderTypeID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &price, err
}

func (r *foodPriceRepository) Upsert(ctx context.Context, price *entity.FoodPrice) error {
	return dbFrom(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "food_id"}, {Name: "order_type_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).Create(price).Error
}

func (r *foodPriceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.FoodPrice{}, "id = ?", id).Error
}

type foodOptionRepository struct {
	db *gorm.DB
}

// NewFoodOptionRepository creates a new food option repository
func NewFoodOptionRepository(db *gorm.DB) domainRepo.FoodOptionRepository {
	return &foodOptionRepository{db: db}
}

func (r *foodOptionRepository) Create(ctx context.Context, option *entity.FoodOption) error {
	return dbFrom(ctx, r.db).Create(option).Error
}

func (r *foodOptionRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOption, error) {
	var option entity.FoodOption
	err := dbFrom(ctx, r.db).First(&option, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &option, err
}

func (r *foodOptionRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.FoodOption, error) {
	var options []entity.FoodOption
	err := dbFrom(ctx, r.db).Where("id IN ?", ids).Find(&options).Error
	return options, err
}

func (r *foodOptionRepository) Update(ctx context.Context, option *entity.FoodOption) error {
	return dbFrom(ctx, r.db).Save(option).Error
}

func (r *foodOptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.FoodOption{}, "id = ?", id).Error
}

type foodIngredientRepository struct {
	db *gorm.DB
}

// NewFoodIngredientRepository creates a new food ingredient repository
func NewFoodIngredientRepository(db *gorm.DB) domainRepo.FoodIngredientRepository {
	return &foodIngredientRepository{db: db}
}

func (r *foodIngredientRepository) Upsert(ctx context.Context, edge *entity.FoodIngredient) error {
	return dbFrom(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "food_id"}, {Name: "ingredient_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"quantity_per_unit", "updated_at"}),
	}).Create(edge).Error
}

func (r *foodIngredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.FoodIngredient{}, "id = ?", id).Error
}

func (r *foodIngredientRepository) GetByFoodIDs(ctx context.Context, foodIDs []uuid.UUID) ([]entity.FoodIngredient, error) {
	var edges []entity.FoodIngredient
	err := dbFrom(ctx, r.db).
		Preload("Ingredient").
		Where("food_id IN ?", foodIDs).
		Find(&edges).Error
	return edges, err
}

type orderTypeRepository struct {
	db *gorm.DB
}

// NewOrderTypeRepository creates a new order type repository
func NewOrderTypeRepository(db *gorm.DB) domainRepo.OrderTypeRepository {
	return &orderTypeRepository{db: db}
}

func (r *orderTypeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderType, error) {
	var orderType entity.OrderType
	err := dbFrom(ctx, r.db).First(&orderType, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &orderType, err
}

func (r *orderTypeRepository) GetByName(ctx context.Context, name string) (*entity.OrderType, error) {
	var orderType entity.OrderType
	err := dbFrom(ctx, r.db).First(&orderType, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &orderType, err
}

func (r *orderTypeRepository) List(ctx context.Context) ([]entity.OrderType, error) {
	var orderTypes []entity.OrderType
	err := dbFrom(ctx, r.db).Order("name ASC").Find(&orderTypes).Error
	return orderTypes, err
}

type diningTableRepository struct {
	db *gorm.DB
}

// NewDiningTableRepository creates a new dining table repository
func NewDiningTableRepository(db *gorm.DB) domainRepo.DiningTableRepository {
	return &diningTableRepository{db: db}
}

func (r *diningTableRepository) Create(ctx context.Context, table *entity.DiningTable) error {
	return dbFrom(ctx, r.db).Create(table).Error
}

func (r *diningTableRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error) {
	var table entity.DiningTable
	err := dbFrom(ctx, r.db).First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &table, err
}

func (r *diningTableRepository) Update(ctx context.Context, table *entity.DiningTable) error {
	return dbFrom(ctx, r.db).Save(table).Error
}

func (r *diningTableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return dbFrom(ctx, r.db).Delete(&entity.DiningTable{}, "id = ?", id).Error
}

func (r *diningTableRepository) List(ctx context.Context, outletID uuid.UUID) ([]entity.DiningTable, error) {
	var tables []entity.DiningTable
	err := dbFrom(ctx, r.db).
		Where("outlet_id = ?", outletID).
		Order("name ASC").
		Find(&tables).Error
	return tables, err
}
