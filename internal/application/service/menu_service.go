package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
	"github.com/restopos/restopos-api/pkg/pagination"
)

// MenuService handles the menu catalog: foods, their per-order-type price
// books, options, recipe edges and rule-based discounts
type MenuService struct {
	foodRepo           repository.FoodRepository
	priceRepo          repository.FoodPriceRepository
	optionRepo         repository.FoodOptionRepository
	foodIngredientRepo repository.FoodIngredientRepository
	ingredientRepo     repository.IngredientRepository
	orderTypeRepo      repository.OrderTypeRepository
	discountRepo       repository.OrderTypeDiscountRepository
}

// NewMenuService creates a new menu service
func NewMenuService(
	foodRepo repository.FoodRepository,
	priceRepo repository.FoodPriceRepository,
	optionRepo repository.FoodOptionRepository,
	foodIngredientRepo repository.FoodIngredientRepository,
	ingredientRepo repository.IngredientRepository,
	orderTypeRepo repository.OrderTypeRepository,
	discountRepo repository.OrderTypeDiscountRepository,
) *MenuService {
	return &MenuService{
		foodRepo:           foodRepo,
		priceRepo:          priceRepo,
		optionRepo:         optionRepo,
		foodIngredientRepo: foodIngredientRepo,
		ingredientRepo:     ingredientRepo,
		orderTypeRepo:      orderTypeRepo,
		discountRepo:       discountRepo,
	}
}

// CreateFoodInput represents the create food input
type CreateFoodInput struct {
	OutletID uuid.UUID
	Name     string
	Category string
}

// CreateFood adds a menu item to an outlet
func (s *MenuService) CreateFood(ctx context.Context, input *CreateFoodInput) (*entity.Food, error) {
	food := &entity.Food{
		OutletID: input.OutletID,
		Name:     input.Name,
		Category: input.Category,
		IsActive: true,
	}
	if err := s.foodRepo.Create(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// UpdateFoodInput represents the update food input
type UpdateFoodInput struct {
	Name     *string
	Category *string
	IsActive *bool
}

// UpdateFood updates a menu item's details
func (s *MenuService) UpdateFood(ctx context.Context, id uuid.UUID, input *UpdateFoodInput) (*entity.Food, error) {
	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperror.NewNotFoundError("Food")
	}
	if input.Name != nil {
		food.Name = *input.Name
	}
	if input.Category != nil {
		food.Category = *input.Category
	}
	if input.IsActive != nil {
		food.IsActive = *input.IsActive
	}
	if err := s.foodRepo.Update(ctx, food); err != nil {
		return nil, err
	}
	return food, nil
}

// DeleteFood soft-deletes a menu item. Orders that reference it keep their
// price snapshots.
func (s *MenuService) DeleteFood(ctx context.Context, id uuid.UUID) error {
	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if food == nil {
		return apperror.NewNotFoundError("Food")
	}
	return s.foodRepo.Delete(ctx, id)
}

// GetFood returns one menu item with its prices, options and recipe
func (s *MenuService) GetFood(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	food, err := s.foodRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperror.NewNotFoundError("Food")
	}
	return food, nil
}

// ListFoods returns a paginated list of an outlet's menu items
func (s *MenuService) ListFoods(ctx context.Context, outletID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Food], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()
	foods, total, err := s.foodRepo.List(ctx, outletID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(foods,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// SetFoodPriceInput represents a price book entry
type SetFoodPriceInput struct {
	FoodID      uuid.UUID
	OrderTypeID uuid.UUID
	Price       int64
}

// SetFoodPrice creates or replaces the price of a food for one order type
func (s *MenuService) SetFoodPrice(ctx context.Context, input *SetFoodPriceInput) (*entity.FoodPrice, error) {
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}

	food, err := s.foodRepo.GetByID(ctx, input.FoodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperror.NewNotFoundError("Food")
	}

	orderType, err := s.orderTypeRepo.GetByID(ctx, input.OrderTypeID)
	if err != nil {
		return nil, err
	}
	if orderType == nil {
		return nil, apperror.NewNotFoundError("Order type")
	}

	price := &entity.FoodPrice{
		FoodID:      input.FoodID,
		OrderTypeID: input.OrderTypeID,
		Price:       input.Price,
	}
	if err := s.priceRepo.Upsert(ctx, price); err != nil {
		return nil, err
	}
	return price, nil
}

// DeleteFoodPrice removes a price book entry
func (s *MenuService) DeleteFoodPrice(ctx context.Context, id uuid.UUID) error {
	return s.priceRepo.Delete(ctx, id)
}

// CreateFoodOptionInput represents the create food option input
type CreateFoodOptionInput struct {
	FoodID     uuid.UUID
	Name       string
	ExtraPrice int64
}

// CreateFoodOption adds an add-on to a food
func (s *MenuService) CreateFoodOption(ctx context.Context, input *CreateFoodOptionInput) (*entity.FoodOption, error) {
	if input.ExtraPrice < 0 {
		return nil, apperror.NewBadRequestError("Extra price must not be negative")
	}

	food, err := s.foodRepo.GetByID(ctx, input.FoodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperror.NewNotFoundError("Food")
	}

	option := &entity.FoodOption{
		FoodID:     input.FoodID,
		Name:       input.Name,
		ExtraPrice: input.ExtraPrice,
		IsActive:   true,
	}
	if err := s.optionRepo.Create(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// UpdateFoodOptionInput represents the update food option input
type UpdateFoodOptionInput struct {
	Name       *string
	ExtraPrice *int64
	IsActive   *bool
}

// UpdateFoodOption updates an add-on's details
func (s *MenuService) UpdateFoodOption(ctx context.Context, id uuid.UUID, input *UpdateFoodOptionInput) (*entity.FoodOption, error) {
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if option == nil {
		return nil, apperror.NewNotFoundError("Food option")
	}
	if input.Name != nil {
		option.Name = *input.Name
	}
	if input.ExtraPrice != nil {
		if *input.ExtraPrice < 0 {
			return nil, apperror.NewBadRequestError("Extra price must not be negative")
		}
		option.ExtraPrice = *input.ExtraPrice
	}
	if input.IsActive != nil {
		option.IsActive = *input.IsActive
	}
	if err := s.optionRepo.Update(ctx, option); err != nil {
		return nil, err
	}
	return option, nil
}

// DeleteFoodOption soft-deletes an add-on
func (s *MenuService) DeleteFoodOption(ctx context.Context, id uuid.UUID) error {
	option, err := s.optionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if option == nil {
		return apperror.NewNotFoundError("Food option")
	}
	return s.optionRepo.Delete(ctx, id)
}

// SetFoodIngredientInput represents a recipe edge
type SetFoodIngredientInput struct {
	FoodID          uuid.UUID
	IngredientID    uuid.UUID
	QuantityPerUnit float64
}

// SetFoodIngredient creates or replaces the recipe edge between a food and
// an ingredient. Both must belong to the same outlet.
func (s *MenuService) SetFoodIngredient(ctx context.Context, input *SetFoodIngredientInput) (*entity.FoodIngredient, error) {
	if input.QuantityPerUnit <= 0 {
		return nil, apperror.NewBadRequestError("Quantity per unit must be positive")
	}

	food, err := s.foodRepo.GetByID(ctx, input.FoodID)
	if err != nil {
		return nil, err
	}
	if food == nil {
		return nil, apperror.NewNotFoundError("Food")
	}

	ingredient, err := s.ingredientRepo.GetByID(ctx, input.IngredientID)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NewNotFoundError("Ingredient")
	}
	if ingredient.OutletID != food.OutletID {
		return nil, apperror.NewBadRequestError("Food and ingredient belong to different outlets")
	}

	edge := &entity.FoodIngredient{
		FoodID:          input.FoodID,
		IngredientID:    input.IngredientID,
		QuantityPerUnit: input.QuantityPerUnit,
	}
	if err := s.foodIngredientRepo.Upsert(ctx, edge); err != nil {
		return nil, err
	}
	return edge, nil
}

// DeleteFoodIngredient removes a recipe edge
func (s *MenuService) DeleteFoodIngredient(ctx context.Context, id uuid.UUID) error {
	return s.foodIngredientRepo.Delete(ctx, id)
}

// ListOrderTypes returns all order types
func (s *MenuService) ListOrderTypes(ctx context.Context) ([]entity.OrderType, error) {
	return s.orderTypeRepo.List(ctx)
}

// SetDiscountInput represents a rule-based discount configuration
type SetDiscountInput struct {
	OutletID    uuid.UUID
	OrderTypeID uuid.UUID
	Percentage  float64
	IsActive    bool
}

// SetDiscount creates or replaces the percentage discount for an
// (outlet, order type) pair. Manual-discount order types take the amount at
// billing time instead and cannot carry a rule.
func (s *MenuService) SetDiscount(ctx context.Context, input *SetDiscountInput) (*entity.OrderTypeDiscount, error) {
	if input.Percentage < 0 || input.Percentage > 100 {
		return nil, apperror.NewBadRequestError("Percentage must be between 0 and 100")
	}

	orderType, err := s.orderTypeRepo.GetByID(ctx, input.OrderTypeID)
	if err != nil {
		return nil, err
	}
	if orderType == nil {
		return nil, apperror.NewNotFoundError("Order type")
	}
	if orderType.UsesManualDiscount() {
		return nil, apperror.NewBadRequestError("This order type takes a manual discount at billing time")
	}

	discount := &entity.OrderTypeDiscount{
		OutletID:    input.OutletID,
		OrderTypeID: input.OrderTypeID,
		Percentage:  input.Percentage,
		IsActive:    input.IsActive,
	}
	if err := s.discountRepo.Upsert(ctx, discount); err != nil {
		return nil, err
	}
	return discount, nil
}

// DeleteDiscount removes a discount rule
func (s *MenuService) DeleteDiscount(ctx context.Context, id uuid.UUID) error {
	return s.discountRepo.Delete(ctx, id)
}

// ListDiscounts returns an outlet's discount rules
func (s *MenuService) ListDiscounts(ctx context.Context, outletID uuid.UUID) ([]entity.OrderTypeDiscount, error) {
	return s.discountRepo.List(ctx, outletID)
}
