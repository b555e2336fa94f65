package request

import "github.com/google/uuid"

// CreateFoodRequest represents a menu item creation request
type CreateFoodRequest struct {
	OutletID uuid.UUID `json:"outlet_id" binding:"required"`
	Name     string    `json:"name" binding:"required,min=2,max=100"`
	Category string    `json:"category" binding:"omitempty,max=50"`
}

// UpdateFoodRequest represents a menu item update request
type UpdateFoodRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=100"`
	Category *string `json:"category" binding:"omitempty,max=50"`
	IsActive *bool   `json:"is_active"`
}

// SetFoodPriceRequest represents a price book entry
type SetFoodPriceRequest struct {
	OrderTypeID uuid.UUID `json:"order_type_id" binding:"required"`
	Price       int64     `json:"price" binding:"min=0"`
}

// CreateFoodOptionRequest represents a food option creation request
type CreateFoodOptionRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	ExtraPrice int64  `json:"extra_price" binding:"min=0"`
}

// UpdateFoodOptionRequest represents a food option update request
type UpdateFoodOptionRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=100"`
	ExtraPrice *int64  `json:"extra_price" binding:"omitempty,min=0"`
	IsActive   *bool   `json:"is_active"`
}

// SetFoodIngredientRequest represents a recipe edge
type SetFoodIngredientRequest struct {
	IngredientID    uuid.UUID `json:"ingredient_id" binding:"required"`
	QuantityPerUnit float64   `json:"quantity_per_unit" binding:"required,gt=0"`
}

// SetDiscountRequest represents a rule-based discount configuration
type SetDiscountRequest struct {
	OutletID    uuid.UUID `json:"outlet_id" binding:"required"`
	OrderTypeID uuid.UUID `json:"order_type_id" binding:"required"`
	Percentage  float64   `json:"percentage" binding:"min=0,max=100"`
	IsActive    bool      `json:"is_active"`
}
