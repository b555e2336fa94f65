package request

import "github.com/google/uuid"

// OrderItemOptionRequest represents one add-on under a new order item
type OrderItemOptionRequest struct {
	FoodOptionID uuid.UUID `json:"food_option_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required,min=1"`
}

// OrderItemRequest represents one line of a new order
type OrderItemRequest struct {
	FoodID   uuid.UUID                `json:"food_id" binding:"required"`
	Quantity int                      `json:"quantity" binding:"required,min=1"`
	Remark   string                   `json:"remark" binding:"omitempty,max=255"`
	Options  []OrderItemOptionRequest `json:"options" binding:"omitempty,dive"`
}

// CreateOrderRequest represents an order creation request
type CreateOrderRequest struct {
	OutletID      uuid.UUID          `json:"outlet_id" binding:"required"`
	OrderTypeID   uuid.UUID          `json:"order_type_id" binding:"required"`
	DiningTableID *uuid.UUID         `json:"dining_table_id"`
	Items         []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// AddOrderItemsRequest represents an add-items request
type AddOrderItemsRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderItemOptionRequest mutates one option line
type UpdateOrderItemOptionRequest struct {
	OptionID uuid.UUID `json:"option_id" binding:"required"`
	Quantity *int      `json:"quantity" binding:"omitempty,min=1"`
	Cancel   bool      `json:"cancel"`
}

// UpdateOrderItemRequest mutates one item line
type UpdateOrderItemRequest struct {
	ItemID   uuid.UUID                      `json:"item_id" binding:"required"`
	Quantity *int                           `json:"quantity" binding:"omitempty,min=1"`
	Cancel   bool                           `json:"cancel"`
	Options  []UpdateOrderItemOptionRequest `json:"options" binding:"omitempty,dive"`
}

// BatchUpdateOrderItemsRequest represents a batch item mutation request
type BatchUpdateOrderItemsRequest struct {
	Items []UpdateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest represents a status change request
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING SERVED"`
}

// OrderFilterRequest represents order list filter parameters
type OrderFilterRequest struct {
	OutletID    string `form:"outlet_id"`
	WaiterID    string `form:"waiter_id"`
	Status      string `form:"status"`
	OrderTypeID string `form:"order_type_id"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	Search      string `form:"search"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}
