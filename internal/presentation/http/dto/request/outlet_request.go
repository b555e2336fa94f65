package request

import "github.com/google/uuid"

// CreateOutletRequest represents an outlet creation request
type CreateOutletRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100"`
	Address string `json:"address" binding:"omitempty,max=255"`
	Phone   string `json:"phone" binding:"omitempty,max=30"`
}

// UpdateOutletRequest represents an outlet update request
type UpdateOutletRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=100"`
	Address *string `json:"address" binding:"omitempty,max=255"`
	Phone   *string `json:"phone" binding:"omitempty,max=30"`
}

// CreateDiningTableRequest represents a dining table creation request
type CreateDiningTableRequest struct {
	OutletID uuid.UUID `json:"outlet_id" binding:"required"`
	Name     string    `json:"name" binding:"required,min=1,max=50"`
	Capacity int       `json:"capacity" binding:"min=0"`
}

// UpdateDiningTableRequest represents a dining table update request
type UpdateDiningTableRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=50"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=0"`
}

// CreateUserRequest represents a staff account creation request
type CreateUserRequest struct {
	Name     string     `json:"name" binding:"required,min=2,max=100"`
	Email    string     `json:"email" binding:"required,email"`
	Password string     `json:"password" binding:"required,min=8"`
	Role     string     `json:"role" binding:"required,oneof=OWNER ADMIN CASHIER CHEF WAITER"`
	OutletID *uuid.UUID `json:"outlet_id" binding:"required"`
}

// UpdateUserRequest represents a staff account update request
type UpdateUserRequest struct {
	Name     *string    `json:"name" binding:"omitempty,min=2,max=100"`
	Role     *string    `json:"role" binding:"omitempty,oneof=OWNER ADMIN CASHIER CHEF WAITER"`
	OutletID *uuid.UUID `json:"outlet_id"`
	IsActive *bool      `json:"is_active"`
	Password *string    `json:"password" binding:"omitempty,min=8"`
}
