package request

import "github.com/google/uuid"

// CreateIngredientRequest represents an ingredient creation request
type CreateIngredientRequest struct {
	OutletID uuid.UUID `json:"outlet_id" binding:"required"`
	Name     string    `json:"name" binding:"required,min=2,max=100"`
	Unit     string    `json:"unit" binding:"required,max=20"`
	StockQty float64   `json:"stock_qty" binding:"min=0"`
}

// UpdateIngredientRequest represents an ingredient update request
type UpdateIngredientRequest struct {
	Name *string `json:"name" binding:"omitempty,min=2,max=100"`
	Unit *string `json:"unit" binding:"omitempty,max=20"`
}

// ManualStockEntryRequest represents a manual ledger posting
type ManualStockEntryRequest struct {
	OutletID     uuid.UUID `json:"outlet_id" binding:"required"`
	IngredientID uuid.UUID `json:"ingredient_id" binding:"required"`
	Type         string    `json:"type" binding:"required,oneof=INBOUND DISCREPANCY TRANSFER_IN TRANSFER_OUT"`
	Quantity     float64   `json:"quantity" binding:"required,gt=0"`
	Date         string    `json:"date" binding:"required"`
	Remark       string    `json:"remark" binding:"omitempty,max=255"`
}

// StockLogFilterRequest represents stock ledger filter parameters
type StockLogFilterRequest struct {
	OutletID     string `form:"outlet_id"`
	IngredientID string `form:"ingredient_id"`
	Type         string `form:"type"`
	StartDate    string `form:"start_date"`
	EndDate      string `form:"end_date"`
	Page         int    `form:"page"`
	PerPage      int    `form:"per_page"`
}
