package request

import "github.com/google/uuid"

// SubmitReconciliationRequest represents a daily cash closing submission
type SubmitReconciliationRequest struct {
	OutletID         uuid.UUID `json:"outlet_id" binding:"required"`
	Date             string    `json:"date" binding:"required"`
	CashDeposit      int64     `json:"cash_deposit" binding:"min=0"`
	AdjustmentAmount int64     `json:"adjustment_amount"`
	CashierName      string    `json:"cashier_name" binding:"omitempty,max=100"`
	Remarks          string    `json:"remarks" binding:"omitempty,max=255"`
}

// UnlockReconciliationRequest represents an admin unlock request
type UnlockReconciliationRequest struct {
	OutletID uuid.UUID `json:"outlet_id" binding:"required"`
	Date     string    `json:"date" binding:"required"`
}
