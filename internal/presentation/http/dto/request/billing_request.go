package request

// CreateBillingRequest represents a payment submission
type CreateBillingRequest struct {
	PaymentType    string `json:"payment_type" binding:"required,oneof=CASH QRIS TRANSFER CARD"`
	AmountPaid     int64  `json:"amount_paid" binding:"min=0"`
	ManualDiscount int64  `json:"manual_discount" binding:"omitempty,min=0"`
	Remark         string `json:"remark" binding:"omitempty,max=255"`
}

// VoidBillingRequest represents a void submission
type VoidBillingRequest struct {
	Remark string `json:"remark" binding:"omitempty,max=255"`
}

// BillingFilterRequest represents billing list filter parameters
type BillingFilterRequest struct {
	OutletID    string `form:"outlet_id"`
	Status      string `form:"status"`
	PaymentType string `form:"payment_type"`
	StartDate   string `form:"start_date"`
	EndDate     string `form:"end_date"`
	Page        int    `form:"page"`
	PerPage     int    `form:"per_page"`
}
