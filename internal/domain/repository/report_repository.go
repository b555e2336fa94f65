package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DailyRevenueResult is one row of the daily revenue report
type DailyRevenueResult struct {
	Date         time.Time `json:"date"`
	OrderCount   int64     `json:"order_count"`
	GrossRevenue int64     `json:"gross_revenue"`
	Discount     int64     `json:"discount"`
	NetRevenue   int64     `json:"net_revenue"`
}

// SalesSummaryResult aggregates billed sales per order type and payment type
type SalesSummaryResult struct {
	OrderTypeName string `json:"order_type_name"`
	PaymentType   string `json:"payment_type"`
	OrderCount    int64  `json:"order_count"`
	TotalAmount   int64  `json:"total_amount"`
}

// SalesDetailResult is one billed order in the sales detail report
type SalesDetailResult struct {
	ReceiptNumber string    `json:"receipt_number"`
	OrderNumber   string    `json:"order_number"`
	OrderTypeName string    `json:"order_type_name"`
	PaymentType   string    `json:"payment_type"`
	Status        string    `json:"status"`
	Subtotal      int64     `json:"subtotal"`
	Discount      int64     `json:"discount"`
	Total         int64     `json:"total"`
	PaidAt        time.Time `json:"paid_at"`
}

// IngredientUsageResult aggregates ledger outbound quantities per ingredient
type IngredientUsageResult struct {
	IngredientName string  `json:"ingredient_name"`
	Unit           string  `json:"unit"`
	QuantityUsed   float64 `json:"quantity_used"`
}

// ReportRepository runs read-only aggregation queries for the reporting
// endpoints. Date arguments are UTC midnight instants; ranges are
// half-open [start, end).
type ReportRepository interface {
	DailyRevenue(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]DailyRevenueResult, error)
	SalesSummary(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]SalesSummaryResult, error)
	SalesDetail(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]SalesDetailResult, error)
	IngredientUsage(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]IngredientUsageResult, error)
}
