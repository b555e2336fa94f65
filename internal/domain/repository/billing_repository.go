package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/pkg/pagination"
)

// BillingRepository defines the interface for billing data operations
type BillingRepository interface {
	Create(ctx context.Context, billing *entity.Billing) error
	GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Billing, error)
	GetByReceipt(ctx context.Context, outletID uuid.UUID, receiptNumber string) (*entity.Billing, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BillingStatus) error
	List(ctx context.Context, params *BillingFilterParams) ([]entity.Billing, int64, error)
	// SumCashRevenue totals non-void CASH billings for the outlet whose
	// PaidAt falls in [start, end), excluding orders whose order type name
	// is Boss or Staff. Used by the cash reconciliation engine.
	SumCashRevenue(ctx context.Context, outletID uuid.UUID, start, end time.Time) (int64, error)
}

// BillingFilterParams contains filtering parameters for billing queries
type BillingFilterParams struct {
	Pagination  *pagination.PaginationParams
	OutletID    *uuid.UUID
	Status      *enum.BillingStatus
	PaymentType *enum.PaymentType
	StartDate   *time.Time
	EndDate     *time.Time
}
