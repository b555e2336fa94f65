package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyCashReconciliation is the per-(outlet, business day) cash closing
// row. Date is always a UTC midnight instant; create, read and unlock paths
// must use the identical normalization or lookups silently miss.
// RemainingBalance = PreviousDayBalance + DailyCashRevenue +
// AdjustmentAmount - CashDeposit.
type DailyCashReconciliation struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OutletID               uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_reconciliation_outlet_date" json:"outlet_id"`
	Date                   time.Time      `gorm:"type:date;not null;uniqueIndex:idx_reconciliation_outlet_date" json:"date"`
	PreviousDayBalance     int64          `gorm:"not null;default:0" json:"previous_day_balance"`
	DailyCashRevenue       int64          `gorm:"not null;default:0" json:"daily_cash_revenue"`
	CashDeposit            int64          `gorm:"not null;default:0" json:"cash_deposit"`
	AdjustmentAmount       int64          `gorm:"not null;default:0" json:"adjustment_amount"`
	RemainingBalance       int64          `gorm:"not null;default:0" json:"remaining_balance"`
	IsLocked               bool           `gorm:"default:false" json:"is_locked"`
	SubmittedByCashierName string         `gorm:"size:100" json:"submitted_by_cashier_name"`
	Remarks                string         `gorm:"size:255" json:"remarks"`
	CreatedAt              time.Time      `json:"created_at"`
	UpdatedAt              time.Time      `json:"updated_at"`
	DeletedAt              gorm.DeletedAt `gorm:"index" json:"-"`

	Outlet Outlet `gorm:"foreignKey:OutletID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new reconciliation row
func (r *DailyCashReconciliation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DailyCashReconciliation model
func (DailyCashReconciliation) TableName() string {
	return "daily_cash_reconciliations"
}
