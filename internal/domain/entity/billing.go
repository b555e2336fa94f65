package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Billing is the finalized payment record for one order. The unique index
// on OrderID enforces the one-to-one relationship: a second billing attempt
// for the same order fails at the database even if the application check is
// raced. Amounts are snapshots taken at payment time; the only legal
// mutation afterwards is the PAID to VOID flip through the void handler.
type Billing struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	OrderID       uuid.UUID          `gorm:"type:uuid;not null;uniqueIndex" json:"order_id"`
	OutletID      uuid.UUID          `gorm:"type:uuid;not null;index:idx_billings_outlet_receipt" json:"outlet_id"`
	ReceiptNumber string             `gorm:"size:20;not null;index:idx_billings_outlet_receipt" json:"receipt_number"`
	Subtotal      int64              `gorm:"not null" json:"subtotal"`
	Tax           int64              `gorm:"not null;default:0" json:"tax"`
	Discount      int64              `gorm:"not null;default:0" json:"discount"`
	Total         int64              `gorm:"not null" json:"total"`
	AmountPaid    int64              `gorm:"not null" json:"amount_paid"`
	ChangeGiven   int64              `gorm:"not null" json:"change_given"`
	PaymentType   enum.PaymentType   `gorm:"size:20;not null" json:"payment_type"`
	Status        enum.BillingStatus `gorm:"size:10;not null;default:'PAID';index" json:"status"`
	Remark        string             `gorm:"size:255" json:"remark"`
	PaidAt        time.Time          `gorm:"not null" json:"paid_at"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`

	Order  Order  `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Outlet Outlet `gorm:"foreignKey:OutletID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new billing
func (b *Billing) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Billing model
func (Billing) TableName() string {
	return "billings"
}
