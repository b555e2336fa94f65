package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderNumberCounter holds the last handed-out order number per outlet.
// It is advanced with an atomic upsert-increment; values are never reused
// or decremented, so aborted transactions may leave gaps but two orders
// never share a number.
type OrderNumberCounter struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OutletID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"outlet_id"`
	Current   int64     `gorm:"not null;default:0" json:"current"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new counter
func (c *OrderNumberCounter) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderNumberCounter model
func (OrderNumberCounter) TableName() string {
	return "order_number_counters"
}

// ReceiptNumberCounter holds the last handed-out receipt number per outlet,
// advanced the same way as OrderNumberCounter.
type ReceiptNumberCounter struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OutletID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"outlet_id"`
	Current   int64     `gorm:"not null;default:0" json:"current"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new counter
func (c *ReceiptNumberCounter) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptNumberCounter model
func (ReceiptNumberCounter) TableName() string {
	return "receipt_number_counters"
}

// FormatOrderNumber renders a counter value as the zero-padded order number
// printed on tickets, e.g. 7 -> "0007".
func FormatOrderNumber(n int64) string {
	return fmt.Sprintf("%04d", n)
}

// FormatReceiptNumber renders a counter value as the zero-padded receipt
// number printed on receipts, e.g. 42 -> "000042".
func FormatReceiptNumber(n int64) string {
	return fmt.Sprintf("%06d", n)
}
