package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order type names with pricing or inventory significance. Delivery-platform
// aliases carry no special casing beyond their price book.
const (
	OrderTypeDineIn   = "Dine In"
	OrderTypeTakeAway = "Take Away"
	OrderTypeBoss     = "Boss"
	OrderTypeStaff    = "Staff"
)

// OrderType classifies a sale (Dine In, Take Away, delivery platforms,
// internal Boss/Staff consumption). It drives price lookup, discount policy
// and stock log categorization.
type OrderType struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:50;unique;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new order type
func (t *OrderType) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderType model
func (OrderType) TableName() string {
	return "order_types"
}

// UsesManualDiscount reports whether billing for this order type takes the
// cashier's manual discount amount instead of the rule-based percentage.
func (t *OrderType) UsesManualDiscount() bool {
	return t.Name == OrderTypeDineIn || t.Name == OrderTypeTakeAway
}

// OrderTypeDiscount holds a rule-based percentage discount per
// (outlet, order type). At most one active row per pair.
type OrderTypeDiscount struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OutletID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_order_type_discount_pair" json:"outlet_id"`
	OrderTypeID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_order_type_discount_pair" json:"order_type_id"`
	Percentage  float64        `gorm:"not null" json:"percentage"`
	IsActive    bool           `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Outlet    Outlet    `gorm:"foreignKey:OutletID" json:"-"`
	OrderType OrderType `gorm:"foreignKey:OrderTypeID" json:"order_type,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order type discount
func (d *OrderTypeDiscount) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderTypeDiscount model
func (OrderTypeDiscount) TableName() string {
	return "order_type_discounts"
}
