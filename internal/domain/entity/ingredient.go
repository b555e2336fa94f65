package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Ingredient is a per-outlet stock record. StockQty must never go negative
// after a committed transaction; deductions that would do so abort.
type Ingredient struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OutletID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"outlet_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	StockQty  float64        `gorm:"not null;default:0" json:"stock_qty"`
	Unit      string         `gorm:"size:20;not null" json:"unit"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Outlet Outlet `gorm:"foreignKey:OutletID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ingredient
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Ingredient model
func (Ingredient) TableName() string {
	return "ingredients"
}

// IngredientStockLog is an append-only ledger row for one ingredient
// movement. Quantity is always stored positive; Type carries the direction.
// Voiding sets Type to VOID instead of deleting the row, which keeps the
// audit trail while excluding it from balance calculations.
type IngredientStockLog struct {
	ID              uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	IngredientID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	OutletID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"outlet_id"`
	Quantity        float64           `gorm:"not null" json:"quantity"`
	Type            enum.StockLogType `gorm:"size:20;not null;index" json:"type"`
	TransactionDate time.Time         `gorm:"type:date;not null;index" json:"transaction_date"`
	OrderID         *uuid.UUID        `gorm:"type:uuid;index" json:"order_id,omitempty"`
	Remark          string            `gorm:"size:255" json:"remark"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`

	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
	Outlet     Outlet     `gorm:"foreignKey:OutletID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock log
func (l *IngredientStockLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the IngredientStockLog model
func (IngredientStockLog) TableName() string {
	return "ingredient_stock_logs"
}
