package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Outlet represents a physical restaurant branch. It is the tenant boundary
// for every other entity and is never deleted once transactional data
// references it.
type Outlet struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:100;unique;not null" json:"name"`
	Address   string         `gorm:"size:255" json:"address"`
	Phone     string         `gorm:"size:30" json:"phone"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new outlet
func (o *Outlet) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Outlet model
func (Outlet) TableName() string {
	return "outlets"
}

// DiningTable represents a physical table in an outlet, required for
// dine-in orders
type DiningTable struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OutletID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"outlet_id"`
	Name      string         `gorm:"size:50;not null" json:"name"`
	Capacity  int            `gorm:"default:0" json:"capacity"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Outlet Outlet `gorm:"foreignKey:OutletID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new dining table
func (t *DiningTable) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DiningTable model
func (DiningTable) TableName() string {
	return "dining_tables"
}
