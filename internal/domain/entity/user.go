package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a staff account bound to one outlet with a single role.
// Superusers have no outlet binding and see every outlet.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"size:100;unique;not null" json:"email"`
	Password  string         `gorm:"size:255" json:"-"`
	Role      enum.Role      `gorm:"size:20;not null" json:"role"`
	OutletID  *uuid.UUID     `gorm:"type:uuid;index" json:"outlet_id,omitempty"`
	GoogleID  string         `gorm:"size:100;index" json:"-"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Outlet *Outlet `gorm:"foreignKey:OutletID" json:"outlet,omitempty"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
