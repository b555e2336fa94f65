package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Food is a menu item scoped to one outlet. Its sell price lives in
// FoodPrice, keyed by order type.
type Food struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OutletID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"outlet_id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Category  string         `gorm:"size:50" json:"category"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Outlet      Outlet           `gorm:"foreignKey:OutletID" json:"-"`
	Prices      []FoodPrice      `gorm:"foreignKey:FoodID" json:"prices,omitempty"`
	Options     []FoodOption     `gorm:"foreignKey:FoodID" json:"options,omitempty"`
	Ingredients []FoodIngredient `gorm:"foreignKey:FoodID" json:"ingredients,omitempty"`
}

// BeforeCreate generates a UUID before creating a new food
func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Food model
func (Food) TableName() string {
	return "foods"
}

// FoodPrice is the unit price of a food for one order type. Absence of a
// row is a hard failure when adding the food to an order of that type;
// there is no fallback price.
type FoodPrice struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FoodID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_food_price_pair" json:"food_id"`
	OrderTypeID uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_food_price_pair" json:"order_type_id"`
	Price       int64          `gorm:"not null" json:"price"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Food      Food      `gorm:"foreignKey:FoodID" json:"-"`
	OrderType OrderType `gorm:"foreignKey:OrderTypeID" json:"order_type,omitempty"`
}

// BeforeCreate generates a UUID before creating a new food price
func (p *FoodPrice) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodPrice model
func (FoodPrice) TableName() string {
	return "food_prices"
}

// FoodOption is an add-on for a food (extra topping, size upgrade) with a
// flat extra price independent of order type.
type FoodOption struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FoodID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"food_id"`
	Name       string         `gorm:"size:100;not null" json:"name"`
	ExtraPrice int64          `gorm:"not null;default:0" json:"extra_price"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Food Food `gorm:"foreignKey:FoodID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new food option
func (o *FoodOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodOption model
func (FoodOption) TableName() string {
	return "food_options"
}

// FoodIngredient is a bill-of-materials edge: selling one unit of the food
// consumes QuantityPerUnit of the ingredient. Static configuration data.
type FoodIngredient struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FoodID          uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_food_ingredient_pair" json:"food_id"`
	IngredientID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_food_ingredient_pair" json:"ingredient_id"`
	QuantityPerUnit float64        `gorm:"not null" json:"quantity_per_unit"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	Food       Food       `gorm:"foreignKey:FoodID" json:"-"`
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// BeforeCreate generates a UUID before creating a new food ingredient
func (fi *FoodIngredient) BeforeCreate(tx *gorm.DB) error {
	if fi.ID == uuid.Nil {
		fi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FoodIngredient model
func (FoodIngredient) TableName() string {
	return "food_ingredients"
}
