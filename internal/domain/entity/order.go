package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Order is the mutable order-in-progress. Subtotal and Total are derived
// columns and must equal the sum of active item totals after every mutating
// operation; they are adjusted transactionally, never left stale. Version
// is an optimistic concurrency column bumped on every total adjustment so
// racing item mutations surface as conflicts instead of lost updates.
type Order struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	OrderNumber   string           `gorm:"size:20;not null;index:idx_orders_outlet_number" json:"order_number"`
	OutletID      uuid.UUID        `gorm:"type:uuid;not null;index:idx_orders_outlet_number" json:"outlet_id"`
	OrderTypeID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"order_type_id"`
	WaiterID      uuid.UUID        `gorm:"type:uuid;not null;index" json:"waiter_id"`
	DiningTableID *uuid.UUID       `gorm:"type:uuid" json:"dining_table_id,omitempty"`
	Status        enum.OrderStatus `gorm:"size:10;not null;default:'PENDING';index" json:"status"`
	Subtotal      int64            `gorm:"not null;default:0" json:"subtotal"`
	Total         int64            `gorm:"not null;default:0" json:"total"`
	Version       int64            `gorm:"not null;default:0" json:"-"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	DeletedAt     gorm.DeletedAt   `gorm:"index" json:"-"`

	Outlet      Outlet       `gorm:"foreignKey:OutletID" json:"-"`
	OrderType   OrderType    `gorm:"foreignKey:OrderTypeID" json:"order_type,omitempty"`
	Waiter      User         `gorm:"foreignKey:WaiterID" json:"-"`
	DiningTable *DiningTable `gorm:"foreignKey:DiningTableID" json:"dining_table,omitempty"`
	Items       []OrderItem  `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order
func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// ActiveItemsTotal sums the totals of items that are not canceled
func (o *Order) ActiveItemsTotal() int64 {
	var sum int64
	for _, item := range o.Items {
		if item.Status == enum.ItemStatusActive {
			sum += item.TotalPrice
		}
	}
	return sum
}

// OrderItem is one line of an order. UnitPrice is a snapshot of the food
// price at the time the line was added or last edited. TotalPrice carries
// the full line value, quantity times unit price plus the active option
// totals. Canceled lines are kept with quantity and total collapsed to zero.
type OrderItem struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	OrderID    uuid.UUID         `gorm:"type:uuid;not null;index" json:"order_id"`
	FoodID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"food_id"`
	Quantity   int               `gorm:"not null" json:"quantity"`
	UnitPrice  int64             `gorm:"not null" json:"unit_price"`
	TotalPrice int64             `gorm:"not null" json:"total_price"`
	Status     enum.ItemStatus   `gorm:"size:10;not null;default:'ACTIVE'" json:"status"`
	Remark     string            `gorm:"size:255" json:"remark"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`

	Order   Order             `gorm:"foreignKey:OrderID" json:"-"`
	Food    Food              `gorm:"foreignKey:FoodID" json:"food,omitempty"`
	Options []OrderItemOption `gorm:"foreignKey:OrderItemID" json:"options,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item
func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}

// ActiveOptionsTotal sums the totals of options that are not canceled
func (i *OrderItem) ActiveOptionsTotal() int64 {
	var sum int64
	for _, opt := range i.Options {
		if opt.Status == enum.ItemStatusActive {
			sum += opt.TotalPrice
		}
	}
	return sum
}

// OrderItemOption is an add-on line under an order item, independently
// cancelable with the same quantity/price shape as the item itself.
type OrderItemOption struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	OrderItemID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_item_id"`
	FoodOptionID uuid.UUID       `gorm:"type:uuid;not null;index" json:"food_option_id"`
	Quantity     int             `gorm:"not null" json:"quantity"`
	UnitPrice    int64           `gorm:"not null" json:"unit_price"`
	TotalPrice   int64           `gorm:"not null" json:"total_price"`
	Status       enum.ItemStatus `gorm:"size:10;not null;default:'ACTIVE'" json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	OrderItem  OrderItem  `gorm:"foreignKey:OrderItemID" json:"-"`
	FoodOption FoodOption `gorm:"foreignKey:FoodOptionID" json:"food_option,omitempty"`
}

// BeforeCreate generates a UUID before creating a new order item option
func (o *OrderItemOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the OrderItemOption model
func (OrderItemOption) TableName() string {
	return "order_item_options"
}
