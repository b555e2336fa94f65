package enum

// OrderStatus represents the lifecycle state of an order
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
	OrderStatusServed  OrderStatus = "SERVED"
	OrderStatusPaid    OrderStatus = "PAID"
	OrderStatusVoid    OrderStatus = "VOID"
)

// IsValid reports whether the status is one of the known order states
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusServed, OrderStatusPaid, OrderStatusVoid:
		return true
	}
	return false
}

// IsBillable reports whether an order in this state may enter billing.
// PAID is accepted here so a correction attempt reaches the duplicate
// billing check, which rejects it with a conflict instead of a state error.
func (s OrderStatus) IsBillable() bool {
	return s == OrderStatusServed || s == OrderStatusPaid
}

// IsMutable reports whether items may still be added or edited
func (s OrderStatus) IsMutable() bool {
	return s == OrderStatusPending || s == OrderStatusServed
}
