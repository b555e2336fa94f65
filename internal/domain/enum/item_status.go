package enum

// ItemStatus represents the state of an order item or item option.
// Canceled rows are kept for audit with quantity and total collapsed to zero.
type ItemStatus string

const (
	ItemStatusActive   ItemStatus = "ACTIVE"
	ItemStatusCanceled ItemStatus = "CANCELED"
)

// IsValid reports whether the status is a known item state
func (s ItemStatus) IsValid() bool {
	return s == ItemStatusActive || s == ItemStatusCanceled
}
