package enum

// BillingStatus represents the state of a billing record.
// The only legal transition is PAID to VOID, performed by the void handler.
type BillingStatus string

const (
	BillingStatusPaid BillingStatus = "PAID"
	BillingStatusVoid BillingStatus = "VOID"
)
