package enum

// PaymentType represents how a billing was settled
type PaymentType string

const (
	PaymentTypeCash     PaymentType = "CASH"
	PaymentTypeQRIS     PaymentType = "QRIS"
	PaymentTypeTransfer PaymentType = "TRANSFER"
	PaymentTypeCard     PaymentType = "CARD"
)

// IsValid reports whether the payment type is known
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentTypeCash, PaymentTypeQRIS, PaymentTypeTransfer, PaymentTypeCard:
		return true
	}
	return false
}
