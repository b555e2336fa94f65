package enum

// StockLogType categorizes an ingredient stock ledger entry. Quantities are
// stored positive; the type carries the direction and meaning of the movement.
type StockLogType string

const (
	StockLogTypeInbound       StockLogType = "INBOUND"
	StockLogTypeDiscrepancy   StockLogType = "DISCREPANCY"
	StockLogTypeOutboundNM    StockLogType = "OUTBOUND_NM"
	StockLogTypeOutboundBoss  StockLogType = "OUTBOUND_BOSS"
	StockLogTypeOutboundStaff StockLogType = "OUTBOUND_STAFF"
	StockLogTypeTransferIn    StockLogType = "TRANSFER_IN"
	StockLogTypeTransferOut   StockLogType = "TRANSFER_OUT"
	StockLogTypeVoid          StockLogType = "VOID"
)

// IsValid reports whether the type is a known stock log type
func (t StockLogType) IsValid() bool {
	switch t {
	case StockLogTypeInbound, StockLogTypeDiscrepancy,
		StockLogTypeOutboundNM, StockLogTypeOutboundBoss, StockLogTypeOutboundStaff,
		StockLogTypeTransferIn, StockLogTypeTransferOut, StockLogTypeVoid:
		return true
	}
	return false
}

// IsManualEntry reports whether the type may be posted through the manual
// stock entry endpoint. Outbound and void entries are only written by the
// billing and void pipelines.
func (t StockLogType) IsManualEntry() bool {
	switch t {
	case StockLogTypeInbound, StockLogTypeDiscrepancy, StockLogTypeTransferIn, StockLogTypeTransferOut:
		return true
	}
	return false
}

// OutboundTypeForOrderType maps an order type name to the outbound log type
// written when inventory is deducted for a paid order.
func OutboundTypeForOrderType(orderTypeName string) StockLogType {
	switch orderTypeName {
	case "Boss":
		return StockLogTypeOutboundBoss
	case "Staff":
		return StockLogTypeOutboundStaff
	default:
		return StockLogTypeOutboundNM
	}
}
