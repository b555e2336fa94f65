package repository

import (
	"context"

	"github.com/google/uuid"
)

// CounterRepository hands out per-outlet monotonic sequence values for order
// and receipt numbers. Both operations are atomic upsert-increments:
// concurrent callers block briefly on the counter row but never receive the
// same value. Values handed to an aborted transaction are not reclaimed.
type CounterRepository interface {
	NextOrderNumber(ctx context.Context, outletID uuid.UUID) (int64, error)
	NextReceiptNumber(ctx context.Context, outletID uuid.UUID) (int64, error)
}
