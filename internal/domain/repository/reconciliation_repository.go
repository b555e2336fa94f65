package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
)

// ReconciliationRepository defines the interface for daily cash
// reconciliation rows. Dates passed in must already be normalized to UTC
// midnight; the repository does not re-normalize.
type ReconciliationRepository interface {
	GetByOutletAndDate(ctx context.Context, outletID uuid.UUID, date time.Time) (*entity.DailyCashReconciliation, error)
	Create(ctx context.Context, row *entity.DailyCashReconciliation) error
	Update(ctx context.Context, row *entity.DailyCashReconciliation) error
	ListByOutlet(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]entity.DailyCashReconciliation, error)
}
