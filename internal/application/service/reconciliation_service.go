package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
	"github.com/restopos/restopos-api/pkg/utils"
)

// ReconciliationService handles the daily cash closing. Each submission
// computes the day's cash revenue from the billing records, carries the
// previous day's remaining balance forward and locks the row; a locked row
// only reopens through the admin unlock.
type ReconciliationService struct {
	txManager          repository.TxManager
	reconciliationRepo repository.ReconciliationRepository
	billingRepo        repository.BillingRepository
}

// NewReconciliationService creates a new reconciliation service
func NewReconciliationService(
	txManager repository.TxManager,
	reconciliationRepo repository.ReconciliationRepository,
	billingRepo repository.BillingRepository,
) *ReconciliationService {
	return &ReconciliationService{
		txManager:          txManager,
		reconciliationRepo: reconciliationRepo,
		billingRepo:        billingRepo,
	}
}

// SubmitReconciliationInput represents the cash closing submission
type SubmitReconciliationInput struct {
	OutletID         uuid.UUID
	Date             time.Time
	CashDeposit      int64
	AdjustmentAmount int64
	CashierName      string
	Remarks          string
}

// SubmitReconciliation closes the cash drawer for one business day.
// RemainingBalance = PreviousDayBalance + DailyCashRevenue +
// AdjustmentAmount - CashDeposit. Resubmitting an unlocked day overwrites
// it; a locked day conflicts. The cashier name recorded by the first
// submission survives resubmissions; the input name is only taken when no
// name was recorded before.
func (s *ReconciliationService) SubmitReconciliation(ctx context.Context, input *SubmitReconciliationInput) (*entity.DailyCashReconciliation, error) {
	if input.CashDeposit < 0 {
		return nil, apperror.NewBadRequestError("Cash deposit must not be negative")
	}

	day := utils.UTCMidnight(input.Date)

	var row *entity.DailyCashReconciliation
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := s.reconciliationRepo.GetByOutletAndDate(ctx, input.OutletID, day)
		if err != nil {
			return err
		}
		if existing != nil && existing.IsLocked {
			return apperror.NewConflictError("Reconciliation for this day is locked")
		}

		revenue, err := s.billingRepo.SumCashRevenue(ctx, input.OutletID, day, day.Add(24*time.Hour))
		if err != nil {
			return err
		}

		var previous int64
		prevRow, err := s.reconciliationRepo.GetByOutletAndDate(ctx, input.OutletID, day.Add(-24*time.Hour))
		if err != nil {
			return err
		}
		if prevRow != nil {
			previous = prevRow.RemainingBalance
		}

		remaining := previous + revenue + input.AdjustmentAmount - input.CashDeposit

		if existing == nil {
			row = &entity.DailyCashReconciliation{
				OutletID:               input.OutletID,
				Date:                   day,
				PreviousDayBalance:     previous,
				DailyCashRevenue:       revenue,
				CashDeposit:            input.CashDeposit,
				AdjustmentAmount:       input.AdjustmentAmount,
				RemainingBalance:       remaining,
				IsLocked:               true,
				SubmittedByCashierName: input.CashierName,
				Remarks:                input.Remarks,
			}
			return s.reconciliationRepo.Create(ctx, row)
		}

		existing.PreviousDayBalance = previous
		existing.DailyCashRevenue = revenue
		existing.CashDeposit = input.CashDeposit
		existing.AdjustmentAmount = input.AdjustmentAmount
		existing.RemainingBalance = remaining
		existing.IsLocked = true
		if existing.SubmittedByCashierName == "" {
			existing.SubmittedByCashierName = input.CashierName
		}
		existing.Remarks = input.Remarks
		row = existing
		return s.reconciliationRepo.Update(ctx, existing)
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

// UnlockReconciliation reopens a locked day so a correction can be
// resubmitted. Admin-only; the route layer enforces the role.
func (s *ReconciliationService) UnlockReconciliation(ctx context.Context, outletID uuid.UUID, date time.Time) (*entity.DailyCashReconciliation, error) {
	day := utils.UTCMidnight(date)

	row, err := s.reconciliationRepo.GetByOutletAndDate(ctx, outletID, day)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NewNotFoundError("Reconciliation")
	}
	if !row.IsLocked {
		return row, nil
	}

	row.IsLocked = false
	if err := s.reconciliationRepo.Update(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// GetReconciliation returns the closing row for one day
func (s *ReconciliationService) GetReconciliation(ctx context.Context, outletID uuid.UUID, date time.Time) (*entity.DailyCashReconciliation, error) {
	row, err := s.reconciliationRepo.GetByOutletAndDate(ctx, outletID, utils.UTCMidnight(date))
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NewNotFoundError("Reconciliation")
	}
	return row, nil
}

// ListReconciliations returns the closing rows for a date range
func (s *ReconciliationService) ListReconciliations(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]entity.DailyCashReconciliation, error) {
	return s.reconciliationRepo.ListByOutlet(ctx, outletID, utils.UTCMidnight(start), utils.UTCMidnight(end).Add(24*time.Hour))
}
