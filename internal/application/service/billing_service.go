package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
	"github.com/restopos/restopos-api/pkg/pagination"
)

// BillingService runs the payment pipeline: billing creation with receipt
// numbering, discount and tax resolution, payment validation, inventory
// deduction, and the void handler that reverses all of it.
type BillingService struct {
	txManager   repository.TxManager
	billingRepo repository.BillingRepository
	orderRepo   repository.OrderRepository
	counterRepo repository.CounterRepository
	discounts   *DiscountResolver
	taxPolicy   TaxPolicy
	inventory   *InventoryService
}

// NewBillingService creates a new billing service
func NewBillingService(
	txManager repository.TxManager,
	billingRepo repository.BillingRepository,
	orderRepo repository.OrderRepository,
	counterRepo repository.CounterRepository,
	discounts *DiscountResolver,
	taxPolicy TaxPolicy,
	inventory *InventoryService,
) *BillingService {
	return &BillingService{
		txManager:   txManager,
		billingRepo: billingRepo,
		orderRepo:   orderRepo,
		counterRepo: counterRepo,
		discounts:   discounts,
		taxPolicy:   taxPolicy,
		inventory:   inventory,
	}
}

// CreateBillingInput represents the payment submission
type CreateBillingInput struct {
	OrderID        uuid.UUID
	PaymentType    enum.PaymentType
	AmountPaid     int64
	ManualDiscount int64
	Remark         string
}

// CreateBilling settles an order. Inside one transaction it verifies the
// order is billable and not yet billed, recomputes the subtotal from the
// active item lines, resolves discount and tax, validates the payment,
// allocates the receipt number, writes the billing row, marks the order
// PAID and deducts ingredient stock. Any failure rolls the whole pipeline
// back, including the stock deduction.
func (s *BillingService) CreateBilling(ctx context.Context, input *CreateBillingInput) (*entity.Billing, error) {
	if !input.PaymentType.IsValid() {
		return nil, apperror.NewBadRequestError("Unknown payment type")
	}
	if input.AmountPaid < 0 {
		return nil, apperror.NewBadRequestError("Amount paid must not be negative")
	}

	var billing *entity.Billing
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.GetWithItems(ctx, input.OrderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}
		if !order.Status.IsBillable() {
			return apperror.NewStateError(fmt.Sprintf("Order %s is not ready for billing", order.OrderNumber))
		}

		existing, err := s.billingRepo.GetByOrderID(ctx, order.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperror.NewConflictError(fmt.Sprintf("Order %s is already billed under receipt %s", order.OrderNumber, existing.ReceiptNumber))
		}

		subtotal := order.ActiveItemsTotal()
		if subtotal <= 0 {
			return apperror.NewStateError("Order has no active items to bill")
		}

		discount, err := s.discounts.Resolve(ctx, order.OutletID, &order.OrderType, subtotal, input.ManualDiscount)
		if err != nil {
			return err
		}

		base := subtotal - discount
		tax := s.taxPolicy.Tax(base)
		total := base + tax
		if total < 0 {
			total = 0
		}

		if input.AmountPaid < total {
			return apperror.NewInsufficientPaymentError(fmt.Sprintf("Paid %d but the total is %d", input.AmountPaid, total))
		}

		number, err := s.counterRepo.NextReceiptNumber(ctx, order.OutletID)
		if err != nil {
			return err
		}

		billing = &entity.Billing{
			OrderID:       order.ID,
			OutletID:      order.OutletID,
			ReceiptNumber: entity.FormatReceiptNumber(number),
			Subtotal:      subtotal,
			Tax:           tax,
			Discount:      discount,
			Total:         total,
			AmountPaid:    input.AmountPaid,
			ChangeGiven:   input.AmountPaid - total,
			PaymentType:   input.PaymentType,
			Status:        enum.BillingStatusPaid,
			Remark:        input.Remark,
			PaidAt:        time.Now().UTC(),
		}
		if err := s.billingRepo.Create(ctx, billing); err != nil {
			return err
		}

		if err := s.orderRepo.UpdateStatus(ctx, order.ID, enum.OrderStatusPaid); err != nil {
			return err
		}

		return s.inventory.DeductForPaidOrder(ctx, order, order.OrderType.Name)
	})
	if err != nil {
		return nil, err
	}
	return billing, nil
}

// void flips the billing and its order to VOID and restores the stock
// booked against the order. Already-void billings are a no-op success so
// retries are safe. Runs inside the caller's transaction.
func (s *BillingService) void(ctx context.Context, billing *entity.Billing) error {
	if billing.Status == enum.BillingStatusVoid {
		return nil
	}

	if err := s.billingRepo.UpdateStatus(ctx, billing.ID, enum.BillingStatusVoid); err != nil {
		return err
	}
	billing.Status = enum.BillingStatusVoid

	if err := s.orderRepo.UpdateStatus(ctx, billing.OrderID, enum.OrderStatusVoid); err != nil {
		return err
	}

	return s.inventory.RestoreForVoidOrder(ctx, billing.OutletID, billing.OrderID)
}

// VoidBilling reverses a settled billing looked up by its order
func (s *BillingService) VoidBilling(ctx context.Context, orderID uuid.UUID, remark string) (*entity.Billing, error) {
	var billing *entity.Billing
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		billing, err = s.billingRepo.GetByOrderID(ctx, orderID)
		if err != nil {
			return err
		}
		if billing == nil {
			return apperror.NewNotFoundError("Billing")
		}
		return s.void(ctx, billing)
	})
	if err != nil {
		return nil, err
	}
	return billing, nil
}

// VoidBillingByReceipt reverses a settled billing looked up by the receipt
// number in an outlet, the key a cashier reads off the printed receipt
func (s *BillingService) VoidBillingByReceipt(ctx context.Context, outletID uuid.UUID, receiptNumber, remark string) (*entity.Billing, error) {
	var billing *entity.Billing
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		billing, err = s.billingRepo.GetByReceipt(ctx, outletID, receiptNumber)
		if err != nil {
			return err
		}
		if billing == nil {
			return apperror.NewNotFoundError("Billing")
		}
		return s.void(ctx, billing)
	})
	if err != nil {
		return nil, err
	}
	return billing, nil
}

// GetBillingByOrder returns the billing for an order
func (s *BillingService) GetBillingByOrder(ctx context.Context, orderID uuid.UUID) (*entity.Billing, error) {
	billing, err := s.billingRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, apperror.NewNotFoundError("Billing")
	}
	return billing, nil
}

// GetBillingByReceipt returns the billing carrying a receipt number in an outlet
func (s *BillingService) GetBillingByReceipt(ctx context.Context, outletID uuid.UUID, receiptNumber string) (*entity.Billing, error) {
	billing, err := s.billingRepo.GetByReceipt(ctx, outletID, receiptNumber)
	if err != nil {
		return nil, err
	}
	if billing == nil {
		return nil, apperror.NewNotFoundError("Billing")
	}
	return billing, nil
}

// ListBillings returns a paginated list of billings matching the filters
func (s *BillingService) ListBillings(ctx context.Context, params *repository.BillingFilterParams) (*pagination.PaginatedResult[entity.Billing], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	billings, total, err := s.billingRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(billings,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
