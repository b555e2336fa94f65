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
	"github.com/restopos/restopos-api/pkg/utils"
)

// InventoryService handles ingredient stock, the stock ledger and the
// deduction/restore hooks called by the billing pipeline
type InventoryService struct {
	txManager          repository.TxManager
	ingredientRepo     repository.IngredientRepository
	stockLogRepo       repository.StockLogRepository
	foodIngredientRepo repository.FoodIngredientRepository
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	txManager repository.TxManager,
	ingredientRepo repository.IngredientRepository,
	stockLogRepo repository.StockLogRepository,
	foodIngredientRepo repository.FoodIngredientRepository,
) *InventoryService {
	return &InventoryService{
		txManager:          txManager,
		ingredientRepo:     ingredientRepo,
		stockLogRepo:       stockLogRepo,
		foodIngredientRepo: foodIngredientRepo,
	}
}

// DeductForPaidOrder expands the order's active items through the
// bill-of-materials, aggregates the required quantity per ingredient,
// decrements stock with a non-negative guard and writes one outbound ledger
// row per ingredient. The transaction date is the order's creation day so a
// payment settled after midnight still books against the day the order was
// taken. Callers run this inside the billing transaction.
func (s *InventoryService) DeductForPaidOrder(ctx context.Context, order *entity.Order, orderTypeName string) error {
	foodIDs := make([]uuid.UUID, 0, len(order.Items))
	qtyByFood := make(map[uuid.UUID]int, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		if item.Status != enum.ItemStatusActive {
			continue
		}
		if _, seen := qtyByFood[item.FoodID]; !seen {
			foodIDs = append(foodIDs, item.FoodID)
		}
		qtyByFood[item.FoodID] += item.Quantity
	}
	if len(foodIDs) == 0 {
		return nil
	}

	edges, err := s.foodIngredientRepo.GetByFoodIDs(ctx, foodIDs)
	if err != nil {
		return err
	}

	required := make(map[uuid.UUID]float64)
	var ingredientIDs []uuid.UUID
	for _, edge := range edges {
		qty := float64(qtyByFood[edge.FoodID]) * edge.QuantityPerUnit
		if qty <= 0 {
			continue
		}
		if _, seen := required[edge.IngredientID]; !seen {
			ingredientIDs = append(ingredientIDs, edge.IngredientID)
		}
		required[edge.IngredientID] += qty
	}
	if len(required) == 0 {
		return nil
	}

	ingredients, err := s.ingredientRepo.GetByIDs(ctx, ingredientIDs)
	if err != nil {
		return err
	}
	nameByID := make(map[uuid.UUID]string, len(ingredients))
	for i := range ingredients {
		nameByID[ingredients[i].ID] = ingredients[i].Name
	}

	logType := enum.OutboundTypeForOrderType(orderTypeName)
	transactionDate := utils.UTCMidnight(order.CreatedAt)

	logs := make([]entity.IngredientStockLog, 0, len(ingredientIDs))
	for _, id := range ingredientIDs {
		qty := required[id]
		ok, err := s.ingredientRepo.DecrementStockGuarded(ctx, id, qty)
		if err != nil {
			return err
		}
		if !ok {
			name := nameByID[id]
			if name == "" {
				name = id.String()
			}
			return apperror.NewInsufficientStockError(fmt.Sprintf("Insufficient stock for %s", name))
		}
		orderID := order.ID
		logs = append(logs, entity.IngredientStockLog{
			IngredientID:    id,
			OutletID:        order.OutletID,
			Quantity:        qty,
			Type:            logType,
			TransactionDate: transactionDate,
			OrderID:         &orderID,
		})
	}

	return s.stockLogRepo.CreateBatch(ctx, logs)
}

// RestoreForVoidOrder puts back the stock recorded in the order's non-void
// ledger rows and marks those rows VOID. Every non-void row for the order is
// restored regardless of its type, so a void after a manual correction still
// nets out to the pre-order stock level. Callers run this inside the void
// transaction.
func (s *InventoryService) RestoreForVoidOrder(ctx context.Context, outletID, orderID uuid.UUID) error {
	logs, err := s.stockLogRepo.GetActiveByOrder(ctx, outletID, orderID)
	if err != nil {
		return err
	}
	for i := range logs {
		if err := s.ingredientRepo.IncrementStock(ctx, logs[i].IngredientID, logs[i].Quantity); err != nil {
			return err
		}
	}
	if len(logs) == 0 {
		return nil
	}
	return s.stockLogRepo.MarkVoidByOrder(ctx, outletID, orderID)
}

// ManualStockEntryInput represents a manual ledger posting
type ManualStockEntryInput struct {
	OutletID     uuid.UUID
	IngredientID uuid.UUID
	Type         enum.StockLogType
	Quantity     float64
	Date         time.Time
	Remark       string
}

// CreateManualStockEntry posts an INBOUND, DISCREPANCY or TRANSFER ledger
// row and applies it to the ingredient's stock. At most one entry per
// (ingredient, type, day); a second submission for the same day conflicts.
// DISCREPANCY and TRANSFER_OUT reduce stock and fail when the reduction
// would go negative.
func (s *InventoryService) CreateManualStockEntry(ctx context.Context, input *ManualStockEntryInput) (*entity.IngredientStockLog, error) {
	if !input.Type.IsManualEntry() {
		return nil, apperror.NewBadRequestError("Stock log type cannot be posted manually")
	}
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}

	ingredient, err := s.ingredientRepo.GetByID(ctx, input.IngredientID)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NewNotFoundError("Ingredient")
	}
	if ingredient.OutletID != input.OutletID {
		return nil, apperror.NewBadRequestError("Ingredient does not belong to this outlet")
	}

	date := utils.UTCMidnight(input.Date)

	var log *entity.IngredientStockLog
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		exists, err := s.stockLogRepo.ExistsDailyEntry(ctx, input.IngredientID, input.Type, date)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflictError(fmt.Sprintf("A %s entry for %s already exists for this day", input.Type, ingredient.Name))
		}

		switch input.Type {
		case enum.StockLogTypeInbound, enum.StockLogTypeTransferIn:
			if err := s.ingredientRepo.IncrementStock(ctx, input.IngredientID, input.Quantity); err != nil {
				return err
			}
		case enum.StockLogTypeDiscrepancy, enum.StockLogTypeTransferOut:
			ok, err := s.ingredientRepo.DecrementStockGuarded(ctx, input.IngredientID, input.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return apperror.NewInsufficientStockError(fmt.Sprintf("Insufficient stock for %s", ingredient.Name))
			}
		}

		log = &entity.IngredientStockLog{
			IngredientID:    input.IngredientID,
			OutletID:        input.OutletID,
			Quantity:        input.Quantity,
			Type:            input.Type,
			TransactionDate: date,
			Remark:          input.Remark,
		}
		return s.stockLogRepo.Create(ctx, log)
	})
	if err != nil {
		return nil, err
	}
	return log, nil
}

// CreateIngredientInput represents the create ingredient input
type CreateIngredientInput struct {
	OutletID uuid.UUID
	Name     string
	Unit     string
	StockQty float64
}

// CreateIngredient registers a new ingredient for an outlet
func (s *InventoryService) CreateIngredient(ctx context.Context, input *CreateIngredientInput) (*entity.Ingredient, error) {
	if input.StockQty < 0 {
		return nil, apperror.NewBadRequestError("Initial stock must not be negative")
	}
	ingredient := &entity.Ingredient{
		OutletID: input.OutletID,
		Name:     input.Name,
		Unit:     input.Unit,
		StockQty: input.StockQty,
	}
	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// UpdateIngredientInput represents the update ingredient input. Stock is
// not editable here; movements go through the ledger.
type UpdateIngredientInput struct {
	Name *string
	Unit *string
}

// UpdateIngredient updates an ingredient's descriptive fields
func (s *InventoryService) UpdateIngredient(ctx context.Context, id uuid.UUID, input *UpdateIngredientInput) (*entity.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NewNotFoundError("Ingredient")
	}
	if input.Name != nil {
		ingredient.Name = *input.Name
	}
	if input.Unit != nil {
		ingredient.Unit = *input.Unit
	}
	if err := s.ingredientRepo.Update(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// DeleteIngredient soft-deletes an ingredient
func (s *InventoryService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ingredient == nil {
		return apperror.NewNotFoundError("Ingredient")
	}
	return s.ingredientRepo.Delete(ctx, id)
}

// GetIngredient returns one ingredient
func (s *InventoryService) GetIngredient(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NewNotFoundError("Ingredient")
	}
	return ingredient, nil
}

// ListIngredients returns a paginated list of an outlet's ingredients
func (s *InventoryService) ListIngredients(ctx context.Context, outletID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Ingredient], error) {
	if params == nil {
		params = pagination.DefaultPagination()
	}
	params.Validate()
	ingredients, total, err := s.ingredientRepo.List(ctx, outletID, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(ingredients,
		pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListStockLogs returns a paginated slice of the stock ledger
func (s *InventoryService) ListStockLogs(ctx context.Context, params *repository.StockLogFilterParams) (*pagination.PaginatedResult[entity.IngredientStockLog], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	logs, total, err := s.stockLogRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(logs,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
