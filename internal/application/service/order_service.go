package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
	"github.com/restopos/restopos-api/pkg/pagination"
)

// OrderService handles order creation and item mutations
type OrderService struct {
	txManager     repository.TxManager
	orderRepo     repository.OrderRepository
	orderTypeRepo repository.OrderTypeRepository
	foodRepo      repository.FoodRepository
	priceRepo     repository.FoodPriceRepository
	optionRepo    repository.FoodOptionRepository
	tableRepo     repository.DiningTableRepository
	counterRepo   repository.CounterRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	txManager repository.TxManager,
	orderRepo repository.OrderRepository,
	orderTypeRepo repository.OrderTypeRepository,
	foodRepo repository.FoodRepository,
	priceRepo repository.FoodPriceRepository,
	optionRepo repository.FoodOptionRepository,
	tableRepo repository.DiningTableRepository,
	counterRepo repository.CounterRepository,
) *OrderService {
	return &OrderService{
		txManager:     txManager,
		orderRepo:     orderRepo,
		orderTypeRepo: orderTypeRepo,
		foodRepo:      foodRepo,
		priceRepo:     priceRepo,
		optionRepo:    optionRepo,
		tableRepo:     tableRepo,
		counterRepo:   counterRepo,
	}
}

// OrderItemOptionInput is one add-on under a new order item
type OrderItemOptionInput struct {
	FoodOptionID uuid.UUID
	Quantity     int
}

// OrderItemInput is one line of a new order or an add-items request
type OrderItemInput struct {
	FoodID   uuid.UUID
	Quantity int
	Remark   string
	Options  []OrderItemOptionInput
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	OutletID      uuid.UUID
	OrderTypeID   uuid.UUID
	WaiterID      uuid.UUID
	DiningTableID *uuid.UUID
	Items         []OrderItemInput
}

// UpdateOrderItemOptionInput mutates one option line. A nil Quantity leaves
// the quantity unchanged.
type UpdateOrderItemOptionInput struct {
	OptionID uuid.UUID
	Quantity *int
	Cancel   bool
}

// UpdateOrderItemInput mutates one item line. Cancel collapses the line and
// all of its options to zero.
type UpdateOrderItemInput struct {
	ItemID   uuid.UUID
	Quantity *int
	Cancel   bool
	Options  []UpdateOrderItemOptionInput
}

// orderLinesTotal sums the active item lines. Item totals already carry
// their active option totals.
func orderLinesTotal(items []entity.OrderItem) int64 {
	var sum int64
	for i := range items {
		if items[i].Status == enum.ItemStatusActive {
			sum += items[i].TotalPrice
		}
	}
	return sum
}

// buildItems resolves price snapshots for the requested lines against the
// order type's price book. Every food must have a configured price for the
// order type; there is no fallback.
func (s *OrderService) buildItems(ctx context.Context, outletID, orderTypeID uuid.UUID, inputs []OrderItemInput) ([]entity.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}

	foodIDs := make([]uuid.UUID, 0, len(inputs))
	for _, in := range inputs {
		if in.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Item quantity must be positive")
		}
		foodIDs = append(foodIDs, in.FoodID)
	}

	foods, err := s.foodRepo.GetByIDs(ctx, foodIDs)
	if err != nil {
		return nil, err
	}
	foodMap := make(map[uuid.UUID]*entity.Food, len(foods))
	for i := range foods {
		foodMap[foods[i].ID] = &foods[i]
	}

	var optionIDs []uuid.UUID
	for _, in := range inputs {
		for _, opt := range in.Options {
			if opt.Quantity <= 0 {
				return nil, apperror.NewBadRequestError("Option quantity must be positive")
			}
			optionIDs = append(optionIDs, opt.FoodOptionID)
		}
	}
	optionMap := make(map[uuid.UUID]*entity.FoodOption)
	if len(optionIDs) > 0 {
		options, err := s.optionRepo.GetByIDs(ctx, optionIDs)
		if err != nil {
			return nil, err
		}
		for i := range options {
			optionMap[options[i].ID] = &options[i]
		}
	}

	items := make([]entity.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		food, exists := foodMap[in.FoodID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Food %s", in.FoodID))
		}
		if food.OutletID != outletID {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Food %s does not belong to this outlet", food.Name))
		}
		if !food.IsActive {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("Food %s is not available", food.Name))
		}

		price, err := s.priceRepo.GetPrice(ctx, in.FoodID, orderTypeID)
		if err != nil {
			return nil, err
		}
		if price == nil {
			return nil, apperror.NewBadRequestError(fmt.Sprintf("No price configured for %s on this order type", food.Name))
		}

		item := entity.OrderItem{
			FoodID:    in.FoodID,
			Quantity:  in.Quantity,
			UnitPrice: price.Price,
			Status:    enum.ItemStatusActive,
			Remark:    in.Remark,
		}

		var optionsTotal int64
		for _, optIn := range in.Options {
			opt, exists := optionMap[optIn.FoodOptionID]
			if !exists {
				return nil, apperror.NewNotFoundError(fmt.Sprintf("Food option %s", optIn.FoodOptionID))
			}
			if opt.FoodID != in.FoodID {
				return nil, apperror.NewBadRequestError(fmt.Sprintf("Option %s does not belong to %s", opt.Name, food.Name))
			}
			if !opt.IsActive {
				return nil, apperror.NewBadRequestError(fmt.Sprintf("Option %s is not available", opt.Name))
			}
			optionsTotal += opt.ExtraPrice * int64(optIn.Quantity)
			item.Options = append(item.Options, entity.OrderItemOption{
				FoodOptionID: optIn.FoodOptionID,
				Quantity:     optIn.Quantity,
				UnitPrice:    opt.ExtraPrice,
				TotalPrice:   opt.ExtraPrice * int64(optIn.Quantity),
				Status:       enum.ItemStatusActive,
			})
		}
		item.TotalPrice = price.Price*int64(in.Quantity) + optionsTotal

		items = append(items, item)
	}

	return items, nil
}

// CreateOrder creates a new order with its items, allocating the next order
// number for the outlet inside the same transaction.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	orderType, err := s.orderTypeRepo.GetByID(ctx, input.OrderTypeID)
	if err != nil {
		return nil, err
	}
	if orderType == nil {
		return nil, apperror.NewNotFoundError("Order type")
	}

	if orderType.Name == entity.OrderTypeDineIn {
		if input.DiningTableID == nil {
			return nil, apperror.NewBadRequestError("Dine In orders require a dining table")
		}
		table, err := s.tableRepo.GetByID(ctx, *input.DiningTableID)
		if err != nil {
			return nil, err
		}
		if table == nil {
			return nil, apperror.NewNotFoundError("Dining table")
		}
		if table.OutletID != input.OutletID {
			return nil, apperror.NewBadRequestError("Dining table does not belong to this outlet")
		}
	} else {
		input.DiningTableID = nil
	}

	var order *entity.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		items, err := s.buildItems(ctx, input.OutletID, input.OrderTypeID, input.Items)
		if err != nil {
			return err
		}

		number, err := s.counterRepo.NextOrderNumber(ctx, input.OutletID)
		if err != nil {
			return err
		}

		subtotal := orderLinesTotal(items)
		order = &entity.Order{
			OrderNumber:   entity.FormatOrderNumber(number),
			OutletID:      input.OutletID,
			OrderTypeID:   input.OrderTypeID,
			WaiterID:      input.WaiterID,
			DiningTableID: input.DiningTableID,
			Status:        enum.OrderStatusPending,
			Subtotal:      subtotal,
			Total:         subtotal,
		}
		if err := s.orderRepo.Create(ctx, order); err != nil {
			return err
		}

		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := s.orderRepo.CreateItems(ctx, items); err != nil {
			return err
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// AddItems appends new lines to an existing order and adjusts the order
// totals by the delta of the added lines. The optimistic version check
// rejects the write when a concurrent mutation landed first.
func (s *OrderService) AddItems(ctx context.Context, orderID uuid.UUID, inputs []OrderItemInput) (*entity.Order, error) {
	var updated *entity.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.GetWithItems(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}
		if !order.Status.IsMutable() {
			return apperror.NewStateError(fmt.Sprintf("Order %s can no longer be modified", order.OrderNumber))
		}

		items, err := s.buildItems(ctx, order.OutletID, order.OrderTypeID, inputs)
		if err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := s.orderRepo.CreateItems(ctx, items); err != nil {
			return err
		}

		delta := orderLinesTotal(items)
		ok, err := s.orderRepo.ApplyTotalsDelta(ctx, order.ID, order.Version, delta)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewConflictError("Order was modified concurrently, retry the request")
		}

		updated, err = s.orderRepo.GetWithItems(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// BatchUpdateItems applies quantity changes and cancellations to existing
// lines in one transaction, adjusting the order totals by the net delta.
// Canceling an item cancels all of its options with it. Surviving lines are
// repriced against the current price book for the order's type, so a price
// change between placement and edit lands on the edited line.
func (s *OrderService) BatchUpdateItems(ctx context.Context, orderID uuid.UUID, updates []UpdateOrderItemInput) (*entity.Order, error) {
	if len(updates) == 0 {
		return nil, apperror.NewBadRequestError("No item updates provided")
	}

	var updated *entity.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.GetWithItems(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return apperror.NewNotFoundError("Order")
		}
		if !order.Status.IsMutable() {
			return apperror.NewStateError(fmt.Sprintf("Order %s can no longer be modified", order.OrderNumber))
		}

		itemMap := make(map[uuid.UUID]*entity.OrderItem, len(order.Items))
		for i := range order.Items {
			itemMap[order.Items[i].ID] = &order.Items[i]
		}

		var delta int64
		for _, upd := range updates {
			item, exists := itemMap[upd.ItemID]
			if !exists {
				return apperror.NewNotFoundError(fmt.Sprintf("Order item %s", upd.ItemID))
			}
			if item.Status == enum.ItemStatusCanceled {
				return apperror.NewStateError("Cannot modify a canceled item")
			}

			before := item.TotalPrice

			optMap := make(map[uuid.UUID]*entity.OrderItemOption, len(item.Options))
			for i := range item.Options {
				optMap[item.Options[i].ID] = &item.Options[i]
			}

			for _, optUpd := range upd.Options {
				opt, exists := optMap[optUpd.OptionID]
				if !exists {
					return apperror.NewNotFoundError(fmt.Sprintf("Order item option %s", optUpd.OptionID))
				}
				if opt.Status == enum.ItemStatusCanceled {
					return apperror.NewStateError("Cannot modify a canceled option")
				}
				if optUpd.Cancel {
					opt.Status = enum.ItemStatusCanceled
					opt.Quantity = 0
					opt.TotalPrice = 0
				} else if optUpd.Quantity != nil {
					if *optUpd.Quantity <= 0 {
						return apperror.NewBadRequestError("Option quantity must be positive")
					}
					opt.Quantity = *optUpd.Quantity
					opt.TotalPrice = opt.UnitPrice * int64(*optUpd.Quantity)
				}
				if err := s.orderRepo.UpdateItemOption(ctx, opt); err != nil {
					return err
				}
			}

			if upd.Cancel {
				item.Status = enum.ItemStatusCanceled
				item.Quantity = 0
				item.TotalPrice = 0
				for i := range item.Options {
					opt := &item.Options[i]
					if opt.Status != enum.ItemStatusActive {
						continue
					}
					opt.Status = enum.ItemStatusCanceled
					opt.Quantity = 0
					opt.TotalPrice = 0
					if err := s.orderRepo.UpdateItemOption(ctx, opt); err != nil {
						return err
					}
				}
			} else {
				if upd.Quantity != nil {
					if *upd.Quantity <= 0 {
						return apperror.NewBadRequestError("Item quantity must be positive")
					}
					item.Quantity = *upd.Quantity
				}

				price, err := s.priceRepo.GetPrice(ctx, item.FoodID, order.OrderTypeID)
				if err != nil {
					return err
				}
				if price == nil {
					return apperror.NewBadRequestError("No price configured for this food on the order type")
				}
				item.UnitPrice = price.Price
				item.TotalPrice = price.Price*int64(item.Quantity) + item.ActiveOptionsTotal()
			}

			if err := s.orderRepo.UpdateItem(ctx, item); err != nil {
				return err
			}

			delta += item.TotalPrice - before
		}

		ok, err := s.orderRepo.ApplyTotalsDelta(ctx, order.ID, order.Version, delta)
		if err != nil {
			return err
		}
		if !ok {
			return apperror.NewConflictError("Order was modified concurrently, retry the request")
		}

		updated, err = s.orderRepo.GetWithItems(ctx, orderID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateOrderStatusInput represents a kitchen/floor status change request
type UpdateOrderStatusInput struct {
	OrderID   uuid.UUID
	Status    enum.OrderStatus
	ActorID   uuid.UUID
	ActorRole enum.Role
}

// UpdateOrderStatus moves an order between PENDING and SERVED. PAID and VOID
// are owned by the billing pipeline and cannot be set here. Waiters may only
// touch their own orders.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, input *UpdateOrderStatusInput) (*entity.Order, error) {
	if input.Status != enum.OrderStatusPending && input.Status != enum.OrderStatusServed {
		return nil, apperror.NewBadRequestError("Status can only be set to PENDING or SERVED here")
	}

	order, err := s.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !order.Status.IsMutable() {
		return nil, apperror.NewStateError(fmt.Sprintf("Order %s can no longer be modified", order.OrderNumber))
	}
	if input.ActorRole == enum.RoleWaiter && order.WaiterID != input.ActorID {
		return nil, apperror.NewForbiddenError("Waiters may only update their own orders")
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, input.Status); err != nil {
		return nil, err
	}
	order.Status = input.Status
	return order, nil
}

// GetOrder returns an order with its items and options
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// ListOrders returns a paginated list of orders matching the filters
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(orders,
		pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}
