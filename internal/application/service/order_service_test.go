package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/pkg/apperror"
)

type orderFixture struct {
	svc        *OrderService
	orderRepo  *fakeOrderRepo
	priceRepo  *fakePriceRepo
	outletID   uuid.UUID
	dineIn     *entity.OrderType
	takeAway   *entity.OrderType
	tableID    uuid.UUID
	nasiGoreng *entity.Food
	esTeh      *entity.Food
	extraEgg   *entity.FoodOption
}

func newOrderFixture() *orderFixture {
	outletID := uuid.New()
	dineIn := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeDineIn}
	takeAway := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeTakeAway}

	nasiGoreng := &entity.Food{ID: uuid.New(), OutletID: outletID, Name: "Nasi Goreng", IsActive: true}
	esTeh := &entity.Food{ID: uuid.New(), OutletID: outletID, Name: "Es Teh", IsActive: true}
	extraEgg := &entity.FoodOption{ID: uuid.New(), FoodID: nasiGoreng.ID, Name: "Extra Egg", ExtraPrice: 3000, IsActive: true}

	table := &entity.DiningTable{ID: uuid.New(), OutletID: outletID, Name: "T1"}

	orderRepo := newFakeOrderRepo()
	priceRepo := newFakePriceRepo()
	priceRepo.set(nasiGoreng.ID, dineIn.ID, 8000)
	priceRepo.set(esTeh.ID, dineIn.ID, 3000)
	priceRepo.set(nasiGoreng.ID, takeAway.ID, 9000)

	svc := NewOrderService(
		fakeTxManager{},
		orderRepo,
		newFakeOrderTypeRepo(dineIn, takeAway),
		newFakeFoodRepo(nasiGoreng, esTeh),
		priceRepo,
		newFakeOptionRepo(extraEgg),
		newFakeTableRepo(table),
		&fakeCounterRepo{},
	)

	return &orderFixture{
		svc:        svc,
		orderRepo:  orderRepo,
		priceRepo:  priceRepo,
		outletID:   outletID,
		dineIn:     dineIn,
		takeAway:   takeAway,
		tableID:    table.ID,
		nasiGoreng: nasiGoreng,
		esTeh:      esTeh,
		extraEgg:   extraEgg,
	}
}

func errorCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	return apperror.GetAppError(err).Code
}

func TestCreateOrderComputesTotals(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		OutletID:      f.outletID,
		OrderTypeID:   f.dineIn.ID,
		WaiterID:      uuid.New(),
		DiningTableID: &f.tableID,
		Items: []OrderItemInput{
			{FoodID: f.nasiGoreng.ID, Quantity: 2, Options: []OrderItemOptionInput{
				{FoodOptionID: f.extraEgg.ID, Quantity: 1},
			}},
			{FoodID: f.esTeh.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// 2x8000 + 1x3000 option + 1x3000
	if order.Subtotal != 22000 {
		t.Fatalf("expected subtotal 22000, got %d", order.Subtotal)
	}
	if order.Total != 22000 {
		t.Fatalf("expected total 22000, got %d", order.Total)
	}
	if order.OrderNumber != "0001" {
		t.Fatalf("expected order number 0001, got %s", order.OrderNumber)
	}
	if order.Status != enum.OrderStatusPending {
		t.Fatalf("expected status PENDING, got %s", order.Status)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}
	// Item totals carry the active option totals: 2x8000 + 1x3000.
	if order.Items[0].UnitPrice != 8000 || order.Items[0].TotalPrice != 19000 {
		t.Fatalf("unexpected price snapshot: unit %d total %d", order.Items[0].UnitPrice, order.Items[0].TotalPrice)
	}
	if order.Items[1].TotalPrice != 3000 {
		t.Fatalf("expected item total 3000, got %d", order.Items[1].TotalPrice)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	f := newOrderFixture()
	waiterID := uuid.New()

	cases := []struct {
		name  string
		input *CreateOrderInput
		code  int
	}{
		{
			name: "dine in without table",
			input: &CreateOrderInput{
				OutletID:    f.outletID,
				OrderTypeID: f.dineIn.ID,
				WaiterID:    waiterID,
				Items:       []OrderItemInput{{FoodID: f.nasiGoreng.ID, Quantity: 1}},
			},
			code: http.StatusBadRequest,
		},
		{
			name: "no items",
			input: &CreateOrderInput{
				OutletID:      f.outletID,
				OrderTypeID:   f.dineIn.ID,
				WaiterID:      waiterID,
				DiningTableID: &f.tableID,
			},
			code: http.StatusBadRequest,
		},
		{
			name: "zero quantity",
			input: &CreateOrderInput{
				OutletID:      f.outletID,
				OrderTypeID:   f.dineIn.ID,
				WaiterID:      waiterID,
				DiningTableID: &f.tableID,
				Items:         []OrderItemInput{{FoodID: f.nasiGoreng.ID, Quantity: 0}},
			},
			code: http.StatusBadRequest,
		},
		{
			name: "no price for order type",
			input: &CreateOrderInput{
				OutletID:    f.outletID,
				OrderTypeID: f.takeAway.ID,
				WaiterID:    waiterID,
				Items:       []OrderItemInput{{FoodID: f.esTeh.ID, Quantity: 1}},
			},
			code: http.StatusBadRequest,
		},
		{
			name: "unknown order type",
			input: &CreateOrderInput{
				OutletID:    f.outletID,
				OrderTypeID: uuid.New(),
				WaiterID:    waiterID,
				Items:       []OrderItemInput{{FoodID: f.nasiGoreng.ID, Quantity: 1}},
			},
			code: http.StatusNotFound,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateOrder(context.Background(), tc.input)
			if got := errorCode(t, err); got != tc.code {
				t.Fatalf("expected code %d, got %d", tc.code, got)
			}
		})
	}
}

func TestCreateOrderTakeAwayDropsTable(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		OutletID:      f.outletID,
		OrderTypeID:   f.takeAway.ID,
		WaiterID:      uuid.New(),
		DiningTableID: &f.tableID,
		Items:         []OrderItemInput{{FoodID: f.nasiGoreng.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.DiningTableID != nil {
		t.Fatal("expected dining table to be dropped for take away")
	}
	if order.Subtotal != 9000 {
		t.Fatalf("expected take away price 9000, got %d", order.Subtotal)
	}
}

func TestAddItemsAdjustsTotalsByDelta(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		OutletID:      f.outletID,
		OrderTypeID:   f.dineIn.ID,
		WaiterID:      uuid.New(),
		DiningTableID: &f.tableID,
		Items:         []OrderItemInput{{FoodID: f.nasiGoreng.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := f.svc.AddItems(context.Background(), order.ID, []OrderItemInput{
		{FoodID: f.esTeh.ID, Quantity: 2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Subtotal != 14000 {
		t.Fatalf("expected subtotal 14000, got %d", updated.Subtotal)
	}
	if len(updated.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(updated.Items))
	}
}

func TestAddItemsConcurrentConflict(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		OutletID:      f.outletID,
		OrderTypeID:   f.dineIn.ID,
		WaiterID:      uuid.New(),
		DiningTableID: &f.tableID,
		Items:         []OrderItemInput{{FoodID: f.nasiGoreng.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.orderRepo.forceConflict = true
	_, err = f.svc.AddItems(context.Background(), order.ID, []OrderItemInput{
		{FoodID: f.esTeh.ID, Quantity: 1},
	})
	if got := errorCode(t, err); got != http.StatusConflict {
		t.Fatalf("expected code 409, got %d", got)
	}
}

func TestBatchUpdateItemsCancelCascadesToOptions(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		OutletID:      f.outletID,
		OrderTypeID:   f.dineIn.ID,
		WaiterID:      uuid.New(),
		DiningTableID: &f.tableID,
		Items: []OrderItemInput{
			{FoodID: f.nasiGoreng.ID, Quantity: 1, Options: []OrderItemOptionInput{
				{FoodOptionID: f.extraEgg.ID, Quantity: 1},
			}},
			{FoodID: f.esTeh.ID, Quantity: 1},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 8000 + 3000 option + 3000
	if order.Subtotal != 14000 {
		t.Fatalf("expected subtotal 14000, got %d", order.Subtotal)
	}

	updated, err := f.svc.BatchUpdateItems(context.Background(), order.ID, []UpdateOrderItemInput{
		{ItemID: order.Items[0].ID, Cancel: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Subtotal != 3000 {
		t.Fatalf("expected subtotal 3000 after cancel, got %d", updated.Subtotal)
	}

	canceled := updated.Items[0]
	if canceled.Status != enum.ItemStatusCanceled || canceled.Quantity != 0 || canceled.TotalPrice != 0 {
		t.Fatalf("expected collapsed canceled item, got status %s qty %d total %d", canceled.Status, canceled.Quantity, canceled.TotalPrice)
	}
	if canceled.Options[0].Status != enum.ItemStatusCanceled {
		t.Fatal("expected option canceled with its item")
	}
}

func TestBatchUpdateItemsQuantityChange(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		OutletID:      f.outletID,
		OrderTypeID:   f.dineIn.ID,
		WaiterID:      uuid.New(),
		DiningTableID: &f.tableID,
		Items:         []OrderItemInput{{FoodID: f.nasiGoreng.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	qty := 3
	updated, err := f.svc.BatchUpdateItems(context.Background(), order.ID, []UpdateOrderItemInput{
		{ItemID: order.Items[0].ID, Quantity: &qty},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Subtotal != 24000 {
		t.Fatalf("expected subtotal 24000, got %d", updated.Subtotal)
	}

	// A second mutation against the already-canceled line must fail.
	if _, err := f.svc.BatchUpdateItems(context.Background(), order.ID, []UpdateOrderItemInput{
		{ItemID: order.Items[0].ID, Cancel: true},
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err = f.svc.BatchUpdateItems(context.Background(), order.ID, []UpdateOrderItemInput{
		{ItemID: order.Items[0].ID, Quantity: &qty},
	})
	if got := errorCode(t, err); got != http.StatusBadRequest {
		t.Fatalf("expected code 400, got %d", got)
	}
}

func TestBatchUpdateItemsRepricesAgainstCurrentPriceBook(t *testing.T) {
	f := newOrderFixture()

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		OutletID:      f.outletID,
		OrderTypeID:   f.dineIn.ID,
		WaiterID:      uuid.New(),
		DiningTableID: &f.tableID,
		Items:         []OrderItemInput{{FoodID: f.nasiGoreng.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Subtotal != 8000 {
		t.Fatalf("expected subtotal 8000, got %d", order.Subtotal)
	}

	// The kitchen reprices the dish between placement and the edit.
	f.priceRepo.set(f.nasiGoreng.ID, f.dineIn.ID, 5000)

	qty := 3
	updated, err := f.svc.BatchUpdateItems(context.Background(), order.ID, []UpdateOrderItemInput{
		{ItemID: order.Items[0].ID, Quantity: &qty},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Subtotal != 15000 {
		t.Fatalf("expected subtotal 15000 at the current price, got %d", updated.Subtotal)
	}
	if updated.Items[0].UnitPrice != 5000 || updated.Items[0].TotalPrice != 15000 {
		t.Fatalf("expected repriced line 3x5000, got unit %d total %d", updated.Items[0].UnitPrice, updated.Items[0].TotalPrice)
	}

	// Without a price for the order type the edit must fail.
	delete(f.priceRepo.prices, priceKey{f.nasiGoreng.ID, f.dineIn.ID})
	_, err = f.svc.BatchUpdateItems(context.Background(), order.ID, []UpdateOrderItemInput{
		{ItemID: order.Items[0].ID, Quantity: &qty},
	})
	if got := errorCode(t, err); got != http.StatusBadRequest {
		t.Fatalf("expected code 400, got %d", got)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	f := newOrderFixture()
	waiterID := uuid.New()

	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		OutletID:      f.outletID,
		OrderTypeID:   f.dineIn.ID,
		WaiterID:      waiterID,
		DiningTableID: &f.tableID,
		Items:         []OrderItemInput{{FoodID: f.nasiGoreng.ID, Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("waiter cannot touch another waiter's order", func(t *testing.T) {
		_, err := f.svc.UpdateOrderStatus(context.Background(), &UpdateOrderStatusInput{
			OrderID:   order.ID,
			Status:    enum.OrderStatusServed,
			ActorID:   uuid.New(),
			ActorRole: enum.RoleWaiter,
		})
		if got := errorCode(t, err); got != http.StatusForbidden {
			t.Fatalf("expected code 403, got %d", got)
		}
	})

	t.Run("paid is not settable here", func(t *testing.T) {
		_, err := f.svc.UpdateOrderStatus(context.Background(), &UpdateOrderStatusInput{
			OrderID:   order.ID,
			Status:    enum.OrderStatusPaid,
			ActorID:   waiterID,
			ActorRole: enum.RoleWaiter,
		})
		if got := errorCode(t, err); got != http.StatusBadRequest {
			t.Fatalf("expected code 400, got %d", got)
		}
	})

	t.Run("own order to served", func(t *testing.T) {
		updated, err := f.svc.UpdateOrderStatus(context.Background(), &UpdateOrderStatusInput{
			OrderID:   order.ID,
			Status:    enum.OrderStatusServed,
			ActorID:   waiterID,
			ActorRole: enum.RoleWaiter,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != enum.OrderStatusServed {
			t.Fatalf("expected status SERVED, got %s", updated.Status)
		}
	})
}
