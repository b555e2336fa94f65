package service

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/pkg/utils"
)

type billingFixture struct {
	svc            *BillingService
	orderRepo      *fakeOrderRepo
	billingRepo    *fakeBillingRepo
	ingredientRepo *fakeIngredientRepo
	stockLogRepo   *fakeStockLogRepo
	discountRepo   *fakeDiscountRepo
	outletID       uuid.UUID
	rice           *entity.Ingredient
	egg            *entity.Ingredient
}

func newBillingFixture() *billingFixture {
	outletID := uuid.New()
	rice := &entity.Ingredient{ID: uuid.New(), OutletID: outletID, Name: "Rice", Unit: "kg", StockQty: 10}
	egg := &entity.Ingredient{ID: uuid.New(), OutletID: outletID, Name: "Egg", Unit: "pcs", StockQty: 30}

	orderRepo := newFakeOrderRepo()
	billingRepo := newFakeBillingRepo()
	ingredientRepo := newFakeIngredientRepo(rice, egg)
	stockLogRepo := &fakeStockLogRepo{}
	discountRepo := &fakeDiscountRepo{}
	foodIngredientRepo := &fakeFoodIngredientRepo{}

	inventory := NewInventoryService(fakeTxManager{}, ingredientRepo, stockLogRepo, foodIngredientRepo)
	svc := NewBillingService(
		fakeTxManager{},
		billingRepo,
		orderRepo,
		&fakeCounterRepo{},
		NewDiscountResolver(discountRepo),
		ZeroTaxPolicy{},
		inventory,
	)

	return &billingFixture{
		svc:            svc,
		orderRepo:      orderRepo,
		billingRepo:    billingRepo,
		ingredientRepo: ingredientRepo,
		stockLogRepo:   stockLogRepo,
		discountRepo:   discountRepo,
		outletID:       outletID,
		rice:           rice,
		egg:            egg,
	}
}

// servedOrder seeds a SERVED order with one active 25000 line whose food
// consumes 0.5 rice and 2 egg per unit, plus a canceled line that must not
// count toward billing or deduction.
func (f *billingFixture) servedOrder(t *testing.T, orderType *entity.OrderType) *entity.Order {
	t.Helper()

	foodID := uuid.New()
	canceledFoodID := uuid.New()
	inventory := f.svc.inventory
	inventory.foodIngredientRepo.(*fakeFoodIngredientRepo).edges = append(
		inventory.foodIngredientRepo.(*fakeFoodIngredientRepo).edges,
		entity.FoodIngredient{FoodID: foodID, IngredientID: f.rice.ID, QuantityPerUnit: 0.5},
		entity.FoodIngredient{FoodID: foodID, IngredientID: f.egg.ID, QuantityPerUnit: 2},
	)

	order := &entity.Order{
		ID:          uuid.New(),
		OrderNumber: "0001",
		OutletID:    f.outletID,
		OrderTypeID: orderType.ID,
		OrderType:   *orderType,
		WaiterID:    uuid.New(),
		Status:      enum.OrderStatusServed,
		Subtotal:    25000,
		Total:       25000,
		CreatedAt:   time.Date(2026, 3, 14, 22, 30, 0, 0, time.UTC),
	}
	order.Items = []entity.OrderItem{
		{ID: uuid.New(), OrderID: order.ID, FoodID: foodID, Quantity: 2, UnitPrice: 12500, TotalPrice: 25000, Status: enum.ItemStatusActive},
		{ID: uuid.New(), OrderID: order.ID, FoodID: canceledFoodID, Quantity: 0, UnitPrice: 5000, TotalPrice: 0, Status: enum.ItemStatusCanceled},
	}
	if err := f.orderRepo.Create(context.Background(), order); err != nil {
		t.Fatalf("seed order: %v", err)
	}
	return order
}

func TestCreateBillingSettlesOrder(t *testing.T) {
	f := newBillingFixture()
	dineIn := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeDineIn}
	order := f.servedOrder(t, dineIn)

	billing, err := f.svc.CreateBilling(context.Background(), &CreateBillingInput{
		OrderID:        order.ID,
		PaymentType:    enum.PaymentTypeCash,
		AmountPaid:     25000,
		ManualDiscount: 2000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if billing.Subtotal != 25000 {
		t.Fatalf("expected subtotal 25000, got %d", billing.Subtotal)
	}
	if billing.Discount != 2000 {
		t.Fatalf("expected discount 2000, got %d", billing.Discount)
	}
	if billing.Total != 23000 {
		t.Fatalf("expected total 23000, got %d", billing.Total)
	}
	if billing.ChangeGiven != 2000 {
		t.Fatalf("expected change 2000, got %d", billing.ChangeGiven)
	}
	if billing.ReceiptNumber != "000001" {
		t.Fatalf("expected receipt 000001, got %s", billing.ReceiptNumber)
	}
	if billing.Status != enum.BillingStatusPaid {
		t.Fatalf("expected status PAID, got %s", billing.Status)
	}
	if order.Status != enum.OrderStatusPaid {
		t.Fatalf("expected order PAID, got %s", order.Status)
	}

	// 2 units: 1.0 rice and 4 egg deducted.
	if f.rice.StockQty != 9 {
		t.Fatalf("expected rice stock 9, got %v", f.rice.StockQty)
	}
	if f.egg.StockQty != 26 {
		t.Fatalf("expected egg stock 26, got %v", f.egg.StockQty)
	}
	if len(f.stockLogRepo.logs) != 2 {
		t.Fatalf("expected 2 ledger rows, got %d", len(f.stockLogRepo.logs))
	}
	wantDate := utils.UTCMidnight(order.CreatedAt)
	for _, log := range f.stockLogRepo.logs {
		if log.Type != enum.StockLogTypeOutboundNM {
			t.Fatalf("expected OUTBOUND_NM, got %s", log.Type)
		}
		if !log.TransactionDate.Equal(wantDate) {
			t.Fatalf("expected transaction date %v, got %v", wantDate, log.TransactionDate)
		}
		if log.OrderID == nil || *log.OrderID != order.ID {
			t.Fatal("expected ledger row linked to the order")
		}
	}
}

func TestCreateBillingRejections(t *testing.T) {
	f := newBillingFixture()
	dineIn := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeDineIn}
	order := f.servedOrder(t, dineIn)

	pending := f.servedOrder(t, dineIn)
	pending.Status = enum.OrderStatusPending

	cases := []struct {
		name  string
		input *CreateBillingInput
		code  int
	}{
		{
			name:  "unknown payment type",
			input: &CreateBillingInput{OrderID: order.ID, PaymentType: "CHEQUE", AmountPaid: 25000},
			code:  http.StatusBadRequest,
		},
		{
			name:  "negative payment",
			input: &CreateBillingInput{OrderID: order.ID, PaymentType: enum.PaymentTypeCash, AmountPaid: -1},
			code:  http.StatusBadRequest,
		},
		{
			name:  "order not found",
			input: &CreateBillingInput{OrderID: uuid.New(), PaymentType: enum.PaymentTypeCash, AmountPaid: 25000},
			code:  http.StatusNotFound,
		},
		{
			name:  "order not served yet",
			input: &CreateBillingInput{OrderID: pending.ID, PaymentType: enum.PaymentTypeCash, AmountPaid: 25000},
			code:  http.StatusBadRequest,
		},
		{
			name:  "insufficient payment",
			input: &CreateBillingInput{OrderID: order.ID, PaymentType: enum.PaymentTypeCash, AmountPaid: 24000},
			code:  http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.CreateBilling(context.Background(), tc.input)
			if got := errorCode(t, err); got != tc.code {
				t.Fatalf("expected code %d, got %d", tc.code, got)
			}
		})
	}
}

func TestCreateBillingTwiceConflicts(t *testing.T) {
	f := newBillingFixture()
	dineIn := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeDineIn}
	order := f.servedOrder(t, dineIn)

	input := &CreateBillingInput{OrderID: order.ID, PaymentType: enum.PaymentTypeCash, AmountPaid: 25000}
	if _, err := f.svc.CreateBilling(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := f.svc.CreateBilling(context.Background(), input)
	if got := errorCode(t, err); got != http.StatusConflict {
		t.Fatalf("expected code 409, got %d", got)
	}
}

func TestCreateBillingRuleBasedDiscount(t *testing.T) {
	f := newBillingFixture()
	goFood := &entity.OrderType{ID: uuid.New(), Name: "GoFood"}
	f.discountRepo.rules = append(f.discountRepo.rules, &entity.OrderTypeDiscount{
		OutletID:    f.outletID,
		OrderTypeID: goFood.ID,
		Percentage:  10,
		IsActive:    true,
	})
	order := f.servedOrder(t, goFood)

	// The active rule wins; the cashier-entered amount is ignored.
	billing, err := f.svc.CreateBilling(context.Background(), &CreateBillingInput{
		OrderID:        order.ID,
		PaymentType:    enum.PaymentTypeQRIS,
		AmountPaid:     22500,
		ManualDiscount: 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if billing.Discount != 2500 {
		t.Fatalf("expected discount 2500, got %d", billing.Discount)
	}
	if billing.Total != 22500 {
		t.Fatalf("expected total 22500, got %d", billing.Total)
	}
}

func TestCreateBillingNoRuleFallsBackToManualDiscount(t *testing.T) {
	f := newBillingFixture()
	shopeeFood := &entity.OrderType{ID: uuid.New(), Name: "ShopeeFood"}
	order := f.servedOrder(t, shopeeFood)

	billing, err := f.svc.CreateBilling(context.Background(), &CreateBillingInput{
		OrderID:        order.ID,
		PaymentType:    enum.PaymentTypeQRIS,
		AmountPaid:     23000,
		ManualDiscount: 2000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if billing.Discount != 2000 {
		t.Fatalf("expected discount 2000, got %d", billing.Discount)
	}
	if billing.Total != 23000 {
		t.Fatalf("expected total 23000, got %d", billing.Total)
	}
}

func TestCreateBillingDuplicateRaceConflicts(t *testing.T) {
	f := newBillingFixture()
	dineIn := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeDineIn}
	order := f.servedOrder(t, dineIn)

	// The application-level duplicate check passes but the insert loses
	// the race against a concurrent settlement.
	f.billingRepo.raceDuplicate = true
	_, err := f.svc.CreateBilling(context.Background(), &CreateBillingInput{
		OrderID:     order.ID,
		PaymentType: enum.PaymentTypeCash,
		AmountPaid:  25000,
	})
	if got := errorCode(t, err); got != http.StatusConflict {
		t.Fatalf("expected code 409, got %d", got)
	}
}

func TestCreateBillingBossOrderLogsBossOutbound(t *testing.T) {
	f := newBillingFixture()
	boss := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeBoss}
	order := f.servedOrder(t, boss)

	if _, err := f.svc.CreateBilling(context.Background(), &CreateBillingInput{
		OrderID:     order.ID,
		PaymentType: enum.PaymentTypeCash,
		AmountPaid:  25000,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, log := range f.stockLogRepo.logs {
		if log.Type != enum.StockLogTypeOutboundBoss {
			t.Fatalf("expected OUTBOUND_BOSS, got %s", log.Type)
		}
	}
}

func TestCreateBillingInsufficientStock(t *testing.T) {
	f := newBillingFixture()
	f.rice.StockQty = 0.2
	dineIn := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeDineIn}
	order := f.servedOrder(t, dineIn)

	_, err := f.svc.CreateBilling(context.Background(), &CreateBillingInput{
		OrderID:     order.ID,
		PaymentType: enum.PaymentTypeCash,
		AmountPaid:  25000,
	})
	if got := errorCode(t, err); got != http.StatusBadRequest {
		t.Fatalf("expected code 400, got %d", got)
	}
}

func TestVoidBillingRestoresStock(t *testing.T) {
	f := newBillingFixture()
	dineIn := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeDineIn}
	order := f.servedOrder(t, dineIn)

	if _, err := f.svc.CreateBilling(context.Background(), &CreateBillingInput{
		OrderID:     order.ID,
		PaymentType: enum.PaymentTypeCash,
		AmountPaid:  25000,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	billing, err := f.svc.VoidBilling(context.Background(), order.ID, "wrong order")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if billing.Status != enum.BillingStatusVoid {
		t.Fatalf("expected billing VOID, got %s", billing.Status)
	}
	if order.Status != enum.OrderStatusVoid {
		t.Fatalf("expected order VOID, got %s", order.Status)
	}
	if f.rice.StockQty != 10 || f.egg.StockQty != 30 {
		t.Fatalf("expected stock restored to 10/30, got %v/%v", f.rice.StockQty, f.egg.StockQty)
	}
	for _, log := range f.stockLogRepo.logs {
		if log.Type != enum.StockLogTypeVoid {
			t.Fatalf("expected ledger row voided, got %s", log.Type)
		}
	}
}

func TestVoidBillingIsIdempotent(t *testing.T) {
	f := newBillingFixture()
	dineIn := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeDineIn}
	order := f.servedOrder(t, dineIn)

	if _, err := f.svc.CreateBilling(context.Background(), &CreateBillingInput{
		OrderID:     order.ID,
		PaymentType: enum.PaymentTypeCash,
		AmountPaid:  25000,
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.svc.VoidBilling(context.Background(), order.ID, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	riceAfterVoid := f.rice.StockQty
	billing, err := f.svc.VoidBilling(context.Background(), order.ID, "")
	if err != nil {
		t.Fatalf("expected void retry to succeed, got %v", err)
	}
	if billing.Status != enum.BillingStatusVoid {
		t.Fatalf("expected billing VOID, got %s", billing.Status)
	}
	if f.rice.StockQty != riceAfterVoid {
		t.Fatal("expected no double restore on void retry")
	}
}

func TestVoidBillingNotFound(t *testing.T) {
	f := newBillingFixture()
	_, err := f.svc.VoidBilling(context.Background(), uuid.New(), "")
	if got := errorCode(t, err); got != http.StatusNotFound {
		t.Fatalf("expected code 404, got %d", got)
	}
}

func TestVoidBillingByReceipt(t *testing.T) {
	f := newBillingFixture()
	dineIn := &entity.OrderType{ID: uuid.New(), Name: entity.OrderTypeDineIn}
	order := f.servedOrder(t, dineIn)

	created, err := f.svc.CreateBilling(context.Background(), &CreateBillingInput{
		OrderID:     order.ID,
		PaymentType: enum.PaymentTypeCash,
		AmountPaid:  25000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	billing, err := f.svc.VoidBillingByReceipt(context.Background(), f.outletID, created.ReceiptNumber, "wrong order")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if billing.Status != enum.BillingStatusVoid {
		t.Fatalf("expected billing VOID, got %s", billing.Status)
	}
	if order.Status != enum.OrderStatusVoid {
		t.Fatalf("expected order VOID, got %s", order.Status)
	}
	if f.rice.StockQty != 10 || f.egg.StockQty != 30 {
		t.Fatalf("expected stock restored to 10/30, got %v/%v", f.rice.StockQty, f.egg.StockQty)
	}

	_, err = f.svc.VoidBillingByReceipt(context.Background(), f.outletID, "999999", "")
	if got := errorCode(t, err); got != http.StatusNotFound {
		t.Fatalf("expected code 404, got %d", got)
	}
}
