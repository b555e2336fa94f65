package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/restopos/restopos-api/internal/domain/entity"
	"github.com/restopos/restopos-api/internal/domain/enum"
	"github.com/restopos/restopos-api/internal/domain/repository"
	"github.com/restopos/restopos-api/pkg/apperror"
	"github.com/restopos/restopos-api/pkg/pagination"
)

// In-memory repository fakes. Transaction semantics are not modeled; the
// fake TxManager just runs the function, so tests assert on service-level
// outcomes and returned errors rather than rollback effects.

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
	// forceConflict makes every ApplyTotalsDelta report a failed version
	// check, simulating a concurrent writer.
	forceConflict bool
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}
	r.orders[order.ID] = order
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return r.orders[id], nil
}

func (r *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range r.orders {
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) error {
	if o := r.orders[id]; o != nil {
		o.Status = status
	}
	return nil
}

func (r *fakeOrderRepo) ApplyTotalsDelta(ctx context.Context, id uuid.UUID, expectedVersion int64, delta int64) (bool, error) {
	if r.forceConflict {
		return false, nil
	}
	o := r.orders[id]
	if o == nil || o.Version != expectedVersion {
		return false, nil
	}
	o.Subtotal += delta
	o.Total += delta
	o.Version++
	return true, nil
}

func (r *fakeOrderRepo) CreateItems(ctx context.Context, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	o := r.orders[items[0].OrderID]
	for i := range items {
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		for j := range items[i].Options {
			if items[i].Options[j].ID == uuid.Nil {
				items[i].Options[j].ID = uuid.New()
			}
			items[i].Options[j].OrderItemID = items[i].ID
		}
		if o != nil {
			o.Items = append(o.Items, items[i])
		}
	}
	return nil
}

func (r *fakeOrderRepo) UpdateItem(ctx context.Context, item *entity.OrderItem) error {
	return nil
}

func (r *fakeOrderRepo) UpdateItemOption(ctx context.Context, option *entity.OrderItemOption) error {
	return nil
}

type fakeBillingRepo struct {
	byOrder     map[uuid.UUID]*entity.Billing
	cashRevenue int64

	// raceDuplicate simulates a concurrent settlement that committed between
	// the duplicate check and the insert: Create hits the unique index.
	raceDuplicate bool
}

func newFakeBillingRepo() *fakeBillingRepo {
	return &fakeBillingRepo{byOrder: make(map[uuid.UUID]*entity.Billing)}
}

func (r *fakeBillingRepo) Create(ctx context.Context, billing *entity.Billing) error {
	if r.raceDuplicate {
		return apperror.NewConflictError("Order is already billed")
	}
	if billing.ID == uuid.Nil {
		billing.ID = uuid.New()
	}
	r.byOrder[billing.OrderID] = billing
	return nil
}

func (r *fakeBillingRepo) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entity.Billing, error) {
	return r.byOrder[orderID], nil
}

func (r *fakeBillingRepo) GetByReceipt(ctx context.Context, outletID uuid.UUID, receiptNumber string) (*entity.Billing, error) {
	for _, b := range r.byOrder {
		if b.OutletID == outletID && b.ReceiptNumber == receiptNumber {
			return b, nil
		}
	}
	return nil, nil
}

func (r *fakeBillingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.BillingStatus) error {
	for _, b := range r.byOrder {
		if b.ID == id {
			b.Status = status
		}
	}
	return nil
}

func (r *fakeBillingRepo) List(ctx context.Context, params *repository.BillingFilterParams) ([]entity.Billing, int64, error) {
	var out []entity.Billing
	for _, b := range r.byOrder {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBillingRepo) SumCashRevenue(ctx context.Context, outletID uuid.UUID, start, end time.Time) (int64, error) {
	return r.cashRevenue, nil
}

type fakeCounterRepo struct {
	orderSeq   int64
	receiptSeq int64
}

func (r *fakeCounterRepo) NextOrderNumber(ctx context.Context, outletID uuid.UUID) (int64, error) {
	r.orderSeq++
	return r.orderSeq, nil
}

func (r *fakeCounterRepo) NextReceiptNumber(ctx context.Context, outletID uuid.UUID) (int64, error) {
	r.receiptSeq++
	return r.receiptSeq, nil
}

type fakeOrderTypeRepo struct {
	types map[uuid.UUID]*entity.OrderType
}

func newFakeOrderTypeRepo(types ...*entity.OrderType) *fakeOrderTypeRepo {
	r := &fakeOrderTypeRepo{types: make(map[uuid.UUID]*entity.OrderType)}
	for _, t := range types {
		r.types[t.ID] = t
	}
	return r
}

func (r *fakeOrderTypeRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.OrderType, error) {
	return r.types[id], nil
}

func (r *fakeOrderTypeRepo) GetByName(ctx context.Context, name string) (*entity.OrderType, error) {
	for _, t := range r.types {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, nil
}

func (r *fakeOrderTypeRepo) List(ctx context.Context) ([]entity.OrderType, error) {
	var out []entity.OrderType
	for _, t := range r.types {
		out = append(out, *t)
	}
	return out, nil
}

type fakeFoodRepo struct {
	foods map[uuid.UUID]*entity.Food
}

func newFakeFoodRepo(foods ...*entity.Food) *fakeFoodRepo {
	r := &fakeFoodRepo{foods: make(map[uuid.UUID]*entity.Food)}
	for _, f := range foods {
		r.foods[f.ID] = f
	}
	return r
}

func (r *fakeFoodRepo) Create(ctx context.Context, food *entity.Food) error {
	if food.ID == uuid.Nil {
		food.ID = uuid.New()
	}
	r.foods[food.ID] = food
	return nil
}

func (r *fakeFoodRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Food, error) {
	return r.foods[id], nil
}

func (r *fakeFoodRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Food, error) {
	var out []entity.Food
	for _, id := range ids {
		if f, ok := r.foods[id]; ok {
			out = append(out, *f)
		}
	}
	return out, nil
}

func (r *fakeFoodRepo) Update(ctx context.Context, food *entity.Food) error { return nil }
func (r *fakeFoodRepo) Delete(ctx context.Context, id uuid.UUID) error      { return nil }

func (r *fakeFoodRepo) List(ctx context.Context, outletID uuid.UUID, params *pagination.PaginationParams) ([]entity.Food, int64, error) {
	var out []entity.Food
	for _, f := range r.foods {
		if f.OutletID == outletID {
			out = append(out, *f)
		}
	}
	return out, int64(len(out)), nil
}

type priceKey struct {
	foodID      uuid.UUID
	orderTypeID uuid.UUID
}

type fakePriceRepo struct {
	prices map[priceKey]int64
}

func newFakePriceRepo() *fakePriceRepo {
	return &fakePriceRepo{prices: make(map[priceKey]int64)}
}

func (r *fakePriceRepo) set(foodID, orderTypeID uuid.UUID, price int64) {
	r.prices[priceKey{foodID, orderTypeID}] = price
}

func (r *fakePriceRepo) GetPrice(ctx context.Context, foodID, orderTypeID uuid.UUID) (*entity.FoodPrice, error) {
	price, ok := r.prices[priceKey{foodID, orderTypeID}]
	if !ok {
		return nil, nil
	}
	return &entity.FoodPrice{FoodID: foodID, OrderTypeID: orderTypeID, Price: price}, nil
}

func (r *fakePriceRepo) Upsert(ctx context.Context, price *entity.FoodPrice) error {
	r.set(price.FoodID, price.OrderTypeID, price.Price)
	return nil
}

func (r *fakePriceRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeOptionRepo struct {
	options map[uuid.UUID]*entity.FoodOption
}

func newFakeOptionRepo(options ...*entity.FoodOption) *fakeOptionRepo {
	r := &fakeOptionRepo{options: make(map[uuid.UUID]*entity.FoodOption)}
	for _, o := range options {
		r.options[o.ID] = o
	}
	return r
}

func (r *fakeOptionRepo) Create(ctx context.Context, option *entity.FoodOption) error {
	if option.ID == uuid.Nil {
		option.ID = uuid.New()
	}
	r.options[option.ID] = option
	return nil
}

func (r *fakeOptionRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.FoodOption, error) {
	return r.options[id], nil
}

func (r *fakeOptionRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.FoodOption, error) {
	var out []entity.FoodOption
	for _, id := range ids {
		if o, ok := r.options[id]; ok {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOptionRepo) Update(ctx context.Context, option *entity.FoodOption) error { return nil }
func (r *fakeOptionRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

type fakeTableRepo struct {
	tables map[uuid.UUID]*entity.DiningTable
}

func newFakeTableRepo(tables ...*entity.DiningTable) *fakeTableRepo {
	r := &fakeTableRepo{tables: make(map[uuid.UUID]*entity.DiningTable)}
	for _, t := range tables {
		r.tables[t.ID] = t
	}
	return r
}

func (r *fakeTableRepo) Create(ctx context.Context, table *entity.DiningTable) error {
	if table.ID == uuid.Nil {
		table.ID = uuid.New()
	}
	r.tables[table.ID] = table
	return nil
}

func (r *fakeTableRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.DiningTable, error) {
	return r.tables[id], nil
}

func (r *fakeTableRepo) Update(ctx context.Context, table *entity.DiningTable) error { return nil }
func (r *fakeTableRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }

func (r *fakeTableRepo) List(ctx context.Context, outletID uuid.UUID) ([]entity.DiningTable, error) {
	var out []entity.DiningTable
	for _, t := range r.tables {
		if t.OutletID == outletID {
			out = append(out, *t)
		}
	}
	return out, nil
}

type fakeDiscountRepo struct {
	rules []*entity.OrderTypeDiscount
}

func (r *fakeDiscountRepo) GetActive(ctx context.Context, outletID, orderTypeID uuid.UUID) (*entity.OrderTypeDiscount, error) {
	for _, rule := range r.rules {
		if rule.OutletID == outletID && rule.OrderTypeID == orderTypeID && rule.IsActive {
			return rule, nil
		}
	}
	return nil, nil
}

func (r *fakeDiscountRepo) Upsert(ctx context.Context, discount *entity.OrderTypeDiscount) error {
	r.rules = append(r.rules, discount)
	return nil
}

func (r *fakeDiscountRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeDiscountRepo) List(ctx context.Context, outletID uuid.UUID) ([]entity.OrderTypeDiscount, error) {
	var out []entity.OrderTypeDiscount
	for _, rule := range r.rules {
		if rule.OutletID == outletID {
			out = append(out, *rule)
		}
	}
	return out, nil
}

type fakeIngredientRepo struct {
	ingredients map[uuid.UUID]*entity.Ingredient
}

func newFakeIngredientRepo(ingredients ...*entity.Ingredient) *fakeIngredientRepo {
	r := &fakeIngredientRepo{ingredients: make(map[uuid.UUID]*entity.Ingredient)}
	for _, i := range ingredients {
		r.ingredients[i.ID] = i
	}
	return r
}

func (r *fakeIngredientRepo) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	if ingredient.ID == uuid.Nil {
		ingredient.ID = uuid.New()
	}
	r.ingredients[ingredient.ID] = ingredient
	return nil
}

func (r *fakeIngredientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	return r.ingredients[id], nil
}

func (r *fakeIngredientRepo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Ingredient, error) {
	var out []entity.Ingredient
	for _, id := range ids {
		if i, ok := r.ingredients[id]; ok {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (r *fakeIngredientRepo) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	return nil
}

func (r *fakeIngredientRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeIngredientRepo) List(ctx context.Context, outletID uuid.UUID, params *pagination.PaginationParams) ([]entity.Ingredient, int64, error) {
	var out []entity.Ingredient
	for _, i := range r.ingredients {
		if i.OutletID == outletID {
			out = append(out, *i)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeIngredientRepo) DecrementStockGuarded(ctx context.Context, id uuid.UUID, qty float64) (bool, error) {
	i := r.ingredients[id]
	if i == nil || i.StockQty < qty {
		return false, nil
	}
	i.StockQty -= qty
	return true, nil
}

func (r *fakeIngredientRepo) IncrementStock(ctx context.Context, id uuid.UUID, qty float64) error {
	if i := r.ingredients[id]; i != nil {
		i.StockQty += qty
	}
	return nil
}

type fakeStockLogRepo struct {
	logs []*entity.IngredientStockLog
}

func (r *fakeStockLogRepo) Create(ctx context.Context, log *entity.IngredientStockLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeStockLogRepo) CreateBatch(ctx context.Context, logs []entity.IngredientStockLog) error {
	for i := range logs {
		log := logs[i]
		if log.ID == uuid.Nil {
			log.ID = uuid.New()
		}
		r.logs = append(r.logs, &log)
	}
	return nil
}

func (r *fakeStockLogRepo) GetActiveByOrder(ctx context.Context, outletID, orderID uuid.UUID) ([]entity.IngredientStockLog, error) {
	var out []entity.IngredientStockLog
	for _, log := range r.logs {
		if log.OutletID == outletID && log.OrderID != nil && *log.OrderID == orderID && log.Type != enum.StockLogTypeVoid {
			out = append(out, *log)
		}
	}
	return out, nil
}

func (r *fakeStockLogRepo) MarkVoidByOrder(ctx context.Context, outletID, orderID uuid.UUID) error {
	for _, log := range r.logs {
		if log.OutletID == outletID && log.OrderID != nil && *log.OrderID == orderID {
			log.Type = enum.StockLogTypeVoid
		}
	}
	return nil
}

func (r *fakeStockLogRepo) ExistsDailyEntry(ctx context.Context, ingredientID uuid.UUID, logType enum.StockLogType, date time.Time) (bool, error) {
	for _, log := range r.logs {
		if log.IngredientID == ingredientID && log.Type == logType && log.TransactionDate.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeStockLogRepo) List(ctx context.Context, params *repository.StockLogFilterParams) ([]entity.IngredientStockLog, int64, error) {
	var out []entity.IngredientStockLog
	for _, log := range r.logs {
		out = append(out, *log)
	}
	return out, int64(len(out)), nil
}

type fakeFoodIngredientRepo struct {
	edges []entity.FoodIngredient
}

func (r *fakeFoodIngredientRepo) Upsert(ctx context.Context, edge *entity.FoodIngredient) error {
	r.edges = append(r.edges, *edge)
	return nil
}

func (r *fakeFoodIngredientRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *fakeFoodIngredientRepo) GetByFoodIDs(ctx context.Context, foodIDs []uuid.UUID) ([]entity.FoodIngredient, error) {
	wanted := make(map[uuid.UUID]bool, len(foodIDs))
	for _, id := range foodIDs {
		wanted[id] = true
	}
	var out []entity.FoodIngredient
	for _, edge := range r.edges {
		if wanted[edge.FoodID] {
			out = append(out, edge)
		}
	}
	return out, nil
}

type fakeOutletRepo struct {
	outlets map[uuid.UUID]*entity.Outlet
}

func newFakeOutletRepo(outlets ...*entity.Outlet) *fakeOutletRepo {
	r := &fakeOutletRepo{outlets: make(map[uuid.UUID]*entity.Outlet)}
	for _, o := range outlets {
		r.outlets[o.ID] = o
	}
	return r
}

func (r *fakeOutletRepo) Create(ctx context.Context, outlet *entity.Outlet) error {
	if outlet.ID == uuid.Nil {
		outlet.ID = uuid.New()
	}
	r.outlets[outlet.ID] = outlet
	return nil
}

func (r *fakeOutletRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	return r.outlets[id], nil
}

func (r *fakeOutletRepo) GetByName(ctx context.Context, name string) (*entity.Outlet, error) {
	for _, o := range r.outlets {
		if o.Name == name {
			return o, nil
		}
	}
	return nil, nil
}

func (r *fakeOutletRepo) Update(ctx context.Context, outlet *entity.Outlet) error { return nil }
func (r *fakeOutletRepo) Delete(ctx context.Context, id uuid.UUID) error          { return nil }

func (r *fakeOutletRepo) List(ctx context.Context) ([]entity.Outlet, error) {
	var out []entity.Outlet
	for _, o := range r.outlets {
		out = append(out, *o)
	}
	return out, nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	for _, u := range r.users {
		if googleID != "" && u.GoogleID == googleID {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ListByOutlet(ctx context.Context, outletID uuid.UUID) ([]entity.User, error) {
	var out []entity.User
	for _, u := range r.users {
		if u.OutletID != nil && *u.OutletID == outletID {
			out = append(out, *u)
		}
	}
	return out, nil
}

type reconKey struct {
	outletID uuid.UUID
	day      int64
}

type fakeReconciliationRepo struct {
	rows map[reconKey]*entity.DailyCashReconciliation
}

func newFakeReconciliationRepo() *fakeReconciliationRepo {
	return &fakeReconciliationRepo{rows: make(map[reconKey]*entity.DailyCashReconciliation)}
}

func (r *fakeReconciliationRepo) GetByOutletAndDate(ctx context.Context, outletID uuid.UUID, date time.Time) (*entity.DailyCashReconciliation, error) {
	return r.rows[reconKey{outletID, date.Unix()}], nil
}

func (r *fakeReconciliationRepo) Create(ctx context.Context, row *entity.DailyCashReconciliation) error {
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}
	r.rows[reconKey{row.OutletID, row.Date.Unix()}] = row
	return nil
}

func (r *fakeReconciliationRepo) Update(ctx context.Context, row *entity.DailyCashReconciliation) error {
	r.rows[reconKey{row.OutletID, row.Date.Unix()}] = row
	return nil
}

func (r *fakeReconciliationRepo) ListByOutlet(ctx context.Context, outletID uuid.UUID, start, end time.Time) ([]entity.DailyCashReconciliation, error) {
	var out []entity.DailyCashReconciliation
	for _, row := range r.rows {
		if row.OutletID == outletID && !row.Date.Before(start) && row.Date.Before(end) {
			out = append(out, *row)
		}
	}
	return out, nil
}
