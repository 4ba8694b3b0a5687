package usecase_test

import (
	"context"
	"strings"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// TxManager / TxRepos mocks
// =====================

// TxManagerMock は WithinTx の中で渡す repos を固定して unit テストを回す
type TxManagerMock struct {
	mock.Mock
	Repos repo.TxRepos
}

func (m *TxManagerMock) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	// 呼ばれた事実だけ記録（ctxの具体値は問わない）
	m.Called(ctx)
	return fn(m.Repos)
}

type TxReposMock struct {
	users      repo.UserRepository
	menuItems  repo.MenuItemRepository
	carts      repo.CartRepository
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
}

func (r *TxReposMock) Users() repo.UserRepository           { return r.users }
func (r *TxReposMock) MenuItems() repo.MenuItemRepository   { return r.menuItems }
func (r *TxReposMock) Carts() repo.CartRepository           { return r.carts }
func (r *TxReposMock) Orders() repo.OrderRepository         { return r.orders }
func (r *TxReposMock) OrderItems() repo.OrderItemRepository { return r.orderItems }

// =====================
// Repository mocks
// =====================

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, userID int64) (model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	args := m.Called(ctx, role)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *UserRepoMock) UpdateRole(ctx context.Context, userID int64, role model.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

var _ repo.UserRepository = (*UserRepoMock)(nil)

type MenuItemRepoMock struct{ mock.Mock }

func (m *MenuItemRepoMock) List(ctx context.Context) ([]model.MenuItem, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.MenuItem)
	return items, args.Error(1)
}

func (m *MenuItemRepoMock) FindByID(ctx context.Context, id int64) (model.MenuItem, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(model.MenuItem)
	return item, args.Error(1)
}

func (m *MenuItemRepoMock) Create(ctx context.Context, item model.MenuItem) (model.MenuItem, error) {
	args := m.Called(ctx, item)
	created, _ := args.Get(0).(model.MenuItem)
	return created, args.Error(1)
}

func (m *MenuItemRepoMock) Update(ctx context.Context, item model.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MenuItemRepoMock) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ repo.MenuItemRepository = (*MenuItemRepoMock)(nil)

type CartRepoMock struct{ mock.Mock }

func (m *CartRepoMock) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]model.CartLine)
	return lines, args.Error(1)
}

func (m *CartRepoMock) ListByUserForUpdate(ctx context.Context, userID int64) ([]model.CartLine, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]model.CartLine)
	return lines, args.Error(1)
}

func (m *CartRepoMock) Upsert(ctx context.Context, userID int64, menuItemID int64, quantity int64, unitPrice decimal.Decimal, price decimal.Decimal) (model.CartLine, error) {
	args := m.Called(ctx, userID, menuItemID, quantity, unitPrice, price)
	line, _ := args.Get(0).(model.CartLine)
	return line, args.Error(1)
}

func (m *CartRepoMock) ClearByUser(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

var _ repo.CartRepository = (*CartRepoMock)(nil)

// fakeCartRepo はGORM実装と同じ一意制約を持つインメモリのCartRepository。
// (user_id, menu_item_id) ごとに1行で、再upsertは数量・価格を置き換える。
type fakeCartRepo struct {
	nextID int64
	lines  []model.CartLine
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{nextID: 1}
}

func (f *fakeCartRepo) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	out := make([]model.CartLine, 0, len(f.lines))
	for _, l := range f.lines {
		if l.UserID == userID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeCartRepo) ListByUserForUpdate(ctx context.Context, userID int64) ([]model.CartLine, error) {
	return f.ListByUser(ctx, userID)
}

func (f *fakeCartRepo) Upsert(ctx context.Context, userID int64, menuItemID int64, quantity int64, unitPrice decimal.Decimal, price decimal.Decimal) (model.CartLine, error) {
	for i := range f.lines {
		if f.lines[i].UserID == userID && f.lines[i].MenuItemID == menuItemID {
			f.lines[i].Quantity = quantity
			f.lines[i].UnitPrice = unitPrice
			f.lines[i].Price = price
			return f.lines[i], nil
		}
	}

	line := model.CartLine{
		ID:         f.nextID,
		UserID:     userID,
		MenuItemID: menuItemID,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		Price:      price,
	}
	f.nextID++
	f.lines = append(f.lines, line)
	return line, nil
}

func (f *fakeCartRepo) ClearByUser(ctx context.Context, userID int64) error {
	kept := f.lines[:0]
	for _, l := range f.lines {
		if l.UserID != userID {
			kept = append(kept, l)
		}
	}
	f.lines = kept
	return nil
}

var _ repo.CartRepository = (*fakeCartRepo)(nil)

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) Save(ctx context.Context, order model.Order, fields []string) error {
	args := m.Called(ctx, order, fields)
	return args.Error(0)
}

func (m *OrderRepoMock) Delete(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

func (m *OrderRepoMock) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListByDeliveryCrew(ctx context.Context, crewID int64) ([]model.Order, error) {
	args := m.Called(ctx, crewID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *OrderRepoMock) ListAll(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

var _ repo.OrderRepository = (*OrderRepoMock)(nil)

type OrderItemRepoMock struct{ mock.Mock }

func (m *OrderItemRepoMock) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	args := m.Called(ctx, orderID, items)
	return args.Error(0)
}

func (m *OrderItemRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderItem)
	return items, args.Error(1)
}

func (m *OrderItemRepoMock) DeleteByOrderID(ctx context.Context, orderID int64) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

var _ repo.OrderItemRepository = (*OrderItemRepoMock)(nil)

// =====================
// Helpers
// =====================

func assertErrContains(t *testing.T, err error, wantSubstr string) {
	t.Helper()
	if assert.Error(t, err) {
		assert.True(t, strings.Contains(err.Error(), wantSubstr), "err=%q want contains %q", err.Error(), wantSubstr)
	}
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}
