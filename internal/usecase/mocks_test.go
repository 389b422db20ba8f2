package usecase_test

import (
	"context"
	"testing"

	"oms/internal/domain/model"
	repo "oms/internal/repository"
	"oms/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type RetailerRepoMock struct{ mock.Mock }

func (m *RetailerRepoMock) List(ctx context.Context, isActive *bool) ([]model.Retailer, error) {
	args := m.Called(ctx, isActive)
	items, _ := args.Get(0).([]model.Retailer)
	return items, args.Error(1)
}

func (m *RetailerRepoMock) FindByID(ctx context.Context, id int64) (model.Retailer, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(model.Retailer)
	return r, args.Error(1)
}

func (m *RetailerRepoMock) FindByEDIIdentifier(ctx context.Context, ediID string) (model.Retailer, error) {
	args := m.Called(ctx, ediID)
	r, _ := args.Get(0).(model.Retailer)
	return r, args.Error(1)
}

func (m *RetailerRepoMock) Create(ctx context.Context, r model.Retailer) (model.Retailer, error) {
	args := m.Called(ctx, r)
	created, _ := args.Get(0).(model.Retailer)
	return created, args.Error(1)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindBySKU(ctx context.Context, sku string) (model.Product, error) {
	args := m.Called(ctx, sku)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindBySKUForUpdate(ctx context.Context, sku string) (model.Product, error) {
	args := m.Called(ctx, sku)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Order)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *OrderRepoMock) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *OrderRepoMock) Update(ctx context.Context, order model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, bool, error) {
	args := m.Called(ctx, orderNumber)
	o, _ := args.Get(0).(model.Order)
	return o, args.Bool(1), args.Error(2)
}

func (m *OrderRepoMock) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type OrderLineRepoMock struct{ mock.Mock }

func (m *OrderLineRepoMock) CreateBulk(ctx context.Context, orderID int64, lines []model.OrderLine) error {
	args := m.Called(ctx, orderID, lines)
	return args.Error(0)
}

func (m *OrderLineRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.OrderLine)
	return items, args.Error(1)
}

type ShipmentRepoMock struct{ mock.Mock }

func (m *ShipmentRepoMock) FindByID(ctx context.Context, shipmentID int64) (model.Shipment, error) {
	args := m.Called(ctx, shipmentID)
	s, _ := args.Get(0).(model.Shipment)
	return s, args.Error(1)
}

func (m *ShipmentRepoMock) List(ctx context.Context, q repo.ShipmentListQuery) ([]model.Shipment, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Shipment)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ShipmentRepoMock) ListByOrderID(ctx context.Context, orderID int64) ([]model.Shipment, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]model.Shipment)
	return items, args.Error(1)
}

func (m *ShipmentRepoMock) Create(ctx context.Context, s model.Shipment) (int64, error) {
	args := m.Called(ctx, s)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ShipmentRepoMock) Update(ctx context.Context, s model.Shipment) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *ShipmentRepoMock) FindByShipmentNumber(ctx context.Context, number string) (model.Shipment, bool, error) {
	args := m.Called(ctx, number)
	s, _ := args.Get(0).(model.Shipment)
	return s, args.Bool(1), args.Error(2)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) UpdateQuantities(ctx context.Context, productID int64, onHand int64, reserved int64) error {
	args := m.Called(ctx, productID, onHand, reserved)
	return args.Error(0)
}

func (m *InventoryRepoMock) CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) (model.InventoryAdjustment, error) {
	args := m.Called(ctx, adj)
	created, _ := args.Get(0).(model.InventoryAdjustment)
	return created, args.Error(1)
}

func (m *InventoryRepoMock) ListAdjustments(ctx context.Context, q repo.AdjustmentListQuery) ([]model.InventoryAdjustment, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.InventoryAdjustment)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *InventoryRepoMock) ListRecentAdjustments(ctx context.Context, productID int64, limit int) ([]model.InventoryAdjustment, error) {
	args := m.Called(ctx, productID, limit)
	items, _ := args.Get(0).([]model.InventoryAdjustment)
	return items, args.Error(1)
}

// =====================
// Txスタブ（fnにそのままモックを渡すだけ）
// =====================

type txReposStub struct {
	retailers  *RetailerRepoMock
	products   *ProductRepoMock
	orders     *OrderRepoMock
	orderLines *OrderLineRepoMock
	shipments  *ShipmentRepoMock
	inventory  *InventoryRepoMock
}

func newTxReposStub() *txReposStub {
	return &txReposStub{
		retailers:  new(RetailerRepoMock),
		products:   new(ProductRepoMock),
		orders:     new(OrderRepoMock),
		orderLines: new(OrderLineRepoMock),
		shipments:  new(ShipmentRepoMock),
		inventory:  new(InventoryRepoMock),
	}
}

func (s *txReposStub) Retailers() repo.RetailerRepository   { return s.retailers }
func (s *txReposStub) Products() repo.ProductRepository     { return s.products }
func (s *txReposStub) Orders() repo.OrderRepository         { return s.orders }
func (s *txReposStub) OrderLines() repo.OrderLineRepository { return s.orderLines }
func (s *txReposStub) Shipments() repo.ShipmentRepository   { return s.shipments }
func (s *txReposStub) Inventory() repo.InventoryRepository  { return s.inventory }

type txManagerStub struct{ repos *txReposStub }

func (m *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(m.repos)
}

// =====================
// Helpers
// =====================

func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()
	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
		assert.Equal(t, message, he.Message)
	}
}
