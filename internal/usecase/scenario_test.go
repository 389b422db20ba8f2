package usecase_test

import (
	"context"
	"testing"

	"oms/internal/domain/model"
	repo "oms/internal/repository"
	"oms/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// インメモリ実装。予約→販売の通し検証用に状態を持つ
type memStore struct {
	product     model.Product
	adjustments []model.InventoryAdjustment
	order       model.Order
	orderLines  []model.OrderLine
	nextOrderID int64
}

type memProducts struct {
	repo.ProductRepository
	s *memStore
}

func (f memProducts) FindByID(ctx context.Context, id int64) (model.Product, error) {
	return f.s.product, nil
}

func (f memProducts) FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error) {
	return f.s.product, nil
}

func (f memProducts) FindBySKUForUpdate(ctx context.Context, sku string) (model.Product, error) {
	if sku != f.s.product.SKU {
		return model.Product{}, repo.ErrNotFound
	}
	return f.s.product, nil
}

type memInventory struct {
	repo.InventoryRepository
	s *memStore
}

func (f memInventory) UpdateQuantities(ctx context.Context, productID int64, onHand int64, reserved int64) error {
	f.s.product.QuantityOnHand = onHand
	f.s.product.QuantityReserved = reserved
	f.s.product.QuantityAvailable = onHand - reserved
	return nil
}

func (f memInventory) CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) (model.InventoryAdjustment, error) {
	adj.ID = int64(len(f.s.adjustments) + 1)
	f.s.adjustments = append(f.s.adjustments, adj)
	return adj, nil
}

type memOrders struct {
	repo.OrderRepository
	s *memStore
}

func (f memOrders) Create(ctx context.Context, order model.Order) (int64, error) {
	f.s.nextOrderID++
	order.ID = f.s.nextOrderID
	f.s.order = order
	return order.ID, nil
}

func (f memOrders) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	if f.s.order.ID != orderID {
		return model.Order{}, repo.ErrNotFound
	}
	return f.s.order, nil
}

func (f memOrders) FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, bool, error) {
	if f.s.order.OrderNumber == orderNumber {
		return f.s.order, true, nil
	}
	return model.Order{}, false, nil
}

func (f memOrders) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error {
	f.s.order.Status = status
	return nil
}

type memOrderLines struct {
	repo.OrderLineRepository
	s *memStore
}

func (f memOrderLines) CreateBulk(ctx context.Context, orderID int64, lines []model.OrderLine) error {
	for i := range lines {
		lines[i].OrderID = orderID
	}
	f.s.orderLines = append(f.s.orderLines, lines...)
	return nil
}

func (f memOrderLines) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderLine, error) {
	return f.s.orderLines, nil
}

type memTxRepos struct {
	s *memStore
}

func (r memTxRepos) Retailers() repo.RetailerRepository   { return nil }
func (r memTxRepos) Products() repo.ProductRepository     { return memProducts{s: r.s} }
func (r memTxRepos) Orders() repo.OrderRepository         { return memOrders{s: r.s} }
func (r memTxRepos) OrderLines() repo.OrderLineRepository { return memOrderLines{s: r.s} }
func (r memTxRepos) Shipments() repo.ShipmentRepository   { return nil }
func (r memTxRepos) Inventory() repo.InventoryRepository  { return memInventory{s: r.s} }

type memTxManager struct {
	s *memStore
}

func (m memTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(memTxRepos{s: m.s})
}

// 受注で予約→出荷実績をsale調整で計上、という通常の流れ。
// 予約は論理、saleは物理で、互いのカウンタを侵さない
func TestScenario_ReserveThenSale(t *testing.T) {
	ctx := context.Background()

	store := &memStore{
		product: model.Product{
			ID:                1,
			SKU:               "WIDGET-001",
			Price:             decimal.RequireFromString("29.99"),
			QuantityOnHand:    10,
			QuantityAvailable: 10,
		},
	}
	tx := memTxManager{s: store}

	orderUC := usecase.NewOrderUsecase(tx, memOrders{s: store}, nil)
	inventoryUC := usecase.NewInventoryUsecase(tx, memProducts{s: store}, memInventory{s: store})

	//受注で2個予約
	order, err := orderUC.CreateFromEDI(ctx, model.Retailer{ID: 1}, usecase.EDIOrderInput{
		OrderNumber: "PO-500",
		OrderLines:  []usecase.EDIOrderLineInput{{SKU: "WIDGET-001", Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusPending, store.order.Status)
	assert.Equal(t, int64(10), store.product.QuantityOnHand)
	assert.Equal(t, int64(2), store.product.QuantityReserved)
	assert.Equal(t, int64(8), store.product.QuantityAvailable)
	assert.Equal(t, order.OrderNumber, "PO-500")

	//出荷実績をsaleで計上。physicalだけ減り、予約は残る
	out, err := inventoryUC.Adjust(ctx, usecase.AdjustInventoryInput{
		ProductID:       1,
		AdjustmentType:  "sale",
		QuantityChange:  -2,
		ReferenceNumber: "PO-500",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), store.product.QuantityOnHand)
	assert.Equal(t, int64(2), store.product.QuantityReserved)
	assert.Equal(t, int64(6), store.product.QuantityAvailable)
	assert.Equal(t, int64(8), out.Product.QuantityOnHand)

	//履歴は予約1件＋sale1件
	require.Len(t, store.adjustments, 2)
	assert.Equal(t, model.AdjustmentTypeReservation, store.adjustments[0].AdjustmentType)
	assert.Equal(t, model.AdjustmentTypeSale, store.adjustments[1].AdjustmentType)
	assert.Equal(t, "PO-500", store.adjustments[0].ReferenceNumber)
}
