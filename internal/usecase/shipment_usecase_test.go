package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"oms/internal/domain/model"
	repo "oms/internal/repository"
	"oms/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newShipmentUsecase() (*usecase.ShipmentUsecase, *txReposStub, *ShipmentRepoMock, *OrderRepoMock) {
	tx := newTxReposStub()
	shipments := new(ShipmentRepoMock)
	orders := new(OrderRepoMock)
	uc := usecase.NewShipmentUsecase(&txManagerStub{repos: tx}, shipments, orders)
	return uc, tx, shipments, orders
}

func TestShipmentUsecase_Create_OrderNotFound(t *testing.T) {
	uc, tx, _, _ := newShipmentUsecase()

	tx.orders.On("FindByID", mock.Anything, int64(1)).Return(model.Order{}, repo.ErrNotFound)

	_, err := uc.Create(context.Background(), usecase.CreateShipmentInput{
		OrderID:        1,
		ShipmentNumber: "SHIP-1",
	})
	assertHTTPError(t, err, http.StatusNotFound, "Order not found")
}

func TestShipmentUsecase_Create_DuplicateNumber(t *testing.T) {
	uc, tx, _, _ := newShipmentUsecase()

	tx.orders.On("FindByID", mock.Anything, int64(1)).Return(model.Order{ID: 1}, nil)
	tx.shipments.On("FindByShipmentNumber", mock.Anything, "SHIP-DUP").
		Return(model.Shipment{ID: 2, ShipmentNumber: "SHIP-DUP"}, true, nil)

	_, err := uc.Create(context.Background(), usecase.CreateShipmentInput{
		OrderID:        1,
		ShipmentNumber: "SHIP-DUP",
	})
	assertHTTPError(t, err, http.StatusConflict, "Shipment with this number already exists")
}

// in_transitの出荷がつくとpendingの注文はshippedに進む
func TestShipmentUsecase_Create_InTransitMovesOrderToShipped(t *testing.T) {
	uc, tx, _, _ := newShipmentUsecase()

	tx.orders.On("FindByID", mock.Anything, int64(1)).
		Return(model.Order{ID: 1, Status: model.OrderStatusPending}, nil)
	tx.shipments.On("FindByShipmentNumber", mock.Anything, "SHIP-10").
		Return(model.Shipment{}, false, nil)
	tx.shipments.On("Create", mock.Anything, mock.MatchedBy(func(s model.Shipment) bool {
		return s.OrderID == int64(1) && s.Status == model.ShipmentStatusInTransit && s.ShippedDate != nil
	})).Return(int64(30), nil)
	tx.orders.On("UpdateStatus", mock.Anything, int64(1), model.OrderStatusShipped).Return(nil)
	tx.shipments.On("FindByID", mock.Anything, int64(30)).
		Return(model.Shipment{ID: 30, OrderID: 1, Status: model.ShipmentStatusInTransit}, nil)

	out, err := uc.Create(context.Background(), usecase.CreateShipmentInput{
		OrderID:        1,
		ShipmentNumber: "SHIP-10",
		Carrier:        "UPS",
		Status:         "in_transit",
		ShippedDate:    "2024-01-17",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(30), out.ID)
	tx.orders.AssertExpectations(t)
}

func TestShipmentUsecase_Create_PendingShipmentLeavesOrderAlone(t *testing.T) {
	uc, tx, _, _ := newShipmentUsecase()

	tx.orders.On("FindByID", mock.Anything, int64(1)).
		Return(model.Order{ID: 1, Status: model.OrderStatusPending}, nil)
	tx.shipments.On("FindByShipmentNumber", mock.Anything, "SHIP-11").
		Return(model.Shipment{}, false, nil)
	tx.shipments.On("Create", mock.Anything, mock.Anything).Return(int64(31), nil)
	tx.shipments.On("FindByID", mock.Anything, int64(31)).
		Return(model.Shipment{ID: 31, OrderID: 1, Status: model.ShipmentStatusPending}, nil)

	_, err := uc.Create(context.Background(), usecase.CreateShipmentInput{
		OrderID:        1,
		ShipmentNumber: "SHIP-11",
	})

	assert.NoError(t, err)
	tx.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// 最後の出荷がdeliveredになったら注文をcompletedへ
func TestShipmentUsecase_Update_LastDeliveryCompletesOrder(t *testing.T) {
	uc, tx, _, _ := newShipmentUsecase()

	tx.shipments.On("FindByID", mock.Anything, int64(30)).
		Return(model.Shipment{ID: 30, OrderID: 1, Status: model.ShipmentStatusInTransit}, nil)

	siblings := []model.Shipment{
		{ID: 29, OrderID: 1, Status: model.ShipmentStatusDelivered},
		{ID: 30, OrderID: 1, Status: model.ShipmentStatusInTransit}, //自分はDB上まだin_transit
	}
	tx.shipments.On("ListByOrderID", mock.Anything, int64(1)).Return(siblings, nil)
	tx.orders.On("UpdateStatus", mock.Anything, int64(1), model.OrderStatusCompleted).Return(nil)
	tx.shipments.On("Update", mock.Anything, mock.MatchedBy(func(s model.Shipment) bool {
		return s.ID == int64(30) && s.Status == model.ShipmentStatusDelivered && s.DeliveredDate != nil
	})).Return(nil)

	status := "delivered"
	deliveredDate := "2024-01-20T08:00:00"
	out, err := uc.Update(context.Background(), 30, usecase.UpdateShipmentInput{
		Status:        &status,
		DeliveredDate: &deliveredDate,
	})

	assert.NoError(t, err)
	assert.Equal(t, model.ShipmentStatusDelivered, out.Status)
	tx.orders.AssertExpectations(t)
	tx.shipments.AssertExpectations(t)
}

func TestShipmentUsecase_Update_PartialDeliveryLeavesOrderAlone(t *testing.T) {
	uc, tx, _, _ := newShipmentUsecase()

	tx.shipments.On("FindByID", mock.Anything, int64(30)).
		Return(model.Shipment{ID: 30, OrderID: 1, Status: model.ShipmentStatusInTransit}, nil)

	siblings := []model.Shipment{
		{ID: 29, OrderID: 1, Status: model.ShipmentStatusInTransit},
		{ID: 30, OrderID: 1, Status: model.ShipmentStatusInTransit},
	}
	tx.shipments.On("ListByOrderID", mock.Anything, int64(1)).Return(siblings, nil)
	tx.shipments.On("Update", mock.Anything, mock.Anything).Return(nil)

	status := "delivered"
	_, err := uc.Update(context.Background(), 30, usecase.UpdateShipmentInput{Status: &status})

	assert.NoError(t, err)
	tx.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestShipmentUsecase_Update_NotFound(t *testing.T) {
	uc, tx, _, _ := newShipmentUsecase()

	tx.shipments.On("FindByID", mock.Anything, int64(99)).Return(model.Shipment{}, repo.ErrNotFound)

	status := "delivered"
	_, err := uc.Update(context.Background(), 99, usecase.UpdateShipmentInput{Status: &status})
	assertHTTPError(t, err, http.StatusNotFound, "Shipment not found")
}

func TestShipmentUsecase_GetDetail(t *testing.T) {
	uc, _, shipments, orders := newShipmentUsecase()

	shipments.On("FindByID", mock.Anything, int64(30)).
		Return(model.Shipment{ID: 30, OrderID: 1}, nil)
	orders.On("FindByID", mock.Anything, int64(1)).
		Return(model.Order{ID: 1, OrderNumber: "PO-100"}, nil)

	out, err := uc.GetDetail(context.Background(), 30)
	assert.NoError(t, err)
	if assert.NotNil(t, out.Order) {
		assert.Equal(t, "PO-100", out.Order.OrderNumber)
	}
}
