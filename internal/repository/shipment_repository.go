package repository

import (
	"context"

	"oms/internal/domain/model"
)

type ShipmentListQuery struct {
	Page    int
	PerPage int
	OrderID *int64
	Status  string
	Carrier string
}

type ShipmentRepository interface {
	FindByID(ctx context.Context, shipmentID int64) (model.Shipment, error)
	List(ctx context.Context, q ShipmentListQuery) ([]model.Shipment, int64, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.Shipment, error)
	Create(ctx context.Context, s model.Shipment) (int64, error)
	Update(ctx context.Context, s model.Shipment) error

	//shipment_numberの重複チェック用
	FindByShipmentNumber(ctx context.Context, number string) (model.Shipment, bool, error)
}
