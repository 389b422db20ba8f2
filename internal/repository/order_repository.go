package repository

import (
	"context"

	"oms/internal/domain/model"
)

type OrderListQuery struct {
	Page       int
	PerPage    int
	Status     string
	RetailerID *int64
}

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context, q OrderListQuery) ([]model.Order, int64, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	Update(ctx context.Context, order model.Order) error
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error

	//order_numberの重複チェック用
	FindByOrderNumber(ctx context.Context, orderNumber string) (model.Order, bool, error)
	CountAll(ctx context.Context) (int64, error)
}
