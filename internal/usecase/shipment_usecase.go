package usecase

import (
	"context"
	"errors"
	"net/http"

	"oms/internal/domain/model"
	repo "oms/internal/repository"
)

type ShipmentUsecase struct {
	tx        repo.TransactionManager
	shipments repo.ShipmentRepository
	orders    repo.OrderRepository
}

func NewShipmentUsecase(tx repo.TransactionManager, shipments repo.ShipmentRepository, orders repo.OrderRepository) *ShipmentUsecase {
	return &ShipmentUsecase{tx: tx, shipments: shipments, orders: orders}
}

type CreateShipmentInput struct {
	OrderID        int64
	ShipmentNumber string
	Carrier        string
	TrackingNumber string
	ServiceLevel   string
	Status         string
	ShippedDate    string
	Notes          string
}

func (u *ShipmentUsecase) Create(ctx context.Context, in CreateShipmentInput) (model.Shipment, error) {
	status := model.ShipmentStatusPending
	if in.Status != "" {
		status = model.ShipmentStatus(in.Status)
	}

	var out model.Shipment

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		order, err := r.Orders().FindByID(ctx, in.OrderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		_, exists, err := r.Shipments().FindByShipmentNumber(ctx, in.ShipmentNumber)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if exists {
			return NewHTTPError(http.StatusConflict, "Shipment with this number already exists")
		}

		s := model.Shipment{
			OrderID:        in.OrderID,
			ShipmentNumber: in.ShipmentNumber,
			Carrier:        in.Carrier,
			TrackingNumber: in.TrackingNumber,
			ServiceLevel:   in.ServiceLevel,
			Status:         status,
			Notes:          in.Notes,
		}
		if in.ShippedDate != "" {
			t, ok := parseEDIDate(in.ShippedDate)
			if !ok {
				return NewHTTPError(http.StatusBadRequest, "invalid shipped_date")
			}
			s.ShippedDate = &t
		}

		id, err := r.Shipments().Create(ctx, s)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		s.ID = id

		//最初の出荷がin_transitならpendingの注文をshippedへ進める（一方向・一度きり）
		if s.Status == model.ShipmentStatusInTransit && order.Status == model.OrderStatusPending {
			if err := r.Orders().UpdateStatus(ctx, order.ID, model.OrderStatusShipped); err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
		}

		created, err := r.Shipments().FindByID(ctx, id)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = created
		return nil
	})

	if err != nil {
		return model.Shipment{}, err
	}
	return out, nil
}

type UpdateShipmentInput struct {
	Status         *string
	TrackingNumber *string
	DeliveredDate  *string
	Notes          *string
}

// 出荷更新。deliveredにした時点で兄弟出荷を見て、全件delivered なら注文をcompletedへ
func (u *ShipmentUsecase) Update(ctx context.Context, shipmentID int64, in UpdateShipmentInput) (model.Shipment, error) {
	var out model.Shipment

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		s, err := r.Shipments().FindByID(ctx, shipmentID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Shipment not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if in.Status != nil {
			s.Status = model.ShipmentStatus(*in.Status)

			if s.Status == model.ShipmentStatusDelivered {
				siblings, err := r.Shipments().ListByOrderID(ctx, s.OrderID)
				if err != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}

				allDelivered := true
				for _, sib := range siblings {
					st := sib.Status
					if sib.ID == s.ID {
						st = s.Status
					}
					if st != model.ShipmentStatusDelivered {
						allDelivered = false
						break
					}
				}

				if allDelivered {
					if err := r.Orders().UpdateStatus(ctx, s.OrderID, model.OrderStatusCompleted); err != nil {
						return NewHTTPError(http.StatusInternalServerError, "db error")
					}
				}
			}
		}

		if in.TrackingNumber != nil {
			s.TrackingNumber = *in.TrackingNumber
		}
		if in.DeliveredDate != nil {
			t, ok := parseEDIDate(*in.DeliveredDate)
			if !ok {
				return NewHTTPError(http.StatusBadRequest, "invalid delivered_date")
			}
			s.DeliveredDate = &t
		}
		if in.Notes != nil {
			s.Notes = *in.Notes
		}

		if err := r.Shipments().Update(ctx, s); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = s
		return nil
	})

	if err != nil {
		return model.Shipment{}, err
	}
	return out, nil
}

func (u *ShipmentUsecase) List(ctx context.Context, q repo.ShipmentListQuery) ([]model.Shipment, int64, error) {
	items, total, err := u.shipments.List(ctx, q)
	if err != nil {
		return []model.Shipment{}, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

type ShipmentDetailOutput struct {
	model.Shipment
	Order *model.Order `json:"order"`
}

func (u *ShipmentUsecase) GetDetail(ctx context.Context, shipmentID int64) (ShipmentDetailOutput, error) {
	s, err := u.shipments.FindByID(ctx, shipmentID)
	if errors.Is(err, repo.ErrNotFound) {
		return ShipmentDetailOutput{}, NewHTTPError(http.StatusNotFound, "Shipment not found")
	}
	if err != nil {
		return ShipmentDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	var order *model.Order
	o, err := u.orders.FindByID(ctx, s.OrderID)
	if err == nil {
		order = &o
	} else if !errors.Is(err, repo.ErrNotFound) {
		return ShipmentDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ShipmentDetailOutput{Shipment: s, Order: order}, nil
}
