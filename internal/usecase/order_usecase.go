package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"oms/internal/domain/model"
	repo "oms/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx        repo.TransactionManager
	orders    repo.OrderRepository
	retailers repo.RetailerRepository
}

func NewOrderUsecase(tx repo.TransactionManager, orders repo.OrderRepository, retailers repo.RetailerRepository) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, retailers: retailers}
}

type EDIOrderLineInput struct {
	SKU       string
	Quantity  int64
	UnitPrice *decimal.Decimal
}

type EDIOrderInput struct {
	OrderNumber           string
	RetailerEDIIdentifier string

	//ISO-8601文字列。OrderDateは空なら現在時刻
	OrderDate  string
	ShipByDate string

	ShipToName     string
	ShipToAddress1 string
	ShipToAddress2 string
	ShipToCity     string
	ShipToState    string
	ShipToZip      string
	ShipToCountry  string
	ShipToPhone    string

	TaxAmount      decimal.Decimal
	ShippingAmount decimal.Decimal
	Notes          string

	OrderLines []EDIOrderLineInput
}

type OrderDetailOutput struct {
	model.Order
	OrderLines []model.OrderLine `json:"order_lines"`
	Shipments  []model.Shipment  `json:"shipments"`
	Retailer   *model.Retailer   `json:"retailer"`
}

// EDI受注の入口。取引先の解決とorder_numberの重複チェックはコア呼び出しの前に行う
func (u *OrderUsecase) ReceiveEDIOrder(ctx context.Context, in EDIOrderInput) (model.Order, error) {
	retailer, err := u.retailers.FindByEDIIdentifier(ctx, in.RetailerEDIIdentifier)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "Retailer not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_, exists, err := u.orders.FindByOrderNumber(ctx, in.OrderNumber)
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return model.Order{}, NewHTTPError(http.StatusConflict, "Order already exists")
	}

	return u.CreateFromEDI(ctx, retailer, in)
}

// EDIペイロードから注文＋明細を作り、行ごとに在庫を予約する。全体で1トランザクション
func (u *OrderUsecase) CreateFromEDI(ctx context.Context, retailer model.Retailer, in EDIOrderInput) (model.Order, error) {
	orderDate := time.Now().UTC()
	if in.OrderDate != "" {
		t, ok := parseEDIDate(in.OrderDate)
		if !ok {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid order_date")
		}
		orderDate = t
	}

	var shipByDate *time.Time
	if in.ShipByDate != "" {
		t, ok := parseEDIDate(in.ShipByDate)
		if !ok {
			return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid ship_by_date")
		}
		shipByDate = &t
	}

	shipToCountry := in.ShipToCountry
	if shipToCountry == "" {
		shipToCountry = "USA"
	}

	var out model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		lines := make([]model.OrderLine, 0, len(in.OrderLines))
		subtotal := decimal.Zero

		//SKU解決・明細構築・予約をペイロード順に行う。1件でも失敗すれば全体をロールバック
		for _, lineIn := range in.OrderLines {
			p, err := r.Products().FindBySKUForUpdate(ctx, lineIn.SKU)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, fmt.Sprintf("Product with SKU %s not found", lineIn.SKU))
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}

			unitPrice := p.Price
			if lineIn.UnitPrice != nil {
				unitPrice = *lineIn.UnitPrice
			}
			lineTotal := unitPrice.Mul(decimal.NewFromInt(lineIn.Quantity))
			subtotal = subtotal.Add(lineTotal)

			lines = append(lines, model.OrderLine{
				ProductID:       p.ID,
				QuantityOrdered: lineIn.Quantity,
				QuantityShipped: 0,
				UnitPrice:       unitPrice,
				LineTotal:       lineTotal,
			})

			//予約。on_handは触らず reserved だけ増やす
			if err := reserveQuantity(ctx, r, p, lineIn.Quantity, in.OrderNumber); err != nil {
				return err
			}
		}

		order := model.Order{
			OrderNumber:    in.OrderNumber,
			RetailerID:     retailer.ID,
			Status:         model.OrderStatusPending,
			OrderDate:      orderDate,
			ShipByDate:     shipByDate,
			ShipToName:     in.ShipToName,
			ShipToAddress1: in.ShipToAddress1,
			ShipToAddress2: in.ShipToAddress2,
			ShipToCity:     in.ShipToCity,
			ShipToState:    in.ShipToState,
			ShipToZip:      in.ShipToZip,
			ShipToCountry:  shipToCountry,
			ShipToPhone:    in.ShipToPhone,
			Subtotal:       subtotal,
			TaxAmount:      in.TaxAmount,
			ShippingAmount: in.ShippingAmount,
			TotalAmount:    subtotal.Add(in.TaxAmount).Add(in.ShippingAmount),
			Notes:          in.Notes,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.OrderLines().CreateBulk(ctx, orderID, lines); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		created, err := r.Orders().FindByID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out = created
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

// キャンセル。明細ぶんの予約を全量解放する。物理在庫(on_hand)は触らない
func (u *OrderUsecase) Cancel(ctx context.Context, orderID int64) (model.Order, error) {
	var out model.Order

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if o.Status == model.OrderStatusShipped || o.Status == model.OrderStatusCompleted {
			return NewHTTPError(http.StatusBadRequest, "Cannot cancel shipped or completed orders")
		}

		lines, err := r.OrderLines().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		for _, line := range lines {
			p, err := r.Products().FindByIDForUpdate(ctx, line.ProductID)
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, "Product not found")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			if err := releaseQuantity(ctx, r, p, line.QuantityOrdered, o.OrderNumber); err != nil {
				return err
			}
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusCancelled); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		o.Status = model.OrderStatusCancelled
		o.UpdatedAt = time.Now().UTC()
		out = o
		return nil
	})

	if err != nil {
		return model.Order{}, err
	}
	return out, nil
}

func (u *OrderUsecase) List(ctx context.Context, q repo.OrderListQuery) ([]model.Order, int64, error) {
	items, total, err := u.orders.List(ctx, q)
	if err != nil {
		return []model.Order{}, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

// 明細・出荷・取引先つきの詳細
func (u *OrderUsecase) GetDetail(ctx context.Context, orderID int64) (OrderDetailOutput, error) {
	var out OrderDetailOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Order not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		lines, err := r.OrderLines().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		shipments, err := r.Shipments().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		var retailer *model.Retailer
		rt, err := r.Retailers().FindByID(ctx, o.RetailerID)
		if err == nil {
			retailer = &rt
		} else if !errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = OrderDetailOutput{
			Order:      o,
			OrderLines: lines,
			Shipments:  shipments,
			Retailer:   retailer,
		}
		return nil
	})

	if err != nil {
		return OrderDetailOutput{}, err
	}
	return out, nil
}

type UpdateOrderInput struct {
	Status *string
	Notes  *string
}

// ステータスとメモだけ更新可。遷移ガードは置かない
func (u *OrderUsecase) Update(ctx context.Context, orderID int64, in UpdateOrderInput) (model.Order, error) {
	o, err := u.orders.FindByID(ctx, orderID)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "Order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Status != nil {
		o.Status = model.OrderStatus(*in.Status)
	}
	if in.Notes != nil {
		o.Notes = *in.Notes
	}

	if err := u.orders.Update(ctx, o); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return o, nil
}

// 予約。reservedを増やしavailableを再計算、履歴も残す
func reserveQuantity(ctx context.Context, r repo.TxRepos, p model.Product, qty int64, orderNumber string) error {
	newReserved := p.QuantityReserved + qty

	if err := r.Inventory().UpdateQuantities(ctx, p.ID, p.QuantityOnHand, newReserved); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_, err := r.Inventory().CreateAdjustment(ctx, model.InventoryAdjustment{
		ProductID:        p.ID,
		AdjustmentType:   model.AdjustmentTypeReservation,
		QuantityChange:   qty,
		PreviousQuantity: p.QuantityReserved,
		NewQuantity:      newReserved,
		Reason:           "reserved for order",
		ReferenceNumber:  orderNumber,
		CreatedBy:        "system",
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// 予約解放（キャンセル時）
func releaseQuantity(ctx context.Context, r repo.TxRepos, p model.Product, qty int64, orderNumber string) error {
	newReserved := p.QuantityReserved - qty

	if err := r.Inventory().UpdateQuantities(ctx, p.ID, p.QuantityOnHand, newReserved); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	_, err := r.Inventory().CreateAdjustment(ctx, model.InventoryAdjustment{
		ProductID:        p.ID,
		AdjustmentType:   model.AdjustmentTypeRelease,
		QuantityChange:   -qty,
		PreviousQuantity: p.QuantityReserved,
		NewQuantity:      newReserved,
		Reason:           "released on cancellation",
		ReferenceNumber:  orderNumber,
		CreatedBy:        "system",
	})
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// EDIの日付はゾーンなしISOで来ることがある
func parseEDIDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
