package handler

import (
	"net/http"
	"strconv"

	repo "oms/internal/repository"
	"oms/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// SPS Commerce を想定したEDI受注ペイロード（デコード済みJSON）
type EDIOrderLineRequest struct {
	SKU string `json:"sku" validate:"required"`
	//ポインタ必須にして明示的なquantity: 0を通す
	Quantity  *int64           `json:"quantity" validate:"required"`
	UnitPrice *decimal.Decimal `json:"unit_price"`
}

type EDIOrderRequest struct {
	OrderNumber           string                `json:"order_number" validate:"required"`
	RetailerEDIIdentifier string                `json:"retailer_edi_identifier" validate:"required"`
	OrderDate             string                `json:"order_date"`
	ShipByDate            string                `json:"ship_by_date"`
	ShipToName            string                `json:"ship_to_name"`
	ShipToAddress1        string                `json:"ship_to_address1"`
	ShipToAddress2        string                `json:"ship_to_address2"`
	ShipToCity            string                `json:"ship_to_city"`
	ShipToState           string                `json:"ship_to_state"`
	ShipToZip             string                `json:"ship_to_zip"`
	ShipToCountry         string                `json:"ship_to_country"`
	ShipToPhone           string                `json:"ship_to_phone"`
	TaxAmount             decimal.Decimal       `json:"tax_amount"`
	ShippingAmount        decimal.Decimal       `json:"shipping_amount"`
	Notes                 string                `json:"notes"`
	OrderLines            []EDIOrderLineRequest `json:"order_lines" validate:"required,min=1,dive"`
}

type OrderUpdateRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.POST("/sps/orders", h.receiveSPSOrder)
	g.GET("/orders", h.list)
	g.GET("/orders/:id", h.detail)
	g.PUT("/orders/:id", h.update)
	g.POST("/orders/:id/cancel", h.cancel)
}

func (h *OrderHandler) receiveSPSOrder(c echo.Context) error {
	var req EDIOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required field"})
	}

	lines := make([]usecase.EDIOrderLineInput, 0, len(req.OrderLines))
	for _, l := range req.OrderLines {
		lines = append(lines, usecase.EDIOrderLineInput{
			SKU:       l.SKU,
			Quantity:  *l.Quantity,
			UnitPrice: l.UnitPrice,
		})
	}

	order, err := h.uc.ReceiveEDIOrder(c.Request().Context(), usecase.EDIOrderInput{
		OrderNumber:           req.OrderNumber,
		RetailerEDIIdentifier: req.RetailerEDIIdentifier,
		OrderDate:             req.OrderDate,
		ShipByDate:            req.ShipByDate,
		ShipToName:            req.ShipToName,
		ShipToAddress1:        req.ShipToAddress1,
		ShipToAddress2:        req.ShipToAddress2,
		ShipToCity:            req.ShipToCity,
		ShipToState:           req.ShipToState,
		ShipToZip:             req.ShipToZip,
		ShipToCountry:         req.ShipToCountry,
		ShipToPhone:           req.ShipToPhone,
		TaxAmount:             req.TaxAmount,
		ShippingAmount:        req.ShippingAmount,
		Notes:                 req.Notes,
		OrderLines:            lines,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Order received successfully",
		"order":   order,
	})
}

func (h *OrderHandler) list(c echo.Context) error {
	page, perPage := pageParams(c)

	q := repo.OrderListQuery{
		Page:    page,
		PerPage: perPage,
		Status:  c.QueryParam("status"),
	}
	if v := c.QueryParam("retailer_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid retailer_id"})
		}
		q.RetailerID = &id
	}

	orders, total, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"orders":   orders,
		"total":    total,
		"page":     page,
		"per_page": perPage,
		"pages":    totalPages(total, perPage),
	})
}

func (h *OrderHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetDetail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *OrderHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req OrderUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	order, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateOrderInput{
		Status: req.Status,
		Notes:  req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Order updated successfully",
		"order":   order,
	})
}

func (h *OrderHandler) cancel(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	order, err := h.uc.Cancel(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Order cancelled successfully",
		"order":   order,
	})
}
