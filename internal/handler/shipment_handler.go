package handler

import (
	"net/http"
	"strconv"

	repo "oms/internal/repository"
	"oms/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ShipmentHandler struct {
	uc *usecase.ShipmentUsecase
}

func NewShipmentHandler(uc *usecase.ShipmentUsecase) *ShipmentHandler {
	return &ShipmentHandler{uc: uc}
}

type ShipmentCreateRequest struct {
	OrderID        int64  `json:"order_id" validate:"required"`
	ShipmentNumber string `json:"shipment_number" validate:"required"`
	Carrier        string `json:"carrier" validate:"required"`
	TrackingNumber string `json:"tracking_number"`
	ServiceLevel   string `json:"service_level"`
	Status         string `json:"status"`
	ShippedDate    string `json:"shipped_date"`
	Notes          string `json:"notes"`
}

type ShipmentUpdateRequest struct {
	Status         *string `json:"status"`
	TrackingNumber *string `json:"tracking_number"`
	DeliveredDate  *string `json:"delivered_date"`
	Notes          *string `json:"notes"`
}

func (h *ShipmentHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.POST("/shipments", h.create)
	g.GET("/shipments", h.list)
	g.GET("/shipments/:id", h.detail)
	g.PUT("/shipments/:id", h.update)
}

func (h *ShipmentHandler) create(c echo.Context) error {
	var req ShipmentCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required field"})
	}

	s, err := h.uc.Create(c.Request().Context(), usecase.CreateShipmentInput{
		OrderID:        req.OrderID,
		ShipmentNumber: req.ShipmentNumber,
		Carrier:        req.Carrier,
		TrackingNumber: req.TrackingNumber,
		ServiceLevel:   req.ServiceLevel,
		Status:         req.Status,
		ShippedDate:    req.ShippedDate,
		Notes:          req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Shipment created successfully",
		"shipment": s,
	})
}

func (h *ShipmentHandler) list(c echo.Context) error {
	page, perPage := pageParams(c)

	q := repo.ShipmentListQuery{
		Page:    page,
		PerPage: perPage,
		Status:  c.QueryParam("status"),
		Carrier: c.QueryParam("carrier"),
	}
	if v := c.QueryParam("order_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid order_id"})
		}
		q.OrderID = &id
	}

	shipments, total, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"shipments": shipments,
		"total":     total,
		"page":      page,
		"per_page":  perPage,
		"pages":     totalPages(total, perPage),
	})
}

func (h *ShipmentHandler) detail(c echo.Context) error {
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

func (h *ShipmentHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ShipmentUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	s, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateShipmentInput{
		Status:         req.Status,
		TrackingNumber: req.TrackingNumber,
		DeliveredDate:  req.DeliveredDate,
		Notes:          req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":  "Shipment updated successfully",
		"shipment": s,
	})
}
