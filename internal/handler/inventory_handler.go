package handler

import (
	"net/http"
	"strconv"

	repo "oms/internal/repository"
	"oms/internal/usecase"

	"github.com/labstack/echo/v4"
)

type InventoryHandler struct {
	uc *usecase.InventoryUsecase
}

func NewInventoryHandler(uc *usecase.InventoryUsecase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

type InventoryAdjustRequest struct {
	ProductID       int64  `json:"product_id" validate:"required"`
	AdjustmentType  string `json:"adjustment_type" validate:"required"`
	QuantityChange  *int64 `json:"quantity_change" validate:"required"`
	Reason          string `json:"reason"`
	ReferenceNumber string `json:"reference_number"`
	CreatedBy       string `json:"created_by"`
}

func (h *InventoryHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.POST("/inventory/adjust", h.adjust)
	g.GET("/inventory/product/:product_id", h.productInventory)
	g.GET("/inventory/adjustments", h.listAdjustments)
}

func (h *InventoryHandler) adjust(c echo.Context) error {
	var req InventoryAdjustRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required field"})
	}

	out, err := h.uc.Adjust(c.Request().Context(), usecase.AdjustInventoryInput{
		ProductID:       req.ProductID,
		AdjustmentType:  req.AdjustmentType,
		QuantityChange:  *req.QuantityChange,
		Reason:          req.Reason,
		ReferenceNumber: req.ReferenceNumber,
		CreatedBy:       req.CreatedBy,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message":    "Inventory adjusted successfully",
		"adjustment": out.Adjustment,
		"product":    out.Product,
	})
}

func (h *InventoryHandler) productInventory(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("product_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
	}

	out, err := h.uc.GetProductInventory(c.Request().Context(), productID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *InventoryHandler) listAdjustments(c echo.Context) error {
	page, perPage := pageParams(c)

	q := repo.AdjustmentListQuery{
		Page:           page,
		PerPage:        perPage,
		AdjustmentType: c.QueryParam("adjustment_type"),
	}
	if v := c.QueryParam("product_id"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid product_id"})
		}
		q.ProductID = &id
	}

	adjustments, total, err := h.uc.ListAdjustments(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"adjustments": adjustments,
		"total":       total,
		"page":        page,
		"per_page":    perPage,
		"pages":       totalPages(total, perPage),
	})
}
