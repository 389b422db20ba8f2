package handler

import (
	"net/http"
	"strconv"

	repo "oms/internal/repository"
	"oms/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// /api/products の公開API
type ProductHandler struct {
	uc *usecase.ProductUsecase
}

func NewProductHandler(uc *usecase.ProductUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

type ProductCreateRequest struct {
	SKU              string          `json:"sku" validate:"required"`
	UPC              *string         `json:"upc"`
	Name             string          `json:"name" validate:"required"`
	Description      string          `json:"description"`
	Price            decimal.Decimal `json:"price"`
	Cost             decimal.Decimal `json:"cost"`
	QuantityOnHand   int64           `json:"quantity_on_hand"`
	QuantityReserved int64           `json:"quantity_reserved"`
	IsActive         *bool           `json:"is_active"`
}

type ProductUpdateRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Cost        *decimal.Decimal `json:"cost"`
	UPC         *string          `json:"upc"`
	IsActive    *bool            `json:"is_active"`
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.GET("/products", h.list)
	g.GET("/products/:id", h.detail)
	g.POST("/products", h.create)
	g.PUT("/products/:id", h.update)
}

func (h *ProductHandler) list(c echo.Context) error {
	page, perPage := pageParams(c)

	q := repo.ProductListQuery{
		Page:    page,
		PerPage: perPage,
		SKU:     c.QueryParam("sku"),
	}
	if v := c.QueryParam("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid is_active"})
		}
		q.IsActive = &b
	}

	products, total, err := h.uc.List(c.Request().Context(), q)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"products": products,
		"total":    total,
		"page":     page,
		"per_page": perPage,
		"pages":    totalPages(total, perPage),
	})
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	p, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) create(c echo.Context) error {
	var req ProductCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required field"})
	}

	p, err := h.uc.Create(c.Request().Context(), usecase.CreateProductInput{
		SKU:              req.SKU,
		UPC:              req.UPC,
		Name:             req.Name,
		Description:      req.Description,
		Price:            req.Price,
		Cost:             req.Cost,
		QuantityOnHand:   req.QuantityOnHand,
		QuantityReserved: req.QuantityReserved,
		IsActive:         req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "Product created successfully",
		"product": p,
	})
}

func (h *ProductHandler) update(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ProductUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	p, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Cost:        req.Cost,
		UPC:         req.UPC,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Product updated successfully",
		"product": p,
	})
}
