package handler

import (
	"net/http"
	"strconv"

	"oms/internal/usecase"

	"github.com/labstack/echo/v4"
)

type RetailerHandler struct {
	uc *usecase.RetailerUsecase
}

func NewRetailerHandler(uc *usecase.RetailerUsecase) *RetailerHandler {
	return &RetailerHandler{uc: uc}
}

type RetailerCreateRequest struct {
	Name          string `json:"name" validate:"required"`
	EDIIdentifier string `json:"edi_identifier" validate:"required"`
	ContactEmail  string `json:"contact_email"`
	ContactPhone  string `json:"contact_phone"`
}

func (h *RetailerHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")

	g.GET("/retailers", h.list)
	g.GET("/retailers/:id", h.detail)
	g.POST("/retailers", h.create)
}

func (h *RetailerHandler) list(c echo.Context) error {
	var isActive *bool
	if v := c.QueryParam("is_active"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid is_active"})
		}
		isActive = &b
	}

	retailers, err := h.uc.List(c.Request().Context(), isActive)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"retailers": retailers})
}

func (h *RetailerHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	rt, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, rt)
}

func (h *RetailerHandler) create(c echo.Context) error {
	var req RetailerCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required field"})
	}

	rt, err := h.uc.Create(c.Request().Context(), usecase.CreateRetailerInput{
		Name:          req.Name,
		EDIIdentifier: req.EDIIdentifier,
		ContactEmail:  req.ContactEmail,
		ContactPhone:  req.ContactPhone,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message":  "Retailer created successfully",
		"retailer": rt,
	})
}
