package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"oms/internal/domain/model"
	repo "oms/internal/repository"
	"oms/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_Create_DuplicateSKU(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("FindBySKU", mock.Anything, "WIDGET-001").
		Return(model.Product{ID: 1, SKU: "WIDGET-001"}, nil)

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{
		SKU:  "WIDGET-001",
		Name: "Premium Widget",
	})
	assertHTTPError(t, err, http.StatusConflict, "Product with this SKU already exists")
}

func TestProductUsecase_Create_DerivesAvailable(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("FindBySKU", mock.Anything, "NEW-001").Return(model.Product{}, repo.ErrNotFound)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.SKU == "NEW-001" &&
			p.QuantityOnHand == int64(50) &&
			p.QuantityReserved == int64(5) &&
			p.QuantityAvailable == int64(45) &&
			p.IsActive
	})).Return(model.Product{ID: 9, SKU: "NEW-001"}, nil)

	out, err := uc.Create(context.Background(), usecase.CreateProductInput{
		SKU:              "NEW-001",
		Name:             "New Product",
		Price:            decimal.RequireFromString("12.50"),
		QuantityOnHand:   50,
		QuantityReserved: 5,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(9), out.ID)
	products.AssertExpectations(t)
}

func TestProductUsecase_Get_NotFound(t *testing.T) {
	products := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(products)

	products.On("FindByID", mock.Anything, int64(404)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Get(context.Background(), 404)
	assertHTTPError(t, err, http.StatusNotFound, "Product not found")
}

func TestRetailerUsecase_Create_DuplicateEDIIdentifier(t *testing.T) {
	retailers := new(RetailerRepoMock)
	uc := usecase.NewRetailerUsecase(retailers)

	retailers.On("FindByEDIIdentifier", mock.Anything, "WALMART001").
		Return(model.Retailer{ID: 1, EDIIdentifier: "WALMART001"}, nil)

	_, err := uc.Create(context.Background(), usecase.CreateRetailerInput{
		Name:          "Walmart",
		EDIIdentifier: "WALMART001",
	})
	assertHTTPError(t, err, http.StatusConflict, "Retailer with this EDI identifier already exists")
}

func TestRetailerUsecase_Create(t *testing.T) {
	retailers := new(RetailerRepoMock)
	uc := usecase.NewRetailerUsecase(retailers)

	retailers.On("FindByEDIIdentifier", mock.Anything, "TARGET001").
		Return(model.Retailer{}, repo.ErrNotFound)
	retailers.On("Create", mock.Anything, mock.MatchedBy(func(r model.Retailer) bool {
		return r.EDIIdentifier == "TARGET001" && r.IsActive
	})).Return(model.Retailer{ID: 2, Name: "Target", EDIIdentifier: "TARGET001", IsActive: true}, nil)

	out, err := uc.Create(context.Background(), usecase.CreateRetailerInput{
		Name:          "Target",
		EDIIdentifier: "TARGET001",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), out.ID)
}
