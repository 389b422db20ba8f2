package usecase

import (
	"context"
	"errors"
	"net/http"

	"oms/internal/domain/model"
	repo "oms/internal/repository"

	"github.com/shopspring/decimal"
)

type ProductUsecase struct {
	products repo.ProductRepository
}

// DI
func NewProductUsecase(products repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{products: products}
}

func (u *ProductUsecase) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	items, total, err := u.products.List(ctx, q)
	if err != nil {
		return []model.Product{}, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}

func (u *ProductUsecase) Get(ctx context.Context, id int64) (model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}

type CreateProductInput struct {
	SKU              string
	UPC              *string
	Name             string
	Description      string
	Price            decimal.Decimal
	Cost             decimal.Decimal
	QuantityOnHand   int64
	QuantityReserved int64
	IsActive         *bool
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	//SKU重複は409
	_, err := u.products.FindBySKU(ctx, in.SKU)
	if err == nil {
		return model.Product{}, NewHTTPError(http.StatusConflict, "Product with this SKU already exists")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	p := model.Product{
		SKU:               in.SKU,
		UPC:               in.UPC,
		Name:              in.Name,
		Description:       in.Description,
		Price:             in.Price,
		Cost:              in.Cost,
		QuantityOnHand:    in.QuantityOnHand,
		QuantityReserved:  in.QuantityReserved,
		QuantityAvailable: in.QuantityOnHand - in.QuantityReserved,
		IsActive:          isActive,
	}

	created, err := u.products.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}

type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Cost        *decimal.Decimal
	UPC         *string
	IsActive    *bool
}

// カタログ項目だけ更新可。在庫カウンタはここでは触らない
func (u *ProductUsecase) Update(ctx context.Context, id int64, in UpdateProductInput) (model.Product, error) {
	p, err := u.products.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Cost != nil {
		p.Cost = *in.Cost
	}
	if in.UPC != nil {
		p.UPC = in.UPC
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}

	if err := u.products.Update(ctx, p); err != nil {
		return model.Product{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p, nil
}
