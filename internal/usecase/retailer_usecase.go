package usecase

import (
	"context"
	"errors"
	"net/http"

	"oms/internal/domain/model"
	repo "oms/internal/repository"
)

type RetailerUsecase struct {
	retailers repo.RetailerRepository
}

// DI
func NewRetailerUsecase(retailers repo.RetailerRepository) *RetailerUsecase {
	return &RetailerUsecase{retailers: retailers}
}

func (u *RetailerUsecase) List(ctx context.Context, isActive *bool) ([]model.Retailer, error) {
	items, err := u.retailers.List(ctx, isActive)
	if err != nil {
		return []model.Retailer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, nil
}

func (u *RetailerUsecase) Get(ctx context.Context, id int64) (model.Retailer, error) {
	rt, err := u.retailers.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.Retailer{}, NewHTTPError(http.StatusNotFound, "Retailer not found")
	}
	if err != nil {
		return model.Retailer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return rt, nil
}

type CreateRetailerInput struct {
	Name          string
	EDIIdentifier string
	ContactEmail  string
	ContactPhone  string
}

func (u *RetailerUsecase) Create(ctx context.Context, in CreateRetailerInput) (model.Retailer, error) {
	//EDI識別子の重複は409
	_, err := u.retailers.FindByEDIIdentifier(ctx, in.EDIIdentifier)
	if err == nil {
		return model.Retailer{}, NewHTTPError(http.StatusConflict, "Retailer with this EDI identifier already exists")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return model.Retailer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	rt := model.Retailer{
		Name:          in.Name,
		EDIIdentifier: in.EDIIdentifier,
		ContactEmail:  in.ContactEmail,
		ContactPhone:  in.ContactPhone,
		IsActive:      true,
	}

	created, err := u.retailers.Create(ctx, rt)
	if err != nil {
		return model.Retailer{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return created, nil
}
