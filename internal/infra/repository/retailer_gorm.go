package repository

import (
	"context"
	"errors"

	"oms/internal/domain/model"
	repo "oms/internal/repository"

	"gorm.io/gorm"
)

type RetailerGormRepository struct {
	db *gorm.DB
}

func NewRetailerGormRepository(db *gorm.DB) *RetailerGormRepository {
	return &RetailerGormRepository{db: db}
}

func (r *RetailerGormRepository) List(ctx context.Context, isActive *bool) ([]model.Retailer, error) {
	query := r.db.WithContext(ctx).Model(&model.Retailer{})
	if isActive != nil {
		query = query.Where("is_active = ?", *isActive)
	}

	var items []model.Retailer
	if err := query.Order("id").Find(&items).Error; err != nil {
		return []model.Retailer{}, err
	}
	return items, nil
}

func (r *RetailerGormRepository) FindByID(ctx context.Context, id int64) (model.Retailer, error) {
	var rt model.Retailer
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Retailer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Retailer{}, err
	}
	return rt, nil
}

func (r *RetailerGormRepository) FindByEDIIdentifier(ctx context.Context, ediID string) (model.Retailer, error) {
	var rt model.Retailer
	err := r.db.WithContext(ctx).Where("edi_identifier = ?", ediID).First(&rt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Retailer{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Retailer{}, err
	}
	return rt, nil
}

func (r *RetailerGormRepository) Create(ctx context.Context, rt model.Retailer) (model.Retailer, error) {
	if err := r.db.WithContext(ctx).Create(&rt).Error; err != nil {
		return model.Retailer{}, err
	}
	return rt, nil
}
