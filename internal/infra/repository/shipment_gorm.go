package repository

import (
	"context"
	"errors"

	"oms/internal/domain/model"
	repo "oms/internal/repository"

	"gorm.io/gorm"
)

type ShipmentGormRepository struct {
	db *gorm.DB
}

func NewShipmentGormRepository(db *gorm.DB) *ShipmentGormRepository {
	return &ShipmentGormRepository{db: db}
}

func (r *ShipmentGormRepository) FindByID(ctx context.Context, shipmentID int64) (model.Shipment, error) {
	var s model.Shipment
	err := r.db.WithContext(ctx).Where("id = ?", shipmentID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shipment{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shipment{}, err
	}
	return s, nil
}

func (r *ShipmentGormRepository) List(ctx context.Context, q repo.ShipmentListQuery) ([]model.Shipment, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 || q.PerPage > 100 {
		q.PerPage = 20
	}

	query := r.db.WithContext(ctx).Model(&model.Shipment{})

	if q.OrderID != nil {
		query = query.Where("order_id = ?", *q.OrderID)
	}
	if q.Status != "" {
		query = query.Where("status = ?", q.Status)
	}
	if q.Carrier != "" {
		query = query.Where("carrier = ?", q.Carrier)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return []model.Shipment{}, 0, err
	}

	var items []model.Shipment
	offset := (q.Page - 1) * q.PerPage
	if err := query.Order("created_at desc").Limit(q.PerPage).Offset(offset).Find(&items).Error; err != nil {
		return []model.Shipment{}, 0, err
	}

	return items, total, nil
}

func (r *ShipmentGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.Shipment, error) {
	var items []model.Shipment
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return []model.Shipment{}, err
	}
	return items, nil
}

func (r *ShipmentGormRepository) Create(ctx context.Context, s model.Shipment) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}

func (r *ShipmentGormRepository) Update(ctx context.Context, s model.Shipment) error {
	res := r.db.WithContext(ctx).Save(&s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

func (r *ShipmentGormRepository) FindByShipmentNumber(ctx context.Context, number string) (model.Shipment, bool, error) {
	var s model.Shipment
	err := r.db.WithContext(ctx).
		Where("shipment_number = ?", number).
		First(&s).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shipment{}, false, nil
	}
	if err != nil {
		return model.Shipment{}, false, err
	}
	return s, true, nil
}
