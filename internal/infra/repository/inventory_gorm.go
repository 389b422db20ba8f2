package repository

import (
	"context"
	"time"

	"oms/internal/domain/model"
	repo "oms/internal/repository"

	"gorm.io/gorm"
)

type InventoryGormRepository struct {
	db *gorm.DB
}

func NewInventoryGormRepository(db *gorm.DB) *InventoryGormRepository {
	return &InventoryGormRepository{db: db}
}

// カウンタ更新。available はここでしか計算しない
func (r *InventoryGormRepository) UpdateQuantities(ctx context.Context, productID int64, onHand int64, reserved int64) error {
	res := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"quantity_on_hand":   onHand,
			"quantity_reserved":  reserved,
			"quantity_available": onHand - reserved,
			"updated_at":         time.Now().UTC(),
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 調整履歴作成
func (r *InventoryGormRepository) CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) (model.InventoryAdjustment, error) {
	if err := r.db.WithContext(ctx).Create(&adj).Error; err != nil {
		return model.InventoryAdjustment{}, err
	}
	return adj, nil
}

func (r *InventoryGormRepository) ListAdjustments(ctx context.Context, q repo.AdjustmentListQuery) ([]model.InventoryAdjustment, int64, error) {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.PerPage <= 0 || q.PerPage > 100 {
		q.PerPage = 20
	}

	query := r.db.WithContext(ctx).Model(&model.InventoryAdjustment{})

	if q.ProductID != nil {
		query = query.Where("product_id = ?", *q.ProductID)
	}
	if q.AdjustmentType != "" {
		query = query.Where("adjustment_type = ?", q.AdjustmentType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return []model.InventoryAdjustment{}, 0, err
	}

	var items []model.InventoryAdjustment
	offset := (q.Page - 1) * q.PerPage
	if err := query.Order("created_at desc").Limit(q.PerPage).Offset(offset).Find(&items).Error; err != nil {
		return []model.InventoryAdjustment{}, 0, err
	}

	return items, total, nil
}

func (r *InventoryGormRepository) ListRecentAdjustments(ctx context.Context, productID int64, limit int) ([]model.InventoryAdjustment, error) {
	if limit <= 0 {
		limit = 10
	}

	var items []model.InventoryAdjustment
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at desc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return []model.InventoryAdjustment{}, err
	}
	return items, nil
}
