package repository

import (
	"context"

	"oms/internal/domain/model"
)

type AdjustmentListQuery struct {
	Page           int
	PerPage        int
	ProductID      *int64
	AdjustmentType string
}

// 在庫カウンタの更新と調整履歴の保存をまとめた約束。
type InventoryRepository interface {
	// カウンタ更新。availableはここで on_hand - reserved に再計算される
	UpdateQuantities(ctx context.Context, productID int64, onHand int64, reserved int64) error

	// 調整履歴作成（追記専用）
	CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) (model.InventoryAdjustment, error)

	ListAdjustments(ctx context.Context, q AdjustmentListQuery) ([]model.InventoryAdjustment, int64, error)
	ListRecentAdjustments(ctx context.Context, productID int64, limit int) ([]model.InventoryAdjustment, error)
}
