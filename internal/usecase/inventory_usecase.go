package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"oms/internal/domain/model"
	repo "oms/internal/repository"
)

type InventoryUsecase struct {
	tx        repo.TransactionManager
	products  repo.ProductRepository
	inventory repo.InventoryRepository
}

func NewInventoryUsecase(tx repo.TransactionManager, products repo.ProductRepository, inventory repo.InventoryRepository) *InventoryUsecase {
	return &InventoryUsecase{tx: tx, products: products, inventory: inventory}
}

type AdjustInventoryInput struct {
	ProductID       int64
	AdjustmentType  string
	QuantityChange  int64
	Reason          string
	ReferenceNumber string
	CreatedBy       string
}

type AdjustInventoryOutput struct {
	Adjustment model.InventoryAdjustment `json:"adjustment"`
	Product    model.Product             `json:"product"`
}

// 在庫調整。履歴の追記とカウンタ更新を1トランザクションで行う
func (u *InventoryUsecase) Adjust(ctx context.Context, in AdjustInventoryInput) (AdjustInventoryOutput, error) {
	if !model.ValidAdjustmentType(in.AdjustmentType) {
		return AdjustInventoryOutput{}, NewHTTPError(http.StatusBadRequest, "invalid adjustment type")
	}

	createdBy := in.CreatedBy
	if createdBy == "" {
		createdBy = "system"
	}

	var out AdjustInventoryOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		//行ロックを取ってから現在値を読む
		p, err := r.Products().FindByIDForUpdate(ctx, in.ProductID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, "Product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		previous := p.QuantityOnHand
		newQuantity := previous + in.QuantityChange

		//物理在庫はマイナスにしない
		if newQuantity < 0 {
			return NewHTTPError(http.StatusBadRequest, "Cannot adjust inventory below zero")
		}

		adj, err := r.Inventory().CreateAdjustment(ctx, model.InventoryAdjustment{
			ProductID:        p.ID,
			AdjustmentType:   model.AdjustmentType(in.AdjustmentType),
			QuantityChange:   in.QuantityChange,
			PreviousQuantity: previous,
			NewQuantity:      newQuantity,
			Reason:           in.Reason,
			ReferenceNumber:  in.ReferenceNumber,
			CreatedBy:        createdBy,
		})
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		if err := r.Inventory().UpdateQuantities(ctx, p.ID, newQuantity, p.QuantityReserved); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		//UpdateQuantitiesがDB側のupdated_atを進めるので応答もあわせる
		p.QuantityOnHand = newQuantity
		p.QuantityAvailable = newQuantity - p.QuantityReserved
		p.UpdatedAt = time.Now().UTC()

		out = AdjustInventoryOutput{Adjustment: adj, Product: p}
		return nil
	})

	if err != nil {
		return AdjustInventoryOutput{}, err
	}
	return out, nil
}

type ProductInventoryOutput struct {
	Product           model.Product               `json:"product"`
	RecentAdjustments []model.InventoryAdjustment `json:"recent_adjustments"`
}

// 商品の在庫詳細（直近10件の調整履歴つき）
func (u *InventoryUsecase) GetProductInventory(ctx context.Context, productID int64) (ProductInventoryOutput, error) {
	p, err := u.products.FindByID(ctx, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return ProductInventoryOutput{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return ProductInventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	recent, err := u.inventory.ListRecentAdjustments(ctx, productID, 10)
	if err != nil {
		return ProductInventoryOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductInventoryOutput{Product: p, RecentAdjustments: recent}, nil
}

func (u *InventoryUsecase) ListAdjustments(ctx context.Context, q repo.AdjustmentListQuery) ([]model.InventoryAdjustment, int64, error) {
	items, total, err := u.inventory.ListAdjustments(ctx, q)
	if err != nil {
		return []model.InventoryAdjustment{}, 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return items, total, nil
}
