package repository

import (
	"context"
	"errors"

	"oms/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 一覧検索
type ProductListQuery struct {
	Page     int
	PerPage  int
	SKU      string
	IsActive *bool
}

// 商品カタログの永続化だけを約束。在庫カウンタの更新は InventoryRepository 側
type ProductRepository interface {
	List(ctx context.Context, q ProductListQuery) ([]model.Product, int64, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)
	FindBySKU(ctx context.Context, sku string) (model.Product, error)

	//行ロック付き取得。予約・在庫調整の read-modify-write 用で、Tx内でのみ使う
	FindByIDForUpdate(ctx context.Context, id int64) (model.Product, error)
	FindBySKUForUpdate(ctx context.Context, sku string) (model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
}
