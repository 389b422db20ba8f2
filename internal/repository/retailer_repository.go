package repository

import (
	"context"

	"oms/internal/domain/model"
)

type RetailerRepository interface {
	List(ctx context.Context, isActive *bool) ([]model.Retailer, error)
	FindByID(ctx context.Context, id int64) (model.Retailer, error)

	//EDI識別子で取引先を引く（受注時の解決に使う）
	FindByEDIIdentifier(ctx context.Context, ediID string) (model.Retailer, error)

	Create(ctx context.Context, r model.Retailer) (model.Retailer, error)
}
