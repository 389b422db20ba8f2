package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	SKU         string          `gorm:"column:sku;type:varchar(100);not null;uniqueIndex" json:"sku"`
	UPC         *string         `gorm:"column:upc;type:varchar(50);uniqueIndex" json:"upc"`
	Name        string          `gorm:"type:varchar(300);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"price"`
	Cost        decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"cost"`

	//在庫数。Available は OnHand - Reserved の導出値で、直接は更新しない
	QuantityOnHand    int64 `gorm:"not null;default:0" json:"quantity_on_hand"`
	QuantityReserved  int64 `gorm:"not null;default:0" json:"quantity_reserved"`
	QuantityAvailable int64 `gorm:"not null;default:0" json:"quantity_available"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
