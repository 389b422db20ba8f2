package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文明細。LineTotal = QuantityOrdered * UnitPrice（作成時に確定、以後不変）
type OrderLine struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID         int64           `gorm:"not null;index" json:"order_id"`
	ProductID       int64           `gorm:"not null;index" json:"product_id"`
	QuantityOrdered int64           `gorm:"not null" json:"quantity_ordered"`
	QuantityShipped int64           `gorm:"not null;default:0" json:"quantity_shipped"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"unit_price"`
	LineTotal       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"line_total"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
