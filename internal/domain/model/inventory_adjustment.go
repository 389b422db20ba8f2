package model

import "time"

type AdjustmentType string

const (
	AdjustmentTypePurchase   AdjustmentType = "purchase"
	AdjustmentTypeSale       AdjustmentType = "sale"
	AdjustmentTypeReturn     AdjustmentType = "return"
	AdjustmentTypeDamage     AdjustmentType = "damage"
	AdjustmentTypeAdjustment AdjustmentType = "adjustment"

	//注文ワークフロー内部だけが書く種別。公開APIからは指定できない
	AdjustmentTypeReservation AdjustmentType = "reservation"
	AdjustmentTypeRelease     AdjustmentType = "release"
)

// 公開の在庫調整APIで受け付ける種別
func ValidAdjustmentType(t string) bool {
	switch AdjustmentType(t) {
	case AdjustmentTypePurchase, AdjustmentTypeSale, AdjustmentTypeReturn,
		AdjustmentTypeDamage, AdjustmentTypeAdjustment:
		return true
	}
	return false
}

// 在庫変動の履歴。追記専用で、作成後は更新も削除もしない
type InventoryAdjustment struct {
	ID               int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID        int64          `gorm:"not null;index" json:"product_id"`
	AdjustmentType   AdjustmentType `gorm:"type:varchar(50);not null;index" json:"adjustment_type"`
	QuantityChange   int64          `gorm:"not null" json:"quantity_change"`
	PreviousQuantity int64          `gorm:"not null" json:"previous_quantity"`
	NewQuantity      int64          `gorm:"not null" json:"new_quantity"`
	Reason           string         `gorm:"type:varchar(300)" json:"reason"`
	ReferenceNumber  string         `gorm:"type:varchar(100)" json:"reference_number"`
	CreatedBy        string         `gorm:"type:varchar(100)" json:"created_by"`
	CreatedAt        time.Time      `gorm:"not null;autoCreateTime;index" json:"created_at"`
}
