package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// REST/GraphQL から設定できるステータス一覧
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// EDIで受信した注文ヘッダ
type Order struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string      `gorm:"type:varchar(100);not null;uniqueIndex" json:"order_number"`
	RetailerID  int64       `gorm:"not null;index" json:"retailer_id"`
	Status      OrderStatus `gorm:"type:varchar(50);not null;default:pending;index" json:"status"`
	OrderDate   time.Time   `gorm:"not null" json:"order_date"`
	ShipByDate  *time.Time  `json:"ship_by_date"`

	//配送先
	ShipToName     string `gorm:"type:varchar(200)" json:"ship_to_name"`
	ShipToAddress1 string `gorm:"type:varchar(300)" json:"ship_to_address1"`
	ShipToAddress2 string `gorm:"type:varchar(300)" json:"ship_to_address2"`
	ShipToCity     string `gorm:"type:varchar(100)" json:"ship_to_city"`
	ShipToState    string `gorm:"type:varchar(50)" json:"ship_to_state"`
	ShipToZip      string `gorm:"type:varchar(20)" json:"ship_to_zip"`
	ShipToCountry  string `gorm:"type:varchar(50)" json:"ship_to_country"`
	ShipToPhone    string `gorm:"type:varchar(50)" json:"ship_to_phone"`

	//金額。TotalAmount = Subtotal + TaxAmount + ShippingAmount（作成時に確定）
	Subtotal       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"subtotal"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"tax_amount"`
	ShippingAmount decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"shipping_amount"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0" json:"total_amount"`

	Notes     string    `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	OrderLines []OrderLine `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Shipments  []Shipment  `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
