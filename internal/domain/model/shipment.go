package model

import "time"

type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "pending"
	ShipmentStatusInTransit ShipmentStatus = "in_transit"
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	ShipmentStatusException ShipmentStatus = "exception"
)

type Shipment struct {
	ID             int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID        int64          `gorm:"not null;index" json:"order_id"`
	ShipmentNumber string         `gorm:"type:varchar(100);not null;uniqueIndex" json:"shipment_number"`
	Carrier        string         `gorm:"type:varchar(100)" json:"carrier"`
	TrackingNumber string         `gorm:"type:varchar(200)" json:"tracking_number"`
	ServiceLevel   string         `gorm:"type:varchar(100)" json:"service_level"`
	Status         ShipmentStatus `gorm:"type:varchar(50);not null;default:pending;index" json:"status"`
	ShippedDate    *time.Time     `json:"shipped_date"`
	DeliveredDate  *time.Time     `json:"delivered_date"`
	Notes          string         `gorm:"type:text" json:"notes"`
	CreatedAt      time.Time      `gorm:"not null;autoCreateTime;index" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
