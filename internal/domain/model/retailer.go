package model

import "time"

// EDIで繋がる取引先（小売パートナー）
type Retailer struct {
	ID            int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name          string    `gorm:"type:varchar(200);not null" json:"name"`
	EDIIdentifier string    `gorm:"column:edi_identifier;type:varchar(100);not null;uniqueIndex" json:"edi_identifier"`
	ContactEmail  string    `gorm:"type:varchar(200)" json:"contact_email"`
	ContactPhone  string    `gorm:"type:varchar(50)" json:"contact_phone"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
