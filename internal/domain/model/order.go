package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status false=未配達 / true=配達済み
// Total は注文確定時のカート合計のスナップショット。作成後は変更しない。
type Order struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64           `gorm:"not null;index" json:"user_id"`
	DeliveryCrewID *int64          `gorm:"index" json:"delivery_crew_id"`
	Status         bool            `gorm:"not null;default:false" json:"status"`
	Total          decimal.Decimal `gorm:"type:numeric(8,2);not null" json:"total"`
	Date           time.Time       `gorm:"type:date;not null" json:"date"`
	CreatedAt      time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
