package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type MenuItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string          `gorm:"type:varchar(255);not null" json:"title"`
	Price     decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"price"`
	Featured  bool            `gorm:"not null;default:false" json:"featured"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
