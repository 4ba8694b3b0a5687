package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 注文の明細。作成後は変更しない（Orderと一緒に削除）。
type OrderItem struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID    int64           `gorm:"not null;index" json:"order_id"`
	MenuItemID int64           `gorm:"not null;index" json:"menu_item_id"`
	Quantity   int64           `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"unit_price"`
	Price      decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"price"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
