package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// カートの明細
// (user_id, menu_item_id) で一意。二回目の追加は数量・価格を上書き。
// 追加時点の単価を必ず保存。
type CartLine struct {
	ID         int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     int64           `gorm:"not null;uniqueIndex:idx_cart_user_menu_item" json:"user_id"`
	MenuItemID int64           `gorm:"not null;uniqueIndex:idx_cart_user_menu_item" json:"menu_item_id"`
	Quantity   int64           `gorm:"not null" json:"quantity"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"unit_price"`
	Price      decimal.Decimal `gorm:"type:numeric(6,2);not null" json:"price"`
	CreatedAt  time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
