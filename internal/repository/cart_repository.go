package repository

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

type CartRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error)
	// トランザクション内で行ロック付きで読む（注文確定用）
	ListByUserForUpdate(ctx context.Context, userID int64) ([]model.CartLine, error)
	// 同一商品は数量・価格を上書き
	Upsert(ctx context.Context, userID int64, menuItemID int64, quantity int64, unitPrice decimal.Decimal, price decimal.Decimal) (model.CartLine, error)
	// 全明細削除。空でも成功。
	ClearByUser(ctx context.Context, userID int64) error
}
