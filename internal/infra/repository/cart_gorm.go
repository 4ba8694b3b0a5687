package repository

import (
	"app/internal/domain/model"
	repo "app/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// ユーザーのカート明細を一覧取得
func (r *CartGormRepository) ListByUser(ctx context.Context, userID int64) ([]model.CartLine, error) {
	var lines []model.CartLine

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&lines).Error; err != nil {
		return []model.CartLine{}, err
	}

	return lines, nil
}

// 注文確定用。行ロック付きで読む（注文の二重送信対策）。
func (r *CartGormRepository) ListByUserForUpdate(ctx context.Context, userID int64) ([]model.CartLine, error) {
	var lines []model.CartLine

	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&lines).Error; err != nil {
		return []model.CartLine{}, err
	}

	return lines, nil
}

// 同一商品は数量・価格を上書き（加算ではない）
func (r *CartGormRepository) Upsert(ctx context.Context, userID int64, menuItemID int64, quantity int64, unitPrice decimal.Decimal, price decimal.Decimal) (model.CartLine, error) {
	var line model.CartLine

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		findErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
			First(&line).Error

		if findErr == nil {
			// 既存ありなら数量と価格スナップショットを上書き
			res := tx.Model(&model.CartLine{}).
				Where("id = ?", line.ID).
				Updates(map[string]interface{}{
					"quantity":   quantity,
					"unit_price": unitPrice,
					"price":      price,
				})

			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return repo.ErrNotFound
			}

			line.Quantity = quantity
			line.UnitPrice = unitPrice
			line.Price = price
			return nil
		}

		if !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		//無い場合は新規作成
		now := time.Now()
		line = model.CartLine{
			UserID:     userID,
			MenuItemID: menuItemID,
			Quantity:   quantity,
			UnitPrice:  unitPrice,
			Price:      price,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		if err := tx.Create(&line).Error; err != nil {
			return err
		}

		return nil
	})

	if err != nil {
		return model.CartLine{}, err
	}
	return line, nil
}

// 指定ユーザーの明細を全削除。0件でもエラーにしない。
func (r *CartGormRepository) ClearByUser(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CartLine{}).Error
}
