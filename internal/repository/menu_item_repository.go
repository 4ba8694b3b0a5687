package repository

import (
	"context"

	"app/internal/domain/model"
)

// メニューの永続化（保存・取得）だけを約束。
type MenuItemRepository interface {
	List(ctx context.Context) ([]model.MenuItem, error)
	FindByID(ctx context.Context, id int64) (model.MenuItem, error)

	Create(ctx context.Context, m model.MenuItem) (model.MenuItem, error)
	Update(ctx context.Context, m model.MenuItem) error
	Delete(ctx context.Context, id int64) error
}
