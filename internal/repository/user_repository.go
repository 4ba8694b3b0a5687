package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 保存・取得を約束
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	// ロール別のユーザー一覧（スタッフ管理用）
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
	UpdateRole(ctx context.Context, userID int64, role model.Role) error
}
