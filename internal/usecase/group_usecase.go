package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// GroupUsecase はスタッフ（manager / delivery crew）の所属管理。
// 所属はusers.roleそのもの。追加=ロール変更、削除=CUSTOMERへ戻す。
type GroupUsecase struct {
	userRepo repo.UserRepository
}

func NewGroupUsecase(userRepo repo.UserRepository) *GroupUsecase {
	return &GroupUsecase{userRepo: userRepo}
}

type GroupUserOutput struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// ListMembers はmanagerのみ。
func (u *GroupUsecase) ListMembers(ctx context.Context, actorRole model.Role, group model.Role) ([]GroupUserOutput, error) {
	if actorRole != model.RoleManager {
		return []GroupUserOutput{}, NewHTTPError(http.StatusForbidden, CodeForbidden, "manager only")
	}

	users, err := u.userRepo.ListByRole(ctx, group)
	if err != nil {
		return []GroupUserOutput{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	outs := make([]GroupUserOutput, 0, len(users))
	for _, usr := range users {
		outs = append(outs, GroupUserOutput{ID: usr.ID, Email: usr.Email})
	}
	return outs, nil
}

// AddMember はmanagerのみ。存在しないユーザーは404。
func (u *GroupUsecase) AddMember(ctx context.Context, actorRole model.Role, group model.Role, userID int64) (GroupUserOutput, error) {
	if actorRole != model.RoleManager {
		return GroupUserOutput{}, NewHTTPError(http.StatusForbidden, CodeForbidden, "manager only")
	}
	if userID <= 0 {
		return GroupUserOutput{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid user_id")
	}

	usr, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return GroupUserOutput{}, NewHTTPError(http.StatusNotFound, CodeNotFound, "user not found")
	}
	if err != nil {
		return GroupUserOutput{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	if err := u.userRepo.UpdateRole(ctx, userID, group); err != nil {
		return GroupUserOutput{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	return GroupUserOutput{ID: usr.ID, Email: usr.Email}, nil
}

// RemoveMember はmanagerのみ。グループ外のユーザーは404。
func (u *GroupUsecase) RemoveMember(ctx context.Context, actorRole model.Role, group model.Role, userID int64) error {
	if actorRole != model.RoleManager {
		return NewHTTPError(http.StatusForbidden, CodeForbidden, "manager only")
	}
	if userID <= 0 {
		return NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid user_id")
	}

	usr, err := u.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, CodeNotFound, "user not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	if usr.Role != group {
		return NewHTTPError(http.StatusNotFound, CodeNotFound, "user not in group")
	}

	if err := u.userRepo.UpdateRole(ctx, userID, model.RoleCustomer); err != nil {
		return NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return nil
}
