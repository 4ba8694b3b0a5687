package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type MenuUsecase struct {
	menuItemRepo repo.MenuItemRepository
}

func NewMenuUsecase(menuItemRepo repo.MenuItemRepository) *MenuUsecase {
	return &MenuUsecase{menuItemRepo: menuItemRepo}
}

// priceは小数文字列で受ける（floatのブレを入れない）
type MenuItemInput struct {
	Title    string
	Price    string
	Featured bool
}

func (u *MenuUsecase) List(ctx context.Context) ([]model.MenuItem, error) {
	items, err := u.menuItemRepo.List(ctx)
	if err != nil {
		return []model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return items, nil
}

func (u *MenuUsecase) Get(ctx context.Context, id int64) (model.MenuItem, error) {
	if id <= 0 {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid id")
	}

	m, err := u.menuItemRepo.FindByID(ctx, id)
	if errors.Is(err, repo.ErrNotFound) {
		return model.MenuItem{}, NewHTTPError(http.StatusNotFound, CodeNotFound, "not found")
	}
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return m, nil
}

// Create はmanagerのみ。
func (u *MenuUsecase) Create(ctx context.Context, role model.Role, in MenuItemInput) (model.MenuItem, error) {
	if role != model.RoleManager {
		return model.MenuItem{}, NewHTTPError(http.StatusForbidden, CodeForbidden, "manager only")
	}

	title, price, err := u.validate(in)
	if err != nil {
		return model.MenuItem{}, err
	}

	created, err := u.menuItemRepo.Create(ctx, model.MenuItem{
		Title:    title,
		Price:    price,
		Featured: in.Featured,
	})
	if err != nil {
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return created, nil
}

// Update はmanagerのみ。
func (u *MenuUsecase) Update(ctx context.Context, role model.Role, id int64, in MenuItemInput) (model.MenuItem, error) {
	if role != model.RoleManager {
		return model.MenuItem{}, NewHTTPError(http.StatusForbidden, CodeForbidden, "manager only")
	}
	if id <= 0 {
		return model.MenuItem{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid id")
	}

	title, price, err := u.validate(in)
	if err != nil {
		return model.MenuItem{}, err
	}

	m := model.MenuItem{ID: id, Title: title, Price: price, Featured: in.Featured}
	if err := u.menuItemRepo.Update(ctx, m); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.MenuItem{}, NewHTTPError(http.StatusNotFound, CodeNotFound, "not found")
		}
		return model.MenuItem{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return m, nil
}

// Delete はmanagerのみ。
func (u *MenuUsecase) Delete(ctx context.Context, role model.Role, id int64) error {
	if role != model.RoleManager {
		return NewHTTPError(http.StatusForbidden, CodeForbidden, "manager only")
	}
	if id <= 0 {
		return NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid id")
	}

	if err := u.menuItemRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, CodeNotFound, "not found")
		}
		return NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return nil
}

func (u *MenuUsecase) validate(in MenuItemInput) (string, decimal.Decimal, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || len(title) > 255 {
		return "", decimal.Zero, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid title")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if err != nil || price.IsNegative() {
		return "", decimal.Zero, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid price")
	}

	return title, price, nil
}
