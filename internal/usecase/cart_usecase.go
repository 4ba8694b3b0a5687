package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// CartUsecase は /cart/menu-items の業務ロジックです。
type CartUsecase struct {
	cartRepo     repo.CartRepository
	menuItemRepo repo.MenuItemRepository
}

func NewCartUsecase(
	cartRepo repo.CartRepository,
	menuItemRepo repo.MenuItemRepository,
) *CartUsecase {
	return &CartUsecase{
		cartRepo:     cartRepo,
		menuItemRepo: menuItemRepo,
	}
}

// price は unit_price（追加時点の単価）×数量のスナップショット。
type CartLineResponse struct {
	ID         int64           `json:"id"`
	MenuItemID int64           `json:"menu_item_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Price      decimal.Decimal `json:"price"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"items"`
	Total decimal.Decimal    `json:"total"`
}

type AddCartInput struct {
	MenuItemID int64
	Quantity   int64
}

// AddToCart はカートに追加（同一商品は数量・価格を上書き）。customerのみ。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, role model.Role, in AddCartInput) (CartLineResponse, error) {
	if userID <= 0 {
		return CartLineResponse{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}
	if role != model.RoleCustomer {
		return CartLineResponse{}, NewHTTPError(http.StatusForbidden, CodeForbidden, "only customers have a cart")
	}
	if in.MenuItemID <= 0 {
		return CartLineResponse{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid menu_item_id")
	}
	if in.Quantity < 1 {
		return CartLineResponse{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid quantity")
	}

	// 現在のメニュー単価をスナップショットする
	m, err := u.menuItemRepo.FindByID(ctx, in.MenuItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartLineResponse{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid menu_item_id")
	}
	if err != nil {
		return CartLineResponse{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	price := LineTotal(in.Quantity, m.Price)

	line, err := u.cartRepo.Upsert(ctx, userID, in.MenuItemID, in.Quantity, m.Price, price)
	if err != nil {
		return CartLineResponse{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	return toCartLineResponse(line), nil
}

// GetCart はカート取得（明細＋現在の合計）。customerのみ。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64, role model.Role) (CartResponse, error) {
	if userID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}
	if role != model.RoleCustomer {
		return CartResponse{}, NewHTTPError(http.StatusForbidden, CodeForbidden, "only customers have a cart")
	}

	lines, err := u.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}

	items := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		items = append(items, toCartLineResponse(l))
	}

	return CartResponse{Items: items, Total: OrderTotal(lines)}, nil
}

// ClearCart は全明細を削除。空カートでも成功（冪等）。customerのみ。
func (u *CartUsecase) ClearCart(ctx context.Context, userID int64, role model.Role) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}
	if role != model.RoleCustomer {
		return NewHTTPError(http.StatusForbidden, CodeForbidden, "only customers have a cart")
	}

	if err := u.cartRepo.ClearByUser(ctx, userID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return nil
}

func toCartLineResponse(l model.CartLine) CartLineResponse {
	return CartLineResponse{
		ID:         l.ID,
		MenuItemID: l.MenuItemID,
		Quantity:   l.Quantity,
		UnitPrice:  l.UnitPrice,
		Price:      l.Price,
	}
}
