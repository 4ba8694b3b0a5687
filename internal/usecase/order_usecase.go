package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

// 注文確定トランザクションのストレージ障害は一回だけ再試行する
const placeOrderRetryBackoff = 100 * time.Millisecond

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type OrderItemOutput struct {
	MenuItemID int64           `json:"menu_item_id"`
	Quantity   int64           `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	Price      decimal.Decimal `json:"price"`
}

type OrderOutput struct {
	ID             int64             `json:"id"`
	UserID         int64             `json:"user_id"`
	DeliveryCrewID *int64            `json:"delivery_crew_id"`
	Status         bool              `json:"status"`
	Total          decimal.Decimal   `json:"total"`
	Date           string            `json:"date"`
	Items          []OrderItemOutput `json:"items"`
}

// PATCH /orders/:id の入力。nilは「未指定」。
type UpdateOrderInput struct {
	DeliveryCrewID *int64
	Status         *bool
}

// PlaceOrder はカートを注文へ変換する（customerのみ）。
// カート読込→合計計算→注文作成→明細作成→カート全削除を1トランザクションで行う。
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, role model.Role) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}
	if role != model.RoleCustomer {
		return OrderOutput{}, NewHTTPError(http.StatusForbidden, CodeForbidden, "only customers can place orders")
	}

	out, err := u.placeOrderTx(ctx, userID)
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return OrderOutput{}, err
		}

		// ストレージ側の失敗（ロック待ちタイムアウト等）は一回だけやり直す
		timer := time.NewTimer(placeOrderRetryBackoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return OrderOutput{}, NewHTTPError(http.StatusServiceUnavailable, CodeTransient, "temporary failure, try again")
		case <-timer.C:
		}

		out, err = u.placeOrderTx(ctx, userID)
		if err != nil {
			if _, ok := AsHTTPError(err); ok {
				return OrderOutput{}, err
			}
			return OrderOutput{}, NewHTTPError(http.StatusServiceUnavailable, CodeTransient, "temporary failure, try again")
		}
	}

	return out, nil
}

func (u *OrderUsecase) placeOrderTx(ctx context.Context, userID int64) (OrderOutput, error) {
	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// カート行をロックして読む。同時の二重送信は片方が空カートを見る。
		lines, err := r.Carts().ListByUserForUpdate(ctx, userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return NewHTTPError(http.StatusBadRequest, CodeEmptyCart, "cart is empty")
		}

		total := OrderTotal(lines)
		now := time.Now()

		orderID, err := r.Orders().Create(ctx, model.Order{
			UserID:         userID,
			DeliveryCrewID: nil,
			Status:         false,
			Total:          total,
			Date:           now,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			return err
		}

		// 明細はカートのスナップショットをそのまま写す
		items := make([]model.OrderItem, 0, len(lines))
		for _, l := range lines {
			items = append(items, model.OrderItem{
				MenuItemID: l.MenuItemID,
				Quantity:   l.Quantity,
				UnitPrice:  l.UnitPrice,
				Price:      l.Price,
				CreatedAt:  now,
			})
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return err
		}

		// カートは使い切り（注文後は空）
		if err := r.Carts().ClearByUser(ctx, userID); err != nil {
			return err
		}

		created := model.Order{
			ID:     orderID,
			UserID: userID,
			Status: false,
			Total:  total,
			Date:   now,
		}
		for i := range items {
			items[i].OrderID = orderID
		}
		out = toOrderOutput(created, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// List はロールで見える範囲が変わる。
// customer=自分の注文 / delivery crew=担当注文 / manager=全件。
func (u *OrderUsecase) List(ctx context.Context, userID int64, role model.Role) ([]OrderOutput, error) {
	if userID <= 0 {
		return []OrderOutput{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		var orders []model.Order
		var err error

		switch role {
		case model.RoleCustomer:
			orders, err = r.Orders().ListByUser(ctx, userID)
		case model.RoleDeliveryCrew:
			orders, err = r.Orders().ListByDeliveryCrew(ctx, userID)
		case model.RoleManager:
			orders, err = r.Orders().ListAll(ctx)
		default:
			return NewHTTPError(http.StatusForbidden, CodeForbidden, "unknown role")
		}
		if err != nil {
			return err
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return err
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return []OrderOutput{}, err
		}
		return []OrderOutput{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return outs, nil
}

// Get はcustomer向けの単品取得。
// 他人の注文は「存在しない扱い」にする（所有の有無を漏らさない）。
func (u *OrderUsecase) Get(ctx context.Context, userID int64, role model.Role, orderID int64) (OrderOutput, error) {
	if userID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}
	if role != model.RoleCustomer {
		return OrderOutput{}, NewHTTPError(http.StatusForbidden, CodeForbidden, "forbidden")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, CodeNotFound, "not found")
		}
		if err != nil {
			return err
		}
		if o.UserID != userID {
			return NewHTTPError(http.StatusNotFound, CodeNotFound, "not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return OrderOutput{}, err
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return out, nil
}

// Update は担当と配達状況の部分更新。
// manager: 両方更新できる（担当はdelivery crewのユーザーのみ）。両方未指定なら何もしないで成功。
// delivery crew: 自分の担当注文のstatusのみ。status未指定は入力エラー。
func (u *OrderUsecase) Update(ctx context.Context, actorID int64, role model.Role, orderID int64, in UpdateOrderInput) (OrderOutput, error) {
	if actorID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, CodeUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid id")
	}
	if role != model.RoleManager && role != model.RoleDeliveryCrew {
		return OrderOutput{}, NewHTTPError(http.StatusForbidden, CodeForbidden, "forbidden")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if errors.Is(err, repo.ErrNotFound) {
			return NewHTTPError(http.StatusNotFound, CodeNotFound, "not found")
		}
		if err != nil {
			return err
		}

		// 触ったカラムだけ書き戻す。並行する別リクエストの更新を巻き戻さない。
		var fields []string

		switch role {
		case model.RoleManager:
			if in.DeliveryCrewID != nil {
				crew, err := r.Users().FindByID(ctx, *in.DeliveryCrewID)
				if errors.Is(err, repo.ErrNotFound) || (err == nil && crew.Role != model.RoleDeliveryCrew) {
					return NewHTTPError(http.StatusBadRequest, CodeInvalidAssignment, "user is not delivery crew")
				}
				if err != nil {
					return err
				}
				o.DeliveryCrewID = in.DeliveryCrewID
				fields = append(fields, repo.OrderFieldDeliveryCrew)
			}
			if in.Status != nil {
				o.Status = *in.Status
				fields = append(fields, repo.OrderFieldStatus)
			}

		case model.RoleDeliveryCrew:
			if o.DeliveryCrewID == nil || *o.DeliveryCrewID != actorID {
				return NewHTTPError(http.StatusForbidden, CodeForbidden, "not your order")
			}
			if in.Status == nil {
				return NewHTTPError(http.StatusBadRequest, CodeValidation, "status value required")
			}
			// delivery_crew_id は指定されていても無視する
			o.Status = *in.Status
			fields = append(fields, repo.OrderFieldStatus)
		}

		if len(fields) > 0 {
			if err := r.Orders().Save(ctx, o, fields); err != nil {
				return err
			}
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return err
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return OrderOutput{}, err
		}
		return OrderOutput{}, NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return out, nil
}

// Delete はmanagerのみ。明細→注文の順で消して孤児を残さない。
func (u *OrderUsecase) Delete(ctx context.Context, role model.Role, orderID int64) error {
	if role != model.RoleManager {
		return NewHTTPError(http.StatusForbidden, CodeForbidden, "forbidden")
	}
	if orderID <= 0 {
		return NewHTTPError(http.StatusBadRequest, CodeValidation, "invalid id")
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return NewHTTPError(http.StatusNotFound, CodeNotFound, "not found")
			}
			return err
		}

		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return err
		}
		if err := r.Orders().Delete(ctx, orderID); err != nil {
			return err
		}
		return nil
	})

	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return err
		}
		return NewHTTPError(http.StatusInternalServerError, CodeInternal, "db error")
	}
	return nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			MenuItemID: it.MenuItemID,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			Price:      it.Price,
		})
	}

	return OrderOutput{
		ID:             o.ID,
		UserID:         o.UserID,
		DeliveryCrewID: o.DeliveryCrewID,
		Status:         o.Status,
		Total:          o.Total,
		Date:           o.Date.Format("2006-01-02"),
		Items:          outItems,
	}
}
