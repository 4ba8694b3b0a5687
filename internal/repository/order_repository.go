package repository

import (
	"context"

	"app/internal/domain/model"
)

// Saveで更新できるカラム名
const (
	OrderFieldDeliveryCrew = "delivery_crew_id"
	OrderFieldStatus       = "status"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	// fieldsで指定したカラムだけ書き戻す。
	// リクエストが触っていないカラムまで書くと並行更新を巻き戻すため。
	Save(ctx context.Context, order model.Order, fields []string) error
	Delete(ctx context.Context, orderID int64) error

	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	ListByDeliveryCrew(ctx context.Context, crewID int64) ([]model.Order, error)
	ListAll(ctx context.Context) ([]model.Order, error)
}
