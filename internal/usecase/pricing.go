package usecase

import (
	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// LineTotal は数量×単価。decimalなので丸め誤差は出ない。
func LineTotal(quantity int64, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(quantity))
}

// OrderTotal は明細の合計。加算順に依存しない。
func OrderTotal(lines []model.CartLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Price)
	}
	return total
}
