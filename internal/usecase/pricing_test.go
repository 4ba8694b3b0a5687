package usecase_test

import (
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestLineTotal_Exact(t *testing.T) {
	cases := []struct {
		qty  int64
		unit string
		want string
	}{
		{1, "0.10", "0.10"},
		{2, "10.00", "20.00"},
		{3, "0.10", "0.30"}, // float64なら 0.30000000000000004 になるケース
		{7, "19.99", "139.93"},
		{100, "2.55", "255.00"},
	}

	for _, c := range cases {
		got := usecase.LineTotal(c.qty, dec(t, c.unit))
		assert.True(t, got.Equal(dec(t, c.want)), "qty=%d unit=%s got=%s want=%s", c.qty, c.unit, got, c.want)
	}
}

func TestOrderTotal_PermutationInvariant(t *testing.T) {
	a := model.CartLine{MenuItemID: 1, Quantity: 2, UnitPrice: dec(t, "10.00"), Price: dec(t, "20.00")}
	b := model.CartLine{MenuItemID: 2, Quantity: 1, UnitPrice: dec(t, "5.00"), Price: dec(t, "5.00")}
	c := model.CartLine{MenuItemID: 3, Quantity: 3, UnitPrice: dec(t, "0.10"), Price: dec(t, "0.30")}

	want := dec(t, "25.30")

	perms := [][]model.CartLine{
		{a, b, c},
		{a, c, b},
		{b, a, c},
		{b, c, a},
		{c, a, b},
		{c, b, a},
	}

	for i, lines := range perms {
		got := usecase.OrderTotal(lines)
		assert.True(t, got.Equal(want), "perm=%d got=%s want=%s", i, got, want)
	}
}

func TestOrderTotal_Empty(t *testing.T) {
	got := usecase.OrderTotal(nil)
	assert.True(t, got.IsZero(), "got=%s", got)
}
