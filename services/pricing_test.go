package services

import (
	"testing"

	"dineinn/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestPriceCartTwoLinesNoTax(t *testing.T) {
	dishes := []entity.Dish{
		{Model: gormModel(1), Name: "Pad Thai", Price: dec(t, "100")},
		{Model: gormModel(2), Name: "Spring Rolls", Price: dec(t, "50")},
	}
	qty := map[uint]int{1: 2, 2: 1}

	q, err := PriceCart(dishes, qty, decimal.Zero)
	require.NoError(t, err)

	require.Len(t, q.Lines, 2)
	assert.Equal(t, "200.00", q.Lines[0].LineTotal.StringFixed(2))
	assert.Equal(t, "50.00", q.Lines[1].LineTotal.StringFixed(2))
	assert.Equal(t, "250.00", q.Subtotal.StringFixed(2))
	assert.Equal(t, "0.00", q.Tax.StringFixed(2))
	assert.Equal(t, "250.00", q.Total.StringFixed(2))
}

func TestPriceCartTaxApplied(t *testing.T) {
	dishes := []entity.Dish{{Model: gormModel(1), Name: "Latte", Price: dec(t, "100")}}
	q, err := PriceCart(dishes, map[uint]int{1: 1}, dec(t, "0.07"))
	require.NoError(t, err)

	assert.Equal(t, "100.00", q.Subtotal.StringFixed(2))
	assert.Equal(t, "7.00", q.Tax.StringFixed(2))
	assert.Equal(t, "107.00", q.Total.StringFixed(2))
	// total == subtotal + tax always holds
	assert.True(t, q.Total.Equal(q.Subtotal.Add(q.Tax)))
}

func TestPriceCartRoundsHalfAwayFromZero(t *testing.T) {
	dishes := []entity.Dish{{Model: gormModel(1), Name: "Half", Price: dec(t, "0.335")}}
	q, err := PriceCart(dishes, map[uint]int{1: 1}, decimal.Zero)
	require.NoError(t, err)
	assert.Equal(t, "0.34", q.Lines[0].LineTotal.StringFixed(2))
}

func TestPriceCartRejectsNonPositiveQuantity(t *testing.T) {
	dishes := []entity.Dish{{Model: gormModel(1), Name: "Soup", Price: dec(t, "10")}}

	_, err := PriceCart(dishes, map[uint]int{1: 0}, decimal.Zero)
	assert.ErrorIs(t, err, ErrBadQuantity)

	// missing quantity for a resolved dish is the same input error
	_, err = PriceCart(dishes, map[uint]int{}, decimal.Zero)
	assert.ErrorIs(t, err, ErrBadQuantity)
}

func TestPriceCartSubtotalIsSumOfLines(t *testing.T) {
	dishes := []entity.Dish{
		{Model: gormModel(1), Price: dec(t, "12.49")},
		{Model: gormModel(2), Price: dec(t, "3.33")},
		{Model: gormModel(3), Price: dec(t, "0.01")},
	}
	q, err := PriceCart(dishes, map[uint]int{1: 3, 2: 7, 3: 11}, decimal.Zero)
	require.NoError(t, err)

	sum := decimal.Zero
	for _, l := range q.Lines {
		sum = sum.Add(l.LineTotal)
	}
	assert.True(t, q.Subtotal.Equal(sum.Round(2)))
}
