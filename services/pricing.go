package services

import (
	"errors"

	"dineinn/entity"

	"github.com/shopspring/decimal"
)

// PricedLine is one cart line after catalog resolution, carrying the
// snapshot values that end up on the OrderLine row.
type PricedLine struct {
	DishID    uint
	Name      string
	Price     decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines    []PricedLine
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

var ErrBadQuantity = errors.New("quantity must be a positive integer")

// PriceCart computes line totals, subtotal, tax and total. All amounts
// are rounded to 2 decimals with decimal.Round, which rounds half away
// from zero. Quantities must be pre-aggregated per dish and positive.
func PriceCart(dishes []entity.Dish, qty map[uint]int, taxRate decimal.Decimal) (*Quote, error) {
	q := &Quote{
		Lines:    make([]PricedLine, 0, len(dishes)),
		Subtotal: decimal.Zero,
	}
	for _, d := range dishes {
		n := qty[d.ID]
		if n <= 0 {
			return nil, ErrBadQuantity
		}
		lineTotal := d.Price.Mul(decimal.NewFromInt(int64(n))).Round(2)
		q.Lines = append(q.Lines, PricedLine{
			DishID:    d.ID,
			Name:      d.Name,
			Price:     d.Price,
			Quantity:  n,
			LineTotal: lineTotal,
		})
		q.Subtotal = q.Subtotal.Add(lineTotal)
	}
	q.Subtotal = q.Subtotal.Round(2)
	q.Tax = q.Subtotal.Mul(taxRate).Round(2)
	q.Total = q.Subtotal.Add(q.Tax).Round(2)
	return q, nil
}
