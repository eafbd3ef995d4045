// Package money sums prices without accumulating binary floating point error.
package money

import "github.com/shopspring/decimal"

// LineTotal returns price × quantity.
func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}

// Sum adds the line totals of items, where line extracts price and quantity.
func Sum[T any](items []T, line func(T) (price float64, quantity int)) float64 {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(LineTotal(line(it)))
	}
	f, _ := total.Float64()
	return f
}
