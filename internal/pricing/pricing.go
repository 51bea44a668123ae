// Package pricing derives customer-facing prices from a base price and a
// percentage discount.
package pricing

import "github.com/shopspring/decimal"

const (
	MinDiscount = 0
	MaxDiscount = 99
)

var hundred = decimal.NewFromInt(100)

// ClampDiscount forces a discount percentage into [MinDiscount, MaxDiscount].
func ClampDiscount(discountPercent int) int {
	if discountPercent < MinDiscount {
		return MinDiscount
	}
	if discountPercent > MaxDiscount {
		return MaxDiscount
	}
	return discountPercent
}

// FinalPrice returns basePrice * (1 - discountPercent/100). Out of range
// discounts are clamped and a negative base price is treated as zero.
func FinalPrice(basePrice float64, discountPercent int) float64 {
	return finalPrice(basePrice, discountPercent).InexactFloat64()
}

// LineTotal is the discounted unit price multiplied by quantity.
func LineTotal(basePrice float64, discountPercent int, quantity int) float64 {
	return lineTotal(basePrice, discountPercent, quantity).InexactFloat64()
}

// Line is one priced entry of a cart or an order.
type Line struct {
	BasePrice float64
	Discount  int
	Quantity  int
}

// Sum adds up the line totals without intermediate float rounding.
func Sum(lines ...Line) float64 {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(lineTotal(l.BasePrice, l.Discount, l.Quantity))
	}
	return total.InexactFloat64()
}

func finalPrice(basePrice float64, discountPercent int) decimal.Decimal {
	if basePrice <= 0 {
		return decimal.Zero
	}
	remaining := decimal.NewFromInt(int64(100 - ClampDiscount(discountPercent)))
	return decimal.NewFromFloat(basePrice).Mul(remaining).Div(hundred)
}

func lineTotal(basePrice float64, discountPercent int, quantity int) decimal.Decimal {
	if quantity <= 0 {
		return decimal.Zero
	}
	return finalPrice(basePrice, discountPercent).Mul(decimal.NewFromInt(int64(quantity)))
}
