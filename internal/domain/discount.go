package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountStrategy prices a quantity of a unit price. The set of strategies
// is closed: NoDiscount and PercentageDiscount.
type DiscountStrategy interface {
	Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal
	String() string

	discountStrategy()
}

// NoDiscount charges unitPrice * quantity.
type NoDiscount struct{}

func (NoDiscount) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

func (NoDiscount) String() string { return "none" }

func (NoDiscount) discountStrategy() {}

// PercentageDiscount charges unitPrice * (1 - Percentage/100) * quantity.
// Percentage is not range checked: values above 100 yield negative totals
// and negative values yield a surcharge.
type PercentageDiscount struct {
	Percentage decimal.Decimal
}

// NewPercentageDiscount converts a prompt-style float percentage.
func NewPercentageDiscount(percentage float64) PercentageDiscount {
	return PercentageDiscount{Percentage: decimal.NewFromFloat(percentage)}
}

func (d PercentageDiscount) Apply(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(d.Percentage.Div(hundred))
	return unitPrice.Mul(factor).Mul(decimal.NewFromInt(int64(quantity)))
}

func (d PercentageDiscount) String() string {
	return fmt.Sprintf("%s%%", d.Percentage.String())
}

func (PercentageDiscount) discountStrategy() {}

// StrategyFor maps a percentage to a strategy: exactly 0 means NoDiscount,
// anything else a PercentageDiscount.
func StrategyFor(percentage float64) DiscountStrategy {
	if percentage == 0 {
		return NoDiscount{}
	}
	return NewPercentageDiscount(percentage)
}
