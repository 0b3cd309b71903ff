package decimal

import (
	"math"

	"github.com/shopspring/decimal"
)

// Money is a payment amount held as a decimal so report totals do not drift.
type Money struct {
	decimal.Decimal
}

// NewMoney converts an engine float. NaN and infinities are not representable; ok is false.
func NewMoney(value float64) (m Money, ok bool) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Money{}, false
	}
	return Money{decimal.NewFromFloat(value)}, true
}

// NewMoneyFromDecimal wraps an existing decimal.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Sum adds a payment series exactly. Non-finite entries are skipped and reported via ok.
func Sum(values []float64) (total Money, ok bool) {
	total, ok = Zero(), true
	for _, v := range values {
		m, finite := NewMoney(v)
		if !finite {
			ok = false
			continue
		}
		total = total.Add(m)
	}
	return total, ok
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimals
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as dollars, e.g. "$1060.66"
func (m Money) Format() string {
	return "$" + m.String()
}
