package decimal

import (
	"math"
	"testing"

	stddec "github.com/shopspring/decimal"
)

func TestNewMoney(t *testing.T) {
	m, ok := NewMoney(12.345)
	if !ok {
		t.Fatalf("expected finite value to convert")
	}
	if m.String() != "12.35" {
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}
	if _, ok := NewMoney(math.NaN()); ok {
		t.Fatalf("expected NaN to be rejected")
	}
	if _, ok := NewMoney(math.Inf(-1)); ok {
		t.Fatalf("expected -Inf to be rejected")
	}

	d := stddec.NewFromFloat(10.125)
	if m2 := NewMoneyFromDecimal(d); !m2.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m2.Decimal, d)
	}
}

func TestSum(t *testing.T) {
	// 0.1 summed as floats drifts; decimal addition does not.
	values := make([]float64, 10)
	for i := range values {
		values[i] = 0.1
	}
	total, ok := Sum(values)
	if !ok {
		t.Fatalf("unexpected non-finite flag")
	}
	if !total.Equal(stddec.NewFromInt(1)) {
		t.Fatalf("Sum = %s, want 1", total.Decimal)
	}

	total, ok = Sum([]float64{1, math.NaN(), 2})
	if ok {
		t.Fatalf("expected NaN to be flagged")
	}
	if total.Format() != "$3.00" {
		t.Fatalf("Sum skipping NaN = %s, want $3.00", total.Format())
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"1060.6552", "1060.66"},
	}
	for _, c := range cases {
		d, err := stddec.NewFromString(c.in)
		if err != nil {
			t.Fatalf("parse %s: %v", c.in, err)
		}
		if got := NewMoneyFromDecimal(d).String(); got != c.out {
			t.Fatalf("String(%s) = %s, want %s", c.in, got, c.out)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := Zero().Format(); got != "$0.00" {
		t.Fatalf("Zero().Format() = %s", got)
	}
}
