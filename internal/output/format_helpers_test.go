//go:build unit

package output

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	v := decimal.NewFromFloat(1234.567)
	got := FormatCurrency(v)
	want := "$1234.57"
	if got != want {
		t.Errorf("FormatCurrency(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatPercentage(t *testing.T) {
	v := decimal.NewFromFloat(12.3456)
	got := FormatPercentage(v)
	want := "12.35%"
	if got != want {
		t.Errorf("FormatPercentage(%v) = %q, want %q", v, got, want)
	}
}

func TestFormatAmount(t *testing.T) {
	if got, want := FormatAmount(1.0/12), "$0.08"; got != want {
		t.Errorf("FormatAmount(1/12) = %q, want %q", got, want)
	}
	if got, want := FormatAmount(math.NaN()), "n/a"; got != want {
		t.Errorf("FormatAmount(NaN) = %q, want %q", got, want)
	}
}

func TestFormatNumber(t *testing.T) {
	if got, want := formatNumber(0.25), "0.25"; got != want {
		t.Errorf("formatNumber(0.25) = %q, want %q", got, want)
	}
	if got, want := formatNumber(math.NaN()), "NaN"; got != want {
		t.Errorf("formatNumber(NaN) = %q, want %q", got, want)
	}
}
