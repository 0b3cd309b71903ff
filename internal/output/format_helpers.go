package output

import (
	"strconv"

	money "github.com/rpgo/annuity-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatAmount formats an engine float as currency; undefined values render as "n/a".
func FormatAmount(v float64) string {
	m, ok := money.NewMoney(v)
	if !ok {
		return "n/a"
	}
	return m.Format()
}

// formatNumber renders a float at full precision for machine-readable outputs.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
