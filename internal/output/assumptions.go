package output

import (
	"fmt"

	"github.com/rpgo/annuity-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// ModelAssumptions lists the fixed modeling rules rendered under the parameter block.
var ModelAssumptions = []string{
	"Interest compounds monthly at annual rate / 12",
	"Only the Monte Carlo policy adds interest to the payment",
	"Mortality adjustment scales the payment, never the principal drawdown",
}

// ParameterLines renders the simulation inputs, one "Label: value" per line.
func ParameterLines(params domain.SimulationParameters) []string {
	return []string{
		fmt.Sprintf("Algorithm: %s", params.Algorithm.DisplayName()),
		fmt.Sprintf("Principal: %s", FormatAmount(params.Principal)),
		fmt.Sprintf("Annual Interest Rate: %s", FormatPercentage(decimal.NewFromFloat(params.AnnualInterestRate))),
		fmt.Sprintf("Duration: %d years (%d months)", params.DurationYears, params.TotalMonths()),
		fmt.Sprintf("Simulations: %d", params.NumSimulations),
		fmt.Sprintf("Mortality Adjustment Factor: %s", decimal.NewFromFloat(params.MortalityAdjustmentFactor).StringFixed(2)),
	}
}
