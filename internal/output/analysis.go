package output

import (
	"bytes"
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/rpgo/annuity-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the policy that pays out the most over the term,
// measured against the constant payment baseline.
type Recommendation struct {
	Algorithm        domain.Algorithm
	Name             string
	TotalPaid        decimal.Decimal
	ChangeVsBaseline decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeComparison ranks the policies by total paid. Ties keep the input order.
func AnalyzeComparison(summaries []domain.AlgorithmSummary) Recommendation {
	if len(summaries) == 0 {
		return Recommendation{}
	}
	ranked := append([]domain.AlgorithmSummary(nil), summaries...)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].TotalPaid > ranked[j].TotalPaid })
	best := ranked[0]

	total := decimal.NewFromFloat(best.TotalPaid)
	rec := Recommendation{Algorithm: best.Algorithm, Name: best.Name, TotalPaid: total}
	for _, s := range summaries {
		if s.Algorithm != domain.AlgorithmConstantPayment {
			continue
		}
		baseline := decimal.NewFromFloat(s.TotalPaid)
		rec.ChangeVsBaseline = total.Sub(baseline)
		if !baseline.IsZero() {
			rec.PercentageChange = rec.ChangeVsBaseline.Div(baseline).Mul(decimal.NewFromInt(100))
		}
	}
	return rec
}

// FormatComparison renders the per-policy payment summaries and the recommendation.
func FormatComparison(params domain.SimulationParameters, summaries []domain.AlgorithmSummary) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "ANNUITY ALGORITHM COMPARISON")
	fmt.Fprintln(&buf, "============================")
	for _, line := range ParameterLines(params)[1:] {
		fmt.Fprintln(&buf, line)
	}
	fmt.Fprintln(&buf)

	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Algorithm\tFirst\tLast\tMean\tMin\tMax\tTotal Paid")
	for _, s := range summaries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n", s.Name,
			FormatAmount(s.FirstPayment), FormatAmount(s.LastPayment),
			FormatAmount(s.Payments.Mean), FormatAmount(s.Payments.Min), FormatAmount(s.Payments.Max),
			FormatAmount(s.TotalPaid))
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}

	if rec := AnalyzeComparison(summaries); rec.Name != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Highest total paid: %s (%s, Δ %s / %s vs Constant Payment)\n",
			rec.Name, FormatCurrency(rec.TotalPaid), FormatCurrency(rec.ChangeVsBaseline), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
