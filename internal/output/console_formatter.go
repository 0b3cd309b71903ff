package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/rpgo/annuity-calculator/internal/domain"
	money "github.com/rpgo/annuity-calculator/pkg/decimal"
)

// ConsoleFormatter renders the parameters followed by the full per-month statistics table.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string      { return "console" }
func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	writeHeader(&buf, results)
	fmt.Fprintln(&buf, "Assumptions:")
	for _, a := range ModelAssumptions {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "MONTHLY PAYMENT STATISTICS")
	fmt.Fprintln(&buf, "--------------------------")
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Month\tCount\tMean\tStd\tMin\t25%\t50%\t75%\tMax\t")
	for i, s := range results.Statistics {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			i+1, s.Count,
			FormatAmount(s.Mean), FormatAmount(s.Std), FormatAmount(s.Min),
			FormatAmount(s.P25), FormatAmount(s.Median), FormatAmount(s.P75), FormatAmount(s.Max))
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ConsoleLiteFormatter provides a concise summary: first and last month plus totals.
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string      { return "console-lite" }
func (c ConsoleLiteFormatter) Extension() string { return "txt" }

func (c ConsoleLiteFormatter) Format(results *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	writeHeader(&buf, results)

	if n := len(results.Statistics); n > 0 {
		first, last := results.Statistics[0], results.Statistics[n-1]
		fmt.Fprintf(&buf, "Month 1: mean=%s min=%s max=%s\n", FormatAmount(first.Mean), FormatAmount(first.Min), FormatAmount(first.Max))
		fmt.Fprintf(&buf, "Month %d: mean=%s min=%s max=%s\n", n, FormatAmount(last.Mean), FormatAmount(last.Min), FormatAmount(last.Max))
	}
	if len(results.Matrix) > 0 {
		total, _ := money.Sum(results.Matrix[0])
		fmt.Fprintf(&buf, "Total Paid (Simulation 1): %s\n", total.Format())
	}
	return buf.Bytes(), nil
}

func writeHeader(buf *bytes.Buffer, results *domain.SimulationResult) {
	fmt.Fprintln(buf, "ANNUITY SIMULATION SUMMARY")
	fmt.Fprintln(buf, "==========================")
	for _, line := range ParameterLines(results.Parameters) {
		fmt.Fprintln(buf, line)
	}
	fmt.Fprintln(buf)
}
