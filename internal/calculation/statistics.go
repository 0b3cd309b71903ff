package calculation

import (
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
	"github.com/rpgo/annuity-calculator/internal/domain"
)

// Describe computes the per-month summary across every run of the matrix.
func Describe(matrix domain.SimulationMatrix) (domain.MonthlyStatistics, error) {
	if matrix.Runs() == 0 {
		return nil, fmt.Errorf("describe: empty simulation matrix")
	}
	months := matrix.Months()
	for i, row := range matrix {
		if len(row) != months {
			return nil, fmt.Errorf("describe: run %d has %d months, expected %d", i+1, len(row), months)
		}
	}

	out := make(domain.MonthlyStatistics, months)
	for m := 0; m < months; m++ {
		s, err := Summarize(matrix.Column(m))
		if err != nil {
			return nil, fmt.Errorf("describe month %d: %w", m+1, err)
		}
		out[m] = s
	}
	return out, nil
}

// Summarize returns count, mean, sample standard deviation (NaN below two values),
// min, quartiles and max of values.
func Summarize(values []float64) (domain.Summary, error) {
	data := stats.Float64Data(values)
	if data.Len() == 0 {
		return domain.Summary{}, stats.ErrEmptyInput
	}

	mean, err := stats.Mean(data)
	if err != nil {
		return domain.Summary{}, err
	}
	minimum, err := stats.Min(data)
	if err != nil {
		return domain.Summary{}, err
	}
	maximum, err := stats.Max(data)
	if err != nil {
		return domain.Summary{}, err
	}
	median, err := stats.Median(data)
	if err != nil {
		return domain.Summary{}, err
	}

	std := math.NaN()
	if data.Len() > 1 {
		if std, err = stats.StandardDeviationSample(data); err != nil {
			return domain.Summary{}, err
		}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	return domain.Summary{
		Count:  data.Len(),
		Mean:   mean,
		Std:    std,
		Min:    minimum,
		P25:    quantile(sorted, 0.25),
		Median: median,
		P75:    quantile(sorted, 0.75),
		Max:    maximum,
	}, nil
}

// quantile interpolates linearly between the closest ranks of an ascending slice.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
