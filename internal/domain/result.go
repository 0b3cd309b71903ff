package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// SimulationMatrix holds one row per simulation run and one column per month.
type SimulationMatrix [][]float64

// Runs returns the number of rows.
func (m SimulationMatrix) Runs() int { return len(m) }

// Months returns the number of columns (0 for an empty matrix).
func (m SimulationMatrix) Months() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Column extracts the payments of every run for a 0-based month index.
func (m SimulationMatrix) Column(month int) []float64 {
	col := make([]float64, len(m))
	for i, row := range m {
		col[i] = row[month]
	}
	return col
}

// Summary is the descriptive statistics of one sample. Std is NaN when Count < 2.
type Summary struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	Median float64 `json:"median"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// MarshalJSON encodes undefined statistics as null; encoding/json rejects NaN.
func (s Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Count  int      `json:"count"`
		Mean   *float64 `json:"mean"`
		Std    *float64 `json:"std"`
		Min    *float64 `json:"min"`
		P25    *float64 `json:"p25"`
		Median *float64 `json:"median"`
		P75    *float64 `json:"p75"`
		Max    *float64 `json:"max"`
	}{s.Count, finite(s.Mean), finite(s.Std), finite(s.Min), finite(s.P25), finite(s.Median), finite(s.P75), finite(s.Max)})
}

// MonthlyStatistics holds one Summary per month column, index 0 = month 1.
type MonthlyStatistics []Summary

// summaryStatistics is the statistics table layout: row label and field accessor, in table order.
var summaryStatistics = []struct {
	name  string
	value func(Summary) float64
}{
	{"count", func(s Summary) float64 { return float64(s.Count) }},
	{"mean", func(s Summary) float64 { return s.Mean }},
	{"std", func(s Summary) float64 { return s.Std }},
	{"min", func(s Summary) float64 { return s.Min }},
	{"25%", func(s Summary) float64 { return s.P25 }},
	{"50%", func(s Summary) float64 { return s.Median }},
	{"75%", func(s Summary) float64 { return s.P75 }},
	{"max", func(s Summary) float64 { return s.Max }},
}

// StatisticNames are the row labels of the statistics table, in table order.
var StatisticNames = func() []string {
	names := make([]string, len(summaryStatistics))
	for i, st := range summaryStatistics {
		names[i] = st.name
	}
	return names
}()

// StatisticRow is one statistic across every month column.
type StatisticRow struct {
	Statistic string    `json:"statistic"`
	Values    []float64 `json:"values"`
}

func (r StatisticRow) MarshalJSON() ([]byte, error) {
	values := make([]*float64, len(r.Values))
	for i, v := range r.Values {
		values[i] = finite(v)
	}
	return json.Marshal(struct {
		Statistic string     `json:"statistic"`
		Values    []*float64 `json:"values"`
	}{r.Statistic, values})
}

// NamedSeries is one simulation run shaped for plotting as a line series.
type NamedSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// SimulationResult is the complete handoff to rendering collaborators.
type SimulationResult struct {
	Parameters SimulationParameters `json:"parameters"`
	Matrix     SimulationMatrix     `json:"matrix"`
	Statistics MonthlyStatistics    `json:"statistics"`
}

// Series labels each matrix row "Simulation 1".."Simulation N".
func (r *SimulationResult) Series() []NamedSeries {
	series := make([]NamedSeries, len(r.Matrix))
	for i, row := range r.Matrix {
		series[i] = NamedSeries{Name: fmt.Sprintf("Simulation %d", i+1), Values: row}
	}
	return series
}

// StatisticsTable pivots the monthly statistics into one row per statistic.
func (r *SimulationResult) StatisticsTable() []StatisticRow {
	rows := make([]StatisticRow, len(summaryStatistics))
	for i, st := range summaryStatistics {
		values := make([]float64, len(r.Statistics))
		for m, s := range r.Statistics {
			values[m] = st.value(s)
		}
		rows[i] = StatisticRow{Statistic: st.name, Values: values}
	}
	return rows
}

// AlgorithmSummary describes the monthly payments one policy produces for a parameter set.
type AlgorithmSummary struct {
	Algorithm Algorithm `json:"algorithm"`
	Name      string    `json:"name"`
	Payments  Summary   `json:"payments"`
	TotalPaid float64   `json:"total_paid"`

	FirstPayment float64 `json:"first_payment"`
	LastPayment  float64 `json:"last_payment"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
