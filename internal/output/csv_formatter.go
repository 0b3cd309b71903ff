package output

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rpgo/annuity-calculator/internal/domain"
)

// CSVStatisticsFormatter writes the statistics table: one row per statistic, one column per month.
type CSVStatisticsFormatter struct{}

func (c CSVStatisticsFormatter) Name() string      { return "csv" }
func (c CSVStatisticsFormatter) Extension() string { return "csv" }

func (c CSVStatisticsFormatter) Format(results *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, 0, len(results.Statistics)+1)
	header = append(header, "Statistic")
	for m := range results.Statistics {
		header = append(header, fmt.Sprintf("Month %d", m+1))
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range results.StatisticsTable() {
		record := make([]string, 0, len(row.Values)+1)
		record = append(record, row.Statistic)
		for _, v := range row.Values {
			record = append(record, formatNumber(v))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// CSVMatrixFormatter writes the raw payment matrix with months as rows and runs as columns.
type CSVMatrixFormatter struct{}

func (c CSVMatrixFormatter) Name() string      { return "matrix-csv" }
func (c CSVMatrixFormatter) Extension() string { return "csv" }

func (c CSVMatrixFormatter) Format(results *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	series := results.Series()
	header := make([]string, 0, len(series)+1)
	header = append(header, "Month")
	for _, s := range series {
		header = append(header, s.Name)
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for m := 0; m < results.Matrix.Months(); m++ {
		record := make([]string, 0, len(series)+1)
		record = append(record, strconv.Itoa(m+1))
		for _, s := range series {
			record = append(record, formatNumber(s.Values[m]))
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
