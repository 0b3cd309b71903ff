package output

import (
	"encoding/json"

	"github.com/rpgo/annuity-calculator/internal/domain"
)

// JSONReport is the document shape shared by the json formatter and the HTTP API.
type JSONReport struct {
	Parameters domain.SimulationParameters `json:"parameters"`
	Series     []domain.NamedSeries        `json:"series"`
	Statistics []domain.StatisticRow       `json:"statistics"`
}

// NewJSONReport shapes a result into plottable series plus the statistics table.
func NewJSONReport(results *domain.SimulationResult) JSONReport {
	return JSONReport{
		Parameters: results.Parameters,
		Series:     results.Series(),
		Statistics: results.StatisticsTable(),
	}
}

// JSONFormatter serializes the simulation result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string      { return "json" }
func (j JSONFormatter) Extension() string { return "json" }

func (j JSONFormatter) Format(results *domain.SimulationResult) ([]byte, error) {
	return json.MarshalIndent(NewJSONReport(results), "", "  ")
}
