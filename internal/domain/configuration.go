package domain

import (
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Defaults for fields an annuity file may omit. An explicit value, including zero,
// is kept as written and left to validation.
const (
	DefaultNumSimulations  = 100
	DefaultMortalityFactor = 1
	DefaultAlgorithm       = AlgorithmMonteCarlo
)

// Configuration is the root of an annuity configuration file
type Configuration struct {
	Annuity AnnuitySettings `yaml:"annuity" json:"annuity"`
	Output  OutputSettings  `yaml:"output,omitempty" json:"output,omitempty"`
}

// AnnuitySettings holds the annuity details as entered by the user
type AnnuitySettings struct {
	Principal                 decimal.Decimal `yaml:"principal" json:"principal"`
	AnnualInterestRate        decimal.Decimal `yaml:"annual_interest_rate" json:"annual_interest_rate"` // percent, e.g. 5.0
	DurationYears             int             `yaml:"duration_years" json:"duration_years"`
	NumSimulations            int             `yaml:"num_simulations" json:"num_simulations"`
	MortalityAdjustmentFactor decimal.Decimal `yaml:"mortality_adjustment_factor" json:"mortality_adjustment_factor"`
	Algorithm                 Algorithm       `yaml:"algorithm" json:"algorithm"`
}

// OutputSettings controls report generation (optional)
type OutputSettings struct {
	Format    string `yaml:"format,omitempty" json:"format,omitempty"`
	Directory string `yaml:"directory,omitempty" json:"directory,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for AnnuitySettings
func (as *AnnuitySettings) UnmarshalYAML(value *yaml.Node) error {
	// Decimal fields are read as strings so both `5` and `"5.0"` are accepted
	type Alias struct {
		Principal                 *string   `yaml:"principal"`
		AnnualInterestRate        *string   `yaml:"annual_interest_rate"`
		DurationYears             int       `yaml:"duration_years"`
		NumSimulations            *int      `yaml:"num_simulations"`
		MortalityAdjustmentFactor *string   `yaml:"mortality_adjustment_factor"`
		Algorithm                 Algorithm `yaml:"algorithm"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	as.DurationYears = aux.DurationYears
	as.NumSimulations = DefaultNumSimulations
	if aux.NumSimulations != nil {
		as.NumSimulations = *aux.NumSimulations
	}
	as.MortalityAdjustmentFactor = decimal.NewFromInt(DefaultMortalityFactor)
	as.Algorithm = DefaultAlgorithm
	if aux.Algorithm != "" {
		as.Algorithm = aux.Algorithm
	}

	fields := []struct {
		src *string
		dst *decimal.Decimal
	}{
		{aux.Principal, &as.Principal},
		{aux.AnnualInterestRate, &as.AnnualInterestRate},
		{aux.MortalityAdjustmentFactor, &as.MortalityAdjustmentFactor},
	}
	for _, f := range fields {
		if f.src == nil {
			continue
		}
		val, err := decimal.NewFromString(*f.src)
		if err != nil {
			return err
		}
		*f.dst = val
	}

	return nil
}

// Parameters converts the settings into the engine's input value.
func (as AnnuitySettings) Parameters() SimulationParameters {
	return SimulationParameters{
		Principal:                 as.Principal.InexactFloat64(),
		AnnualInterestRate:        as.AnnualInterestRate.InexactFloat64(),
		DurationYears:             as.DurationYears,
		NumSimulations:            as.NumSimulations,
		MortalityAdjustmentFactor: as.MortalityAdjustmentFactor.InexactFloat64(),
		Algorithm:                 as.Algorithm,
	}
}
