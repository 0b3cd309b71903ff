package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/annuity-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Input limits mirror the annuity entry form: the sliders bound the rate and the
// mortality factor, the numeric inputs only bound from below.
var (
	MinPrincipal       = decimal.NewFromInt(1)
	MinInterestRate    = decimal.NewFromFloat(0.1)
	MaxInterestRate    = decimal.NewFromInt(20)
	MinMortalityFactor = decimal.NewFromFloat(0.1)
	MaxMortalityFactor = decimal.NewFromInt(2)
)

const (
	MaxDurationYears  = 100
	MaxNumSimulations = 100000

	DefaultNumSimulations = domain.DefaultNumSimulations
	DefaultFormat         = "console"
)

// InputParser handles parsing of annuity configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML (or JSON) file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.LoadFromBytes(data)
}

// LoadFromBytes parses and validates an in-memory configuration document
func (ip *InputParser) LoadFromBytes(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.ApplyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ApplyDefaults fills the optional output settings. Omitted annuity fields are
// defaulted while decoding so explicit zeros still reach validation.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.Output.Format == "" {
		config.Output.Format = DefaultFormat
	}
	if config.Output.Directory == "" {
		config.Output.Directory = "."
	}
}

// ValidateConfiguration validates the loaded configuration, reporting every violation
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	return ip.ValidateAnnuity(&config.Annuity)
}

// ValidateAnnuity checks the annuity settings against the entry form limits.
// The returned error joins one *domain.ParameterError per offending field.
func (ip *InputParser) ValidateAnnuity(settings *domain.AnnuitySettings) error {
	var errs []error
	fail := func(field string, value any, reason string) {
		errs = append(errs, &domain.ParameterError{Field: field, Value: value, Reason: reason})
	}

	if settings.Principal.LessThan(MinPrincipal) {
		fail("principal", settings.Principal, fmt.Sprintf("must be at least %s", MinPrincipal))
	}
	if settings.AnnualInterestRate.LessThan(MinInterestRate) || settings.AnnualInterestRate.GreaterThan(MaxInterestRate) {
		fail("annual_interest_rate", settings.AnnualInterestRate, fmt.Sprintf("must be between %s%% and %s%%", MinInterestRate, MaxInterestRate))
	}
	if settings.DurationYears < 1 || settings.DurationYears > MaxDurationYears {
		fail("duration_years", settings.DurationYears, fmt.Sprintf("must be between 1 and %d", MaxDurationYears))
	}
	if settings.NumSimulations < 1 || settings.NumSimulations > MaxNumSimulations {
		fail("num_simulations", settings.NumSimulations, fmt.Sprintf("must be between 1 and %d", MaxNumSimulations))
	}
	if settings.MortalityAdjustmentFactor.LessThan(MinMortalityFactor) || settings.MortalityAdjustmentFactor.GreaterThan(MaxMortalityFactor) {
		fail("mortality_adjustment_factor", settings.MortalityAdjustmentFactor, fmt.Sprintf("must be between %s and %s", MinMortalityFactor, MaxMortalityFactor))
	}
	if !settings.Algorithm.Valid() {
		fail("algorithm", settings.Algorithm, "unknown algorithm")
	}

	return errors.Join(errs...)
}

// CreateExampleConfiguration creates an example configuration with the form defaults
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Annuity: domain.AnnuitySettings{
			Principal:                 decimal.NewFromInt(100000),
			AnnualInterestRate:        decimal.NewFromFloat(5.0),
			DurationYears:             20,
			NumSimulations:            DefaultNumSimulations,
			MortalityAdjustmentFactor: decimal.NewFromFloat(1.0),
			Algorithm:                 domain.AlgorithmMonteCarlo,
		},
		Output: domain.OutputSettings{
			Format:    DefaultFormat,
			Directory: ".",
		},
	}
}

// SaveConfiguration writes config as YAML
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
