package cli

import (
	"fmt"
	"os"

	"github.com/rpgo/annuity-calculator/internal/domain"
	"github.com/rpgo/annuity-calculator/internal/logging"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// parameterFlags override individual configuration fields when set on the command line.
type parameterFlags struct {
	principal   float64
	rate        float64
	years       int
	simulations int
	mortality   float64
	algorithm   string
}

func (p *parameterFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&p.principal, "principal", 0, "initial principal")
	f.Float64Var(&p.rate, "rate", 0, "annual interest rate in percent")
	f.IntVar(&p.years, "years", 0, "duration in years")
	f.IntVar(&p.simulations, "simulations", 0, "number of simulation runs")
	f.Float64Var(&p.mortality, "mortality", 0, "mortality adjustment factor")
	f.StringVar(&p.algorithm, "algorithm", "", "payment policy, e.g. monte_carlo or \"Graduated Payment\"")
}

func (p *parameterFlags) apply(cmd *cobra.Command, settings *domain.AnnuitySettings) error {
	f := cmd.Flags()
	if f.Changed("principal") {
		settings.Principal = decimal.NewFromFloat(p.principal)
	}
	if f.Changed("rate") {
		settings.AnnualInterestRate = decimal.NewFromFloat(p.rate)
	}
	if f.Changed("years") {
		settings.DurationYears = p.years
	}
	if f.Changed("simulations") {
		settings.NumSimulations = p.simulations
	}
	if f.Changed("mortality") {
		settings.MortalityAdjustmentFactor = decimal.NewFromFloat(p.mortality)
	}
	if f.Changed("algorithm") {
		a, err := domain.ParseAlgorithm(p.algorithm)
		if err != nil {
			return err
		}
		settings.Algorithm = a
	}
	return nil
}

// resolveConfiguration layers defaults, the config file and flag overrides, then validates.
func (a *app) resolveConfiguration(cmd *cobra.Command, flags *parameterFlags) (*domain.Configuration, error) {
	log := a.logger.WithComponent(logging.ComponentConfig)

	var cfg *domain.Configuration
	if a.configFile == "" {
		cfg = a.parser.CreateExampleConfiguration()
	} else {
		loaded, err := a.parser.LoadFromFile(a.configFile)
		if err != nil {
			return nil, err
		}
		log.Debug("configuration loaded", logging.FieldFile, a.configFile)
		cfg = loaded
	}

	if err := flags.apply(cmd, &cfg.Annuity); err != nil {
		return nil, err
	}
	if err := a.parser.ValidateConfiguration(cfg); err != nil {
		return nil, fmt.Errorf("invalid parameters: %w", err)
	}
	return cfg, nil
}

// resolveFormat applies flag > environment > configuration precedence.
func resolveFormat(cmd *cobra.Command, flagValue string, cfg *domain.Configuration) string {
	if cmd.Flags().Changed("format") {
		return flagValue
	}
	if env := os.Getenv(EnvFormat); env != "" {
		return env
	}
	return cfg.Output.Format
}
