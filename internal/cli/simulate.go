package cli

import (
	"fmt"
	"time"

	"github.com/rpgo/annuity-calculator/internal/calculation"
	"github.com/rpgo/annuity-calculator/internal/logging"
	"github.com/rpgo/annuity-calculator/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) newSimulateCommand() *cobra.Command {
	var (
		params  parameterFlags
		format  string
		outDir  string
		save    bool
		workers int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the simulation and print or save a report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfiguration(cmd, &params)
			if err != nil {
				return err
			}
			format = resolveFormat(cmd, format, cfg)
			if !save && output.IsFileOnlyFormat(format) {
				return fmt.Errorf("%w: add --save", output.ErrFileOnlyFormat)
			}
			p := cfg.Annuity.Parameters()

			start := time.Now()
			sim := calculation.NewSimulator(workers)
			sim.Logger = a.logger.WithComponent(logging.ComponentEngine)
			result, err := sim.RunSimulations(cmd.Context(), p)
			if err != nil {
				return err
			}
			a.logger.Info("simulation complete",
				logging.FieldAlgorithm, p.Algorithm,
				logging.FieldSimulations, p.NumSimulations,
				logging.FieldMonths, p.TotalMonths(),
				logging.FieldDuration, time.Since(start).Milliseconds(),
			)

			if !save {
				return output.Render(cmd.OutOrStdout(), format, result)
			}
			dir := cfg.Output.Directory
			if cmd.Flags().Changed("out") {
				dir = outDir
			}
			files, err := output.GenerateReport(result, format, dir)
			if err != nil {
				return err
			}
			for _, f := range files {
				a.logger.WithComponent(logging.ComponentOutput).Info("report written", logging.FieldFile, f, logging.FieldFormat, format)
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}

	params.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "", "report format (env "+EnvFormat+"); see 'annuity formats'")
	cmd.Flags().BoolVar(&save, "save", false, "write the report to a timestamped file instead of stdout")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory for --save")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent simulation runs (0 = GOMAXPROCS)")
	return cmd
}
