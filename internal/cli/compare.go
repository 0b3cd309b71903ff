package cli

import (
	"encoding/json"

	"github.com/rpgo/annuity-calculator/internal/calculation"
	"github.com/rpgo/annuity-calculator/internal/output"
	"github.com/spf13/cobra"
)

func (a *app) newCompareCommand() *cobra.Command {
	var (
		params parameterFlags
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the monthly payments of every policy for one parameter set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.resolveConfiguration(cmd, &params)
			if err != nil {
				return err
			}
			p := cfg.Annuity.Parameters()

			summaries, err := calculation.CompareAlgorithms(cmd.Context(), p)
			if err != nil {
				return err
			}
			a.logger.Debug("comparison complete", "policies", len(summaries))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(summaries)
			}
			report, err := output.FormatComparison(p, summaries)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(report)
			return err
		},
	}

	params.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the summaries as JSON")
	return cmd
}
