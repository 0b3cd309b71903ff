package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/rpgo/annuity-calculator/internal/config"
	"github.com/rpgo/annuity-calculator/internal/logging"
	"github.com/spf13/cobra"
)

const defaultConfigFile = "annuity.yaml"

func (a *app) newInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write an example configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := config.SaveConfiguration(a.parser.CreateExampleConfiguration(), path); err != nil {
				return err
			}
			a.logger.WithComponent(logging.ComponentConfig).Info("example configuration written", logging.FieldFile, path)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
