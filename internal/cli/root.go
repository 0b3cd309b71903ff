package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rpgo/annuity-calculator/internal/config"
	"github.com/rpgo/annuity-calculator/internal/logging"
	"github.com/spf13/cobra"
)

// Environment variables supplying flag defaults; a .env file in the working
// directory is loaded first.
const (
	EnvConfig   = "ANNUITY_CONFIG"
	EnvFormat   = "ANNUITY_FORMAT"
	EnvLogLevel = "ANNUITY_LOG_LEVEL"
	EnvAddr     = "ANNUITY_ADDR"
)

type app struct {
	configFile string
	logLevel   string
	logJSON    bool

	parser *config.InputParser
	logger *logging.Logger
}

// NewRootCommand builds the annuity command tree.
func NewRootCommand() *cobra.Command {
	a := &app{parser: config.NewInputParser(), logger: logging.Discard()}

	root := &cobra.Command{
		Use:           "annuity",
		Short:         "Simulate annuity payout schedules",
		Long:          "Computes monthly annuity payments under several amortization policies and summarises them across simulation runs.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			cfg := logging.DefaultConfig()
			cfg.Level = level
			cfg.Output = cmd.ErrOrStderr()
			cfg.JSON = a.logJSON
			a.logger = logging.New(cfg).WithOperation(cmd.Name())
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", os.Getenv(EnvConfig), "YAML configuration file (env "+EnvConfig+")")
	pf.StringVar(&a.logLevel, "log-level", os.Getenv(EnvLogLevel), "debug, info, warn or error (env "+EnvLogLevel+")")
	pf.BoolVar(&a.logJSON, "log-json", false, "emit logs as JSON")

	root.AddCommand(
		a.newSimulateCommand(),
		a.newCompareCommand(),
		a.newInitCommand(),
		a.newServeCommand(),
		a.newFormatsCommand(),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		root.PrintErrln("Error:", err)
		return 1
	}
	return 0
}
