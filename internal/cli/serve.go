package cli

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/annuity-calculator/internal/calculation"
	"github.com/rpgo/annuity-calculator/internal/httpapi"
	"github.com/rpgo/annuity-calculator/internal/logging"
	"github.com/spf13/cobra"
)

const defaultAddr = ":8080"

func (a *app) newServeCommand() *cobra.Command {
	var (
		addr    string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulation engine as a JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(gin.ReleaseMode)
			logger := a.logger.WithComponent(logging.ComponentHTTP)
			sim := calculation.NewSimulator(workers)
			sim.Logger = a.logger.WithComponent(logging.ComponentEngine)
			router := httpapi.NewRouter(httpapi.NewEngine(sim), logger)
			return httpapi.Serve(cmd.Context(), addr, router, logger)
		},
	}

	defAddr := os.Getenv(EnvAddr)
	if defAddr == "" {
		defAddr = defaultAddr
	}
	cmd.Flags().StringVar(&addr, "addr", defAddr, "listen address (env "+EnvAddr+")")
	cmd.Flags().IntVar(&workers, "workers", 0, "concurrent simulation runs per request (0 = GOMAXPROCS)")
	return cmd
}
