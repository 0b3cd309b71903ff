package calculation

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rpgo/annuity-calculator/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Simulator repeats the schedule computation num_simulations times and aggregates the runs.
type Simulator struct {
	// Workers bounds concurrent runs; values below 1 mean runtime.GOMAXPROCS(0).
	Workers int
	Logger  Logger
}

// NewSimulator creates a simulator running at most workers schedules at a time.
func NewSimulator(workers int) *Simulator {
	return &Simulator{Workers: workers}
}

func (s *Simulator) limit() int {
	if s == nil || s.Workers < 1 {
		return runtime.GOMAXPROCS(0)
	}
	return s.Workers
}

func (s *Simulator) logger() Logger {
	if s == nil || s.Logger == nil {
		return NopLogger{}
	}
	return s.Logger
}

// RunSimulations computes every run, assembles the matrix by run index and describes it.
// Invalid parameters are rejected before any schedule is computed.
func (s *Simulator) RunSimulations(ctx context.Context, params domain.SimulationParameters) (*domain.SimulationResult, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}

	log := s.logger()
	log.Debugf("running %d simulations of %s over %d months (workers=%d)",
		params.NumSimulations, params.Algorithm.DisplayName(), params.TotalMonths(), s.limit())

	matrix := make(domain.SimulationMatrix, params.NumSimulations)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.limit())

	for run := 0; run < params.NumSimulations; run++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			schedule, err := ComputeSchedule(params)
			if err != nil {
				return fmt.Errorf("simulation %d: %w", run+1, err)
			}
			matrix[run] = schedule.Payments()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	statistics, err := Describe(matrix)
	if err != nil {
		return nil, err
	}
	log.Debugf("described %d months across %d runs", len(statistics), matrix.Runs())

	return &domain.SimulationResult{
		Parameters: params,
		Matrix:     matrix,
		Statistics: statistics,
	}, nil
}

// RunSimulations runs params on a simulator using every available CPU.
func RunSimulations(ctx context.Context, params domain.SimulationParameters) (*domain.SimulationResult, error) {
	return NewSimulator(0).RunSimulations(ctx, params)
}
