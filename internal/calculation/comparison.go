package calculation

import (
	"context"
	"fmt"

	"github.com/rpgo/annuity-calculator/internal/domain"
)

// CompareAlgorithms computes one schedule per policy with otherwise identical parameters
// and summarises the distribution of its monthly payments. The Algorithm field of params
// is ignored. Runs of a policy are identical, so a single schedule stands for all of them.
func CompareAlgorithms(ctx context.Context, params domain.SimulationParameters) ([]domain.AlgorithmSummary, error) {
	summaries := make([]domain.AlgorithmSummary, 0, len(domain.Algorithms))
	for _, algorithm := range domain.Algorithms {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		schedule, err := ComputeSchedule(params.WithAlgorithm(algorithm))
		if err != nil {
			return nil, fmt.Errorf("compare %s: %w", algorithm.DisplayName(), err)
		}
		summary, err := Summarize(schedule.Payments())
		if err != nil {
			return nil, fmt.Errorf("compare %s: %w", algorithm.DisplayName(), err)
		}
		payments := schedule.Payments()
		summaries = append(summaries, domain.AlgorithmSummary{
			Algorithm:    algorithm,
			Name:         algorithm.DisplayName(),
			Payments:     summary,
			TotalPaid:    schedule.TotalPaid(),
			FirstPayment: payments[0],
			LastPayment:  payments[len(payments)-1],
		})
	}
	return summaries, nil
}
