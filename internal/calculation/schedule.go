package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/annuity-calculator/internal/domain"
)

// MaxScheduleMonths bounds a single schedule (1000 years) so its length cannot overflow.
const MaxScheduleMonths = 12 * 1000

// ValidateParameters applies the engine guards. Every failure matches domain.ErrInvalidParameter.
func ValidateParameters(params domain.SimulationParameters) error {
	if !(params.Principal > 0) || math.IsInf(params.Principal, 0) {
		return &domain.ParameterError{Field: "principal", Value: params.Principal, Reason: "must be positive"}
	}
	if !(params.AnnualInterestRate > 0 && params.AnnualInterestRate <= 100) {
		return &domain.ParameterError{Field: "annual_interest_rate", Value: params.AnnualInterestRate, Reason: "must be in (0, 100]"}
	}
	if params.DurationYears <= 0 {
		return &domain.ParameterError{Field: "duration_years", Value: params.DurationYears, Reason: "must be positive"}
	}
	if params.NumSimulations < 1 {
		return &domain.ParameterError{Field: "num_simulations", Value: params.NumSimulations, Reason: "must be at least 1"}
	}
	if params.DurationYears > MaxScheduleMonths/12 {
		return &domain.ParameterError{Field: "duration_years", Value: params.DurationYears, Reason: fmt.Sprintf("schedule longer than %d months", MaxScheduleMonths)}
	}
	if !(params.MortalityAdjustmentFactor > 0) || math.IsInf(params.MortalityAdjustmentFactor, 0) {
		return &domain.ParameterError{Field: "mortality_adjustment_factor", Value: params.MortalityAdjustmentFactor, Reason: "must be positive"}
	}
	if !params.Algorithm.Valid() {
		return &domain.ParameterError{Field: "algorithm", Value: params.Algorithm, Reason: "unknown algorithm"}
	}
	return nil
}

// ComputeSchedule produces one run's monthly payment schedule.
//
// The mortality adjustment scales the reported payment only; the balance is reduced
// by the unadjusted principal portion.
func ComputeSchedule(params domain.SimulationParameters) (domain.PaymentSchedule, error) {
	if err := ValidateParameters(params); err != nil {
		return nil, err
	}
	policy, err := PolicyFor(params.Algorithm)
	if err != nil {
		return nil, err
	}

	months := params.TotalMonths()
	rate := params.MonthlyInterestRate()
	schedule := make(domain.PaymentSchedule, 0, months)
	remaining := params.Principal

	for month := 0; month < months; month++ {
		principal, err := policy.Principal(params, month, remaining)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", params.Algorithm.DisplayName(), err)
		}

		var interest float64
		if policy.ChargesInterest {
			interest = remaining * rate
		}
		payment := (interest + principal) * params.MortalityAdjustmentFactor

		schedule = append(schedule, domain.PaymentRecord{
			Month:            month + 1,
			Payment:          payment,
			PrincipalPortion: principal,
			InterestPortion:  interest,
		})
		remaining -= principal
	}

	return schedule, nil
}
