package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/annuity-calculator/internal/domain"
)

// PrincipalFunc computes the principal portion for a 0-based month given the balance
// still outstanding at the start of that month.
type PrincipalFunc func(params domain.SimulationParameters, month int, remaining float64) (float64, error)

// Policy pairs a principal formula with whether the month's interest is added to the payment.
type Policy struct {
	Algorithm       domain.Algorithm
	Principal       PrincipalFunc
	ChargesInterest bool
}

var policies = map[domain.Algorithm]Policy{
	domain.AlgorithmMonteCarlo:        {Algorithm: domain.AlgorithmMonteCarlo, Principal: LevelPrincipal, ChargesInterest: true},
	domain.AlgorithmFixedInterestRate: {Algorithm: domain.AlgorithmFixedInterestRate, Principal: LevelPrincipal},
	domain.AlgorithmConstantPayment:   {Algorithm: domain.AlgorithmConstantPayment, Principal: ConstantPrincipal},
	domain.AlgorithmDecreasingPayment: {Algorithm: domain.AlgorithmDecreasingPayment, Principal: DecreasingPrincipal},
	domain.AlgorithmIncreasingPayment: {Algorithm: domain.AlgorithmIncreasingPayment, Principal: IncreasingPrincipal},
	domain.AlgorithmGraduatedPayment:  {Algorithm: domain.AlgorithmGraduatedPayment, Principal: GraduatedPrincipal},
}

// PolicyFor returns the policy registered for a.
func PolicyFor(a domain.Algorithm) (Policy, error) {
	p, ok := policies[a]
	if !ok {
		return Policy{}, &domain.ParameterError{Field: "algorithm", Value: a, Reason: "unknown algorithm"}
	}
	return p, nil
}

// LevelPrincipal is the level-payment annuity formula P*r / (1 - (1+r)^-T). It depends
// only on the original principal, so the value is the same every month.
func LevelPrincipal(params domain.SimulationParameters, _ int, _ float64) (float64, error) {
	r := params.MonthlyInterestRate()
	denominator := 1 - math.Pow(1+r, -float64(params.TotalMonths()))
	if denominator == 0 {
		return 0, fmt.Errorf("level payment with monthly rate %g over %d months: %w", r, params.TotalMonths(), domain.ErrDivisionByZero)
	}
	return params.Principal * r / denominator, nil
}

// ConstantPrincipal splits the original principal evenly across all months.
func ConstantPrincipal(params domain.SimulationParameters, _ int, _ float64) (float64, error) {
	months := params.TotalMonths()
	if months == 0 {
		return 0, fmt.Errorf("constant payment over zero months: %w", domain.ErrDivisionByZero)
	}
	return params.Principal / float64(months), nil
}

// DecreasingPrincipal spreads the outstanding balance over the months left.
func DecreasingPrincipal(params domain.SimulationParameters, month int, remaining float64) (float64, error) {
	monthsLeft := params.TotalMonths() - month
	if monthsLeft == 0 {
		return 0, fmt.Errorf("decreasing payment at month %d of %d: %w", month, params.TotalMonths(), domain.ErrDivisionByZero)
	}
	return remaining / float64(monthsLeft), nil
}

// IncreasingPrincipal is the decreasing share scaled up by 20%.
func IncreasingPrincipal(params domain.SimulationParameters, month int, remaining float64) (float64, error) {
	base, err := DecreasingPrincipal(params, month, remaining)
	if err != nil {
		return 0, err
	}
	return base * 1.2, nil
}

// GraduatedPrincipal is the decreasing share scaled by (1 + month/12).
func GraduatedPrincipal(params domain.SimulationParameters, month int, remaining float64) (float64, error) {
	base, err := DecreasingPrincipal(params, month, remaining)
	if err != nil {
		return 0, err
	}
	return base * (1 + float64(month)/12), nil
}
