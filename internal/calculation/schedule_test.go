package calculation

import (
	"context"
	"math"
	"testing"

	"github.com/rpgo/annuity-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(a domain.Algorithm) domain.SimulationParameters {
	return domain.SimulationParameters{
		Principal:                 100000,
		AnnualInterestRate:        5.0,
		DurationYears:             10,
		NumSimulations:            5,
		MortalityAdjustmentFactor: 1.0,
		Algorithm:                 a,
	}
}

func TestComputeSchedule_LengthForEveryAlgorithm(t *testing.T) {
	for _, a := range domain.Algorithms {
		t.Run(string(a), func(t *testing.T) {
			for _, years := range []int{1, 3, 30} {
				p := testParams(a)
				p.DurationYears = years
				schedule, err := ComputeSchedule(p)
				require.NoError(t, err)
				require.Len(t, schedule, years*12)
				for i, rec := range schedule {
					assert.Equal(t, i+1, rec.Month)
				}
			}
		})
	}
}

func TestComputeSchedule_BoundaryConstantPayment(t *testing.T) {
	p := domain.SimulationParameters{
		Principal:                 1,
		AnnualInterestRate:        5.0,
		DurationYears:             1,
		NumSimulations:            1,
		MortalityAdjustmentFactor: 1.0,
		Algorithm:                 domain.AlgorithmConstantPayment,
	}
	schedule, err := ComputeSchedule(p)
	require.NoError(t, err)
	require.Len(t, schedule, 12)
	for _, rec := range schedule {
		assert.InDelta(t, 1.0/12, rec.Payment, 1e-15)
	}
}

func TestComputeSchedule_ConstantPaymentPrincipalSum(t *testing.T) {
	for _, factor := range []float64{0.1, 1.0, 1.75} {
		p := testParams(domain.AlgorithmConstantPayment)
		p.MortalityAdjustmentFactor = factor
		schedule, err := ComputeSchedule(p)
		require.NoError(t, err)
		assert.InDelta(t, p.Principal, schedule.TotalPrincipal(), 1e-6, "factor %v", factor)
		assert.InDelta(t, p.Principal*factor, schedule.TotalPaid(), 1e-6, "factor %v", factor)
	}
}

func TestComputeSchedule_LevelPrincipalIsConstant(t *testing.T) {
	for _, a := range []domain.Algorithm{domain.AlgorithmFixedInterestRate, domain.AlgorithmMonteCarlo} {
		p := testParams(a)
		r := p.MonthlyInterestRate()
		want := p.Principal * r / (1 - math.Pow(1+r, -float64(p.TotalMonths())))

		schedule, err := ComputeSchedule(p)
		require.NoError(t, err)
		for _, rec := range schedule {
			assert.Equal(t, want, rec.PrincipalPortion, "%s month %d", a, rec.Month)
		}
	}
}

func TestComputeSchedule_FixedInterestRatePaysPrincipalOnly(t *testing.T) {
	p := testParams(domain.AlgorithmFixedInterestRate)
	schedule, err := ComputeSchedule(p)
	require.NoError(t, err)
	for _, rec := range schedule {
		assert.Equal(t, rec.PrincipalPortion, rec.Payment)
		assert.Zero(t, rec.InterestPortion)
	}
	// 100k over 10 years at 5% is the familiar 1060.66 level payment
	assert.InDelta(t, 1060.66, schedule[0].Payment, 0.01)
}

func TestComputeSchedule_MonteCarloAddsInterestOnRemainingBalance(t *testing.T) {
	p := testParams(domain.AlgorithmMonteCarlo)
	level, err := LevelPrincipal(p, 0, p.Principal)
	require.NoError(t, err)

	schedule, err := ComputeSchedule(p)
	require.NoError(t, err)

	remaining := p.Principal
	for _, rec := range schedule {
		assert.Equal(t, remaining*p.MonthlyInterestRate(), rec.InterestPortion)
		assert.Equal(t, rec.InterestPortion+level, rec.Payment)
		remaining -= level
	}
	assert.Greater(t, schedule[0].Payment, schedule[len(schedule)-1].Payment)
}

func TestComputeSchedule_DecreasingFamily(t *testing.T) {
	p := testParams(domain.AlgorithmDecreasingPayment)
	months := float64(p.TotalMonths())

	schedule, err := ComputeSchedule(p)
	require.NoError(t, err)
	for _, rec := range schedule {
		assert.InDelta(t, p.Principal/months, rec.Payment, 1e-6)
	}
	assert.InDelta(t, p.Principal, schedule.TotalPrincipal(), 1e-6)

	inc, err := ComputeSchedule(p.WithAlgorithm(domain.AlgorithmIncreasingPayment))
	require.NoError(t, err)
	assert.InDelta(t, p.Principal/months*1.2, inc[0].Payment, 1e-9)
	second := (p.Principal - inc[0].PrincipalPortion) / (months - 1) * 1.2
	assert.InDelta(t, second, inc[1].Payment, 1e-9)

	grad, err := ComputeSchedule(p.WithAlgorithm(domain.AlgorithmGraduatedPayment))
	require.NoError(t, err)
	assert.InDelta(t, p.Principal/months, grad[0].Payment, 1e-9)
	assert.InDelta(t, p.Principal/months*(13.0/12.0), grad[1].Payment, 1e-9)
}

func TestComputeSchedule_MortalityScalesPaymentsOnly(t *testing.T) {
	const k = 2.5
	for _, a := range domain.Algorithms {
		base := testParams(a)
		scaled := base
		scaled.MortalityAdjustmentFactor = base.MortalityAdjustmentFactor * k

		s1, err := ComputeSchedule(base)
		require.NoError(t, err)
		s2, err := ComputeSchedule(scaled)
		require.NoError(t, err)
		require.Len(t, s2, len(s1))

		for i := range s1 {
			assert.InEpsilon(t, s1[i].Payment*k, s2[i].Payment, 1e-12, "%s month %d", a, i+1)
			assert.Equal(t, s1[i].PrincipalPortion, s2[i].PrincipalPortion, "%s month %d", a, i+1)
			assert.Equal(t, s1[i].InterestPortion, s2[i].InterestPortion, "%s month %d", a, i+1)
		}
	}
}

func TestComputeSchedule_InvalidParameters(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *domain.SimulationParameters)
		field  string
	}{
		{"zero duration", func(p *domain.SimulationParameters) { p.DurationYears = 0 }, "duration_years"},
		{"negative duration", func(p *domain.SimulationParameters) { p.DurationYears = -2 }, "duration_years"},
		{"duration past schedule bound", func(p *domain.SimulationParameters) { p.DurationYears = MaxScheduleMonths/12 + 1 }, "duration_years"},
		{"huge duration", func(p *domain.SimulationParameters) { p.DurationYears = 1 << 40 }, "duration_years"},
		{"zero principal", func(p *domain.SimulationParameters) { p.Principal = 0 }, "principal"},
		{"NaN principal", func(p *domain.SimulationParameters) { p.Principal = math.NaN() }, "principal"},
		{"zero simulations", func(p *domain.SimulationParameters) { p.NumSimulations = 0 }, "num_simulations"},
		{"zero rate", func(p *domain.SimulationParameters) { p.AnnualInterestRate = 0 }, "annual_interest_rate"},
		{"rate above 100", func(p *domain.SimulationParameters) { p.AnnualInterestRate = 100.5 }, "annual_interest_rate"},
		{"zero mortality factor", func(p *domain.SimulationParameters) { p.MortalityAdjustmentFactor = 0 }, "mortality_adjustment_factor"},
		{"unknown algorithm", func(p *domain.SimulationParameters) { p.Algorithm = "lottery" }, "algorithm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams(domain.AlgorithmConstantPayment)
			tt.mutate(&p)
			schedule, err := ComputeSchedule(p)
			require.Error(t, err)
			assert.Nil(t, schedule)
			assert.ErrorIs(t, err, domain.ErrInvalidParameter)

			var perr *domain.ParameterError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.field, perr.Field)
		})
	}
}

func TestValidateParameters_LongestScheduleAccepted(t *testing.T) {
	p := testParams(domain.AlgorithmConstantPayment)
	p.DurationYears = MaxScheduleMonths / 12
	assert.NoError(t, ValidateParameters(p))

	p.DurationYears = 1 << 40
	_, err := NewSimulator(1).RunSimulations(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}

func TestComputeSchedule_LevelDenominatorVanishes(t *testing.T) {
	// 1 + r rounds to exactly 1, so (1+r)^-T is 1
	p := testParams(domain.AlgorithmFixedInterestRate)
	p.AnnualInterestRate = 1e-14

	schedule, err := ComputeSchedule(p)
	assert.Nil(t, schedule)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)
}

func TestDecreasingPrincipal_GuardsLastMonth(t *testing.T) {
	p := testParams(domain.AlgorithmDecreasingPayment)
	_, err := DecreasingPrincipal(p, p.TotalMonths(), 10)
	assert.ErrorIs(t, err, domain.ErrDivisionByZero)

	v, err := DecreasingPrincipal(p, p.TotalMonths()-1, 10)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)
}

func TestPolicyFor(t *testing.T) {
	for _, a := range domain.Algorithms {
		policy, err := PolicyFor(a)
		require.NoError(t, err)
		assert.Equal(t, a, policy.Algorithm)
		assert.NotNil(t, policy.Principal)
		assert.Equal(t, a == domain.AlgorithmMonteCarlo, policy.ChargesInterest)
	}
	_, err := PolicyFor("nope")
	assert.ErrorIs(t, err, domain.ErrInvalidParameter)
}
