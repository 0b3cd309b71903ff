package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Algorithm selects the amortization policy used to build a payment schedule
type Algorithm string

const (
	AlgorithmMonteCarlo        Algorithm = "monte_carlo"
	AlgorithmConstantPayment   Algorithm = "constant_payment"
	AlgorithmFixedInterestRate Algorithm = "fixed_interest_rate"
	AlgorithmDecreasingPayment Algorithm = "decreasing_payment"
	AlgorithmIncreasingPayment Algorithm = "increasing_payment"
	AlgorithmGraduatedPayment  Algorithm = "graduated_payment"
)

// Algorithms lists every supported policy in display order.
var Algorithms = []Algorithm{
	AlgorithmMonteCarlo,
	AlgorithmConstantPayment,
	AlgorithmFixedInterestRate,
	AlgorithmDecreasingPayment,
	AlgorithmIncreasingPayment,
	AlgorithmGraduatedPayment,
}

var algorithmDisplayNames = map[Algorithm]string{
	AlgorithmMonteCarlo:        "Monte Carlo",
	AlgorithmConstantPayment:   "Constant Payment",
	AlgorithmFixedInterestRate: "Fixed Interest Rate",
	AlgorithmDecreasingPayment: "Decreasing Payment",
	AlgorithmIncreasingPayment: "Increasing Payment",
	AlgorithmGraduatedPayment:  "Graduated Payment",
}

// DisplayName returns the human readable label, e.g. "Graduated Payment".
func (a Algorithm) DisplayName() string {
	if name, ok := algorithmDisplayNames[a]; ok {
		return name
	}
	return string(a)
}

// Valid reports whether a is one of the supported policies.
func (a Algorithm) Valid() bool {
	_, ok := algorithmDisplayNames[a]
	return ok
}

// ParseAlgorithm accepts the canonical identifier ("graduated_payment"), the display
// name ("Graduated Payment") or a dashed variant ("graduated-payment").
func ParseAlgorithm(s string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	n = strings.NewReplacer(" ", "_", "-", "_").Replace(n)
	a := Algorithm(n)
	if !a.Valid() {
		return "", &ParameterError{Field: "algorithm", Value: s, Reason: "unknown algorithm"}
	}
	return a, nil
}

// UnmarshalText lets Algorithm be decoded from JSON strings and flags.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Algorithm
func (a *Algorithm) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return a.UnmarshalText([]byte(s))
}

// SimulationParameters is the immutable input of one run-set.
type SimulationParameters struct {
	Principal                 float64   `json:"principal"`
	AnnualInterestRate        float64   `json:"annual_interest_rate"` // percent
	DurationYears             int       `json:"duration_years"`
	NumSimulations            int       `json:"num_simulations"`
	MortalityAdjustmentFactor float64   `json:"mortality_adjustment_factor"`
	Algorithm                 Algorithm `json:"algorithm"`
}

// MonthlyInterestRate converts the annual percentage into a monthly fraction.
func (p SimulationParameters) MonthlyInterestRate() float64 {
	return p.AnnualInterestRate / 12 / 100
}

// TotalMonths is the schedule length.
func (p SimulationParameters) TotalMonths() int {
	return p.DurationYears * 12
}

// WithAlgorithm returns a copy of p using algorithm a.
func (p SimulationParameters) WithAlgorithm(a Algorithm) SimulationParameters {
	p.Algorithm = a
	return p
}

func (p SimulationParameters) String() string {
	return fmt.Sprintf("%s principal=%.2f rate=%.2f%% years=%d sims=%d mortality=%.2f",
		p.Algorithm.DisplayName(), p.Principal, p.AnnualInterestRate, p.DurationYears, p.NumSimulations, p.MortalityAdjustmentFactor)
}

// PaymentRecord is one month of a schedule. Payment is the reported amount after the
// mortality adjustment; the portions are the unadjusted amortization figures.
type PaymentRecord struct {
	Month            int     `json:"month"`
	Payment          float64 `json:"payment"`
	PrincipalPortion float64 `json:"principal_portion"`
	InterestPortion  float64 `json:"interest_portion"`
}

// PaymentSchedule is the ordered output of a single run.
type PaymentSchedule []PaymentRecord

// Payments returns the reported payment amounts in month order.
func (s PaymentSchedule) Payments() []float64 {
	out := make([]float64, len(s))
	for i, r := range s {
		out[i] = r.Payment
	}
	return out
}

// TotalPaid sums the reported payments.
func (s PaymentSchedule) TotalPaid() float64 {
	var total float64
	for _, r := range s {
		total += r.Payment
	}
	return total
}

// TotalPrincipal sums the unadjusted principal portions.
func (s PaymentSchedule) TotalPrincipal() float64 {
	var total float64
	for _, r := range s {
		total += r.PrincipalPortion
	}
	return total
}
