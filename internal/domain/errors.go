package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned for non-positive or out-of-range inputs.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDivisionByZero is returned when a policy denominator vanishes.
	ErrDivisionByZero = errors.New("division by zero")
)

// ParameterError names the offending field. It matches ErrInvalidParameter with errors.Is.
type ParameterError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Field, e.Value, e.Reason)
}

func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }
