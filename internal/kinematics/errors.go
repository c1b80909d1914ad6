package kinematics

import (
	"errors"
	"fmt"
	"math"
)

// ErrPrecondition indicates an input outside the domain of the formulas.
var ErrPrecondition = errors.New("kinematics: precondition violated")

// PreconditionError names the offending input.
type PreconditionError struct {
	Field string
	Value float64
	Rule  string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("kinematics: %s must be %s, got %g", e.Field, e.Rule, e.Value)
}

func (e *PreconditionError) Unwrap() error {
	return ErrPrecondition
}

func requireFinite(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &PreconditionError{Field: field, Value: v, Rule: "finite"}
	}
	return nil
}

func requirePositive(field string, v float64) error {
	if err := requireFinite(field, v); err != nil {
		return err
	}
	if v <= 0 {
		return &PreconditionError{Field: field, Value: v, Rule: "positive"}
	}
	return nil
}

func requireNonNegative(field string, v float64) error {
	if err := requireFinite(field, v); err != nil {
		return err
	}
	if v < 0 {
		return &PreconditionError{Field: field, Value: v, Rule: "non-negative"}
	}
	return nil
}
