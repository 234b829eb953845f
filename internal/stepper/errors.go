package stepper

import (
	"errors"
	"fmt"
)

// Run configuration errors.
var (
	// ErrBadInterval indicates expiry is not strictly greater than the
	// start time.
	ErrBadInterval = errors.New("stepper: expiry must be greater than start time")

	// ErrBadStepCount indicates a non-positive step count.
	ErrBadStepCount = errors.New("stepper: step count must be positive")
)

// StepError wraps a failure at a specific step of the backward sweep.
type StepError struct {
	Step int
	Time float64
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("stepper: step %d (t=%.6g): %v", e.Step, e.Time, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
