package linalg

import "errors"

// Solver and assembly errors.
var (
	// ErrNoConvergence indicates the iteration budget was exhausted before
	// the residual reached the requested tolerance.
	ErrNoConvergence = errors.New("linalg: solver did not converge within iteration budget")

	// ErrBreakdown indicates the BiCGStab recurrence degenerated (a scalar
	// in the update became numerically zero).
	ErrBreakdown = errors.New("linalg: solver breakdown")

	// ErrDimensionMismatch indicates vector lengths inconsistent with the
	// matrix dimension.
	ErrDimensionMismatch = errors.New("linalg: dimension mismatch")
)
