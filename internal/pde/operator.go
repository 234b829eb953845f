package pde

import (
	"github.com/san-kum/pdegrid/internal/linalg"
	"github.com/san-kum/pdegrid/internal/mesh"
)

// Operator builds, for a fixed grid and a given time, the discrete spatial
// generator L and the boundary-condition contribution b, such that the
// continuous problem reads dV/dtau = L V + b in time-to-maturity tau.
//
// Implementations must produce a matrix whose dimension equals the grid's
// node count and whose rows touch only a bounded neighborhood of each node.
type Operator interface {
	// Discretize returns the generator and rhs contribution at time t.
	// The returned values are owned by the caller.
	Discretize(t float64) (*linalg.Sparse, []float64)

	// Grid returns the grid the operator is discretized on.
	Grid() *mesh.Grid
}

// Payoff maps a spot price to the option's exercise value. It supplies the
// initial condition at expiry and the exercise branch of early-exercise
// events.
type Payoff func(s float64) float64

// Put returns the fixed-strike put payoff max(k - s, 0).
func Put(k float64) Payoff {
	return func(s float64) float64 {
		if s < k {
			return k - s
		}
		return 0
	}
}

// Call returns the fixed-strike call payoff max(s - k, 0).
func Call(k float64) Payoff {
	return func(s float64) float64 {
		if s > k {
			return s - k
		}
		return 0
	}
}

// SampleInitial evaluates a payoff at every node of a 1-D grid, producing the
// iterate the backward sweep starts from.
func SampleInitial(g *mesh.Grid, payoff Payoff) []float64 {
	values := make([]float64, g.NodeCount())
	axis := g.Axis(0)
	for i := range values {
		values[i] = payoff(axis.At(i))
	}
	return values
}
