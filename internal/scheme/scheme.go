package scheme

import (
	"errors"

	"github.com/san-kum/pdegrid/internal/linalg"
	"github.com/san-kum/pdegrid/internal/pde"
)

// ErrNoHistory indicates an assembly attempt with an empty history; even a
// one-step formula needs the previous iterate.
var ErrNoHistory = errors.New("scheme: no previous iterate in history")

// Scheme assembles the linear system for the step that lands at time t.
// The backward sweep calls it with t strictly less than the most recent
// history time; the step size is the gap between the two.
type Scheme interface {
	// Assemble returns A and b such that A x = b yields the iterate at
	// time t. Implementations evaluate the operator at t (fully implicit).
	Assemble(op pde.Operator, h *History, t float64) (*linalg.Sparse, []float64, error)

	// Name identifies the scheme in registries and run metadata.
	Name() string
}

// ImplicitEuler is the one-step fully implicit formula
//
//	(I/dt - L(t)) x = V_prev/dt + b(t)
//
// valid for any step size, first-order accurate.
type ImplicitEuler struct{}

// NewImplicitEuler returns the one-step implicit scheme.
func NewImplicitEuler() *ImplicitEuler { return &ImplicitEuler{} }

// Name implements Scheme.
func (*ImplicitEuler) Name() string { return "implicit" }

// Assemble implements Scheme.
func (*ImplicitEuler) Assemble(op pde.Operator, h *History, t float64) (*linalg.Sparse, []float64, error) {
	if h.Depth() < 1 {
		return nil, nil, ErrNoHistory
	}
	tPrev, prev := h.At(0)
	dt := tPrev - t

	l, bc := op.Discretize(t)
	a := l.ScaleAddIdentity(-1, 1/dt)

	rhs := make([]float64, len(prev))
	for i := range rhs {
		rhs[i] = prev[i]/dt + bc[i]
	}
	return a, rhs, nil
}
