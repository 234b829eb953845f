package scheme

import (
	"github.com/san-kum/pdegrid/internal/linalg"
	"github.com/san-kum/pdegrid/internal/pde"
)

// BDF2 is the two-step second-order backward differentiation formula. The
// weights are derived from the three-point divided difference, so they stay
// correct when the step factory hands out non-uniform consecutive steps.
// With fewer than two retained iterates it falls back to implicit Euler.
type BDF2 struct {
	euler ImplicitEuler
}

// NewBDF2 returns the two-step scheme.
func NewBDF2() *BDF2 { return &BDF2{} }

// Name implements Scheme.
func (*BDF2) Name() string { return "bdf2" }

// bdf2Weights returns (a, b, c) such that the derivative at the new point is
// approximated by a*x + b*V_prev + c*V_prevPrev, where h1 is the current step
// and h0 the one before it. For h1 == h0 == h these reduce to the classical
// (3/2, -2, 1/2)/h.
func bdf2Weights(h1, h0 float64) (a, b, c float64) {
	a = (2*h1 + h0) / (h1 * (h1 + h0))
	b = -(h1 + h0) / (h1 * h0)
	c = h1 / (h0 * (h1 + h0))
	return a, b, c
}

// Assemble implements Scheme. The assembled system is
//
//	(a I - L(t)) x = -b V_prev - c V_prevPrev + bc(t)
//
// with the divided-difference weights above.
func (s *BDF2) Assemble(op pde.Operator, h *History, t float64) (*linalg.Sparse, []float64, error) {
	if h.Depth() < 2 {
		// Bootstrap: not enough history for the two-step formula.
		return s.euler.Assemble(op, h, t)
	}

	t1, prev := h.At(0)
	t2, prevPrev := h.At(1)
	h1 := t1 - t
	h0 := t2 - t1

	a, b, c := bdf2Weights(h1, h0)

	l, bc := op.Discretize(t)
	m := l.ScaleAddIdentity(-1, a)

	rhs := make([]float64, len(prev))
	for i := range rhs {
		rhs[i] = -b*prev[i] - c*prevPrev[i] + bc[i]
	}
	return m, rhs, nil
}
