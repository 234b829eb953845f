package linalg

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Solver defaults. The iteration budget scales with the system size when not
// set explicitly.
const (
	DefaultTolerance = 1e-9
	breakdownEps     = 1e-30
)

// Stats reports how a solve went.
type Stats struct {
	Iterations int
	Residual   float64 // relative residual at exit
}

// BiCGStab is a stabilized biconjugate gradient solver for general square
// systems. It tolerates the non-symmetric matrices produced by
// convection-diffusion stencils. A zero MaxIterations means a budget of
// 2*Dim iterations.
type BiCGStab struct {
	Tolerance     float64
	MaxIterations int
}

// NewBiCGStab returns a solver with the default relative tolerance and a
// size-scaled iteration budget.
func NewBiCGStab() *BiCGStab {
	return &BiCGStab{Tolerance: DefaultTolerance}
}

// Solve solves a x = b starting from x0 (nil means the zero vector). It
// returns the solution, iteration statistics, and ErrNoConvergence or
// ErrBreakdown on failure. b and x0 are not mutated.
func (s *BiCGStab) Solve(a *Sparse, b, x0 []float64) ([]float64, Stats, error) {
	n := a.Dim()
	if len(b) != n || (x0 != nil && len(x0) != n) {
		return nil, Stats{}, ErrDimensionMismatch
	}

	tol := s.Tolerance
	if tol <= 0 {
		tol = DefaultTolerance
	}
	maxIter := s.MaxIterations
	if maxIter <= 0 {
		maxIter = 2 * n
	}

	x := make([]float64, n)
	if x0 != nil {
		copy(x, x0)
	}

	normB := floats.Norm(b, 2)
	if normB == 0 {
		// b = 0 has the exact solution x = 0.
		return make([]float64, n), Stats{}, nil
	}

	r := make([]float64, n)
	a.MulVec(r, x)
	floats.AddScaledTo(r, b, -1, r) // r = b - A x

	rhat := make([]float64, n)
	copy(rhat, r)

	p := make([]float64, n)
	v := make([]float64, n)
	sv := make([]float64, n)
	t := make([]float64, n)

	rho, alpha, omega := 1.0, 1.0, 1.0

	rel := floats.Norm(r, 2) / normB
	if rel < tol {
		return x, Stats{Residual: rel}, nil
	}

	for iter := 1; iter <= maxIter; iter++ {
		rho1 := floats.Dot(rhat, r)
		if math.Abs(rho1) < breakdownEps {
			return nil, Stats{Iterations: iter, Residual: rel}, ErrBreakdown
		}

		beta := (rho1 / rho) * (alpha / omega)
		for i := range p {
			p[i] = r[i] + beta*(p[i]-omega*v[i])
		}

		a.MulVec(v, p)
		den := floats.Dot(rhat, v)
		if math.Abs(den) < breakdownEps {
			return nil, Stats{Iterations: iter, Residual: rel}, ErrBreakdown
		}
		alpha = rho1 / den

		floats.AddScaledTo(sv, r, -alpha, v) // s = r - alpha v

		if rel = floats.Norm(sv, 2) / normB; rel < tol {
			floats.AddScaled(x, alpha, p)
			return x, Stats{Iterations: iter, Residual: rel}, nil
		}

		a.MulVec(t, sv)
		tt := floats.Dot(t, t)
		if tt < breakdownEps {
			return nil, Stats{Iterations: iter, Residual: rel}, ErrBreakdown
		}
		omega = floats.Dot(t, sv) / tt

		floats.AddScaled(x, alpha, p)
		floats.AddScaled(x, omega, sv)
		floats.AddScaledTo(r, sv, -omega, t) // r = s - omega t

		rho = rho1

		if rel = floats.Norm(r, 2) / normB; rel < tol {
			return x, Stats{Iterations: iter, Residual: rel}, nil
		}
		if math.Abs(omega) < breakdownEps {
			return nil, Stats{Iterations: iter, Residual: rel}, ErrBreakdown
		}
	}

	return nil, Stats{Iterations: maxIter, Residual: rel}, ErrNoConvergence
}
