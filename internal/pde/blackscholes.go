package pde

import (
	"github.com/san-kum/pdegrid/internal/linalg"
	"github.com/san-kum/pdegrid/internal/mesh"
)

// Coefficient is a possibly time-dependent model coefficient.
type Coefficient func(t float64) float64

// Constant wraps a fixed coefficient value.
func Constant(c float64) Coefficient {
	return func(float64) float64 { return c }
}

// BlackScholes is the diffusion-drift-discount generator
//
//	L V = (1/2) sigma^2 S^2 V_SS + (r - q) S V_S - r V
//
// discretized on a non-uniform 1-D grid. Interior nodes use central
// differences with actual tick spacings; whenever the central drift term
// would produce a negative off-diagonal coefficient, that node switches to
// one-sided (upwind) differencing so the generator keeps nonnegative
// off-diagonals. The S=0 end degenerates to pure discounting; the far
// boundary assumes V_SS = 0 with a one-sided first derivative.
type BlackScholes struct {
	grid *mesh.Grid
	rate Coefficient
	vol  Coefficient
	div  Coefficient
}

// NewBlackScholes builds the generator with constant rate, volatility and
// dividend yield.
func NewBlackScholes(g *mesh.Grid, rate, vol, div float64) *BlackScholes {
	return NewBlackScholesTimeDep(g, Constant(rate), Constant(vol), Constant(div))
}

// NewBlackScholesTimeDep builds the generator with time-dependent
// coefficients.
func NewBlackScholesTimeDep(g *mesh.Grid, rate, vol, div Coefficient) *BlackScholes {
	return &BlackScholes{grid: g, rate: rate, vol: vol, div: div}
}

// Grid returns the spatial grid.
func (bs *BlackScholes) Grid() *mesh.Grid { return bs.grid }

// Discretize assembles the generator at time t. The rhs contribution is zero
// for these boundary conditions but is returned for interface symmetry.
func (bs *BlackScholes) Discretize(t float64) (*linalg.Sparse, []float64) {
	axis := bs.grid.Axis(0)
	n := axis.Len()
	r := bs.rate(t)
	sigma := bs.vol(t)
	q := bs.div(t)

	m := linalg.NewSparse(n)
	rhs := make([]float64, n)

	if n == 1 {
		m.AppendRow([]int{0}, []float64{-r})
		return m, rhs
	}

	// Near boundary: no diffusion contribution (S is usually 0 there),
	// forward-differenced drift plus discounting.
	{
		s := axis.At(0)
		h := axis.At(1) - s
		drift := (r - q) * s
		m.AppendRow(
			[]int{0, 1},
			[]float64{-drift/h - r, drift / h},
		)
	}

	for i := 1; i < n-1; i++ {
		s := axis.At(i)
		hl := s - axis.At(i-1)
		hr := axis.At(i+1) - s

		diff := 0.5 * sigma * sigma * s * s
		drift := (r - q) * s

		lower := 2 * diff / (hl * (hl + hr))
		upper := 2 * diff / (hr * (hl + hr))
		diag := -2 * diff / (hl * hr)

		// Central drift, falling back to upwind when a central
		// coefficient would go negative.
		cl := lower - drift*hr/(hl*(hl+hr))
		cu := upper + drift*hl/(hr*(hl+hr))
		switch {
		case cl >= 0 && cu >= 0:
			lower = cl
			upper = cu
			diag += drift * (hr - hl) / (hl * hr)
		case drift > 0:
			// Forward difference.
			upper += drift / hr
			diag -= drift / hr
		default:
			// Backward difference.
			lower -= drift / hl
			diag += drift / hl
		}

		diag -= r
		m.AppendRow([]int{i - 1, i, i + 1}, []float64{lower, diag, upper})
	}

	// Far boundary: linearity assumption V_SS = 0, backward-differenced
	// drift.
	{
		s := axis.At(n - 1)
		h := s - axis.At(n-2)
		drift := (r - q) * s
		m.AppendRow(
			[]int{n - 2, n - 1},
			[]float64{-drift / h, drift/h - r},
		)
	}

	return m, rhs
}
