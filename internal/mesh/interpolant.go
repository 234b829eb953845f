package mesh

import "sort"

// Interpolant reconstructs a continuous function from node values by
// multilinear blending. It borrows the grid and the value buffer; both must
// outlive the interpolant's use, and neither is mutated.
//
// Boundary policy: coordinates outside the grid's bounding box are CLAMPED to
// the nearest boundary in each dimension. The engine never extrapolates;
// far-boundary behavior is the operator's job, not the interpolant's.
type Interpolant struct {
	grid   *Grid
	values []float64
}

// NewInterpolant wraps a grid and a value buffer. It fails with
// ErrSizeMismatch when the buffer length is not the grid's node count.
func NewInterpolant(g *Grid, values []float64) (*Interpolant, error) {
	if len(values) != g.NodeCount() {
		return nil, ErrSizeMismatch
	}
	return &Interpolant{grid: g, values: values}, nil
}

// Grid returns the borrowed grid.
func (in *Interpolant) Grid() *Grid { return in.grid }

// bracket locates the cell [lo, lo+1] containing x on axis a and the blend
// weight w in [0, 1] toward the upper tick. Out-of-range x clamps to the
// boundary tick with weight exactly 0 or 1, so boundary queries reproduce the
// stored node value without drift.
func bracket(a Axis, x float64) (lo int, w float64) {
	t := a.ticksRef()
	n := len(t)
	if n == 1 || x <= t[0] {
		return 0, 0
	}
	if x >= t[n-1] {
		return n - 2, 1
	}
	// First index with tick > x, so x lies in [t[hi-1], t[hi]).
	hi := sort.SearchFloat64s(t, x)
	if t[hi] == x {
		return hi, 0
	}
	lo = hi - 1
	return lo, (x - t[lo]) / (t[lo+1] - t[lo])
}

// Eval returns the multilinear interpolated value at the given coordinate.
// len(coord) must equal the grid's dimension. Queries exactly on a node
// return that node's stored value.
func (in *Interpolant) Eval(coord ...float64) float64 {
	dim := in.grid.Dim()
	if dim == 1 {
		return in.Eval1(coord[0])
	}

	los := make([]int, dim)
	ws := make([]float64, dim)
	for d := 0; d < dim; d++ {
		los[d], ws[d] = bracket(in.grid.Axis(d), coord[d])
	}

	// Blend the 2^dim cell corners.
	var sum float64
	sub := make([]int, dim)
	for corner := 0; corner < 1<<uint(dim); corner++ {
		weight := 1.0
		for d := 0; d < dim; d++ {
			if corner&(1<<uint(d)) != 0 {
				weight *= ws[d]
				sub[d] = los[d] + 1
			} else {
				weight *= 1 - ws[d]
				sub[d] = los[d]
			}
		}
		if weight == 0 {
			continue
		}
		sum += weight * in.values[in.grid.Index(sub...)]
	}
	return sum
}

// Eval1 is the 1-D fast path used by the stepper's event loop.
func (in *Interpolant) Eval1(x float64) float64 {
	lo, w := bracket(in.grid.Axis(0), x)
	if w == 0 {
		return in.values[lo]
	}
	if w == 1 {
		return in.values[lo+1]
	}
	return (1-w)*in.values[lo] + w*in.values[lo+1]
}
