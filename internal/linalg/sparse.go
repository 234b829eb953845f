package linalg

// Sparse is a square matrix in compressed-row form, assembled one row at a
// time. Finite-difference stencils touch a bounded neighborhood per node, so
// rows are short and assembly in node order is the natural fit.
type Sparse struct {
	n      int
	rowPtr []int
	cols   []int
	vals   []float64
}

// NewSparse returns an empty n-by-n matrix ready for row appends.
func NewSparse(n int) *Sparse {
	return &Sparse{
		n:      n,
		rowPtr: append(make([]int, 0, n+1), 0),
		cols:   make([]int, 0, 3*n),
		vals:   make([]float64, 0, 3*n),
	}
}

// Dim returns the matrix dimension.
func (m *Sparse) Dim() int { return m.n }

// AppendRow appends the next row. Columns must be strictly increasing within
// the row; rows must be appended for every node in order, AppendRow exactly n
// times. Zero entries may be included (they keep the diagonal addressable).
func (m *Sparse) AppendRow(cols []int, vals []float64) {
	m.cols = append(m.cols, cols...)
	m.vals = append(m.vals, vals...)
	m.rowPtr = append(m.rowPtr, len(m.cols))
}

// Row returns the column indices and values of row i. The returned slices
// alias internal storage and must not be mutated.
func (m *Sparse) Row(i int) ([]int, []float64) {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	return m.cols[lo:hi], m.vals[lo:hi]
}

// At returns the entry at (i, j), zero when absent from the stencil.
func (m *Sparse) At(i, j int) float64 {
	cols, vals := m.Row(i)
	for k, c := range cols {
		if c == j {
			return vals[k]
		}
	}
	return 0
}

// MulVec computes dst = M x. dst and x must have length Dim and must not
// alias.
func (m *Sparse) MulVec(dst, x []float64) {
	for i := 0; i < m.n; i++ {
		lo, hi := m.rowPtr[i], m.rowPtr[i+1]
		var sum float64
		for k := lo; k < hi; k++ {
			sum += m.vals[k] * x[m.cols[k]]
		}
		dst[i] = sum
	}
}

// ScaleAddIdentity returns the new matrix s*M + d*I, inserting diagonal
// entries that M lacks. The time schemes use it to turn a spatial generator L
// into a step matrix like aI - L without reassembling the stencil.
func (m *Sparse) ScaleAddIdentity(s, d float64) *Sparse {
	out := NewSparse(m.n)
	rowCols := make([]int, 0, 8)
	rowVals := make([]float64, 0, 8)
	for i := 0; i < m.n; i++ {
		cols, vals := m.Row(i)
		rowCols = rowCols[:0]
		rowVals = rowVals[:0]
		seenDiag := false
		for k, c := range cols {
			v := s * vals[k]
			if c == i {
				v += d
				seenDiag = true
			} else if c > i && !seenDiag {
				rowCols = append(rowCols, i)
				rowVals = append(rowVals, d)
				seenDiag = true
			}
			rowCols = append(rowCols, c)
			rowVals = append(rowVals, v)
		}
		if !seenDiag {
			rowCols = append(rowCols, i)
			rowVals = append(rowVals, d)
		}
		out.AppendRow(rowCols, rowVals)
	}
	return out
}
