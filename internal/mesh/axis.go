package mesh

import (
	"strconv"
	"strings"
)

// Axis is a strictly increasing sequence of ticks partitioning an interval.
// The zero value is not usable; construct with NewAxis, MustAxis,
// AxisFromSlice or UniformAxis.
type Axis struct {
	ticks []float64
}

// NewAxis builds an axis from the given ticks. It fails with ErrEmptyAxis on
// zero ticks and ErrNotIncreasing if the ticks are not strictly increasing.
func NewAxis(ticks ...float64) (Axis, error) {
	if len(ticks) == 0 {
		return Axis{}, ErrEmptyAxis
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i-1] >= ticks[i] {
			return Axis{}, ErrNotIncreasing
		}
	}
	c := make([]float64, len(ticks))
	copy(c, ticks)
	return Axis{ticks: c}, nil
}

// MustAxis is NewAxis for literal tick lists; it panics on invalid input.
func MustAxis(ticks ...float64) Axis {
	a, err := NewAxis(ticks...)
	if err != nil {
		panic(err)
	}
	return a
}

// AxisFromSlice copies ticks without checking monotonicity. The caller is
// responsible for supplying strictly increasing values; stencil assembly and
// interpolation are undefined otherwise.
func AxisFromSlice(ticks []float64) Axis {
	c := make([]float64, len(ticks))
	copy(c, ticks)
	return Axis{ticks: c}
}

// UniformAxis builds an axis covering [lo, hi] with the given step. The last
// tick is hi whenever (hi-lo) is a whole number of steps.
func UniformAxis(lo, step, hi float64) Axis {
	n := int((hi-lo)/step) + 1
	if n < 1 {
		n = 1
	}
	ticks := make([]float64, n)
	for i := range ticks {
		ticks[i] = lo + float64(i)*step
	}
	return Axis{ticks: ticks}
}

// Len returns the number of ticks.
func (a Axis) Len() int { return len(a.ticks) }

// At returns the i-th tick. Bounds are the caller's responsibility.
func (a Axis) At(i int) float64 { return a.ticks[i] }

// Ticks returns a copy of the tick values.
func (a Axis) Ticks() []float64 {
	c := make([]float64, len(a.ticks))
	copy(c, a.ticks)
	return c
}

// ticksRef exposes the backing slice to sibling types that only read it.
func (a Axis) ticksRef() []float64 { return a.ticks }

// Refine returns a new axis of 2n-1 ticks: the original ticks at even
// positions, unchanged, and the midpoint of each adjacent pair at odd
// positions.
func (a Axis) Refine() Axis {
	n := len(a.ticks)
	refined := make([]float64, 2*n-1)
	refined[0] = a.ticks[0]
	for i := 1; i < n; i++ {
		refined[2*i-1] = (a.ticks[i-1] + a.ticks[i]) / 2
		refined[2*i] = a.ticks[i]
	}
	return Axis{ticks: refined}
}

// String renders the axis as a parenthesized space-separated tick list.
func (a Axis) String() string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range a.ticks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
	}
	b.WriteByte(')')
	return b.String()
}
