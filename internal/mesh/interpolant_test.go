package mesh

import (
	"errors"
	"math"
	"testing"
)

func TestInterpolantSizeCheck(t *testing.T) {
	g, _ := NewGrid(MustAxis(0, 1, 2))
	if _, err := NewInterpolant(g, []float64{1, 2}); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %v", err)
	}
}

func TestInterpolantExactAtNodes(t *testing.T) {
	g, _ := NewGrid(MustAxis(0, 0.1, 0.7, 1.3, 10))
	vals := []float64{3.25, -1.5, 0, 2.875, 1e-9}
	in, err := NewInterpolant(g, vals)
	if err != nil {
		t.Fatal(err)
	}
	for i, v := range vals {
		if got := in.Eval(g.Axis(0).At(i)); got != v {
			t.Errorf("node %d: got %g, want %g exactly", i, got, v)
		}
	}
}

func TestInterpolantLinear1D(t *testing.T) {
	g, _ := NewGrid(MustAxis(0, 2, 5))
	in, _ := NewInterpolant(g, []float64{0, 4, 10})
	// Values are 2*x; interpolation must reproduce the line.
	for _, x := range []float64{0.5, 1, 1.5, 3, 4.999} {
		if got := in.Eval(x); math.Abs(got-2*x) > 1e-12 {
			t.Errorf("Eval(%g) = %g, want %g", x, got, 2*x)
		}
	}
}

func TestInterpolantNoOvershoot(t *testing.T) {
	g, _ := NewGrid(MustAxis(0, 1, 2))
	in, _ := NewInterpolant(g, []float64{1, 5, 2})
	for x := 0.0; x <= 2.0; x += 0.01 {
		v := in.Eval(x)
		if v < 1-1e-12 || v > 5+1e-12 {
			t.Fatalf("Eval(%g) = %g outside node value range [1, 5]", x, v)
		}
	}
	// Between adjacent nodes the values stay bracketed by those two nodes.
	for x := 1.0; x <= 2.0; x += 0.01 {
		v := in.Eval(x)
		if v < 2-1e-12 || v > 5+1e-12 {
			t.Fatalf("Eval(%g) = %g outside cell range [2, 5]", x, v)
		}
	}
}

func TestInterpolantClampsOutsideDomain(t *testing.T) {
	g, _ := NewGrid(MustAxis(10, 20, 30))
	in, _ := NewInterpolant(g, []float64{7, 8, 9})
	if got := in.Eval(-100); got != 7 {
		t.Errorf("below domain: got %g, want boundary value 7", got)
	}
	if got := in.Eval(1e6); got != 9 {
		t.Errorf("above domain: got %g, want boundary value 9", got)
	}
}

func TestInterpolantMultilinear2D(t *testing.T) {
	g, _ := NewGrid(MustAxis(0, 1), MustAxis(0, 2))
	// f(x, y) = 3x + y, sampled row-major (y fastest).
	vals := []float64{0, 2, 3, 5}
	in, _ := NewInterpolant(g, vals)
	cases := [][3]float64{
		{0, 0, 0}, {1, 2, 5}, {0.5, 1, 2.5}, {0.25, 0.5, 1.25},
	}
	for _, c := range cases {
		if got := in.Eval(c[0], c[1]); math.Abs(got-c[2]) > 1e-12 {
			t.Errorf("Eval(%g, %g) = %g, want %g", c[0], c[1], got, c[2])
		}
	}
}

func TestInterpolantSingleNodeAxis(t *testing.T) {
	g, _ := NewGrid(MustAxis(5))
	in, _ := NewInterpolant(g, []float64{42})
	if got := in.Eval(123); got != 42 {
		t.Errorf("single-node axis should clamp everywhere, got %g", got)
	}
}
