package pde

import (
	"math"
	"testing"

	"github.com/san-kum/pdegrid/internal/linalg"
	"github.com/san-kum/pdegrid/internal/mesh"
)

func testGrid(t *testing.T) *mesh.Grid {
	t.Helper()
	g, err := mesh.NewGrid(mesh.MustAxis(0, 25, 50, 80, 100, 120, 150, 200, 400))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func applyOperator(m *linalg.Sparse, x []float64) []float64 {
	dst := make([]float64, m.Dim())
	m.MulVec(dst, x)
	return dst
}

func TestBlackScholesDimensions(t *testing.T) {
	g := testGrid(t)
	bs := NewBlackScholes(g, 0.04, 0.2, 0)
	m, rhs := bs.Discretize(0)
	if m.Dim() != g.NodeCount() {
		t.Errorf("matrix dim = %d, want %d", m.Dim(), g.NodeCount())
	}
	if len(rhs) != g.NodeCount() {
		t.Errorf("rhs len = %d, want %d", len(rhs), g.NodeCount())
	}
}

func TestBlackScholesAnnihilatesForward(t *testing.T) {
	// With q = 0, V = S solves the PDE exactly (it is the forward), so the
	// discrete generator must annihilate the identity function at every
	// node, boundaries included.
	g := testGrid(t)
	bs := NewBlackScholes(g, 0.04, 0.2, 0)
	m, _ := bs.Discretize(0.5)

	spots := g.Axis(0).Ticks()
	out := applyOperator(m, spots)
	for i, v := range out {
		if math.Abs(v) > 1e-10*math.Max(1, spots[i]) {
			t.Errorf("(L S)[%d] = %g, want 0", i, v)
		}
	}
}

func TestBlackScholesDiscountsConstants(t *testing.T) {
	g := testGrid(t)
	r := 0.07
	bs := NewBlackScholes(g, r, 0.3, 0.01)
	m, _ := bs.Discretize(0)

	ones := make([]float64, g.NodeCount())
	for i := range ones {
		ones[i] = 1
	}
	out := applyOperator(m, ones)
	for i, v := range out {
		if math.Abs(v+r) > 1e-12 {
			t.Errorf("(L 1)[%d] = %g, want %g", i, v, -r)
		}
	}
}

func TestBlackScholesPositiveCoefficients(t *testing.T) {
	// Off-diagonals of the generator must be nonnegative at interior nodes
	// regardless of how convection-dominated the model is.
	g := testGrid(t)
	bs := NewBlackScholes(g, 0.5, 0.01, 0)
	m, _ := bs.Discretize(0)

	n := g.NodeCount()
	for i := 1; i < n-1; i++ {
		if lo := m.At(i, i-1); lo < 0 {
			t.Errorf("row %d lower coefficient %g < 0", i, lo)
		}
		if up := m.At(i, i+1); up < 0 {
			t.Errorf("row %d upper coefficient %g < 0", i, up)
		}
	}
}

func TestBlackScholesTimeDependentRate(t *testing.T) {
	g := testGrid(t)
	rate := func(t float64) float64 { return 0.02 + 0.01*t }
	bs := NewBlackScholesTimeDep(g, rate, Constant(0.2), Constant(0))

	for _, tm := range []float64{0, 0.5, 1} {
		m, _ := bs.Discretize(tm)
		// The S=0 row is pure discounting, so it exposes the rate.
		if got := m.At(0, 0); math.Abs(got+rate(tm)) > 1e-15 {
			t.Errorf("t=%g: discount coefficient %g, want %g", tm, got, -rate(tm))
		}
	}
}

func TestPayoffs(t *testing.T) {
	put := Put(100)
	call := Call(100)
	cases := []struct{ s, wantPut, wantCall float64 }{
		{0, 100, 0}, {80, 20, 0}, {100, 0, 0}, {130, 0, 30},
	}
	for _, c := range cases {
		if got := put(c.s); got != c.wantPut {
			t.Errorf("put(%g) = %g, want %g", c.s, got, c.wantPut)
		}
		if got := call(c.s); got != c.wantCall {
			t.Errorf("call(%g) = %g, want %g", c.s, got, c.wantCall)
		}
	}
}

func TestSampleInitial(t *testing.T) {
	g := testGrid(t)
	vals := SampleInitial(g, Put(100))
	if len(vals) != g.NodeCount() {
		t.Fatalf("len = %d, want %d", len(vals), g.NodeCount())
	}
	if vals[0] != 100 {
		t.Errorf("payoff at S=0 should be 100, got %g", vals[0])
	}
}
