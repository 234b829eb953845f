package pricer

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/pdegrid/internal/linalg"
	"github.com/san-kum/pdegrid/internal/mesh"
	"github.com/san-kum/pdegrid/internal/pde"
	"github.com/san-kum/pdegrid/internal/scheme"
	"github.com/san-kum/pdegrid/internal/stepper"
)

// Scenario collects the parameters of one pricing run. Exercises is the
// number of premature exercise opportunities spread evenly over [0, T);
// zero makes the option European.
type Scenario struct {
	Strike     float64 `yaml:"strike"`
	Expiry     float64 `yaml:"expiry"`
	Rate       float64 `yaml:"rate"`
	Volatility float64 `yaml:"volatility"`
	Dividend   float64 `yaml:"dividend"`

	Steps     int `yaml:"steps"`
	Exercises int `yaml:"exercises"`
	Refine    int `yaml:"refine"`

	Scheme    string  `yaml:"scheme"`
	Tolerance float64 `yaml:"tolerance"`
}

// Validate rejects scenarios the engine cannot run. These are the same
// constraints the CLI enforces at its boundary.
func (sc Scenario) Validate() error {
	if sc.Expiry <= 0 {
		return fmt.Errorf("pricer: expiry must be positive, got %g", sc.Expiry)
	}
	if sc.Steps <= 0 {
		return fmt.Errorf("pricer: step count must be positive, got %d", sc.Steps)
	}
	if sc.Exercises < 0 {
		return fmt.Errorf("pricer: exercise count must be nonnegative, got %d", sc.Exercises)
	}
	if sc.Refine < 0 {
		return fmt.Errorf("pricer: refinement level must be nonnegative, got %d", sc.Refine)
	}
	return nil
}

// DefaultAxis is the reference spot axis: dense around the strike region,
// sparse toward the far field, covering [0, 10000].
func DefaultAxis() mesh.Axis {
	return mesh.MustAxis(
		0, 10, 20, 30, 40, 50, 60, 70,
		75, 80,
		84, 88, 92,
		94, 96, 98, 100, 102, 104, 106, 108, 110,
		114, 118,
		123,
		130, 140, 150,
		175,
		225,
		300,
		750,
		2000,
		10000,
	)
}

// Run is a completed pricing run: the grid, the value surface at the start
// time, and the stepper's bookkeeping.
type Run struct {
	Grid   *mesh.Grid
	Values []float64
	Result *stepper.Result
}

// At evaluates the value surface at an arbitrary spot by interpolation.
func (r *Run) At(spot float64) float64 {
	v, err := mesh.NewInterpolant(r.Grid, r.Values)
	if err != nil {
		panic(err)
	}
	return v.Eval1(spot)
}

// NewScheme maps a registry name to a time scheme. Known names are
// "implicit" and "bdf2".
func NewScheme(name string) (scheme.Scheme, error) {
	switch name {
	case "", "bdf2":
		return scheme.NewBDF2(), nil
	case "implicit":
		return scheme.NewImplicitEuler(), nil
	default:
		return nil, fmt.Errorf("pricer: unknown scheme %q (known: implicit, bdf2)", name)
	}
}

// Price runs a Bermudan put scenario: grid from the default axis refined
// sc.Refine times, payoff-seeded backward sweep with an early-exercise event
// at each of the sc.Exercises evenly spaced times T*m/e for m < e.
func Price(ctx context.Context, sc Scenario) (*Run, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	axis := DefaultAxis()
	for i := 0; i < sc.Refine; i++ {
		axis = axis.Refine()
	}
	grid, err := mesh.NewGrid(axis)
	if err != nil {
		return nil, err
	}

	sch, err := NewScheme(sc.Scheme)
	if err != nil {
		return nil, err
	}

	solver := linalg.NewBiCGStab()
	if sc.Tolerance > 0 {
		solver.Tolerance = sc.Tolerance
	}

	op := pde.NewBlackScholes(grid, sc.Rate, sc.Volatility, sc.Dividend)
	payoff := pde.Put(sc.Strike)

	rev := stepper.New(grid, sch, solver, stepper.ConstantStep(sc.Expiry, sc.Steps))

	k := sc.Strike
	for m := 0; m < sc.Exercises; m++ {
		rev.Add(sc.Expiry*float64(m)/float64(sc.Exercises),
			func(v *mesh.Interpolant, coord []float64) float64 {
				return math.Max(v.Eval1(coord[0]), k-coord[0])
			})
	}

	res, err := rev.Solve(ctx, op, 0, sc.Expiry, payoff)
	if err != nil {
		return nil, err
	}

	return &Run{Grid: grid, Values: res.Values, Result: res}, nil
}
