package analysis

import (
	"context"

	"github.com/san-kum/pdegrid/internal/pricer"
)

// Level is one row of a convergence study.
type Level struct {
	Refine int
	Nodes  int
	Price  float64
	Error  float64 // absolute error against the closed form at the spot
	Ratio  float64 // previous level's error over this one; 0 for the first
}

// Convergence prices the European version of a scenario (exercises forced to
// zero) at refinement levels 0..maxRefine and compares the value at the
// given spot against the closed-form put. Step count doubles per level so
// the time discretization does not dominate the spatial error.
func Convergence(ctx context.Context, sc pricer.Scenario, spot float64, maxRefine int) ([]Level, error) {
	sc.Exercises = 0

	exact := BlackScholesPut(spot, sc.Strike, sc.Expiry, sc.Rate, sc.Volatility, sc.Dividend)

	levels := make([]Level, 0, maxRefine+1)
	baseSteps := sc.Steps
	for r := 0; r <= maxRefine; r++ {
		sc.Refine = r
		sc.Steps = baseSteps << uint(r)

		run, err := pricer.Price(ctx, sc)
		if err != nil {
			return nil, err
		}

		price := run.At(spot)
		lvl := Level{
			Refine: r,
			Nodes:  run.Grid.NodeCount(),
			Price:  price,
			Error:  abs(price - exact),
		}
		if r > 0 && lvl.Error > 0 {
			lvl.Ratio = levels[r-1].Error / lvl.Error
		}
		levels = append(levels, lvl)
	}
	return levels, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
