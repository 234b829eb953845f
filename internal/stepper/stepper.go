package stepper

import (
	"context"
	"math"

	"github.com/san-kum/pdegrid/internal/linalg"
	"github.com/san-kum/pdegrid/internal/mesh"
	"github.com/san-kum/pdegrid/internal/pde"
	"github.com/san-kum/pdegrid/internal/scheme"
)

// timeEps absorbs the rounding drift of accumulated step subtractions when
// matching event times against step windows.
const timeEps = 1e-10

// Observer is notified after every completed step (solve plus events).
type Observer interface {
	OnStep(t float64, values []float64)
}

// Result is the outcome of a backward sweep.
type Result struct {
	// Values is the solution surface at the start time, one value per
	// grid node.
	Values []float64

	Steps         int
	EventsApplied int

	// Metrics accumulates solver effort over the run.
	Metrics map[string]float64
}

// Reverse runs the backward-time loop on a fixed grid. Construct with New,
// register events with Add, then call Solve once. A Reverse value is not
// safe for concurrent use; independent runs need independent steppers.
type Reverse struct {
	grid      *mesh.Grid
	sch       scheme.Scheme
	solver    *linalg.BiCGStab
	factory   StepFactory
	events    []Event
	observers []Observer
}

// New builds a stepper from its collaborators. The factory decides step
// sizes; use ConstantStep for the classical T/N sweep.
func New(g *mesh.Grid, sch scheme.Scheme, solver *linalg.BiCGStab, factory StepFactory) *Reverse {
	return &Reverse{grid: g, sch: sch, solver: solver, factory: factory}
}

// Add registers an event at the given time, interpolating on the stepper's
// grid. Registration order breaks ties between coincident events.
func (s *Reverse) Add(t float64, tr Transform) {
	s.events = append(s.events, Event{Time: t, Transform: tr, Grid: s.grid, seq: len(s.events)})
}

// AddObserver registers a per-step observer.
func (s *Reverse) AddObserver(o Observer) { s.observers = append(s.observers, o) }

// Solve runs the sweep from expiry down to start. The iterate is seeded with
// the payoff sampled at the grid nodes; the returned Result holds the
// iterate at the start time. Solver non-convergence aborts the run with a
// StepError wrapping the cause.
func (s *Reverse) Solve(ctx context.Context, op pde.Operator, start, expiry float64, payoff pde.Payoff) (*Result, error) {
	if expiry <= start {
		return nil, ErrBadInterval
	}

	values := pde.SampleInitial(s.grid, payoff)
	hist := scheme.NewHistory(2)

	events := make([]Event, len(s.events))
	copy(events, s.events)
	sortEvents(events)

	result := &Result{Metrics: make(map[string]float64)}

	// Events scheduled at expiry fire on the seeded payoff before any
	// step is taken.
	next, fired := applyEvents(events, 0, expiry, math.Inf(1), &values)
	result.EventsApplied += fired
	hist.Push(expiry, values)

	t := expiry
	for step := 0; t > start+timeEps; step++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		dt := s.factory(step, t)
		if dt <= 0 {
			return nil, &StepError{Step: step, Time: t, Err: ErrBadStepCount}
		}
		tNew := t - dt
		if tNew < start+timeEps {
			tNew = start
		}

		a, b, err := s.sch.Assemble(op, hist, tNew)
		if err != nil {
			return nil, &StepError{Step: step, Time: tNew, Err: err}
		}

		x, stats, err := s.solver.Solve(a, b, values)
		if err != nil {
			return nil, &StepError{Step: step, Time: tNew, Err: err}
		}
		values = x

		result.Metrics["solver_iterations"] += float64(stats.Iterations)
		result.Metrics["max_residual"] = math.Max(result.Metrics["max_residual"], stats.Residual)

		// Events inside (or at the lower boundary of) the completed
		// step fire now, after the solve.
		next, fired = applyEvents(events, next, tNew, t, &values)
		result.EventsApplied += fired
		if fired > 0 {
			hist.Reset()
		}

		hist.Push(tNew, values)
		for _, o := range s.observers {
			o.OnStep(tNew, values)
		}

		t = tNew
		result.Steps++
	}

	result.Values = values
	return result, nil
}

// applyEvents fires the events with times in [tNew, tOld) starting at the
// cursor, replacing *values node by node through an interpolant of each
// event's pre-event iterate. It returns the advanced cursor and the number
// of events fired.
func applyEvents(events []Event, next int, tNew, tOld float64, values *[]float64) (int, int) {
	fired := 0
	for next < len(events) && events[next].Time >= tNew-timeEps && events[next].Time < tOld-timeEps {
		ev := events[next]
		v, err := mesh.NewInterpolant(ev.Grid, *values)
		if err != nil {
			// The iterate is always sized to the grid; reaching this
			// means a programming error upstream.
			panic(err)
		}
		out := make([]float64, len(*values))
		coord := make([]float64, ev.Grid.Dim())
		for i := range out {
			ev.Grid.CoordInto(i, coord)
			out[i] = ev.Transform(v, coord)
		}
		*values = out
		next++
		fired++
	}
	return next, fired
}
