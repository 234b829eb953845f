package stepper

import (
	"sort"

	"github.com/san-kum/pdegrid/internal/mesh"
)

// Transform recomputes one node's value from an interpolant of the current
// iterate and the node's spatial coordinate. The early-exercise check for a
// put, for example, is
//
//	func(v *mesh.Interpolant, coord []float64) float64 {
//		return math.Max(v.Eval(coord...), k-coord[0])
//	}
type Transform func(v *mesh.Interpolant, coord []float64) float64

// Event is a scheduled instantaneous transformation of the solution surface.
// Events are registered before the run and are read-only during it.
type Event struct {
	Time      float64
	Transform Transform
	Grid      *mesh.Grid

	seq int
}

// sortEvents orders events for the backward sweep: descending time, with
// coincident events kept in registration order.
func sortEvents(events []Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].Time != events[j].Time {
			return events[i].Time > events[j].Time
		}
		return events[i].seq < events[j].seq
	})
}

// StepFactory yields the size of the next step given its index and the
// current time. Factories let the sweep use variable time discretization
// without the engine knowing the policy.
type StepFactory func(step int, t float64) float64

// ConstantStep divides the interval of length total into n equal steps.
func ConstantStep(total float64, n int) StepFactory {
	dt := total / float64(n)
	return func(int, float64) float64 { return dt }
}
