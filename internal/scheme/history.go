package scheme

// History is a small ring of the most recent iterates and the times they
// live at. The stepper owns it and pushes after every accepted step; schemes
// only read it. Entry 0 is the most recent.
type History struct {
	times  []float64
	values [][]float64
	cap    int
}

// NewHistory returns a history retaining up to depth iterates.
func NewHistory(depth int) *History {
	return &History{cap: depth}
}

// Push records an iterate at time t. The values are copied; the caller may
// reuse its buffer.
func (h *History) Push(t float64, values []float64) {
	c := make([]float64, len(values))
	copy(c, values)
	h.times = append([]float64{t}, h.times...)
	h.values = append([][]float64{c}, h.values...)
	if len(h.times) > h.cap {
		h.times = h.times[:h.cap]
		h.values = h.values[:h.cap]
	}
}

// Depth returns the number of retained iterates.
func (h *History) Depth() int { return len(h.times) }

// At returns the k-th most recent iterate and its time (k = 0 is the latest).
// The returned slice must not be mutated.
func (h *History) At(k int) (float64, []float64) {
	return h.times[k], h.values[k]
}

// Reset drops all retained iterates. Called after events: the transformed
// surface is generally non-smooth across the event, so multi-step formulas
// must re-bootstrap.
func (h *History) Reset() {
	h.times = nil
	h.values = nil
}
