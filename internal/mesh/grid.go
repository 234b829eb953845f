package mesh

// Grid is the tensor product of one or more axes. Nodes are enumerated in
// row-major order: the LAST axis varies fastest. The enumeration is a pure
// function of the axis ticks and never changes for a constructed grid.
type Grid struct {
	axes  []Axis
	count int
}

// NewGrid builds a grid from one axis per spatial dimension.
func NewGrid(axes ...Axis) (*Grid, error) {
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	count := 1
	for _, a := range axes {
		if a.Len() == 0 {
			return nil, ErrEmptyAxis
		}
		count *= a.Len()
	}
	own := make([]Axis, len(axes))
	copy(own, axes)
	return &Grid{axes: own, count: count}, nil
}

// Dim returns the number of spatial dimensions.
func (g *Grid) Dim() int { return len(g.axes) }

// NodeCount returns the total number of nodes, the product of axis lengths.
func (g *Grid) NodeCount() int { return g.count }

// Axis returns the axis along dimension d.
func (g *Grid) Axis(d int) Axis { return g.axes[d] }

// Spacing returns the distance between ticks i and i+1 along dimension d.
func (g *Grid) Spacing(d, i int) float64 {
	t := g.axes[d].ticksRef()
	return t[i+1] - t[i]
}

// Index encodes per-axis subscripts into a flat node index.
func (g *Grid) Index(sub ...int) int {
	idx := 0
	for d, s := range sub {
		idx = idx*g.axes[d].Len() + s
	}
	return idx
}

// Subscripts decodes a flat node index into per-axis subscripts.
func (g *Grid) Subscripts(idx int) []int {
	sub := make([]int, len(g.axes))
	for d := len(g.axes) - 1; d >= 0; d-- {
		n := g.axes[d].Len()
		sub[d] = idx % n
		idx /= n
	}
	return sub
}

// Coord returns the coordinate tuple of a node by flat index.
func (g *Grid) Coord(idx int) []float64 {
	dst := make([]float64, len(g.axes))
	g.CoordInto(idx, dst)
	return dst
}

// CoordInto writes the coordinate tuple of a node into dst, which must have
// length Dim. Useful in per-node loops to avoid allocation.
func (g *Grid) CoordInto(idx int, dst []float64) {
	for d := len(g.axes) - 1; d >= 0; d-- {
		n := g.axes[d].Len()
		dst[d] = g.axes[d].At(idx % n)
		idx /= n
	}
}

// Refine returns a new grid with every axis refined once.
func (g *Grid) Refine() *Grid {
	axes := make([]Axis, len(g.axes))
	for d, a := range g.axes {
		axes[d] = a.Refine()
	}
	refined, _ := NewGrid(axes...)
	return refined
}
