package mesh

import "errors"

// Construction errors for meshes.
var (
	// ErrEmptyAxis indicates an axis with no ticks.
	ErrEmptyAxis = errors.New("mesh: axis must have at least one tick")

	// ErrNotIncreasing indicates ticks that are not strictly increasing.
	ErrNotIncreasing = errors.New("mesh: ticks must be strictly increasing")

	// ErrNoAxes indicates a grid constructed from zero axes.
	ErrNoAxes = errors.New("mesh: grid must have at least one axis")

	// ErrSizeMismatch indicates a value buffer whose length does not match
	// the grid's node count.
	ErrSizeMismatch = errors.New("mesh: value buffer length does not match node count")
)
