// Package mesh provides the spatial discretization primitives for the
// finite-difference engine:
//
//   - [Axis]: strictly increasing 1-D partition of an interval
//   - [Grid]: tensor product of axes with a fixed node enumeration
//   - [Interpolant]: multilinear reconstruction of a function from node values
//
// # Refinement
//
// Axes and grids are immutable after construction. Refinement produces new
// values rather than mutating in place:
//
//	fine := grid.Refine() // a tick between each pair, on every axis
//
// Refining an axis of n ticks yields 2n-1 ticks with the originals preserved
// exactly, which is what convergence studies rely on.
//
// # Ownership
//
// An Axis owns its tick buffer and a Grid owns its axes. An Interpolant
// borrows both a grid and a value buffer; the caller must keep them alive
// for as long as the interpolant is used.
package mesh
