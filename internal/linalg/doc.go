// Package linalg provides the sparse-matrix and iterative-solver layer used
// by the time-stepping engine.
//
// [Sparse] is a compressed-row matrix assembled one stencil row at a time.
// [BiCGStab] solves A x = b for general (non-symmetric) A to a relative
// residual tolerance; the discretized convection-diffusion operators the
// engine produces are non-symmetric, which rules out plain conjugate
// gradients.
//
// Vector kernels (dot products, norms, axpy updates) delegate to
// gonum.org/v1/gonum/floats.
package linalg
