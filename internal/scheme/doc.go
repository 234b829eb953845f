// Package scheme provides implicit time discretizations for the backward
// sweep.
//
// A [Scheme] turns a spatial operator plus the recent iterate history into
// the linear system A x = b for one time step. Two schemes are provided:
//
//   - [ImplicitEuler]: one-step, first order, unconditionally usable
//   - [BDF2]: two-step, second order, with coefficients valid for
//     non-uniform consecutive step sizes
//
// BDF2 deterministically falls back to the implicit-Euler formula whenever
// the history holds fewer than two iterates. That covers the first step of a
// run and the first step after every history reset (the stepper resets
// history when an event transforms the surface).
package scheme
