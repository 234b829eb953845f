// Package stepper drives the backward-time iteration: starting from the
// payoff at expiry, it repeatedly assembles a linear system through a time
// scheme, solves it, and applies any scheduled events, until it reaches the
// initial time.
//
// Events model instantaneous transformations of the solution surface, such
// as early-exercise checks. An event scheduled inside (or at the boundary
// of) a step fires immediately after that step's solve, in registration
// order when several coincide. After events fire the scheme history is
// cleared, because multi-step formulas must not extrapolate across the kink
// an event introduces.
//
// The sweep is strictly sequential: each step's system depends on the
// previous iterate, so there is nothing to parallelize at this level. A
// non-converging solve aborts the run; a stale iterate would silently
// corrupt every later step.
package stepper
