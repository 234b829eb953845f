// Package analysis provides closed-form references and convergence studies
// for the finite-difference engine. The Black-Scholes formulas here are the
// ground truth the European degenerate case is validated against; the
// convergence study reprices a scenario across refinement levels and reports
// how the error decays.
package analysis
