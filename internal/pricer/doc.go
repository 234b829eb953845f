// Package pricer wires the engine components into option-pricing runs: a
// scenario's parameters become a grid, a payoff, a generator, a time scheme
// and a reverse stepper with early-exercise events, and the result comes
// back as a queryable value surface.
package pricer
