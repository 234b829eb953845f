// Package pde defines the differential-operator boundary of the engine and
// the Black-Scholes generator used by the pricing scenarios.
//
// An [Operator] discretizes the spatial part of a PDE on a grid at a given
// time, producing a sparse linear map plus any boundary contribution to the
// right-hand side. Time schemes consume operators without knowing which PDE
// they represent, mirroring how the simulation core elsewhere in this project
// treats dynamics behind an interface.
package pde
