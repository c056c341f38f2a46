// Package pivot provides the pivot selection policies used by the sorting
// drivers.
//
// Two policies are available:
// - NewRandom/NewRandomSeeded: uniform draw over the range, one generator
//   per picker
// - Midpoint: the positional middle of the range, stateless
//
// Every picker knows how to Fork itself for a spawned worker, so concurrent
// sorts never share a mutable random source.
package pivot
