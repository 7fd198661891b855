// Package sampler draws discrete outcomes from categorical distributions.
//
// 🚀 What does it provide?
//
//   - Sample / CDF: inverse-CDF sampling from an arbitrary non-negative weight
//     row. Weights need not be normalized; they must have a positive finite sum.
//   - Draw: the uniform draw used by every sampling call, taken at a fixed
//     granularity of 1/Resolution (four decimal digits) over (0,1].
//   - NewRand / DeriveSeed / Derive: deterministic RNG construction and
//     independent sub-streams for parallel generation.
//
// Precision contract:
//
//	r ∈ {0.0001, 0.0002, …, 1.0000}
//
// so the smallest probability mass a single draw can distinguish is 1/10000.
// Outcomes with mass below that may still be selected, but only through the
// granularity of r, never through finer resolution.
//
// Determinism:
//
//	A Source is threaded explicitly through every call. There is no package
//	state; the same seed always yields the same sequence of indices.
package sampler
