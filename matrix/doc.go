// Package matrix provides the dense numeric storage used by the transition
// models of hmmgen.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     copying Row accessor for sampling loops.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite,
//     ValidateNonNegative) that return unwrapped sentinels so call sites can
//     tag them uniformly.
//   - NormalizeRowsL1, which turns a non-negative weight matrix into a
//     row-stochastic one.
//
// Transition matrices are tiny (4×4 emission models, 2×2 hidden model), so the
// package favors clarity and strict validation over throughput.
//
// See the examples in this package and in markov for usage patterns.
package matrix
