// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Turn non-negative weight matrices into row-stochastic ones.
//   - Expose per-row L1 norms so callers can detect degenerate (zero-sum) rows.
//
// Exposed API:
//   - RowSums(X)         -> sums            // Σ_j X[i,j] per row
//   - NormalizeRowsL1(X) -> (Y, norms)      // L1 row normalization (degenerate rows unchanged)
//
// Determinism & Performance:
//   - Fixed i→j traversal; summation is delegated to gonum/floats so every
//     caller (sampler, markov, CLI report) sees bit-identical sums.

package matrix

import (
	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opRowSums         = "RowSums"
	opNormalizeRowsL1 = "NormalizeRowsL1"
)

// RowSums returns Σ_j X[i,j] for every row i.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time, O(r) space.
func RowSums(X *Dense) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums := make([]float64, X.r)
	var i int
	for i = 0; i < X.r; i++ {
		sums[i] = floats.Sum(X.data[i*X.c : (i+1)*X.c])
	}

	return sums, nil
}

// NormalizeRowsL1 returns a copy of X whose rows are scaled to sum to one,
// along with the original L1 norms.
//
// Behavior highlights:
//   - Rows with a zero norm are copied unchanged; their norm is reported as 0
//     so callers decide whether that is an error (transition models treat it
//     as an invalid distribution).
//   - Inputs are expected non-negative; norms are plain sums, not |x| sums.
//
// Errors: ErrNilMatrix.
// Complexity: O(r*c) time and memory.
func NormalizeRowsL1(X *Dense) (*Dense, []float64, error) {
	norms, err := RowSums(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}

	out := X.Clone().(*Dense) // Clone on *Dense always yields *Dense
	var i int
	for i = 0; i < out.r; i++ {
		if norms[i] == 0 {
			continue // degenerate row stays as-is
		}
		floats.Scale(1/norms[i], out.data[i*out.c:(i+1)*out.c])
	}

	return out, norms, nil
}
