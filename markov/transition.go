// SPDX-License-Identifier: MIT
// Package: hmmgen/markov
//
// transition.go: validated, immutable transition matrices.
//
// Contract:
//   - Square, at least 1×1 (else ErrDimensionMismatch).
//   - Every entry finite and ≥ 0; every row sum > 0
//     (else sampler.ErrInvalidDistribution naming the row).
//   - Rows are stored as given; per-row CDFs are precomputed once.
//
// Validation order: shape → numeric policy → per-row distribution.

package markov

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/hmmgen/matrix"
	"github.com/katalvlaran/hmmgen/sampler"
)

const opNewTransitionMatrix = "NewTransitionMatrix"

// TransitionMatrix holds the row weights of a chain and their cumulative
// distributions. It is safe for concurrent use once constructed.
type TransitionMatrix struct {
	weights *matrix.Dense
	cdfs    []*sampler.CDF
}

// NewTransitionMatrix validates rows and builds a TransitionMatrix.
//
// Errors:
//   - ErrDimensionMismatch for empty, ragged or non-square input.
//   - sampler.ErrInvalidDistribution for NaN/Inf/negative entries or a zero-sum row.
//
// Complexity: O(n²).
func NewTransitionMatrix(rows [][]float64) (*TransitionMatrix, error) {
	dense, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", opNewTransitionMatrix, ErrDimensionMismatch, err)
	}

	if err = matrix.ValidateWeights(dense); err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) {
			return nil, fmt.Errorf("%s: %d×%d: %w: %w",
				opNewTransitionMatrix, dense.Rows(), dense.Cols(), ErrDimensionMismatch, err)
		}
		// NaN/Inf and negative entries make the row an invalid distribution.
		return nil, fmt.Errorf("%s: %w: %w", opNewTransitionMatrix, sampler.ErrInvalidDistribution, err)
	}

	tm := &TransitionMatrix{weights: dense, cdfs: make([]*sampler.CDF, dense.Rows())}
	var (
		i   int
		row []float64
	)
	for i = 0; i < dense.Rows(); i++ {
		row, _ = dense.Row(i) // i is in range
		if tm.cdfs[i], err = sampler.NewCDF(row); err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", opNewTransitionMatrix, i, err)
		}
	}

	return tm, nil
}

// MustTransitionMatrix is like NewTransitionMatrix but panics on error.
// Intended for fixtures and tests.
func MustTransitionMatrix(rows [][]float64) *TransitionMatrix {
	tm, err := NewTransitionMatrix(rows)
	if err != nil {
		panic(err)
	}
	return tm
}

// Dim returns the number of states.
func (t *TransitionMatrix) Dim() int { return t.weights.Rows() }

// Row returns a copy of the raw weights of row i.
func (t *TransitionMatrix) Row(i int) ([]float64, error) {
	if i < 0 || i >= t.Dim() {
		return nil, fmt.Errorf("TransitionMatrix.Row(%d): %w", i, ErrOutOfRange)
	}
	return t.weights.Row(i)
}

// Rows returns a deep copy of the raw weights.
func (t *TransitionMatrix) Rows() [][]float64 { return t.weights.RawRows() }

// Prob returns the normalized probability of moving from i to j.
func (t *TransitionMatrix) Prob(i, j int) float64 {
	if i < 0 || i >= t.Dim() {
		return 0
	}
	return t.cdfs[i].Prob(j)
}

// Normalized returns the row-stochastic form of the weights.
func (t *TransitionMatrix) Normalized() *matrix.Dense {
	// rows are validated non-degenerate, so the error path is unreachable
	n, _, _ := matrix.NormalizeRowsL1(t.weights)
	return n
}

// Next samples the successor of state `from`.
//
// Errors: ErrOutOfRange, sampler.ErrNilSource.
// Complexity: O(Dim()).
func (t *TransitionMatrix) Next(src sampler.Source, from int) (int, error) {
	if from < 0 || from >= t.Dim() {
		return 0, fmt.Errorf("TransitionMatrix.Next(%d): %w", from, ErrOutOfRange)
	}
	return t.cdfs[from].Sample(src)
}
