// SPDX-License-Identifier: MIT
// Package: hmmgen/markov
//
// errors.go: sentinel errors for the markov package.
//
// Callers MUST use errors.Is; row-level distribution failures surface as
// sampler.ErrInvalidDistribution, wrapped with the row index.

package markov

import "errors"

var (
	// ErrDimensionMismatch indicates a non-square transition matrix, a ragged
	// or empty row literal, or a matrix whose dimension differs from the
	// alphabet length.
	ErrDimensionMismatch = errors.New("markov: dimension mismatch")

	// ErrInvalidAlphabet indicates an empty alphabet, an empty symbol, or a
	// duplicated symbol.
	ErrInvalidAlphabet = errors.New("markov: invalid alphabet")

	// ErrOutOfRange indicates a state index outside [0, dim).
	ErrOutOfRange = errors.New("markov: state index out of range")

	// ErrInvalidLength indicates a negative walk length.
	ErrInvalidLength = errors.New("markov: invalid walk length")
)
