// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep transition-model constructors minimal by delegating shape/nil/numeric
//    checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Numeric scans run O(r*c) in fixed i→j order, so the first offending cell
//    reported is stable across runs.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Square → Finite → NonNegative).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed-nil *Dense).
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: assumes m is not nil (caller must ensure).
// Errors: ErrDimensionMismatch if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
//
// Errors: ErrNaNInf naming the first offending cell in i→j order.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j) // indices are in range by construction
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateFinite: cell (%d,%d): %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects entries below zero.
//
// Implementation: assumes finite values (run ValidateFinite first).
// Errors: ErrNegative naming the first offending cell in i→j order.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, _ = m.At(i, j)
			if v < 0 {
				return fmt.Errorf("ValidateNonNegative: cell (%d,%d)=%g: %w", i, j, v, ErrNegative)
			}
		}
	}

	return nil
}

// ValidateSquareNonNil is the composite NotNil → Square.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}

// ValidateWeights is the composite NotNil → Square → Finite → NonNegative used
// for every transition model before any sampling happens.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrNegative.
// Complexity: O(r*c).
func ValidateWeights(m Matrix) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return validatorErrorf("ValidateWeights", err)
	}
	if err := ValidateFinite(m); err != nil {
		return validatorErrorf("ValidateWeights", err)
	}
	if err := ValidateNonNegative(m); err != nil {
		return validatorErrorf("ValidateWeights", err)
	}

	return nil
}
