// SPDX-License-Identifier: MIT
// Package: hmmgen/sampler
//
// errors.go: sentinel errors for the sampler package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (operation, offending index).

package sampler

import "errors"

// ErrInvalidDistribution indicates a weight vector that cannot be normalized:
// empty, containing a negative/NaN/Inf entry, or summing to zero.
// Usage: if errors.Is(err, ErrInvalidDistribution) { /* fix the row */ }.
var ErrInvalidDistribution = errors.New("sampler: invalid distribution")

// ErrNilSource indicates that a sampling call received a nil Source.
var ErrNilSource = errors.New("sampler: source is required")
