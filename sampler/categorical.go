// SPDX-License-Identifier: MIT
// Package: hmmgen/sampler
//
// categorical.go: inverse-CDF sampling over a non-negative weight row.
//
// Canonical model:
//   - Normalize w into a cumulative distribution cdf (cdf[k-1] == 1 exactly,
//     because every prefix sum is divided by the final prefix sum).
//   - Draw r ∈ (0,1] via Draw.
//   - Return the first index i with cdf[i] >= r.
//
// Contract:
//   - len(w) ≥ 1, every w[i] finite and ≥ 0, Σw > 0 (else ErrInvalidDistribution).
//   - Zero-weight indices are never returned: r > 0 and a zero weight makes
//     cdf[i] equal to its predecessor, so an earlier index always qualifies.
//   - One Intn call per sample; no allocations in CDF.Sample.
//
// Complexity:
//   - NewCDF: O(k) time, O(k) space.
//   - CDF.Sample: O(k) linear scan (k is 2 or 4 here; a binary search does
//     not pay for itself at that size).

package sampler

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// File-local operation tags.
const (
	opValidateWeights = "ValidateWeights"
	opNewCDF          = "NewCDF"
	opSample          = "Sample"
)

// CDF is a precomputed cumulative distribution over indices [0, Len()).
// It is immutable after construction and safe for concurrent reads.
type CDF struct {
	cum []float64 // non-decreasing, cum[len-1] == 1
}

// ValidateWeights checks that w is a usable categorical weight vector.
//
// Errors: ErrInvalidDistribution (wrapped with the first offending index).
// Complexity: O(k).
func ValidateWeights(w []float64) error {
	if len(w) == 0 {
		return fmt.Errorf("%s: empty weight vector: %w", opValidateWeights, ErrInvalidDistribution)
	}
	var i int
	for i = 0; i < len(w); i++ {
		if math.IsNaN(w[i]) || math.IsInf(w[i], 0) {
			return fmt.Errorf("%s: w[%d] is not finite: %w", opValidateWeights, i, ErrInvalidDistribution)
		}
		if w[i] < 0 {
			return fmt.Errorf("%s: w[%d]=%g is negative: %w", opValidateWeights, i, w[i], ErrInvalidDistribution)
		}
	}
	total := floats.Sum(w)
	if total <= 0 || math.IsInf(total, 0) {
		return fmt.Errorf("%s: sum=%g is not positive and finite: %w", opValidateWeights, total, ErrInvalidDistribution)
	}

	return nil
}

// NewCDF validates w and builds its cumulative distribution.
//
// Errors: ErrInvalidDistribution.
// Complexity: O(k).
func NewCDF(w []float64) (*CDF, error) {
	if err := ValidateWeights(w); err != nil {
		return nil, fmt.Errorf("%s: %w", opNewCDF, err)
	}

	cum := make([]float64, len(w))
	floats.CumSum(cum, w)
	total := cum[len(cum)-1]
	var i int
	for i = range cum {
		cum[i] /= total // dividing by the last prefix pins cum[k-1] to 1
	}

	return &CDF{cum: cum}, nil
}

// Len returns the number of outcomes.
func (c *CDF) Len() int { return len(c.cum) }

// Prob returns the normalized probability mass of outcome i (0 when out of range).
func (c *CDF) Prob(i int) float64 {
	if i < 0 || i >= len(c.cum) {
		return 0
	}
	if i == 0 {
		return c.cum[0]
	}

	return c.cum[i] - c.cum[i-1]
}

// Sample draws one outcome index using src.
//
// Errors: ErrNilSource when src is nil.
// Complexity: O(k).
func (c *CDF) Sample(src Source) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("%s: %w", opSample, ErrNilSource)
	}

	return c.search(Draw(src)), nil
}

// search returns the first index whose cumulative probability is >= r.
// r is in (0,1] and cum ends at exactly 1, so the scan always terminates
// inside the slice; the trailing return only guards against a malformed CDF.
func (c *CDF) search(r float64) int {
	var i int
	for i = 0; i < len(c.cum); i++ {
		if r <= c.cum[i] {
			return i
		}
	}

	return len(c.cum) - 1
}

// Sample draws one index from the (possibly unnormalized) weights w.
// Use NewCDF once per row when sampling the same row repeatedly.
//
// Errors: ErrInvalidDistribution, ErrNilSource.
// Complexity: O(k).
func Sample(src Source, w []float64) (int, error) {
	if src == nil {
		return 0, fmt.Errorf("%s: %w", opSample, ErrNilSource)
	}
	cdf, err := NewCDF(w)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opSample, err)
	}

	return cdf.search(Draw(src)), nil
}
