// SPDX-License-Identifier: MIT
// Package: hmmgen/sampler
//
// source.go: the uniform draw shared by all sampling paths.

package sampler

// Resolution is the number of distinct uniform values a single Draw can take.
// Draws are k/Resolution for k ∈ [1, Resolution].
const Resolution = 10000

// Source is the minimal random source the sampler needs.
// *math/rand.Rand satisfies it; tests may plug in scripted sources.
type Source interface {
	// Intn returns a uniform integer in [0, n).
	Intn(n int) int
}

// Draw returns a uniform value in (0,1] at 1/Resolution granularity.
// It consumes exactly one Intn call from src.
// Complexity: O(1).
func Draw(src Source) float64 {
	return float64(src.Intn(Resolution)+1) / Resolution
}
