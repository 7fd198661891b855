// Package sampler - RNG utilities shared by the generator.
//
// This file centralizes deterministic random generation for sequence runs.
//
// Goals:
//   - Determinism: same seed ⇒ identical draws across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: DeriveSeed gives each parallel run its own stream.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use Derive to create independent streams for parallel runs.
package sampler

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
const DefaultSeed int64 = 1

// NewRand returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func NewRand(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// The result is a pure function of (parent, stream): no base RNG is consumed,
// so sequence i of a batch gets the same stream whichever worker builds it
// and in whatever order. A SplitMix64-style finalizer removes correlations
// between neighbouring stream ids, so runs 0,1,2,… do not share prefixes.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// Derive creates an independent deterministic RNG stream for stream id
// `stream` under the parent seed. Unlike drawing from a shared base RNG, the
// result depends only on (parent, stream), so batch members can be created in
// any order and on any goroutine.
//
// Complexity: O(1).
func Derive(parent int64, stream uint64) *rand.Rand {
	if parent == 0 {
		parent = DefaultSeed
	}

	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
