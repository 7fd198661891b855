// Package hidden drives the two-state hidden process that decides which
// emission model is active at every step.
//
// The two states are InRegion (a region of interest, e.g. a CpG island) and
// OutOfRegion (background). Transitions follow a 2×2 hidden transition matrix,
// but only once the current state has been held for its configured minimum
// dwell. Until then the state is clamped and no draw is taken.
//
// The clamp gives long contiguous runs of each state even when the matrix
// alone would produce short sojourns. The hidden layer is therefore not an
// exact first-order Markov chain, and the matrix is not the transition law of
// the generated labels.
package hidden
