// SPDX-License-Identifier: MIT

package generator

import "github.com/katalvlaran/hmmgen/hidden"

// ErrInvalidConfiguration is the configuration sentinel shared with the
// hidden package: non-positive length, negative dwell, bad labels, missing
// models or out-of-range initial states.
// Matrix/alphabet size problems surface as markov.ErrDimensionMismatch and
// malformed rows as sampler.ErrInvalidDistribution.
var ErrInvalidConfiguration = hidden.ErrInvalidConfiguration
