// SPDX-License-Identifier: MIT

package generator

import (
	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/katalvlaran/hmmgen/hidden"
)

// Hooks observe a run. Nil fields are skipped. Hooks passed to GenerateBatch
// are called from several goroutines and must be safe for concurrent use.
type Hooks struct {
	// OnPair fires after every emitted pair.
	OnPair func(step int, state hidden.State, p dataset.Pair)
	// OnSwitch fires when the hidden state at step differs from step-1.
	OnSwitch func(step int, from, to hidden.State)
	// OnComplete fires once after a successful run.
	OnComplete func(s Stats)
}

// Stats summarizes one generated sequence.
type Stats struct {
	Length     int
	Steps      [hidden.NumStates]int // pairs emitted per state
	Runs       [hidden.NumStates]int // maximal runs per state
	LongestRun [hidden.NumStates]int
	Switches   int
}

// statsFromRuns folds the run list of a finished sequence.
func statsFromRuns(runs []hidden.Run) Stats {
	var s Stats
	for _, r := range runs {
		s.Length += r.Len
		s.Steps[r.State] += r.Len
		s.Runs[r.State]++
		if r.Len > s.LongestRun[r.State] {
			s.LongestRun[r.State] = r.Len
		}
	}
	if len(runs) > 0 {
		s.Switches = len(runs) - 1
	}
	return s
}
