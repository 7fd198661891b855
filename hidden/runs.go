// SPDX-License-Identifier: MIT

package hidden

// Run is a maximal block of consecutive steps spent in one state.
type Run struct {
	State State
	Start int // index of the first step of the run
	Len   int
}

// RunTracker accumulates maximal runs from a stream of states.
// The zero value is ready to use.
type RunTracker struct {
	runs []Run
	n    int
}

// Observe appends one step.
func (t *RunTracker) Observe(s State) {
	if k := len(t.runs); k > 0 && t.runs[k-1].State == s {
		t.runs[k-1].Len++
	} else {
		t.runs = append(t.runs, Run{State: s, Start: t.n, Len: 1})
	}
	t.n++
}

// Runs returns a copy of the runs observed so far, in order.
func (t *RunTracker) Runs() []Run {
	out := make([]Run, len(t.runs))
	copy(out, t.runs)
	return out
}

// Runs splits a state sequence into maximal runs.
func Runs(states []State) []Run {
	var t RunTracker
	for _, s := range states {
		t.Observe(s)
	}
	return t.runs
}
