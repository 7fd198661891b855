// SPDX-License-Identifier: MIT

package hidden

import (
	"fmt"
	"strings"
)

// State is one of the two hidden states.
// Its integer value is the row/column index in the hidden transition matrix.
type State int

const (
	// InRegion marks steps inside a region of interest.
	InRegion State = iota
	// OutOfRegion marks background steps.
	OutOfRegion
)

// NumStates is the size of the hidden state space.
const NumStates = 2

// Valid reports whether s is InRegion or OutOfRegion.
func (s State) Valid() bool { return s == InRegion || s == OutOfRegion }

// String returns the canonical state name.
func (s State) String() string {
	switch s {
	case InRegion:
		return "IN_REGION"
	case OutOfRegion:
		return "OUT_OF_REGION"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Labels maps each state to the short token written in the output
// (index InRegion, then OutOfRegion).
type Labels [NumStates]string

// DefaultLabels are the "+" / "-" tokens used for CpG island data.
var DefaultLabels = Labels{"+", "-"}

// Validate rejects empty or identical labels, and labels that spell a
// canonical state name, so ParseState stays unambiguous.
func (l Labels) Validate() error {
	if l[InRegion] == "" || l[OutOfRegion] == "" {
		return fmt.Errorf("Labels: empty label in %q: %w", l, ErrInvalidConfiguration)
	}
	if l[InRegion] == l[OutOfRegion] {
		return fmt.Errorf("Labels: both states labeled %q: %w", l[InRegion], ErrInvalidConfiguration)
	}
	for _, lbl := range l {
		for _, s := range [...]State{InRegion, OutOfRegion} {
			if strings.EqualFold(lbl, s.String()) {
				return fmt.Errorf("Labels: label %q collides with state name %s: %w", lbl, s, ErrInvalidConfiguration)
			}
		}
	}
	return nil
}

// Of returns the label of s. Invalid states get an empty label.
func (l Labels) Of(s State) string {
	if !s.Valid() {
		return ""
	}
	return l[s]
}

// ParseState resolves a label ("+"), or a canonical name ("IN_REGION",
// case-insensitive), to a State.
func ParseState(token string, labels Labels) (State, error) {
	for _, s := range [...]State{InRegion, OutOfRegion} {
		if token == labels[s] || strings.EqualFold(token, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("ParseState: unknown hidden state %q (labels %q): %w", token, labels, ErrInvalidConfiguration)
}
