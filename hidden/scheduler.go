// SPDX-License-Identifier: MIT
// Package: hmmgen/hidden
//
// scheduler.go: clamped hidden state scheduling.
//
// Per step, with cur the current state and dwell the number of consecutive
// steps already spent in it:
//
//	if dwell >= minDwell[cur] {
//	    next := sample(row cur of the hidden matrix)
//	    if next != cur { cur, dwell = next, 0 }
//	}
//	dwell++
//	return cur
//
// Invariants:
//   - No draw is taken while the clamp is active.
//   - A same-state draw does not reset dwell; the scheduler samples again on
//     the next step.
//   - Every maximal run of a state is at least minDwell[state] long, except a
//     run cut short by the end of the sequence.
//   - minDwell == 0 disables the clamp for that state (a draw every step).

package hidden

import (
	"fmt"

	"github.com/katalvlaran/hmmgen/markov"
	"github.com/katalvlaran/hmmgen/sampler"
)

const opNewScheduler = "NewScheduler"

// Scheduler decides the active hidden state one step at a time.
// It is not safe for concurrent use.
type Scheduler struct {
	tm       *markov.TransitionMatrix
	minDwell [NumStates]int
	cur      State
	dwell    int
}

// NewScheduler validates the hidden matrix and dwell settings.
// The scheduler starts in `start` with a dwell of zero.
//
// Errors: ErrInvalidConfiguration (also markov.ErrDimensionMismatch for a
// matrix that is not 2×2).
func NewScheduler(tm *markov.TransitionMatrix, minDwell [NumStates]int, start State) (*Scheduler, error) {
	if tm == nil {
		return nil, fmt.Errorf("%s: nil hidden matrix: %w", opNewScheduler, ErrInvalidConfiguration)
	}
	if tm.Dim() != NumStates {
		return nil, fmt.Errorf("%s: hidden matrix is %d×%d, want %d×%d: %w: %w",
			opNewScheduler, tm.Dim(), tm.Dim(), NumStates, NumStates, ErrInvalidConfiguration, markov.ErrDimensionMismatch)
	}
	for _, s := range [...]State{InRegion, OutOfRegion} {
		if minDwell[s] < 0 {
			return nil, fmt.Errorf("%s: min dwell for %s is %d: %w", opNewScheduler, s, minDwell[s], ErrInvalidConfiguration)
		}
	}
	if !start.Valid() {
		return nil, fmt.Errorf("%s: start %s: %w", opNewScheduler, start, ErrInvalidConfiguration)
	}

	return &Scheduler{tm: tm, minDwell: minDwell, cur: start}, nil
}

// Current returns the state returned by the last Next (or the start state).
func (s *Scheduler) Current() State { return s.cur }

// Dwell returns how many consecutive steps have been spent in Current().
func (s *Scheduler) Dwell() int { return s.dwell }

// Clamped reports whether the next call to Next is forced to stay put.
func (s *Scheduler) Clamped() bool { return s.dwell < s.minDwell[s.cur] }

// Next advances one step and returns the active state for it.
// On a sampling error the scheduler state is left unchanged.
func (s *Scheduler) Next(src sampler.Source) (State, error) {
	if !s.Clamped() {
		next, err := s.tm.Next(src, int(s.cur))
		if err != nil {
			return s.cur, fmt.Errorf("Scheduler.Next: %w", err)
		}
		if State(next) != s.cur {
			s.cur = State(next)
			s.dwell = 0
		}
	}
	s.dwell++

	return s.cur, nil
}
