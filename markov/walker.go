// SPDX-License-Identifier: MIT
// Package: hmmgen/markov
//
// walker.go: resumable Markov chain walks.
//
// Contract:
//   - Each step samples the successor of the current state from its row,
//     emits alphabet[successor] and makes the successor current.
//   - The initial state's symbol is never emitted.
//   - A failed step leaves the current state unchanged.
//   - One sampler draw per step; nothing else touches the Source.

package markov

import (
	"fmt"

	"github.com/katalvlaran/hmmgen/sampler"
)

const (
	opNewWalker = "NewWalker"
	opWalk      = "Walk"
	opStep      = "Step"
)

// Walker is a chain with a current state. It is not safe for concurrent use.
type Walker struct {
	tm       *TransitionMatrix
	alphabet Alphabet
	state    int
}

// NewWalker binds a transition matrix to an alphabet and a starting state.
//
// Errors: ErrDimensionMismatch when tm is nil or tm.Dim() != alphabet.Len(),
// ErrOutOfRange when initial is not a valid state.
func NewWalker(tm *TransitionMatrix, alphabet Alphabet, initial int) (*Walker, error) {
	if tm == nil {
		return nil, fmt.Errorf("%s: nil matrix: %w", opNewWalker, ErrDimensionMismatch)
	}
	if tm.Dim() != alphabet.Len() {
		return nil, fmt.Errorf("%s: matrix is %d×%d, alphabet has %d symbols: %w",
			opNewWalker, tm.Dim(), tm.Dim(), alphabet.Len(), ErrDimensionMismatch)
	}
	if initial < 0 || initial >= tm.Dim() {
		return nil, fmt.Errorf("%s: initial state %d: %w", opNewWalker, initial, ErrOutOfRange)
	}

	return &Walker{tm: tm, alphabet: alphabet, state: initial}, nil
}

// State returns the current state index.
func (w *Walker) State() int { return w.state }

// Step advances the chain by one transition and returns the emitted symbol.
func (w *Walker) Step(src sampler.Source) (string, error) {
	next, err := w.tm.Next(src, w.state)
	if err != nil {
		return "", fmt.Errorf("%s: from state %d: %w", opStep, w.state, err)
	}
	w.state = next

	return w.alphabet.symbols[next], nil
}

// Walk advances the chain n steps and returns the n emitted symbols.
// On error no symbols are returned; the chain keeps the state reached by the
// last successful step.
func (w *Walker) Walk(src sampler.Source, n int) ([]string, error) {
	if n < 0 {
		return nil, fmt.Errorf("%s: n=%d: %w", opWalk, n, ErrInvalidLength)
	}
	out := make([]string, 0, n)
	var (
		i   int
		sym string
		err error
	)
	for i = 0; i < n; i++ {
		if sym, err = w.Step(src); err != nil {
			return nil, fmt.Errorf("%s: step %d: %w", opWalk, i, err)
		}
		out = append(out, sym)
	}

	return out, nil
}

// Walk runs n steps of the chain tm over alphabet starting at initial and
// returns the emitted symbols with the final state index, so a caller can
// resume the same chain later by passing that index back in.
//
// Errors: ErrDimensionMismatch, ErrOutOfRange, ErrInvalidLength and any
// sampling error.
func Walk(src sampler.Source, initial int, tm *TransitionMatrix, n int, alphabet Alphabet) ([]string, int, error) {
	w, err := NewWalker(tm, alphabet, initial)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", opWalk, err)
	}
	symbols, err := w.Walk(src, n)
	if err != nil {
		return nil, 0, err
	}

	return symbols, w.State(), nil
}
