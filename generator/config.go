// SPDX-License-Identifier: MIT
// Package: hmmgen/generator
//
// config.go: immutable run configuration and fail-fast validation.
//
// Validation order (first failure wins, documented for tests):
//   length → labels → alphabet → emission models → hidden model → dwell →
//   initial states.
// Rows were already validated when the TransitionMatrix values were built, so
// a Config that passes Validate cannot fail on a distribution mid-run.

package generator

import (
	"fmt"

	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/katalvlaran/hmmgen/hidden"
	"github.com/katalvlaran/hmmgen/markov"
)

const opValidate = "Config.Validate"

// Config holds everything a run needs. Arrays indexed by hidden state use
// hidden.InRegion / hidden.OutOfRegion as indices.
type Config struct {
	// Alphabet shared by both emission models.
	Alphabet markov.Alphabet
	// Emission is the per-state emission chain over Alphabet.
	Emission [hidden.NumStates]*markov.TransitionMatrix
	// Hidden is the 2×2 hidden transition matrix, consulted once a state's
	// minimum dwell has been met.
	Hidden *markov.TransitionMatrix
	// MinDwell is the per-state minimum run length (0 disables the clamp).
	MinDwell [hidden.NumStates]int
	// Labels are the tokens written for each hidden state.
	Labels hidden.Labels
	// Length is the exact number of pairs to produce.
	Length int
	// InitialState is the hidden state of the first step.
	InitialState hidden.State
	// InitialEmission is the starting state index of each emission chain.
	InitialEmission [hidden.NumStates]int
	// Seed seeds the default random source (0 means sampler.DefaultSeed).
	Seed int64
}

// Validate checks the configuration before any sampling happens.
//
// Errors: ErrInvalidConfiguration, markov.ErrDimensionMismatch,
// markov.ErrInvalidAlphabet, dataset.ErrInvalidToken (all wrapped).
func (c Config) Validate() error {
	if c.Length <= 0 {
		return fmt.Errorf("%s: length %d must be > 0: %w", opValidate, c.Length, ErrInvalidConfiguration)
	}

	if err := c.Labels.Validate(); err != nil {
		return fmt.Errorf("%s: %w", opValidate, err)
	}
	for _, l := range c.Labels {
		if err := dataset.ValidateToken(l); err != nil {
			return fmt.Errorf("%s: label: %w: %w", opValidate, ErrInvalidConfiguration, err)
		}
	}

	if c.Alphabet.Len() == 0 {
		return fmt.Errorf("%s: empty alphabet: %w", opValidate, markov.ErrInvalidAlphabet)
	}
	for _, s := range c.Alphabet.Symbols() {
		if err := dataset.ValidateToken(s); err != nil {
			return fmt.Errorf("%s: symbol: %w: %w", opValidate, markov.ErrInvalidAlphabet, err)
		}
	}

	for _, s := range states {
		tm := c.Emission[s]
		if tm == nil {
			return fmt.Errorf("%s: no emission model for %s: %w", opValidate, s, ErrInvalidConfiguration)
		}
		if tm.Dim() != c.Alphabet.Len() {
			return fmt.Errorf("%s: %s model is %d×%d, alphabet has %d symbols: %w",
				opValidate, s, tm.Dim(), tm.Dim(), c.Alphabet.Len(), markov.ErrDimensionMismatch)
		}
	}

	if c.Hidden == nil {
		return fmt.Errorf("%s: no hidden model: %w", opValidate, ErrInvalidConfiguration)
	}
	if c.Hidden.Dim() != hidden.NumStates {
		return fmt.Errorf("%s: hidden model is %d×%d: %w", opValidate, c.Hidden.Dim(), c.Hidden.Dim(), markov.ErrDimensionMismatch)
	}

	for _, s := range states {
		if c.MinDwell[s] < 0 {
			return fmt.Errorf("%s: min dwell for %s is %d: %w", opValidate, s, c.MinDwell[s], ErrInvalidConfiguration)
		}
	}

	if !c.InitialState.Valid() {
		return fmt.Errorf("%s: initial state %s: %w", opValidate, c.InitialState, ErrInvalidConfiguration)
	}
	for _, s := range states {
		if i := c.InitialEmission[s]; i < 0 || i >= c.Alphabet.Len() {
			return fmt.Errorf("%s: initial emission state %d for %s: %w: %w",
				opValidate, i, s, ErrInvalidConfiguration, markov.ErrOutOfRange)
		}
	}

	return nil
}

// states lists the hidden states in index order.
var states = [...]hidden.State{hidden.InRegion, hidden.OutOfRegion}
