// SPDX-License-Identifier: MIT
// Package: hmmgen/generator
//
// generator.go: the per-step orchestration loop.
//
// Contract:
//   - New validates the Config once; Generate never sees an invalid model.
//   - Generate returns exactly Config.Length pairs, or nil and an error.
//   - A runState is created per call and dropped afterwards.
//
// Complexity:
//   - Time O(Length·k) for alphabet size k; Space O(Length) for the output.

package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/katalvlaran/hmmgen/hidden"
	"github.com/katalvlaran/hmmgen/markov"
	"github.com/katalvlaran/hmmgen/sampler"
)

// cancelCheckInterval is how many steps run between context checks.
const cancelCheckInterval = 1024

// Generator produces sequences for one Config.
// A Generator without WithSource is safe for concurrent Generate calls.
type Generator struct {
	cfg  Config
	opts options
}

// runState is the mutable state of one Generate call.
type runState struct {
	src       sampler.Source
	scheduler *hidden.Scheduler
	walkers   [hidden.NumStates]*markov.Walker
	runs      hidden.RunTracker
	out       []dataset.Pair
}

// New validates cfg and returns a Generator.
func New(cfg Config, opts ...Option) (*Generator, error) {
	o := newOptions(opts...)
	if o.seed != nil {
		cfg.Seed = *o.seed
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generator.New: %w", err)
	}

	return &Generator{cfg: cfg, opts: o}, nil
}

// Config returns the validated configuration.
func (g *Generator) Config() Config { return g.cfg }

// newRunState builds the scheduler, walkers and source for one call.
func (g *Generator) newRunState() (*runState, error) {
	rs := &runState{
		src: g.opts.src,
		out: make([]dataset.Pair, 0, g.cfg.Length),
	}
	if rs.src == nil {
		rs.src = sampler.NewRand(g.cfg.Seed)
	}

	var err error
	if rs.scheduler, err = hidden.NewScheduler(g.cfg.Hidden, g.cfg.MinDwell, g.cfg.InitialState); err != nil {
		return nil, err
	}
	for _, s := range states {
		if rs.walkers[s], err = markov.NewWalker(g.cfg.Emission[s], g.cfg.Alphabet, g.cfg.InitialEmission[s]); err != nil {
			return nil, fmt.Errorf("%s walker: %w", s, err)
		}
	}

	return rs, nil
}

// Generate produces one sequence of exactly Config.Length pairs.
//
// Errors: the context error on cancellation, or any sampling error; in both
// cases no pairs are returned.
func (g *Generator) Generate(ctx context.Context) ([]dataset.Pair, error) {
	rs, err := g.newRunState()
	if err != nil {
		return nil, fmt.Errorf("generator.Generate: %w", err)
	}

	log := g.opts.logger
	log.Debug("generation started",
		slog.Int("length", g.cfg.Length),
		slog.Int64("seed", g.cfg.Seed),
		slog.String("initial_state", g.cfg.InitialState.String()),
	)

	var (
		step  int
		prev  = g.cfg.InitialState
		state hidden.State
		sym   string
		pair  dataset.Pair
	)
	for step = 0; step < g.cfg.Length; step++ {
		if step%cancelCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				return nil, fmt.Errorf("generator.Generate: step %d: %w", step, err)
			}
		}

		if state, err = rs.scheduler.Next(rs.src); err != nil {
			return nil, fmt.Errorf("generator.Generate: step %d: %w", step, err)
		}
		if state != prev && step > 0 {
			log.Debug("hidden state switch", slog.Int("step", step), slog.String("to", state.String()))
			if g.opts.hooks.OnSwitch != nil {
				g.opts.hooks.OnSwitch(step, prev, state)
			}
		}
		prev = state

		if sym, err = rs.walkers[state].Step(rs.src); err != nil {
			return nil, fmt.Errorf("generator.Generate: step %d: %s chain: %w", step, state, err)
		}
		pair = dataset.Pair{Label: g.cfg.Labels[state], Symbol: sym}
		rs.out = append(rs.out, pair)
		rs.runs.Observe(state)

		if g.opts.hooks.OnPair != nil {
			g.opts.hooks.OnPair(step, state, pair)
		}
	}

	stats := statsFromRuns(rs.runs.Runs())
	log.Debug("generation complete",
		slog.Int("length", stats.Length),
		slog.Int("switches", stats.Switches),
		slog.Int("in_region_steps", stats.Steps[hidden.InRegion]),
	)
	if g.opts.hooks.OnComplete != nil {
		g.opts.hooks.OnComplete(stats)
	}

	return rs.out, nil
}

// Generate is a convenience wrapper for New(cfg, opts...).Generate(ctx).
func Generate(ctx context.Context, cfg Config, opts ...Option) ([]dataset.Pair, error) {
	g, err := New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return g.Generate(ctx)
}
