// SPDX-License-Identifier: MIT
// Package: hmmgen/generator
//
// options.go: functional options for New and GenerateBatch.
//
// Contract:
//   • Options are functional (type Option func(*options)).
//   • Option constructors PANIC on nil arguments; Generate itself never panics.
//   • Determinism is explicit: without WithSource every Generate call starts a
//     fresh source seeded from Config.Seed (or WithSeed).

package generator

import (
	"log/slog"

	"github.com/katalvlaran/hmmgen/internal/logging"
	"github.com/katalvlaran/hmmgen/sampler"
)

// Option customizes a Generator.
type Option func(*options)

type options struct {
	seed    *int64         // overrides Config.Seed when set
	src     sampler.Source // shared source; nil means fresh per Generate call
	logger  *slog.Logger
	hooks   Hooks
	workers int // GenerateBatch parallelism; 0 means GOMAXPROCS
}

func newOptions(opts ...Option) options {
	o := options{logger: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeed overrides Config.Seed.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithSource makes every Generate call draw from src, continuing its stream.
// Panics on nil.
func WithSource(src sampler.Source) Option {
	if src == nil {
		panic("generator: WithSource(nil)")
	}
	return func(o *options) {
		o.src = src
	}
}

// WithLogger sets the logger used for run-level debug events. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(o *options) {
		o.logger = l
	}
}

// WithHooks installs observation callbacks.
func WithHooks(h Hooks) Option {
	return func(o *options) {
		o.hooks = h
	}
}

// WithWorkers bounds the number of goroutines GenerateBatch uses.
// Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("generator: WithWorkers(n<1)")
	}
	return func(o *options) {
		o.workers = n
	}
}
