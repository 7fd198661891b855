// SPDX-License-Identifier: MIT
// Package: hmmgen/generator
//
// batch.go: independent sequences in parallel.
//
// Contract:
//   - Sequence i draws from sampler.Derive(seed, i) and owns its runState;
//     nothing mutable is shared between workers.
//   - Output order is by sequence index, independent of scheduling.
//   - The first error cancels the remaining work; no partial batch is returned.

package generator

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/katalvlaran/hmmgen/sampler"
)

// GenerateBatch produces count independent sequences for cfg.
// WithSource is ignored: each sequence gets its own derived stream.
func GenerateBatch(ctx context.Context, cfg Config, count int, opts ...Option) ([][]dataset.Pair, error) {
	if count <= 0 {
		return nil, fmt.Errorf("generator.GenerateBatch: count %d must be > 0: %w", count, ErrInvalidConfiguration)
	}
	base, err := New(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("generator.GenerateBatch: %w", err)
	}

	workers := base.opts.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > count {
		workers = count
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		out      = make([][]dataset.Pair, count)
		jobs     = make(chan int)
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				g := &Generator{cfg: base.cfg, opts: base.opts}
				g.opts.src = sampler.Derive(base.cfg.Seed, uint64(i))
				pairs, err := g.Generate(ctx)
				if err != nil {
					fail(fmt.Errorf("generator.GenerateBatch: sequence %d: %w", i, err))
					continue
				}
				out[i] = pairs
			}
		}()
	}

feed:
	for i := 0; i < count; i++ {
		select {
		case jobs <- i:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("generator.GenerateBatch: %w", err)
	}

	return out, nil
}
