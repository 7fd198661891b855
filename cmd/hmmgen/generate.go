package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/katalvlaran/hmmgen/generator"
	"github.com/katalvlaran/hmmgen/internal/adapters/file"
	"github.com/katalvlaran/hmmgen/internal/adapters/redis"
	"github.com/katalvlaran/hmmgen/internal/metrics"
	"github.com/spf13/cobra"
)

type generateFlags struct {
	length    int
	seed      int64
	count     int
	workers   int
	out       string
	redisAddr string
	redisKey  string
	redisTTL  time.Duration
}

func newGenerateCmd() *cobra.Command {
	var f generateFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate labeled sequences",
		Long: `Generates --count sequences and writes them as <label,symbol> lines to --out
(a path ending in .xz is compressed, "-" is stdout) and, with --redis-addr, to
Redis lists keyed by --redis-key. Multiple sequences are separated by a blank
line in file output.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runGenerate(ctx, cmd, f)
		},
	}

	cmd.Flags().IntVarP(&f.length, "length", "n", 0, "Pairs per sequence (overrides the config)")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "Random seed (overrides the config)")
	cmd.Flags().IntVar(&f.count, "count", 1, "Number of independent sequences")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "Parallel workers for --count > 1 (default GOMAXPROCS)")
	cmd.Flags().StringVarP(&f.out, "out", "o", file.Stdio, "Output path; .xz compresses, - is stdout")
	cmd.Flags().StringVar(&f.redisAddr, "redis-addr", "", "Also push sequences to this Redis server")
	cmd.Flags().StringVar(&f.redisKey, "redis-key", "", "Redis key suffix (default: the run id)")
	cmd.Flags().DurationVar(&f.redisTTL, "redis-ttl", 0, "Expiration for Redis lists (0 keeps them)")
	return cmd
}

func runGenerate(ctx context.Context, cmd *cobra.Command, f generateFlags) error {
	runID := uuid.New().String()
	logger, err := createLogger(cmd)
	if err != nil {
		return err
	}
	logger = logger.With("run_id", runID)

	cf, err := loadFile(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("length") {
		cf.Length = f.length
	}
	if cmd.Flags().Changed("seed") {
		cf.Seed = f.seed
	}
	cfg, err := cf.Build()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	collector, err := metrics.New(nil)
	if err != nil {
		return err
	}
	opts := []generator.Option{
		generator.WithLogger(logger),
		generator.WithHooks(collector.Hooks()),
	}
	if f.workers > 0 {
		opts = append(opts, generator.WithWorkers(f.workers))
	}

	logger.Info("generating",
		slog.Int("length", cfg.Length),
		slog.Int("count", f.count),
		slog.Int64("seed", cfg.Seed),
	)
	started := time.Now()

	var seqs [][]dataset.Pair
	if f.count == 1 {
		pairs, err := generator.Generate(ctx, cfg, opts...)
		if err != nil {
			return err
		}
		seqs = [][]dataset.Pair{pairs}
	} else if seqs, err = generator.GenerateBatch(ctx, cfg, f.count, opts...); err != nil {
		return err
	}

	if err = writeFile(ctx, cmd, f.out, seqs); err != nil {
		return err
	}
	if f.redisAddr != "" {
		key := f.redisKey
		if key == "" {
			key = runID
		}
		if err = writeRedis(ctx, f, key, seqs, logger); err != nil {
			return err
		}
	}

	for i, seq := range seqs {
		logger.Info("sequence written", slog.Int("index", i), slog.String("blake3", dataset.Digest(seq)))
	}
	logSummary(logger, collector)
	logger.Info("done", slog.Duration("elapsed", time.Since(started)))
	return nil
}

func writeFile(ctx context.Context, cmd *cobra.Command, path string, seqs [][]dataset.Pair) error {
	var (
		sink *file.Sink
		err  error
	)
	if path == file.Stdio {
		sink = file.NewSink(cmd.OutOrStdout())
	} else if sink, err = file.Create(path); err != nil {
		return err
	}

	for i, seq := range seqs {
		if i > 0 {
			if err = sink.Break(); err != nil {
				_ = sink.Close()
				return err
			}
		}
		if err = sink.Write(ctx, seq); err != nil {
			_ = sink.Close()
			return err
		}
	}
	return sink.Close()
}

func writeRedis(ctx context.Context, f generateFlags, key string, seqs [][]dataset.Pair, logger *slog.Logger) error {
	sink := redis.New(f.redisAddr, "", 0, redis.WithTTL(f.redisTTL))
	defer sink.Close()

	for i, seq := range seqs {
		id := key
		if len(seqs) > 1 {
			id = fmt.Sprintf("%s:%d", key, i)
		}
		if err := sink.Write(ctx, id, seq); err != nil {
			return err
		}
		logger.Info("pushed to redis", slog.String("key", sink.Key(id)), slog.Int("pairs", len(seq)))
	}
	return nil
}

func logSummary(logger *slog.Logger, c *metrics.Collector) {
	samples, err := c.Snapshot()
	if err != nil {
		logger.Warn("metrics unavailable", "error", err)
		return
	}
	for _, s := range samples {
		attrs := []any{slog.String("metric", s.Name), slog.Float64("value", s.Value)}
		for k, v := range s.Labels {
			attrs = append(attrs, slog.String(k, v))
		}
		logger.Info("metric", attrs...)
	}
}
