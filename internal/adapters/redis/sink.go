// SPDX-License-Identifier: MIT

// Package redis pushes generated sequences onto Redis lists, one <H,E> line
// per list element, so downstream trainers can consume them with LRANGE or
// BLPOP.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/katalvlaran/hmmgen/dataset"
	backend "github.com/redis/go-redis/v9"
)

// DefaultPrefix is prepended to every key.
const DefaultPrefix = "hmmgen:seq:"

// defaultChunk bounds how many elements go into one RPUSH.
const defaultChunk = 4096

// Sink implements list-backed sequence output.
type Sink struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
	chunk  int
}

type Option func(*Sink)

// WithTTL sets the expiration of written lists (0 keeps them forever).
func WithTTL(ttl time.Duration) Option {
	return func(s *Sink) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix.
func WithPrefix(prefix string) Option {
	return func(s *Sink) {
		s.prefix = prefix
	}
}

// WithChunkSize bounds the number of pairs per RPUSH command. Values < 1 are
// ignored.
func WithChunkSize(n int) Option {
	return func(s *Sink) {
		if n > 0 {
			s.chunk = n
		}
	}
}

// New creates a sink connected to address.
func New(address, password string, db int, opts ...Option) *Sink {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a sink from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Sink {
	s := &Sink{
		client: client,
		prefix: DefaultPrefix,
		chunk:  defaultChunk,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the full key for a sequence id.
func (s *Sink) Key(id string) string {
	return s.prefix + id
}

// Write replaces the list stored under id with pairs, in one pipeline.
func (s *Sink) Write(ctx context.Context, id string, pairs []dataset.Pair) error {
	key := s.Key(id)
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	for start := 0; start < len(pairs); start += s.chunk {
		end := min(start+s.chunk, len(pairs))
		vals := make([]any, 0, end-start)
		for _, p := range pairs[start:end] {
			vals = append(vals, p.String())
		}
		pipe.RPush(ctx, key, vals...)
	}
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to write %s to redis: %w", key, err)
	}
	return nil
}

// Read loads the sequence stored under id.
func (s *Sink) Read(ctx context.Context, id string) ([]dataset.Pair, error) {
	key := s.Key(id)
	vals, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s from redis: %w", key, err)
	}
	out := make([]dataset.Pair, 0, len(vals))
	for i, v := range vals {
		p, err := dataset.ParsePair(v)
		if err != nil {
			return nil, fmt.Errorf("%s[%d]: %w", key, i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

// Ping checks connectivity.
func (s *Sink) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *Sink) Close() error {
	return s.client.Close()
}
