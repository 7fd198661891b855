package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/katalvlaran/hmmgen/generator"
	"github.com/katalvlaran/hmmgen/internal/adapters/redis"
	"github.com/katalvlaran/hmmgen/internal/config"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, opts ...redis.Option) (*miniredis.Miniredis, *redis.Sink) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	s := redis.NewFromClient(client, opts...)
	t.Cleanup(func() { _ = s.Close() })
	return mr, s
}

func TestSink_WriteGeneratedSequence(t *testing.T) {
	mr, s := setup(t, redis.WithChunkSize(100))
	ctx := context.Background()
	require.NoError(t, s.Ping(ctx))

	cfg, err := config.Default().Build()
	require.NoError(t, err)
	cfg.Length = 1234
	pairs, err := generator.Generate(ctx, cfg)
	require.NoError(t, err)

	require.NoError(t, s.Write(ctx, "run-1", pairs))

	list, err := mr.List(redis.DefaultPrefix + "run-1")
	require.NoError(t, err)
	require.Len(t, list, 1234)
	assert.Equal(t, pairs[0].String(), list[0])
	assert.Equal(t, pairs[1233].String(), list[1233])

	back, err := s.Read(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, dataset.Digest(pairs), dataset.Digest(back))
}

func TestSink_WriteReplacesExistingList(t *testing.T) {
	mr, s := setup(t, redis.WithPrefix("test:"))
	ctx := context.Background()

	first := []dataset.Pair{{Label: "+", Symbol: "A"}, {Label: "+", Symbol: "C"}}
	second := []dataset.Pair{{Label: "-", Symbol: "T"}}
	require.NoError(t, s.Write(ctx, "k", first))
	require.NoError(t, s.Write(ctx, "k", second))

	list, err := mr.List("test:k")
	require.NoError(t, err)
	assert.Equal(t, []string{"<-,T>"}, list)
}

func TestSink_TTL(t *testing.T) {
	mr, s := setup(t, redis.WithTTL(time.Minute))
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, "ttl", []dataset.Pair{{Label: "+", Symbol: "G"}}))
	assert.Equal(t, time.Minute, mr.TTL(redis.DefaultPrefix+"ttl"))

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(redis.DefaultPrefix+"ttl"))
}

func TestSink_ReadMalformed(t *testing.T) {
	mr, s := setup(t)
	_, err := mr.Push(redis.DefaultPrefix+"bad", "<+,A>", "garbage")
	require.NoError(t, err)

	_, err = s.Read(context.Background(), "bad")
	require.ErrorIs(t, err, dataset.ErrMalformedLine)
}
