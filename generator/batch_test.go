package generator_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/hmmgen/dataset"
	"github.com/katalvlaran/hmmgen/generator"
	"github.com/stretchr/testify/require"
)

func TestGenerateBatch_DeterministicAcrossWorkerCounts(t *testing.T) {
	ctx := context.Background()
	cfg := cpgConfig(3000, 99)

	serial, err := generator.GenerateBatch(ctx, cfg, 6, generator.WithWorkers(1))
	require.NoError(t, err)
	parallel, err := generator.GenerateBatch(ctx, cfg, 6, generator.WithWorkers(4))
	require.NoError(t, err)
	require.Len(t, serial, 6)
	require.Equal(t, serial, parallel)

	seen := map[string]int{}
	for i, seq := range serial {
		require.Len(t, seq, 3000)
		d := dataset.Digest(seq)
		prev, dup := seen[d]
		require.Falsef(t, dup, "sequences %d and %d are identical", prev, i)
		seen[d] = i
	}
}

func TestGenerateBatch_Errors(t *testing.T) {
	_, err := generator.GenerateBatch(context.Background(), cpgConfig(10, 1), 0)
	require.ErrorIs(t, err, generator.ErrInvalidConfiguration)

	_, err = generator.GenerateBatch(context.Background(), cpgConfig(0, 1), 2)
	require.ErrorIs(t, err, generator.ErrInvalidConfiguration)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := generator.GenerateBatch(ctx, cpgConfig(10, 1), 3)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, out)
}
