package logging_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/katalvlaran/hmmgen/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWriter_RenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWriter(&buf, slog.LevelInfo)
	log.Error("write failed", "error", errors.New("disk full"))

	out := buf.String()
	assert.Contains(t, out, `err="disk full"`)
	assert.NotContains(t, out, "error=")
}

func TestNewWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.NewWriter(&buf, slog.LevelWarn)
	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}
	for in, want := range cases {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("loud")
	require.Error(t, err)
}

func TestNewNop(t *testing.T) {
	require.NotNil(t, logging.NewNop())
	logging.NewNop().Error("ignored", "error", errors.New("x"))
}
