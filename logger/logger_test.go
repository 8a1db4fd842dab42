package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		" INFO ":  slog.LevelInfo,
		"warning": slog.LevelWarn,
		"Error":   slog.LevelError,
	}
	for input, expected := range cases {
		level, err := ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}

	_, err := ParseLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLevel)
}

func TestNew(t *testing.T) {
	buf := bytes.Buffer{}
	log, err := New(&buf, "info")
	require.NoError(t, err)

	ctx := context.Background()
	log.Debug(ctx, "hidden")
	log.Named("batch").Info(ctx, "converted", String("file", "walk.smd"), Int("frames", 3))
	log.Error(ctx, "failed", Error(errors.New("boom")))

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "logger=batch")
	assert.Contains(t, output, "file=walk.smd")
	assert.Contains(t, output, "frames=3")
	assert.Contains(t, output, "error=boom")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Named("x").Warn(context.Background(), "ignored", Float64("scale", 2))
	})
}
