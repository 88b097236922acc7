package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"DEBUG", slog.LevelDebug, false},
		{"Info", slog.LevelInfo, false},
		{"verbose", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		level, err := parseLevel(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			assert.NoError(t, err, "input %q", tt.input)
		}
		assert.Equal(t, tt.want, level, "input %q", tt.input)
	}
}

func TestSetup(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		log, err := Setup("debug")
		require.NoError(t, err)
		assert.NotNil(t, log)
		assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))
	})

	t.Run("invalid level falls back to info", func(t *testing.T) {
		log, err := Setup("nonsense")
		require.NoError(t, err)
		assert.NotNil(t, log)
		assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
		assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	})
}

func TestContextLogger(t *testing.T) {
	attached := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("round trip through context", func(t *testing.T) {
		ctx := WithLogger(context.Background(), attached)
		assert.Same(t, attached, FromContext(ctx))
	})

	t.Run("empty context falls back to default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("FromContextOrDefault prefers attached logger", func(t *testing.T) {
		def := slog.New(slog.NewTextHandler(io.Discard, nil))
		ctx := WithLogger(context.Background(), attached)
		assert.Same(t, attached, FromContextOrDefault(ctx, def))
	})

	t.Run("FromContextOrDefault uses provided default", func(t *testing.T) {
		def := slog.New(slog.NewTextHandler(io.Discard, nil))
		assert.Same(t, def, FromContextOrDefault(context.Background(), def))
	})

	t.Run("FromContextOrDefault with nil default", func(t *testing.T) {
		assert.Same(t, slog.Default(), FromContextOrDefault(context.Background(), nil))
	})
}
