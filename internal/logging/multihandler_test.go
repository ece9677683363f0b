package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMultiHandler(t *testing.T) {
	t.Run("dispatches to all handlers", func(t *testing.T) {
		var bufA, bufB bytes.Buffer
		handler := NewMultiHandler(
			slog.NewTextHandler(&bufA, nil),
			slog.NewTextHandler(&bufB, nil),
		)
		logger := slog.New(handler)

		logger.Info("fan out")

		assert.Contains(t, bufA.String(), "fan out")
		assert.Contains(t, bufB.String(), "fan out")
	})

	t.Run("respects per-handler levels", func(t *testing.T) {
		var infoBuf, errorBuf bytes.Buffer
		handler := NewMultiHandler(
			slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
			slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
		)
		logger := slog.New(handler)

		logger.Info("info only")

		assert.Contains(t, infoBuf.String(), "info only")
		assert.Empty(t, errorBuf.String(), "error-level handler must not receive info records")
	})

	t.Run("enabled if any handler is enabled", func(t *testing.T) {
		var buf bytes.Buffer
		handler := NewMultiHandler(
			slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelError}),
		)

		assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
		assert.False(t, handler.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("WithAttrs propagates", func(t *testing.T) {
		var buf bytes.Buffer
		handler := NewMultiHandler(slog.NewTextHandler(&buf, nil)).
			WithAttrs([]slog.Attr{slog.String("component", "test")})
		logger := slog.New(handler)

		logger.Info("attributed")

		require.Contains(t, buf.String(), "component=test")
	})
}
