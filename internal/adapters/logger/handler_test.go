package logger_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assetpipe/internal/adapters/logger"
)

func TestPrettyHandler_Golden(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name   string
		level  slog.Level
		msg    string
		attrs  []any
		golden string
	}{
		{name: "info", level: slog.LevelInfo, msg: "watching src", golden: "handler_info"},
		{name: "warn", level: slog.LevelWarn, msg: "sass not found", attrs: []any{"fallback", "esbuild"}, golden: "handler_warn"},
		{name: "error", level: slog.LevelError, msg: "css failed", attrs: []any{"task", "css"}, golden: "handler_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			lg := slog.New(logger.NewPrettyHandler(&buf, nil))

			lg.Log(t.Context(), tt.level, tt.msg, tt.attrs...)

			g := goldie.New(t)
			g.Assert(t, tt.golden, buf.Bytes())
		})
	}
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(nil, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, h.Enabled(t.Context(), slog.LevelError))
}

func TestPrettyHandler_WithAttrsAndGroup(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, nil).WithAttrs([]slog.Attr{slog.String("mode", "dev")})
	h = h.WithGroup("server")

	require.NoError(t, slog.New(h).Handler().Handle(t.Context(), slog.NewRecord(
		time.Time{}, slog.LevelInfo, "listening", 0,
	)))

	assert.Equal(t, "listening server.mode=dev\n", buf.String())
}
