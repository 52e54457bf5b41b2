package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/degrees/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing to a buffer without ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Levels(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Info("searching")
	lg.Warn("relay slow")

	assert.Equal(t, "searching\n! relay slow\n", buf.String())
}

func TestLogger_ErrorChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("dial tcp: refused"), "failed to connect to relay"), "search failed")
	lg.Error(err)

	want := strings.Join([]string{
		"✗ Error: search failed",
		"",
		"  Caused by:",
		"    → failed to connect to relay",
		"    → dial tcp: refused",
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestLogger_ErrorNil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("hello")
	lg.Error(errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "boom", rec["error"])
}

func TestLogger_SetOutputNil(t *testing.T) {
	lg, _ := newTestLogger(t)
	assert.NotPanics(t, func() { lg.SetOutput(nil) })
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{name: "single", messages: []string{"boom"}, want: "Error: boom"},
		{
			name:     "multiline main",
			messages: []string{"first\nsecond"},
			want:     "Error: first\n       second",
		},
		{
			name:     "cause with continuation",
			messages: []string{"outer", "inner\ndetail"},
			want:     "Error: outer\n\n  Caused by:\n    → inner\n      detail",
		},
		{name: "empty", messages: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.messages))
		})
	}
}

func TestCollectErrorEntries(t *testing.T) {
	assert.Nil(t, logger.CollectErrorEntries(nil))
	assert.Equal(t, []string{"plain"}, logger.CollectErrorEntries(errors.New("plain")))
	assert.Equal(t,
		[]string{"outer", "root"},
		logger.CollectErrorEntries(zerr.Wrap(errors.New("root"), "outer")),
	)
	assert.Equal(t,
		[]string{"a", "b"},
		logger.CollectErrorEntries(errors.Join(errors.New("a"), errors.New("b"))),
	)
	assert.Equal(t,
		[]string{"wrapped: inner"},
		logger.CollectErrorEntries(fmt.Errorf("wrapped: %w", errors.New("inner"))),
	)
}

func TestPrettyHandler(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	h := logger.NewPrettyHandler(buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	lg := slog.New(h).With("relay", "wss://nos.lol").WithGroup("req")

	lg.Debug("filtered")
	lg.Info("query", "kind", 3)
	lg.Error("failed")

	assert.Equal(t, "query req.relay=wss://nos.lol req.kind=3\n✗ failed req.relay=wss://nos.lol\n", buf.String())
	assert.False(t, h.Enabled(t.Context(), slog.LevelDebug))
}
