package diagnostics

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/logging"
)

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    domain.Level
		expected slog.Level
	}{
		{domain.LevelActivity, slog.LevelDebug},
		{domain.LevelSignal, slog.LevelDebug},
		{domain.LevelLifecycle, slog.LevelInfo},
		{domain.LevelWarning, slog.LevelWarn},
		{domain.LevelError, slog.LevelError},
		{domain.Level(42), slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, SlogLevel(tt.level))
		})
	}
}

func TestLogSink_WritesStructuredEntry(t *testing.T) {
	var buf bytes.Buffer
	previous := logging.Logger
	logging.Logger = slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	t.Cleanup(func() { logging.Logger = previous })

	NewLogSink().Send("Lurker/TMI", domain.LevelWarning, "slow server")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "slow server", entry["msg"])
	assert.Equal(t, "Lurker/TMI", entry["source"])
	assert.InDelta(t, 5, entry["diag_level"], 0)
}
