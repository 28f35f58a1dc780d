package diagnostics

import (
	"context"
	"log/slog"

	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/logging"
)

// LogSink mirrors diagnostic records into the process debug log
type LogSink struct{}

// NewLogSink creates a LogSink writing to logging.Logger
func NewLogSink() *LogSink {
	return &LogSink{}
}

// Send logs the record with a slog level derived from level
func (s *LogSink) Send(source string, level domain.Level, message string) {
	logging.Logger.Log(context.Background(), SlogLevel(level), message,
		"source", source,
		"diag_level", int(level))
}

// SlogLevel maps a diagnostic level onto the slog scale
func SlogLevel(level domain.Level) slog.Level {
	switch {
	case level >= domain.LevelError:
		return slog.LevelError
	case level >= domain.LevelWarning:
		return slog.LevelWarn
	case level >= domain.LevelLifecycle:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}
