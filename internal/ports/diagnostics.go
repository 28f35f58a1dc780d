package ports

import (
	"context"
	"time"

	"github.com/lurkerbot/lurker/internal/domain"
)

// DiagnosticSink receives diagnostic records
type DiagnosticSink interface {
	Send(source string, level domain.Level, message string)
}

// DiagnosticSinkFunc adapts a function to DiagnosticSink
type DiagnosticSinkFunc func(source string, level domain.Level, message string)

// Send calls f
func (f DiagnosticSinkFunc) Send(source string, level domain.Level, message string) {
	f(source, level, message)
}

// RecordFilter specifies criteria for reading archived records
type RecordFilter struct {
	Limit    int
	MinLevel domain.Level
	RunID    string
	Since    time.Time
}

// RecordArchive persists diagnostic records
type RecordArchive interface {
	Append(ctx context.Context, record domain.Record) error
	// Recent returns matching records, newest first
	Recent(ctx context.Context, filter RecordFilter) ([]domain.Record, error)
	Close() error
}
