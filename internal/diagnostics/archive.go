package diagnostics

import (
	"context"
	"sync"
	"time"

	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/logging"
	"github.com/lurkerbot/lurker/internal/ports"
)

const (
	defaultArchiveBufferSize = 1024
	defaultDrainTimeout      = 5 * time.Second
)

// ArchiveOption configures an ArchiveSink
type ArchiveOption func(*ArchiveSink)

// WithBufferSize sets the queue capacity. Default: 1024.
func WithBufferSize(n int) ArchiveOption {
	return func(a *ArchiveSink) { a.bufSize = n }
}

// WithDropOnFull makes Send drop records instead of blocking when the queue is full
func WithDropOnFull() ArchiveOption {
	return func(a *ArchiveSink) { a.dropOnFull = true }
}

// WithOnError sets the callback for failed appends. Default: logs a warning.
func WithOnError(f func(error)) ArchiveOption {
	return func(a *ArchiveSink) { a.errFunc = f }
}

// ArchiveSink queues records and appends them to a RecordArchive from a
// background goroutine, so that Send never waits on storage I/O unless the
// queue is full.
type ArchiveSink struct {
	archive ports.RecordArchive
	clock   ports.TimeKeeper
	runID   string

	bufSize    int
	dropOnFull bool
	errFunc    func(error)

	mu     sync.RWMutex
	closed bool
	ch     chan domain.Record
	done   chan struct{}
}

// Verify interface compliance at compile time
var _ ports.DiagnosticSink = (*ArchiveSink)(nil)

// NewArchiveSink starts draining into archive. Records are stamped with runID
// and the time reported by clock when Send is called.
func NewArchiveSink(archive ports.RecordArchive, clock ports.TimeKeeper, runID string, opts ...ArchiveOption) *ArchiveSink {
	a := &ArchiveSink{
		archive: archive,
		clock:   clock,
		runID:   runID,
		bufSize: defaultArchiveBufferSize,
		errFunc: func(err error) {
			logging.Logger.Warn("Failed to archive diagnostic record", "error", err)
		},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.ch = make(chan domain.Record, a.bufSize)
	a.done = make(chan struct{})
	go a.drain()
	return a
}

// Send queues the record. Records sent after Close are discarded.
func (a *ArchiveSink) Send(source string, level domain.Level, message string) {
	record := domain.Record{
		Level:   level,
		Message: message,
		RunID:   a.runID,
		Source:  source,
		Time:    a.clock.Now(),
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return
	}

	if a.dropOnFull {
		select {
		case a.ch <- record:
		default:
			logging.Logger.Warn("Archive queue full, dropping record", "source", source, "diag_level", int(level))
		}
		return
	}
	a.ch <- record
}

// Close stops accepting records and waits (bounded) for the queue to drain
func (a *ArchiveSink) Close() error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil
	}
	a.closed = true
	close(a.ch)
	a.mu.Unlock()

	select {
	case <-a.done:
	case <-time.After(defaultDrainTimeout):
		logging.Logger.Warn("Archive drain timed out")
	}
	return nil
}

func (a *ArchiveSink) drain() {
	defer close(a.done)
	for record := range a.ch {
		if err := a.archive.Append(context.Background(), record); err != nil {
			a.errFunc(err)
		}
	}
}
