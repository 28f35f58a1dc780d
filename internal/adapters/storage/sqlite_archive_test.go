package storage

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/ports"
)

func newTestArchive(t *testing.T) *SQLiteArchive {
	t.Helper()
	archive, err := NewSQLiteArchive(filepath.Join(t.TempDir(), "nested", "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = archive.Close() })
	return archive
}

func seedRecords(t *testing.T, archive *SQLiteArchive) time.Time {
	t.Helper()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.Record{
		{Level: domain.LevelLifecycle, Message: "Configured.", RunID: "run-1", Source: "Lurker", Time: base},
		{Level: domain.LevelActivity, Message: "[#alpha] +bob", RunID: "run-1", Source: "Lurker", Time: base.Add(time.Second)},
		{Level: domain.LevelError, Message: "boom", RunID: "run-1", Source: "Lurker/TMI", Time: base.Add(2 * time.Second)},
		{Level: domain.LevelActivity, Message: "Logged in.", RunID: "run-2", Source: "Lurker", Time: base.Add(3 * time.Second)},
	}
	for _, r := range records {
		require.NoError(t, archive.Append(context.Background(), r))
	}
	return base
}

func TestSQLiteArchive_RecentNewestFirst(t *testing.T) {
	archive := newTestArchive(t)
	base := seedRecords(t, archive)

	records, err := archive.Recent(context.Background(), ports.RecordFilter{})

	require.NoError(t, err)
	require.Len(t, records, 4)
	assert.Equal(t, "Logged in.", records[0].Message)
	assert.Equal(t, "Configured.", records[3].Message)
	assert.True(t, records[3].Time.Equal(base))
	assert.Equal(t, domain.LevelLifecycle, records[3].Level)
	assert.Equal(t, "run-1", records[3].RunID)
	assert.Equal(t, "Lurker", records[3].Source)
}

func TestSQLiteArchive_RecentFilters(t *testing.T) {
	archive := newTestArchive(t)
	base := seedRecords(t, archive)

	tests := []struct {
		name     string
		filter   ports.RecordFilter
		expected []string
	}{
		{
			name:     "limit",
			filter:   ports.RecordFilter{Limit: 2},
			expected: []string{"Logged in.", "boom"},
		},
		{
			name:     "min level",
			filter:   ports.RecordFilter{MinLevel: domain.LevelLifecycle},
			expected: []string{"boom", "Configured."},
		},
		{
			name:     "run id",
			filter:   ports.RecordFilter{RunID: "run-2"},
			expected: []string{"Logged in."},
		},
		{
			name:     "since",
			filter:   ports.RecordFilter{Since: base.Add(2 * time.Second)},
			expected: []string{"Logged in.", "boom"},
		},
		{
			name:     "combined",
			filter:   ports.RecordFilter{MinLevel: domain.LevelActivity, RunID: "run-1", Limit: 1},
			expected: []string{"boom"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := archive.Recent(context.Background(), tt.filter)
			require.NoError(t, err)

			var messages []string
			for _, r := range records {
				messages = append(messages, r.Message)
			}
			assert.Equal(t, tt.expected, messages)
		})
	}
}

func TestSQLiteArchive_ReopenKeepsRecords(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "archive.db")

	archive, err := NewSQLiteArchive(dbPath)
	require.NoError(t, err)
	require.NoError(t, archive.Append(context.Background(), domain.Record{
		Level: domain.LevelActivity, Message: "persisted", RunID: "r", Source: "Lurker", Time: time.Now(),
	}))
	require.NoError(t, archive.Close())

	reopened, err := NewSQLiteArchive(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.Recent(context.Background(), ports.RecordFilter{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "persisted", records[0].Message)
}

func TestSQLiteArchive_AppendAfterCloseFails(t *testing.T) {
	archive, err := NewSQLiteArchive(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	require.NoError(t, archive.Close())

	err = archive.Append(context.Background(), domain.Record{Message: "late", Time: time.Now()})

	assert.Error(t, err)
}

func TestWithRetry(t *testing.T) {
	busy := sqlite3.Error{Code: sqlite3.ErrBusy}

	t.Run("succeeds after busy", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 2 {
				return busy
			}
			return nil
		}, 3)

		assert.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("gives up when always busy", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return fmt.Errorf("insert: %w", busy)
		}, 3)

		assert.ErrorIs(t, err, domain.ErrArchiveBusy)
		assert.Equal(t, 3, calls)
	})

	t.Run("other errors are returned immediately", func(t *testing.T) {
		cause := errors.New("disk full")
		calls := 0
		err := withRetry(func() error {
			calls++
			return cause
		}, 3)

		assert.ErrorIs(t, err, cause)
		assert.Equal(t, 1, calls)
	})
}
