package diagnostics

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lurkerbot/lurker/internal/domain"
	portsmocks "github.com/lurkerbot/lurker/internal/ports/mocks"
)

var archiveTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newFixedClock(t *testing.T) *portsmocks.MockTimeKeeper {
	clock := portsmocks.NewMockTimeKeeper(t)
	clock.EXPECT().Now().Return(archiveTime).Maybe()
	return clock
}

func TestArchiveSink_StampsAndDrainsInOrder(t *testing.T) {
	archive := portsmocks.NewMockRecordArchive(t)

	var mu sync.Mutex
	var got []domain.Record
	archive.EXPECT().Append(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r domain.Record) error {
			mu.Lock()
			defer mu.Unlock()
			got = append(got, r)
			return nil
		}).Times(2)

	sink := NewArchiveSink(archive, newFixedClock(t), "run-1")
	sink.Send("Lurker", domain.LevelLifecycle, "Configured.")
	sink.Send("Lurker/TMI", domain.LevelWarning, "slow server")
	require.NoError(t, sink.Close())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []domain.Record{
		{Level: domain.LevelLifecycle, Message: "Configured.", RunID: "run-1", Source: "Lurker", Time: archiveTime},
		{Level: domain.LevelWarning, Message: "slow server", RunID: "run-1", Source: "Lurker/TMI", Time: archiveTime},
	}, got)
}

func TestArchiveSink_DiscardsAfterClose(t *testing.T) {
	archive := portsmocks.NewMockRecordArchive(t)
	sink := NewArchiveSink(archive, newFixedClock(t), "run-1")

	require.NoError(t, sink.Close())
	require.NoError(t, sink.Close())
	sink.Send("Lurker", domain.LevelActivity, "late")

	archive.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
}

func TestArchiveSink_ReportsAppendErrors(t *testing.T) {
	archive := portsmocks.NewMockRecordArchive(t)
	archive.EXPECT().Append(mock.Anything, mock.Anything).Return(domain.ErrArchiveBusy).Once()

	var mu sync.Mutex
	var errs []error
	sink := NewArchiveSink(archive, newFixedClock(t), "run-1", WithOnError(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		errs = append(errs, err)
	}))
	sink.Send("Lurker", domain.LevelActivity, "hello")
	require.NoError(t, sink.Close())

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs[0], domain.ErrArchiveBusy))
}

func TestArchiveSink_DropOnFullNeverBlocks(t *testing.T) {
	archive := portsmocks.NewMockRecordArchive(t)
	release := make(chan struct{})
	archive.EXPECT().Append(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, domain.Record) error {
			<-release
			return nil
		}).Maybe()

	sink := NewArchiveSink(archive, newFixedClock(t), "run-1", WithBufferSize(1), WithDropOnFull())

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			sink.Send("Lurker", domain.LevelActivity, "flood")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Send blocked with WithDropOnFull")
	}
	close(release)
	require.NoError(t, sink.Close())
}
