package services

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lurkerbot/lurker/internal/adapters/clock"
)

func TestTicker_RunsHookWhileStarted(t *testing.T) {
	var ticks atomic.Int32
	ticker := NewTicker(time.Millisecond, clock.NewSystem(), func(time.Time) {
		ticks.Add(1)
	})

	ticker.Start()
	assert.True(t, ticker.Running())
	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, time.Millisecond)

	ticker.Stop()
	assert.False(t, ticker.Running())

	stopped := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load(), "hook must not run after Stop returns")
}

func TestTicker_StartTwiceKeepsOneGoroutine(t *testing.T) {
	var active, maxActive atomic.Int32
	ticker := NewTicker(time.Millisecond, clock.NewSystem(), func(time.Time) {
		n := active.Add(1)
		if n > maxActive.Load() {
			maxActive.Store(n)
		}
		time.Sleep(time.Millisecond)
		active.Add(-1)
	})

	ticker.Start()
	ticker.Start()
	time.Sleep(30 * time.Millisecond)
	ticker.Stop()

	assert.Equal(t, int32(1), maxActive.Load())
}

func TestTicker_StopWithoutStartIsNoop(t *testing.T) {
	ticker := NewTicker(time.Millisecond, clock.NewSystem(), nil)

	ticker.Stop()
	ticker.Stop()

	assert.False(t, ticker.Running())
}

func TestTicker_RestartAfterStop(t *testing.T) {
	var ticks atomic.Int32
	ticker := NewTicker(time.Millisecond, clock.NewSystem(), func(time.Time) {
		ticks.Add(1)
	})

	ticker.Start()
	ticker.Stop()
	before := ticks.Load()

	ticker.Start()
	defer ticker.Stop()
	assert.Eventually(t, func() bool { return ticks.Load() > before }, time.Second, time.Millisecond)
}
