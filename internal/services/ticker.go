package services

import (
	"sync"
	"time"

	"github.com/lurkerbot/lurker/internal/ports"
)

// TickHook runs on the ticker goroutine once per period.
// It must not call Start or Stop on the ticker that runs it.
type TickHook func(now time.Time)

// Ticker runs a hook periodically on a background goroutine while started
type Ticker struct {
	clock  ports.TimeKeeper
	hook   TickHook
	period time.Duration

	// lifecycle is held for the whole of Start and Stop, including the wait
	// for the goroutine to exit. The goroutine itself never takes it.
	lifecycle sync.Mutex
	stop      chan struct{}
	done      chan struct{}
}

// NewTicker creates a stopped Ticker. A nil hook only reads the clock.
func NewTicker(period time.Duration, clock ports.TimeKeeper, hook TickHook) *Ticker {
	if hook == nil {
		hook = func(time.Time) {}
	}
	return &Ticker{
		clock:  clock,
		hook:   hook,
		period: period,
	}
}

// Start launches the background goroutine unless it is already running
func (t *Ticker) Start() {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	if t.stop != nil {
		return
	}
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.run(t.stop, t.done)
}

// Stop signals the background goroutine and waits until it has exited.
// Stopping a ticker that is not running does nothing.
func (t *Ticker) Stop() {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()

	if t.stop == nil {
		return
	}
	close(t.stop)
	<-t.done
	t.stop = nil
	t.done = nil
}

// Running reports whether the background goroutine is active
func (t *Ticker) Running() bool {
	t.lifecycle.Lock()
	defer t.lifecycle.Unlock()
	return t.stop != nil
}

func (t *Ticker) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	tick := time.NewTicker(t.period)
	defer tick.Stop()

	for {
		select {
		case <-stop:
			return
		case <-tick.C:
			t.hook(t.clock.Now())
		}
	}
}
