package diagnostics

import (
	"fmt"
	"sync"

	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/ports"
)

// Sender publishes diagnostic messages under a fixed source name to any
// number of subscribed sinks
type Sender struct {
	name string

	mu     sync.RWMutex
	nextID int
	subs   []subscription
}

type subscription struct {
	id       int
	minLevel domain.Level
	sink     ports.DiagnosticSink
}

// NewSender creates a Sender publishing as name
func NewSender(name string) *Sender {
	return &Sender{name: name}
}

// Name returns the source name records are published under
func (s *Sender) Name() string {
	return s.name
}

// Subscribe registers sink for records at or above minLevel.
// The returned function removes the subscription and is safe to call more than once.
func (s *Sender) Subscribe(sink ports.DiagnosticSink, minLevel domain.Level) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs = append(s.subs, subscription{id: id, minLevel: minLevel, sink: sink})
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Send publishes message at level
func (s *Sender) Send(level domain.Level, message string) {
	s.publish(s.name, level, message)
}

// Sendf publishes a formatted message at level
func (s *Sender) Sendf(level domain.Level, format string, args ...any) {
	s.publish(s.name, level, fmt.Sprintf(format, args...))
}

// Chain returns a sink that republishes records from another sender through
// this one, prefixing their source with this sender's name.
func (s *Sender) Chain() ports.DiagnosticSink {
	return ports.DiagnosticSinkFunc(func(source string, level domain.Level, message string) {
		s.publish(s.name+"/"+source, level, message)
	})
}

// publish delivers to a snapshot of the subscriptions so that sinks may
// subscribe or unsubscribe from inside Send.
func (s *Sender) publish(source string, level domain.Level, message string) {
	s.mu.RLock()
	subs := make([]subscription, len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()

	for _, sub := range subs {
		if level >= sub.minLevel {
			sub.sink.Send(source, level, message)
		}
	}
}
