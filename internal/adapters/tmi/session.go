package tmi

import (
	"context"
	"sync"
	"time"

	"github.com/lurkerbot/lurker/internal/domain"
	"github.com/lurkerbot/lurker/internal/ports"
)

// session is the state of one connection attempt, from factory call to hang-up
type session struct {
	loggedIn     chan struct{}
	loggedInOnce sync.Once

	writeMu sync.Mutex

	mu         sync.Mutex
	conn       ports.Connection
	cancel     context.CancelFunc
	quitting   bool
	graceTimer *time.Timer
}

func newSession() *session {
	return &session{loggedIn: make(chan struct{})}
}

// attach binds the open connection. It reports false when a logout arrived
// while the connection was still being opened.
func (s *session) attach(conn ports.Connection, cancel context.CancelFunc) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.quitting {
		return false
	}
	s.conn = conn
	s.cancel = cancel
	return true
}

// markLoggedIn reports true only the first time it is called
func (s *session) markLoggedIn() bool {
	first := false
	s.loggedInOnce.Do(func() {
		close(s.loggedIn)
		first = true
	})
	return first
}

func (s *session) isQuitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quitting
}

func (s *session) write(line string) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return domain.ErrNotConnected
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return conn.WriteLine(line)
}

// quit sends the farewell and arms the forced hang-up. Later calls do nothing.
func (s *session) quit(farewell string, grace time.Duration) {
	s.mu.Lock()
	if s.quitting {
		s.mu.Unlock()
		return
	}
	s.quitting = true
	cancel := s.cancel
	if cancel != nil {
		s.graceTimer = time.AfterFunc(grace, cancel)
	}
	s.mu.Unlock()

	if cancel == nil {
		// Still connecting; attach will refuse the connection.
		return
	}
	if err := s.write("QUIT :" + farewell); err != nil {
		cancel()
	}
}

func (s *session) stopGraceTimer() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.graceTimer != nil {
		s.graceTimer.Stop()
	}
}
