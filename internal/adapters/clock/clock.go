package clock

import (
	"time"

	"github.com/lurkerbot/lurker/internal/ports"
)

// System reads the wall clock
type System struct{}

// Compile-time interface verification
var _ ports.TimeKeeper = System{}

// NewSystem creates a wall-clock TimeKeeper
func NewSystem() System {
	return System{}
}

// Now returns time.Now()
func (System) Now() time.Time {
	return time.Now()
}
