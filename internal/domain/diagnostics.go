package domain

import (
	"strconv"
	"time"
)

// Level is the severity of a diagnostic record. Higher is more severe.
// The numeric values are shared with every sink and must not change.
type Level int

const (
	LevelActivity  Level = 1  // ordinary chat activity
	LevelSignal    Level = 2  // monetization or connection signals worth noticing
	LevelLifecycle Level = 3  // bot lifecycle (configured, exiting)
	LevelWarning   Level = 5
	LevelError     Level = 10
)

// String returns the symbolic name for known levels and the number otherwise
func (l Level) String() string {
	switch l {
	case LevelActivity:
		return "activity"
	case LevelSignal:
		return "signal"
	case LevelLifecycle:
		return "lifecycle"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return strconv.Itoa(int(l))
	}
}

// Record is one diagnostic line as published to sinks
type Record struct {
	Level   Level
	Message string
	RunID   string
	Source  string
	Time    time.Time
}
