package ports

import "time"

// TimeKeeper provides the current time
type TimeKeeper interface {
	Now() time.Time
}
