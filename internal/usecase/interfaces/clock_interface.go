package interfaces

import "time"

// Clock injects wall-clock time so history timestamps and the urgency
// threshold are testable.

type Clock interface {
	Now() time.Time
}

// UTCClock is the production Clock.
type UTCClock struct{}

func (UTCClock) Now() time.Time {
	return time.Now().UTC()
}
