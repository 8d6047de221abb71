package lru

import "time"

// Clock reads the current time. The cache never calls the system clock
// directly, so tests can inject a fixed clock and hit exact expiry
// boundaries. A Clock must be side-effect free.
type Clock interface {
	Now() time.Time
}

// systemClock is the default clock, backed by time.Now.
type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
