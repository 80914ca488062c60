package clock

import "time"

// Clock is the time source injected into services. Token issue and expiry
// both read from it, so tests can pin and advance time deterministically.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}
