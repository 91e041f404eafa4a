package clock

import "time"

// Clock supplies the current time so session timestamps can be fixed in tests
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time in UTC. Sessions are stored as JSON, so
// timestamps are normalized before they are persisted.
func (c *RealClock) Now() time.Time {
	return time.Now().UTC()
}
