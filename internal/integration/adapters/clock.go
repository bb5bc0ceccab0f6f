package adapters

import "time"

// SystemClock reports the current wall-clock time.
type SystemClock struct{}

// NewSystemClock creates a new system clock.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time.
func (c *SystemClock) Now() time.Time {
	return time.Now()
}
