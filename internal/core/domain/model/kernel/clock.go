package kernel

import "time"

// Clock supplies the current instant. Rules that depend on elapsed time,
// such as the overdue relaxation of the pipeline, take a Clock instead of
// calling time.Now so that tests can pin "now".
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// NewSystemClock returns the production clock.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns time.Now in UTC.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	at time.Time
}

// NewFixedClock returns a clock frozen at the given instant.
func NewFixedClock(at time.Time) FixedClock {
	return FixedClock{at: at}
}

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return c.at
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time {
	return f()
}
