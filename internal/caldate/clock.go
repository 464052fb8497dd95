package caldate

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// It resolves "today" for date keywords and for current-year holiday lists.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock frozen at a single instant.
type FixedClock time.Time

// Now returns the frozen instant.
func (c FixedClock) Now() time.Time {
	return time.Time(c)
}

// Today returns the calendar date of the clock's current instant.
func Today(c Clock) Date {
	if c == nil {
		c = RealClock{}
	}
	return FromTime(c.Now())
}
