package biztime

import "time"

// Clock supplies the current instant. Use cases capture it once per operation.
type Clock interface {
	Now() time.Time
}

// RealClock reads the system clock in UTC.
type RealClock struct{}

// Now implements Clock.
func (RealClock) Now() time.Time {
	return NowUTC()
}

// FixedClock always returns FixedTime.
type FixedClock struct {
	FixedTime time.Time
}

// Now implements Clock.
func (c FixedClock) Now() time.Time {
	return c.FixedTime
}
