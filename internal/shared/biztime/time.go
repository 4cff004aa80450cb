// Package biztime provides the business clock and calendar arithmetic.
// All storage and transport use UTC. The business timezone is only used for
// calendar math (month and year boundaries).
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "UTC"

	// Day is the length of one whole day for refund arithmetic.
	Day = 24 * time.Hour
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to UTC.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, initializing the default on first use.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ToBizTimezone converts a time to the business timezone for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// AddMonths adds n calendar months to t in the business timezone. When the
// target month is shorter than t's day, the result is clamped to the last day
// of that month (Jan 31 + 1 month = Feb 28, or Feb 29 in a leap year).
// Wall-clock time is preserved and the result is returned in t's location.
func AddMonths(t time.Time, n int) time.Time {
	loc := t.Location()
	biz := t.In(Location())

	year, month, day := biz.Date()
	total := int(month) - 1 + n
	targetYear := year + floorDiv(total, 12)
	targetMonth := time.Month(floorMod(total, 12) + 1)

	if last := DaysIn(targetYear, targetMonth); day > last {
		day = last
	}

	hour, minute, sec := biz.Clock()
	return time.Date(targetYear, targetMonth, day, hour, minute, sec, biz.Nanosecond(), Location()).In(loc)
}

// AddYears adds n calendar years to t. Feb 29 becomes Feb 28 in a non-leap year.
func AddYears(t time.Time, n int) time.Time {
	return AddMonths(t, 12*n)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WholeDays returns the number of whole days from 'from' to 'to', truncated
// toward zero. It is negative when 'to' is before 'from'.
func WholeDays(from, to time.Time) int {
	return int(to.Sub(from) / Day)
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
