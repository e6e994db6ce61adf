// Package biztime provides utilities for business timezone calculations.
// Storage and transport use UTC. The business timezone only decides calendar
// boundaries: where an hour starts, what "one month later" means and how a
// date is printed for a student.
package biztime

import (
	"fmt"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "America/Sao_Paulo"

	// DisplayDateLayout renders dates the way students read them (dd/MM/yyyy).
	DisplayDateLayout = "02/01/2006"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Accepted input layouts, tried in order. Layouts without an offset are
// interpreted in the business timezone.
var inputLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to America/Sao_Paulo.
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

// Location returns the business timezone location, initializing the default
// one on first use.
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

// ToBizTimezone converts a time to business timezone for display.
func ToBizTimezone(t time.Time) time.Time {
	return t.In(Location())
}

// StartOfHour truncates t to the start of its hour in the business timezone
// and returns the UTC equivalent.
func StartOfHour(t time.Time) time.Time {
	bizTime := t.In(Location())
	truncated := time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), bizTime.Hour(), 0, 0, 0, Location())
	return truncated.UTC()
}

// AddMonths adds n calendar months to t in the business timezone. When the
// day of month does not exist in the target month the result is clamped to
// the target month's last day, so Jan 31 + 1 month is Feb 28 (or 29).
func AddMonths(t time.Time, n int) time.Time {
	bizTime := t.In(Location())
	year, month, day := bizTime.Date()

	firstOfTarget := time.Date(year, month+time.Month(n), 1, 0, 0, 0, 0, Location())
	if last := daysIn(firstOfTarget.Year(), firstOfTarget.Month()); day > last {
		day = last
	}

	result := time.Date(
		firstOfTarget.Year(), firstOfTarget.Month(), day,
		bizTime.Hour(), bizTime.Minute(), bizTime.Second(), bizTime.Nanosecond(),
		Location(),
	)
	return result.UTC()
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatInBizTimezone formats a time as a string in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}

// FormatDisplayDate formats t as dd/MM/yyyy in business timezone.
func FormatDisplayDate(t time.Time) string {
	return FormatInBizTimezone(t, DisplayDateLayout)
}

// ParseDateTime parses an ISO-8601 date or date-time. Values carrying an
// offset keep it; the rest are read as business timezone wall clock.
// The result is always UTC.
func ParseDateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	for _, layout := range inputLayouts {
		var (
			t   time.Time
			err error
		)
		if layout == time.RFC3339Nano {
			t, err = time.Parse(layout, value)
		} else {
			t, err = time.ParseInLocation(layout, value, Location())
		}
		if err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date format %q", value)
}
