// Package datetime provides date and time utility functions.
package datetime

import (
	"strings"
	"time"

	"github.com/iwvelando/severance-calculator/pkg/constants"
)

const (
	// DateLayout is the format expected in config files and requests and is
	// also the output date format.
	DateLayout = constants.DateLayout

	secondsPerDay = int64(24 * time.Hour / time.Second)
)

// MustParseTime parses a date string using the given layout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseTime(layout, dateStr string) time.Time {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a calendar date in DateLayout. Dates are interpreted as
// UTC midnight so that day arithmetic is not affected by DST transitions.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(value))
}

// ElapsedDays returns the whole number of days between two instants, rounded
// up. The order of the arguments does not matter. It works on Unix seconds
// because time.Duration saturates at about 292 years.
func ElapsedDays(start, end time.Time) int {
	secs := end.Unix() - start.Unix()
	nanos := int64(end.Nanosecond() - start.Nanosecond())
	if secs < 0 || (secs == 0 && nanos < 0) {
		secs, nanos = -secs, -nanos
	}
	if nanos < 0 {
		secs--
		nanos += int64(time.Second)
	}

	days := secs / secondsPerDay
	if secs%secondsPerDay != 0 || nanos != 0 {
		days++
	}
	return int(days)
}

// Truncate drops the time of day, keeping the calendar date in UTC.
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DateBeforeDate returns true if firstDate is strictly before secondDate.
func DateBeforeDate(firstDate string, secondDate string) (bool, error) {
	firstDateT, err := ParseDate(firstDate)
	if err != nil {
		return false, err
	}
	secondDateT, err := ParseDate(secondDate)
	if err != nil {
		return false, err
	}
	return firstDateT.Before(secondDateT), nil
}

// Within reports whether date falls inside the closed range [start, end]. A
// zero end means the range is open-ended.
func Within(date, start, end time.Time) bool {
	if date.Before(start) {
		return false
	}
	return end.IsZero() || !date.After(end)
}
