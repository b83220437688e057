package util

import (
	"time"
)

// DateLayout is the civil date format used across the API and FRED.
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD civil date at UTC midnight. Returns
// (t, true) if it parsed.
func ParseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseDateDefault parses a date or returns default if empty/invalid.
func ParseDateDefault(s string, def time.Time) time.Time {
	if t, ok := ParseDate(s); ok {
		return t
	}
	return def
}

// FormatDate renders t as a YYYY-MM-DD civil date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Day builds a civil date at UTC midnight.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
