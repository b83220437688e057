package repository

import (
	"time"

	"SpreadWatch/internal/domain/models"
)

// Period is a preset lookback for the view's date range.
type Period string

const (
	Period1M  Period = "1m"
	Period3M  Period = "3m"
	Period6M  Period = "6m"
	Period1Y  Period = "1y"
	Period2Y  Period = "2y"
	PeriodMax Period = "max"
)

// periodDays mirrors the dashboard's picker; "max" is a ten-year lookback.
var periodDays = map[Period]int{
	Period1M:  30,
	Period3M:  90,
	Period6M:  180,
	Period1Y:  365,
	Period2Y:  730,
	PeriodMax: 3650,
}

// IsValidPeriod returns true if p is a supported period preset.
func IsValidPeriod(p Period) bool {
	_, ok := periodDays[p]
	return ok
}

// DefaultPeriod returns the default lookback.
func DefaultPeriod() Period { return Period1Y }

// NormalizePeriod converts a raw string to a valid period (or default).
func NormalizePeriod(s string) Period {
	if s == "" {
		return DefaultPeriod()
	}
	p := Period(s)
	if IsValidPeriod(p) {
		return p
	}
	return DefaultPeriod()
}

// Window is the resolved date range of one view refresh, civil dates at
// UTC midnight, inclusive on both ends.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowForPeriod resolves a preset against the current date.
func WindowForPeriod(p Period, now time.Time) Window {
	end := models.Midnight(now)
	days, ok := periodDays[p]
	if !ok {
		days = periodDays[DefaultPeriod()]
	}
	return Window{Start: end.AddDate(0, 0, -days), End: end}
}

// NewWindow builds an explicit range. A zero end means "through today".
func NewWindow(start, end, now time.Time) Window {
	if end.IsZero() {
		end = now
	}
	return Window{Start: models.Midnight(start), End: models.Midnight(end)}
}

// Valid reports whether the window is non-empty and correctly ordered.
func (w Window) Valid() bool {
	return !w.Start.IsZero() && !w.End.Before(w.Start)
}
