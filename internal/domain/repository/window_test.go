package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePeriod(t *testing.T) {
	assert.Equal(t, Period1Y, NormalizePeriod(""))
	assert.Equal(t, Period3M, NormalizePeriod("3m"))
	assert.Equal(t, PeriodMax, NormalizePeriod("max"))
	assert.Equal(t, Period1Y, NormalizePeriod("7w"))
}

func TestWindowForPeriod(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)

	w := WindowForPeriod(Period1M, now)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), w.End)
	assert.Equal(t, time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC), w.Start)
	assert.True(t, w.Valid())

	// "max" is a ten-year lookback, not unbounded.
	w = WindowForPeriod(PeriodMax, now)
	assert.Equal(t, w.End.AddDate(0, 0, -3650), w.Start)
}

func TestNewWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 13, 45, 0, 0, time.UTC)
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	w := NewWindow(start, time.Time{}, now)
	assert.Equal(t, start, w.Start)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), w.End, "zero end means through today")

	w = NewWindow(start, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), now)
	assert.True(t, w.Valid())

	w = NewWindow(start, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), now)
	assert.False(t, w.Valid(), "end before start is invalid")
}
