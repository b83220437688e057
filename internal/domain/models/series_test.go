package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewSeriesSortsByDate(t *testing.T) {
	s := NewSeries("DGS10", []Observation{
		{Date: date(2024, 3, 1), Value: 4.2},
		{Date: date(2024, 1, 1), Value: 4.0},
		{Date: date(2024, 2, 1), Value: 4.1},
	})

	require.Equal(t, 3, s.Len())
	assert.Equal(t, date(2024, 1, 1), s.First().Date)
	assert.Equal(t, date(2024, 3, 1), s.Latest().Date)
	for i := 1; i < s.Len(); i++ {
		assert.True(t, s.Observations[i-1].Date.Before(s.Observations[i].Date))
	}
}

func TestNewSeriesDuplicateDatesLastWins(t *testing.T) {
	s := NewSeries("EFFR", []Observation{
		{Date: date(2024, 1, 1), Value: 5.30},
		{Date: date(2024, 1, 2), Value: 5.31},
		{Date: date(2024, 1, 1), Value: 5.33},
	})

	require.Equal(t, 2, s.Len())
	assert.Equal(t, 5.33, s.First().Value, "last occurrence of a duplicate date wins")
}

func TestNewSeriesNormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("KST", 9*3600)
	s := NewSeries("SOFR", []Observation{
		{Date: time.Date(2024, 1, 2, 14, 30, 0, 0, loc), Value: 5.4},
	})

	require.Equal(t, 1, s.Len())
	assert.Equal(t, date(2024, 1, 2), s.First().Date)
}

func TestNewSeriesEmpty(t *testing.T) {
	s := NewSeries("X", nil)
	assert.True(t, s.Empty())
	assert.Equal(t, 0, s.Len())
}
