package models

import (
	"sort"
	"time"
)

// Observation is a single dated value of an economic series.
type Observation struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series holds the observations of one indicator, strictly ascending by
// date with unique dates. Use NewSeries to build one; it enforces both
// invariants, which downstream alignment relies on.
type Series struct {
	ID           string        `json:"id"`
	Observations []Observation `json:"observations"`
}

// NewSeries normalizes raw observations into a Series: dates are truncated
// to UTC midnight, sorted ascending, and duplicate dates collapse to the
// last occurrence in input order.
func NewSeries(id string, obs []Observation) Series {
	normalized := make([]Observation, 0, len(obs))
	for _, o := range obs {
		normalized = append(normalized, Observation{Date: Midnight(o.Date), Value: o.Value})
	}

	sort.SliceStable(normalized, func(i, j int) bool {
		return normalized[i].Date.Before(normalized[j].Date)
	})

	// Stable sort keeps input order for equal dates, so the last element
	// of each run is the last write.
	deduped := normalized[:0]
	for _, o := range normalized {
		if n := len(deduped); n > 0 && deduped[n-1].Date.Equal(o.Date) {
			deduped[n-1] = o
			continue
		}
		deduped = append(deduped, o)
	}

	return Series{ID: id, Observations: deduped}
}

// Midnight truncates t to a civil date at UTC midnight.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Observations) }

// Empty reports whether the series has no observations.
func (s Series) Empty() bool { return len(s.Observations) == 0 }

// First returns the earliest observation. Caller must check Empty first.
func (s Series) First() Observation { return s.Observations[0] }

// Latest returns the most recent observation. Caller must check Empty first.
func (s Series) Latest() Observation { return s.Observations[len(s.Observations)-1] }
