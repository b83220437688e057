package spread

import (
	"sort"
	"time"

	"SpreadWatch/internal/domain/models"
)

// Align merges two independently-sampled series onto the union of their
// dates, carrying the last known value of each leg forward across gaps.
// Dates before both legs have at least one observation are dropped, so
// every retained row has both values defined. Output ascends by date;
// downstream "latest value" extraction depends on that ordering.
//
// Pure function: same inputs always produce the same output.
func Align(a, b models.Series) (models.AlignedPair, error) {
	if a.Empty() {
		return models.AlignedPair{}, &AlignmentError{SeriesID: a.ID}
	}
	if b.Empty() {
		return models.AlignedPair{}, &AlignmentError{SeriesID: b.ID}
	}

	union := make(map[time.Time]struct{}, a.Len()+b.Len())
	for _, o := range a.Observations {
		union[o.Date] = struct{}{}
	}
	for _, o := range b.Observations {
		union[o.Date] = struct{}{}
	}
	dates := make([]time.Time, 0, len(union))
	for d := range union {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	pair := models.AlignedPair{SeriesA: a.ID, SeriesB: b.ID}
	var (
		ia, ib       int
		lastA, lastB float64
		haveA, haveB bool
	)
	for _, d := range dates {
		for ia < a.Len() && !a.Observations[ia].Date.After(d) {
			lastA = a.Observations[ia].Value
			haveA = true
			ia++
		}
		for ib < b.Len() && !b.Observations[ib].Date.After(d) {
			lastB = b.Observations[ib].Value
			haveB = true
			ib++
		}
		if !haveA || !haveB {
			// Leading gap before the first observation of one leg.
			continue
		}
		pair.Rows = append(pair.Rows, models.AlignedRow{Date: d, A: lastA, B: lastB})
	}

	return pair, nil
}
