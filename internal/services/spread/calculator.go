package spread

import (
	"math"

	"SpreadWatch/internal/domain/models"
)

// Compute derives the spread series from an aligned pair: per row,
// multiplier * (a - b). The aligner guarantees full rows, so a non-finite
// value on either side is a DataIntegrityError rather than a NaN silently
// propagated into a chart.
func Compute(pair models.AlignedPair, multiplier float64) (models.SpreadSeries, error) {
	series := make(models.SpreadSeries, 0, len(pair.Rows))
	for _, row := range pair.Rows {
		if !isFinite(row.A) {
			return nil, &DataIntegrityError{Date: row.Date, Field: "a"}
		}
		if !isFinite(row.B) {
			return nil, &DataIntegrityError{Date: row.Date, Field: "b"}
		}
		series = append(series, models.SpreadPoint{
			Date:  row.Date,
			Value: multiplier * (row.A - row.B),
		})
	}
	return series, nil
}

// Summarize reduces a spread series to its latest, mean, min, and max.
func Summarize(series models.SpreadSeries) (models.SummaryStats, error) {
	if len(series) == 0 {
		return models.SummaryStats{}, ErrEmptySeries
	}

	stats := models.SummaryStats{
		Latest: series.Latest().Value,
		Min:    series[0].Value,
		Max:    series[0].Value,
		Count:  len(series),
	}
	var sum float64
	for _, p := range series {
		sum += p.Value
		if p.Value < stats.Min {
			stats.Min = p.Value
		}
		if p.Value > stats.Max {
			stats.Max = p.Value
		}
	}
	stats.Mean = sum / float64(len(series))
	return stats, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
