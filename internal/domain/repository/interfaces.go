package repository

import (
	"context"
	"time"

	"SpreadWatch/internal/domain/models"
)

// SeriesSource returns the observations of one named economic series over
// [start, end]. End may be zero for "through latest". Implementations wrap
// transport failures in a per-series error so one unavailable series does
// not take down the definitions that do not use it.
type SeriesSource interface {
	Fetch(ctx context.Context, seriesID string, start, end time.Time) (models.Series, error)
}

// Metrics records domain-level observability signals.
type Metrics interface {
	RecordFetch(series, outcome string)
	RecordLatency(op string, seconds float64)
	RecordSpread(definition string, bp float64)
	RecordRegime(definition, regime string)
	RecordError(kind string)
}
