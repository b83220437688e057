package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetchesTotal *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	spreadBP     *prometheus.GaugeVec
	regimeTotal  *prometheus.CounterVec
	latency      *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		fetchesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spreadwatch_fetches_total",
				Help: "Total number of series fetches by outcome",
			},
			[]string{"series", "outcome"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spreadwatch_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		spreadBP: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "spreadwatch_spread_bp",
				Help: "Latest computed spread in basis points per definition",
			},
			[]string{"definition"},
		),
		regimeTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spreadwatch_classifications_total",
				Help: "Classifications observed per definition and regime",
			},
			[]string{"definition", "regime"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spreadwatch_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetch records a series fetch outcome ("ok" or "error").
func (r *Recorder) RecordFetch(series, outcome string) {
	r.fetchesTotal.WithLabelValues(series, outcome).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordSpread records the latest spread value for a definition.
func (r *Recorder) RecordSpread(definition string, bp float64) {
	r.spreadBP.WithLabelValues(definition).Set(bp)
}

// RecordRegime records a classification result for a definition.
func (r *Recorder) RecordRegime(definition, regime string) {
	r.regimeTotal.WithLabelValues(definition, regime).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
