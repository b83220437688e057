package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"SpreadWatch/internal/domain/models"
	drepo "SpreadWatch/internal/domain/repository"
	"SpreadWatch/internal/services/spread"
	xlogger "SpreadWatch/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// ErrUnknownDefinition is returned when a report is requested for an id
// the registry does not hold.
var ErrUnknownDefinition = errors.New("unknown spread definition")

const defaultFetchTimeout = 15 * time.Second

// SpreadMonitor orchestrates one view refresh: it fetches the underlying
// series concurrently, aligns each definition's legs, computes the spread
// series and summary statistics, and classifies the latest value.
// Fetched data is locally owned per call; the registry is immutable, so
// the monitor is safe for concurrent requests.
type SpreadMonitor struct {
	source       drepo.SeriesSource
	registry     *spread.Registry
	metrics      drepo.Metrics
	logger       *xlogger.Logger
	fetchTimeout time.Duration
}

// NewSpreadMonitor creates the monitor. fetchTimeout bounds each
// individual series fetch; zero selects the default.
func NewSpreadMonitor(
	source drepo.SeriesSource,
	registry *spread.Registry,
	metrics drepo.Metrics,
	logger *xlogger.Logger,
	fetchTimeout time.Duration,
) *SpreadMonitor {
	if fetchTimeout <= 0 {
		fetchTimeout = defaultFetchTimeout
	}
	return &SpreadMonitor{
		source:       source,
		registry:     registry,
		metrics:      metrics,
		logger:       logger,
		fetchTimeout: fetchTimeout,
	}
}

// Registry exposes the validated definitions for the definitions endpoint.
func (m *SpreadMonitor) Registry() *spread.Registry { return m.registry }

// Report computes the full report for one definition. Both legs are
// fetched concurrently; either failure aborts the whole report — a report
// is never assembled from partial data.
func (m *SpreadMonitor) Report(ctx context.Context, defID string, w drepo.Window) (*models.SpreadReport, error) {
	def, ok := m.registry.Get(defID)
	if !ok {
		return nil, ErrUnknownDefinition
	}

	var legA, legB models.Series
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		legA, err = m.fetchOne(gctx, def.SeriesA, w)
		return err
	})
	g.Go(func() error {
		var err error
		legB, err = m.fetchOne(gctx, def.SeriesB, w)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report, err := m.assemble(def, legA, legB)
	if err != nil {
		m.metrics.RecordError(errorKind(err))
		return nil, err
	}
	return report, nil
}

// Overview computes the summary for every definition. The distinct
// underlying series are fetched exactly once each, concurrently; a
// definition whose leg failed, or whose computation fails, contributes an
// unavailable entry with a reason while the others still render.
func (m *SpreadMonitor) Overview(ctx context.Context, w drepo.Window) *models.Overview {
	fetched, failures := m.fetchAll(ctx, m.registry.SeriesIDs(), w)

	overview := &models.Overview{
		Start:       w.Start,
		End:         w.End,
		GeneratedAt: time.Now().UTC(),
	}
	for _, def := range m.registry.All() {
		overview.Entries = append(overview.Entries, m.overviewEntry(def, fetched, failures))
	}
	return overview
}

func (m *SpreadMonitor) overviewEntry(
	def models.SpreadDefinition,
	fetched map[string]models.Series,
	failures map[string]error,
) models.OverviewEntry {
	entry := models.OverviewEntry{
		ID:          def.ID,
		Name:        def.Name,
		Description: def.Description,
		NormalRange: def.NormalRange,
	}

	for _, id := range def.SeriesIDs() {
		if err := failures[id]; err != nil {
			m.logger.Warn("spread unavailable: series fetch failed",
				xlogger.String("definition", def.ID),
				xlogger.String("series", id),
				xlogger.Error(err),
			)
			entry.Reason = "series " + id + " unavailable"
			return entry
		}
	}

	report, err := m.assemble(def, fetched[def.SeriesA], fetched[def.SeriesB])
	if err != nil {
		m.metrics.RecordError(errorKind(err))
		m.logger.Warn("spread unavailable: computation failed",
			xlogger.String("definition", def.ID),
			xlogger.Error(err),
		)
		entry.Reason = unavailableReason(err)
		return entry
	}

	latest := report.Spread.Latest()
	entry.Available = true
	entry.Latest = &latest
	entry.Stats = &report.Stats
	entry.Classification = &report.Classification
	return entry
}

// assemble runs the pure pipeline for one definition: align, compute,
// summarize, classify.
func (m *SpreadMonitor) assemble(def models.SpreadDefinition, a, b models.Series) (*models.SpreadReport, error) {
	pair, err := spread.Align(a, b)
	if err != nil {
		return nil, err
	}
	series, err := spread.Compute(pair, def.Multiplier)
	if err != nil {
		return nil, err
	}
	stats, err := spread.Summarize(series)
	if err != nil {
		return nil, err
	}

	cls := spread.Classify(stats.Latest, def.Rules)
	cls.Date = series.Latest().Date

	m.metrics.RecordSpread(def.ID, stats.Latest)
	m.metrics.RecordRegime(def.ID, cls.Regime)

	return &models.SpreadReport{
		ID:             def.ID,
		Name:           def.Name,
		Description:    def.Description,
		Interpretation: def.Interpretation,
		NormalRange:    def.NormalRange,
		Multiplier:     def.Multiplier,
		Spread:         series,
		Components:     pair,
		Stats:          stats,
		Classification: cls,
		Rules:          def.Rules.Views(),
	}, nil
}

// fetchOne fetches a single series under the per-fetch deadline and
// records outcome metrics.
func (m *SpreadMonitor) fetchOne(ctx context.Context, seriesID string, w drepo.Window) (models.Series, error) {
	fctx, cancel := context.WithTimeout(ctx, m.fetchTimeout)
	defer cancel()

	start := time.Now()
	series, err := m.source.Fetch(fctx, seriesID, w.Start, w.End)
	m.metrics.RecordLatency("fetch", time.Since(start).Seconds())
	if err != nil {
		m.metrics.RecordFetch(seriesID, "error")
		return models.Series{}, err
	}
	m.metrics.RecordFetch(seriesID, "ok")
	return series, nil
}

// fetchAll fans the distinct series out concurrently. Failures are
// collected per series instead of cancelling siblings, so one bad series
// only takes down the definitions that use it.
func (m *SpreadMonitor) fetchAll(ctx context.Context, ids []string, w drepo.Window) (map[string]models.Series, map[string]error) {
	var (
		mu       sync.Mutex
		fetched  = make(map[string]models.Series, len(ids))
		failures = make(map[string]error)
	)

	var g errgroup.Group
	for _, id := range ids {
		id := id
		g.Go(func() error {
			series, err := m.fetchOne(ctx, id, w)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures[id] = err
				return nil
			}
			fetched[id] = series
			return nil
		})
	}
	_ = g.Wait()

	return fetched, failures
}

func errorKind(err error) string {
	var integrity *spread.DataIntegrityError
	var alignment *spread.AlignmentError
	switch {
	case errors.As(err, &integrity):
		return "data_integrity"
	case errors.As(err, &alignment):
		return "alignment"
	case errors.Is(err, spread.ErrEmptySeries):
		return "empty_series"
	default:
		return "compute"
	}
}

func unavailableReason(err error) string {
	var alignment *spread.AlignmentError
	if errors.As(err, &alignment) || errors.Is(err, spread.ErrEmptySeries) {
		return "insufficient data"
	}
	return "internal error"
}
