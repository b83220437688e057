package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SpreadWatch/internal/domain/models"
	drepo "SpreadWatch/internal/domain/repository"
	"SpreadWatch/internal/services/spread"
	xlogger "SpreadWatch/pkg/logger"
)

type fakeSource struct {
	mu     sync.Mutex
	calls  map[string]int
	series map[string]models.Series
	fail   map[string]error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		calls:  make(map[string]int),
		series: make(map[string]models.Series),
		fail:   make(map[string]error),
	}
}

func (s *fakeSource) Fetch(_ context.Context, seriesID string, _, _ time.Time) (models.Series, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[seriesID]++
	if err := s.fail[seriesID]; err != nil {
		return models.Series{}, err
	}
	return s.series[seriesID], nil
}

func (s *fakeSource) callCount(seriesID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[seriesID]
}

type nopMetrics struct{}

func (nopMetrics) RecordFetch(string, string)    {}
func (nopMetrics) RecordLatency(string, float64) {}
func (nopMetrics) RecordSpread(string, float64)  {}
func (nopMetrics) RecordRegime(string, string)   {}
func (nopMetrics) RecordError(string)            {}

func testLogger(t *testing.T) *xlogger.Logger {
	t.Helper()
	l, err := xlogger.New(&xlogger.Config{Level: "error", Format: "console", Output: "stderr"})
	require.NoError(t, err)
	return l
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func obsSeries(id string, values map[int]float64) models.Series {
	obs := make([]models.Observation, 0, len(values))
	for d, v := range values {
		obs = append(obs, models.Observation{Date: day(2024, 1, d), Value: v})
	}
	return models.NewSeries(id, obs)
}

func testDefinitions() []models.SpreadDefinition {
	rules := models.RuleSet{
		models.Below("low", -5, "depressed"),
		models.Band("normal", -5, 5, "in range"),
		models.AtOrAbove("high", 5, "elevated"),
	}
	return []models.SpreadDefinition{
		{ID: "ab", Name: "A - B", SeriesA: "A", SeriesB: "B", Multiplier: 100, Rules: rules},
		{ID: "bc", Name: "B - C", SeriesA: "B", SeriesB: "C", Multiplier: 100, Rules: rules},
	}
}

func newTestMonitor(t *testing.T, src *fakeSource) *SpreadMonitor {
	t.Helper()
	reg, err := spread.NewRegistry(testDefinitions(), nil)
	require.NoError(t, err)
	return NewSpreadMonitor(src, reg, nopMetrics{}, testLogger(t), time.Second)
}

func window() drepo.Window {
	return drepo.Window{Start: day(2024, 1, 1), End: day(2024, 1, 31)}
}

func TestReport(t *testing.T) {
	src := newFakeSource()
	src.series["A"] = obsSeries("A", map[int]float64{1: 5.33, 2: 5.33})
	src.series["B"] = obsSeries("B", map[int]float64{1: 5.40})

	monitor := newTestMonitor(t, src)
	report, err := monitor.Report(context.Background(), "ab", window())
	require.NoError(t, err)

	assert.Equal(t, "ab", report.ID)
	require.Len(t, report.Spread, 2)
	assert.InDelta(t, -7.0, report.Stats.Latest, 1e-9)
	assert.Equal(t, "low", report.Classification.Regime)
	assert.Equal(t, day(2024, 1, 2), report.Classification.Date)
	assert.Equal(t, 2, report.Components.Len())
	assert.Len(t, report.Rules, 3)
}

func TestReportUnknownDefinition(t *testing.T) {
	monitor := newTestMonitor(t, newFakeSource())
	_, err := monitor.Report(context.Background(), "nope", window())
	assert.ErrorIs(t, err, ErrUnknownDefinition)
}

func TestReportFailsWholeOnFailingLeg(t *testing.T) {
	src := newFakeSource()
	src.series["A"] = obsSeries("A", map[int]float64{1: 5.33})
	src.fail["B"] = errors.New("fred unavailable")

	monitor := newTestMonitor(t, src)
	_, err := monitor.Report(context.Background(), "ab", window())
	require.Error(t, err, "no partial report when a leg fails")
}

func TestReportInsufficientData(t *testing.T) {
	src := newFakeSource()
	src.series["A"] = obsSeries("A", map[int]float64{1: 5.33})
	src.series["B"] = models.NewSeries("B", nil)

	monitor := newTestMonitor(t, src)
	_, err := monitor.Report(context.Background(), "ab", window())

	var alignErr *spread.AlignmentError
	require.ErrorAs(t, err, &alignErr)
	assert.Equal(t, "B", alignErr.SeriesID)
}

func TestOverviewIsolatesFailures(t *testing.T) {
	src := newFakeSource()
	src.series["A"] = obsSeries("A", map[int]float64{1: 5.33, 2: 5.35})
	src.series["B"] = obsSeries("B", map[int]float64{1: 5.40})
	src.fail["C"] = errors.New("fred unavailable")

	monitor := newTestMonitor(t, src)
	overview := monitor.Overview(context.Background(), window())
	require.Len(t, overview.Entries, 2)

	ab := overview.Entries[0]
	assert.True(t, ab.Available)
	require.NotNil(t, ab.Latest)
	assert.InDelta(t, -5.0, ab.Latest.Value, 1e-9)
	require.NotNil(t, ab.Classification)
	require.NotNil(t, ab.Stats)

	bc := overview.Entries[1]
	assert.False(t, bc.Available)
	assert.Contains(t, bc.Reason, "C")
	assert.Nil(t, bc.Latest, "unavailable entries carry no numbers")
	assert.Nil(t, bc.Stats)
}

func TestOverviewFetchesEachSeriesOnce(t *testing.T) {
	src := newFakeSource()
	src.series["A"] = obsSeries("A", map[int]float64{1: 1})
	src.series["B"] = obsSeries("B", map[int]float64{1: 2})
	src.series["C"] = obsSeries("C", map[int]float64{1: 3})

	monitor := newTestMonitor(t, src)
	_ = monitor.Overview(context.Background(), window())

	// B is shared by both definitions but still fetched exactly once.
	assert.Equal(t, 1, src.callCount("A"))
	assert.Equal(t, 1, src.callCount("B"))
	assert.Equal(t, 1, src.callCount("C"))
}

func TestOverviewInsufficientData(t *testing.T) {
	src := newFakeSource()
	src.series["A"] = obsSeries("A", map[int]float64{1: 1})
	src.series["B"] = models.NewSeries("B", nil)
	src.series["C"] = obsSeries("C", map[int]float64{1: 3})

	monitor := newTestMonitor(t, src)
	overview := monitor.Overview(context.Background(), window())

	ab := overview.Entries[0]
	assert.False(t, ab.Available)
	assert.Equal(t, "insufficient data", ab.Reason)
}
