package spread

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SpreadWatch/internal/domain/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func series(id string, points map[string]float64) models.Series {
	obs := make([]models.Observation, 0, len(points))
	for ds, v := range points {
		d, err := time.Parse("2006-01-02", ds)
		if err != nil {
			panic(err)
		}
		obs = append(obs, models.Observation{Date: d, Value: v})
	}
	return models.NewSeries(id, obs)
}

func TestAlignForwardFills(t *testing.T) {
	a := series("EFFR", map[string]float64{
		"2024-01-01": 5.33,
		"2024-01-02": 5.33,
	})
	b := series("IORB", map[string]float64{
		"2024-01-01": 5.40,
	})

	pair, err := Align(a, b)
	require.NoError(t, err)
	require.Len(t, pair.Rows, 2)

	assert.Equal(t, "EFFR", pair.SeriesA)
	assert.Equal(t, "IORB", pair.SeriesB)

	// B has no observation on the 2nd; its last known value carries forward.
	last := pair.Rows[1]
	assert.Equal(t, day(2024, 1, 2), last.Date)
	assert.Equal(t, 5.33, last.A)
	assert.Equal(t, 5.40, last.B)
}

func TestAlignDropsLeadingGap(t *testing.T) {
	a := series("A", map[string]float64{
		"2024-01-01": 1.0,
		"2024-01-02": 1.1,
		"2024-01-03": 1.2,
	})
	b := series("B", map[string]float64{
		"2024-01-03": 2.0,
	})

	pair, err := Align(a, b)
	require.NoError(t, err)

	// Rows before B's first observation are dropped.
	require.Len(t, pair.Rows, 1)
	assert.Equal(t, day(2024, 1, 3), pair.Rows[0].Date)

	for _, row := range pair.Rows {
		assert.False(t, row.Date.Before(b.First().Date), "no output date precedes the later first observation")
	}
}

func TestAlignEmptyInput(t *testing.T) {
	a := series("A", map[string]float64{"2024-01-01": 1.0})
	empty := models.NewSeries("B", nil)

	_, err := Align(a, empty)
	var alignErr *AlignmentError
	require.ErrorAs(t, err, &alignErr)
	assert.Equal(t, "B", alignErr.SeriesID)

	_, err = Align(empty, a)
	require.ErrorAs(t, err, &alignErr)

	_, err = Align(models.NewSeries("X", nil), models.NewSeries("Y", nil))
	require.Error(t, err)
}

func TestAlignOrderingAndDomain(t *testing.T) {
	a := series("A", map[string]float64{
		"2024-02-05": 4.0,
		"2024-01-10": 1.0,
		"2024-01-20": 2.0,
	})
	b := series("B", map[string]float64{
		"2024-01-15": 10.0,
		"2024-02-01": 11.0,
	})

	pair, err := Align(a, b)
	require.NoError(t, err)
	require.NotEmpty(t, pair.Rows)

	for i := 1; i < len(pair.Rows); i++ {
		assert.True(t, pair.Rows[i-1].Date.Before(pair.Rows[i].Date), "rows must ascend by date")
	}
	// Domain starts at the later of the two first observations.
	assert.Equal(t, day(2024, 1, 15), pair.Rows[0].Date)
	// Domain ends at the last date of either series.
	assert.Equal(t, day(2024, 2, 5), pair.Rows[len(pair.Rows)-1].Date)
}

func TestAlignIdempotent(t *testing.T) {
	a := series("A", map[string]float64{
		"2024-01-01": 1.5,
		"2024-01-04": 1.7,
	})
	b := series("B", map[string]float64{
		"2024-01-02": 2.5,
		"2024-01-04": 2.8,
	})

	first, err := Align(a, b)
	require.NoError(t, err)
	second, err := Align(a, b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
