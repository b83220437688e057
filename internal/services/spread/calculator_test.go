package spread

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SpreadWatch/internal/domain/models"
)

func TestComputeBasisPoints(t *testing.T) {
	a := series("EFFR", map[string]float64{
		"2024-01-01": 5.33,
		"2024-01-02": 5.33,
	})
	b := series("IORB", map[string]float64{
		"2024-01-01": 5.40,
	})
	pair, err := Align(a, b)
	require.NoError(t, err)

	out, err := Compute(pair, 100)
	require.NoError(t, err)
	require.Len(t, out, 2)

	// (5.33 - 5.40) * 100 = -7.0bp on the forward-filled row.
	assert.InDelta(t, -7.0, out.Latest().Value, 1e-9)
	assert.Equal(t, day(2024, 1, 2), out.Latest().Date)
}

func TestComputeLinearity(t *testing.T) {
	pair := models.AlignedPair{
		SeriesA: "A",
		SeriesB: "B",
		Rows: []models.AlignedRow{
			{Date: day(2024, 1, 1), A: 4.5, B: 4.2},
			{Date: day(2024, 1, 2), A: 4.6, B: 4.9},
			{Date: day(2024, 1, 3), A: 4.4, B: 4.4},
		},
	}

	for _, k := range []float64{-1, 0.5, 1, 100, 1000} {
		unit, err := Compute(pair, 1)
		require.NoError(t, err)
		scaled, err := Compute(pair, k)
		require.NoError(t, err)

		for i := range unit {
			assert.InDelta(t, k*unit[i].Value, scaled[i].Value, 1e-9)
		}
	}
}

func TestComputeRejectsNonFinite(t *testing.T) {
	tests := []struct {
		name  string
		a, b  float64
		field string
	}{
		{"nan a", math.NaN(), 1.0, "a"},
		{"nan b", 1.0, math.NaN(), "b"},
		{"inf a", math.Inf(1), 1.0, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := models.AlignedPair{
				Rows: []models.AlignedRow{{Date: day(2024, 1, 1), A: tt.a, B: tt.b}},
			}
			_, err := Compute(pair, 100)
			var integrityErr *DataIntegrityError
			require.ErrorAs(t, err, &integrityErr)
			assert.Equal(t, tt.field, integrityErr.Field)
			assert.Equal(t, day(2024, 1, 1), integrityErr.Date)
		})
	}
}

func TestSummarize(t *testing.T) {
	out := models.SpreadSeries{
		{Date: day(2024, 1, 1), Value: -5},
		{Date: day(2024, 1, 2), Value: -3},
		{Date: day(2024, 1, 3), Value: -8},
		{Date: day(2024, 1, 4), Value: -1},
	}

	stats, err := Summarize(out)
	require.NoError(t, err)
	assert.Equal(t, -1.0, stats.Latest)
	assert.InDelta(t, -4.25, stats.Mean, 1e-9)
	assert.Equal(t, -8.0, stats.Min)
	assert.Equal(t, -1.0, stats.Max)
	assert.Equal(t, 4, stats.Count)
}

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	require.ErrorIs(t, err, ErrEmptySeries)
}
