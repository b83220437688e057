package spread

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SpreadWatch/internal/domain/models"
)

func validDefinition(id string) models.SpreadDefinition {
	return models.SpreadDefinition{
		ID:         id,
		Name:       id,
		SeriesA:    "SERIES_A",
		SeriesB:    "SERIES_B",
		Multiplier: 100,
		Rules: models.RuleSet{
			models.Below("low", 0, ""),
			models.AtOrAbove("high", 0, ""),
		},
	}
}

func TestNewRegistrySkipsInvalidDefinitions(t *testing.T) {
	bad := validDefinition("bad")
	bad.SeriesB = bad.SeriesA // self-referencing legs

	reg, err := NewRegistry([]models.SpreadDefinition{validDefinition("good"), bad}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, reg.Len())
	_, ok := reg.Get("good")
	assert.True(t, ok)
	_, ok = reg.Get("bad")
	assert.False(t, ok)
}

func TestNewRegistryAllInvalid(t *testing.T) {
	bad := validDefinition("bad")
	bad.Rules = nil

	_, err := NewRegistry([]models.SpreadDefinition{bad}, nil)
	require.Error(t, err)
}

func TestRuleSetValidate(t *testing.T) {
	tests := []struct {
		name    string
		rules   models.RuleSet
		wantErr bool
	}{
		{
			name:    "empty",
			rules:   models.RuleSet{},
			wantErr: true,
		},
		{
			name: "overlapping",
			rules: models.RuleSet{
				models.Band("a", 0, 20, ""),
				models.Band("b", 10, 30, ""),
			},
			wantErr: true,
		},
		{
			name: "inverted",
			rules: models.RuleSet{
				models.Band("a", 10, -10, ""),
			},
			wantErr: true,
		},
		{
			name: "unlabeled",
			rules: models.RuleSet{
				models.Band("", 0, 1, ""),
			},
			wantErr: true,
		},
		{
			name: "nan bound",
			rules: models.RuleSet{
				models.Band("a", math.NaN(), 1, ""),
			},
			wantErr: true,
		},
		{
			name: "adjacent partition",
			rules: models.RuleSet{
				models.Below("low", -10, ""),
				models.Band("mid", -10, 10, ""),
				models.AtOrAbove("high", 10, ""),
			},
			wantErr: false,
		},
		{
			name: "gap is allowed",
			rules: models.RuleSet{
				models.Band("left", -100, -50, ""),
				models.Band("right", 50, 100, ""),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.rules.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDefaultDefinitionsValidate(t *testing.T) {
	defs := DefaultDefinitions()
	require.Len(t, defs, 4)

	reg, err := NewRegistry(defs, nil)
	require.NoError(t, err)
	assert.Equal(t, len(defs), reg.Len())
}

// Every default rule set partitions the real line: a sweep across a wide
// value range must never hit the unclassified fallback, and adjacent
// bounds must hand the edge to exactly one rule.
func TestDefaultDefinitionsPartitionRealLine(t *testing.T) {
	for _, def := range DefaultDefinitions() {
		t.Run(def.ID, func(t *testing.T) {
			values := []float64{-1e6, -500, -100, -50, -10.0001, -10, -5, -0.0001, 0, 5, 9.9999, 10, 15, 50, 100, 500, 1e6}
			for _, r := range def.Rules {
				if !math.IsInf(r.Lower, -1) {
					values = append(values, r.Lower, r.Lower-1e-9, r.Lower+1e-9)
				}
				if !math.IsInf(r.Upper, 1) {
					values = append(values, r.Upper)
				}
			}
			for _, v := range values {
				matches := 0
				for _, r := range def.Rules {
					if r.Contains(v) {
						matches++
					}
				}
				assert.Equal(t, 1, matches, "value %v must match exactly one rule of %s", v, def.ID)
			}
		})
	}
}

func TestRegistrySeriesIDsDeduplicated(t *testing.T) {
	a := validDefinition("one")
	b := validDefinition("two")
	b.SeriesA = "SERIES_B"
	b.SeriesB = "SERIES_C"

	reg, err := NewRegistry([]models.SpreadDefinition{a, b}, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"SERIES_A", "SERIES_B", "SERIES_C"}, reg.SeriesIDs())
}

func TestRegistrySkipsDuplicateIDs(t *testing.T) {
	reg, err := NewRegistry([]models.SpreadDefinition{validDefinition("dup"), validDefinition("dup")}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}
