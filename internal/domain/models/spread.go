package models

import "time"

// AlignedRow is one date with both legs' forward-filled values.
type AlignedRow struct {
	Date time.Time `json:"date"`
	A    float64   `json:"a"`
	B    float64   `json:"b"`
}

// AlignedPair is the outer join of two series on a unified daily index,
// gaps forward-filled per leg, leading rows where either leg is still
// undefined dropped. Rows ascend by date.
type AlignedPair struct {
	SeriesA string       `json:"series_a"`
	SeriesB string       `json:"series_b"`
	Rows    []AlignedRow `json:"rows"`
}

// Len returns the number of aligned rows.
func (p AlignedPair) Len() int { return len(p.Rows) }

// SpreadPoint is one dated spread value in basis points.
type SpreadPoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// SpreadSeries is the scaled difference of an aligned pair, ascending by
// date over the same domain as the pair it was derived from.
type SpreadSeries []SpreadPoint

// Latest returns the most recent point. Caller must check length first.
func (s SpreadSeries) Latest() SpreadPoint { return s[len(s)-1] }

// SummaryStats are scalar reductions over a non-empty spread series.
type SummaryStats struct {
	Latest float64 `json:"latest"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// Classification labels one spread value against a rule set.
type Classification struct {
	Regime  string    `json:"regime"`
	Message string    `json:"message,omitempty"`
	Value   float64   `json:"value"`
	Date    time.Time `json:"date"`
}

// SpreadReport is the full per-definition result handed to the
// presentation layer: the spread series, both component legs, summary
// statistics, the latest-point classification, and the rule table.
type SpreadReport struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description,omitempty"`
	Interpretation string         `json:"interpretation,omitempty"`
	NormalRange    string         `json:"normal_range,omitempty"`
	Multiplier     float64        `json:"multiplier"`
	Spread         SpreadSeries   `json:"spread"`
	Components     AlignedPair    `json:"components"`
	Stats          SummaryStats   `json:"stats"`
	Classification Classification `json:"classification"`
	Rules          []RuleView     `json:"rules"`
}

// OverviewEntry is the summary card for one definition. Unavailable
// entries carry a reason instead of numbers; numeric fields are never
// partially populated.
type OverviewEntry struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Description    string          `json:"description,omitempty"`
	NormalRange    string          `json:"normal_range,omitempty"`
	Available      bool            `json:"available"`
	Reason         string          `json:"reason,omitempty"`
	Latest         *SpreadPoint    `json:"latest,omitempty"`
	Stats          *SummaryStats   `json:"stats,omitempty"`
	Classification *Classification `json:"classification,omitempty"`
}

// Overview is the all-definitions summary for one view refresh.
type Overview struct {
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	GeneratedAt time.Time       `json:"generated_at"`
	Entries     []OverviewEntry `json:"entries"`
}

// DefinitionView is the JSON shape of one configured spread definition.
type DefinitionView struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	SeriesA        string     `json:"series_a"`
	SeriesB        string     `json:"series_b"`
	Multiplier     float64    `json:"multiplier"`
	Description    string     `json:"description,omitempty"`
	Interpretation string     `json:"interpretation,omitempty"`
	NormalRange    string     `json:"normal_range,omitempty"`
	Rules          []RuleView `json:"rules"`
}
