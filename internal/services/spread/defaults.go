package spread

import "SpreadWatch/internal/domain/models"

// DefaultDefinitions is the single source of truth for the monitored
// spreads. All multipliers are 100 (percentage points to basis points)
// and every rule set partitions the real line, so the classifier never
// falls through to "unclassified" on these.
func DefaultDefinitions() []models.SpreadDefinition {
	return []models.SpreadDefinition{
		{
			ID:             "effr-iorb",
			Name:           "EFFR - IORB",
			SeriesA:        "EFFR",
			SeriesB:        "IORB",
			Multiplier:     100,
			Description:    "Reserve adequacy indicator; a narrowing spread signals shrinking reserves",
			Interpretation: "Normal: ample reserves. Tight (above -5bp): reserves declining, QT wind-down approaching",
			NormalRange:    "-10 ~ -5bp",
			Rules: models.RuleSet{
				models.Below("wide", -10, "funds trading unusually far below IORB"),
				models.Band("normal", -10, -5, "ample reserves"),
				models.AtOrAbove("tight", -5, "reserves declining; money-market pressure building"),
			},
		},
		{
			ID:             "sofr-rrp",
			Name:           "SOFR - RRP",
			SeriesA:        "SOFR",
			SeriesB:        "RRPONTSYAWARD",
			Multiplier:     100,
			Description:    "Repo market liquidity pressure indicator",
			Interpretation: "Normal: stable repo market. Stress (above 10bp): liquidity tightening, quarter-end pressure",
			NormalRange:    "0 ~ 10bp",
			Rules: models.RuleSet{
				models.Below("floor-breach", 0, "repo printing below the RRP floor"),
				models.Band("normal", 0, 10, "stable repo market"),
				models.AtOrAbove("stress", 10, "liquidity tightening; collateral or quarter-end pressure"),
			},
		},
		{
			ID:             "tbill3m-effr",
			Name:           "3M Treasury - EFFR",
			SeriesA:        "DGS3MO",
			SeriesB:        "EFFR",
			Multiplier:     100,
			Description:    "Short-rate expectations and policy premium",
			Interpretation: "Negative: strong rate-cut expectations. Positive: normal term premium",
			NormalRange:    "-5 ~ 15bp",
			Rules: models.RuleSet{
				models.Below("cuts-priced", -5, "market pricing imminent rate cuts"),
				models.Band("normal", -5, 15, "normal term premium"),
				models.AtOrAbove("elevated", 15, "bill yields elevated versus policy rate"),
			},
		},
		{
			ID:             "ust2s10s",
			Name:           "2Y - 10Y Yield Curve",
			SeriesA:        "DGS10",
			SeriesB:        "DGS2",
			Multiplier:     100,
			Description:    "Business-cycle and recession-probability indicator",
			Interpretation: "Negative (inverted): elevated recession odds over 12-18 months. Positive: normal growth expectations",
			NormalRange:    "0 ~ 100bp",
			Rules: models.RuleSet{
				models.Below("inverted", 0, "curve inverted; recession signal"),
				models.Band("normal", 0, 100, "normal growth expectations"),
				models.AtOrAbove("steep", 100, "steep curve; reflation or supply premium"),
			},
		},
	}
}
