package spread

import "SpreadWatch/internal/domain/models"

// Classify maps a scalar spread value to a named regime: the first rule in
// declared order whose [lower, upper) interval contains the value wins.
// A value no rule matches classifies as RegimeUnclassified rather than
// failing. Stateless; no history is retained between calls.
func Classify(value float64, rules models.RuleSet) models.Classification {
	for _, r := range rules {
		if r.Contains(value) {
			return models.Classification{Regime: r.Label, Message: r.Message, Value: value}
		}
	}
	return models.Classification{
		Regime:  models.RegimeUnclassified,
		Message: "value falls outside every configured band",
		Value:   value,
	}
}
