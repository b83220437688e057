package models

import (
	"fmt"
	"math"
)

// RegimeUnclassified is returned by the classifier when no rule matches.
const RegimeUnclassified = "unclassified"

// ThresholdRule names the regime for spread values in [Lower, Upper).
// Lower may be -Inf and Upper may be +Inf for unbounded bands.
type ThresholdRule struct {
	Label   string
	Lower   float64
	Upper   float64
	Message string
}

// Contains reports whether v falls in [Lower, Upper). The inclusive-lower,
// exclusive-upper convention makes boundary values deterministic: a value
// equal to a shared edge belongs to the rule whose Lower it is.
func (r ThresholdRule) Contains(v float64) bool {
	return v >= r.Lower && v < r.Upper
}

// Band builds a bounded rule [lower, upper).
func Band(label string, lower, upper float64, message string) ThresholdRule {
	return ThresholdRule{Label: label, Lower: lower, Upper: upper, Message: message}
}

// Below builds a lower-unbounded rule (-Inf, upper).
func Below(label string, upper float64, message string) ThresholdRule {
	return ThresholdRule{Label: label, Lower: math.Inf(-1), Upper: upper, Message: message}
}

// AtOrAbove builds an upper-unbounded rule [lower, +Inf).
func AtOrAbove(label string, lower float64, message string) ThresholdRule {
	return ThresholdRule{Label: label, Lower: lower, Upper: math.Inf(1), Message: message}
}

// RuleSet is an ordered list of threshold rules. Classification is
// first-match-wins in declared order.
type RuleSet []ThresholdRule

// Validate rejects empty sets, unlabeled or inverted rules, and pairs of
// rules whose intervals overlap. Gaps are allowed; values falling in a gap
// classify as RegimeUnclassified.
func (rs RuleSet) Validate() error {
	if len(rs) == 0 {
		return fmt.Errorf("rule set is empty")
	}
	for i, r := range rs {
		if r.Label == "" {
			return fmt.Errorf("rule %d has no label", i)
		}
		if math.IsNaN(r.Lower) || math.IsNaN(r.Upper) {
			return fmt.Errorf("rule %q has NaN bound", r.Label)
		}
		if r.Lower >= r.Upper {
			return fmt.Errorf("rule %q has inverted interval [%v, %v)", r.Label, r.Lower, r.Upper)
		}
	}
	for i := 0; i < len(rs); i++ {
		for j := i + 1; j < len(rs); j++ {
			if rs[i].Lower < rs[j].Upper && rs[j].Lower < rs[i].Upper {
				return fmt.Errorf("rules %q and %q overlap", rs[i].Label, rs[j].Label)
			}
		}
	}
	return nil
}

// NormalBand is the simple two-sided variant of a rule set: values in
// [Min, Max) are in range, everything else is out.
type NormalBand struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether v is in [Min, Max).
func (b NormalBand) Contains(v float64) bool {
	return v >= b.Min && v < b.Max
}

// Rules expands the band into an equivalent rule set partitioning the
// real line: the in-range band plus the outside regime on either side.
// Classifying with it agrees with Contains for every value.
func (b NormalBand) Rules(inside, outside string) RuleSet {
	return RuleSet{
		Band(inside, b.Min, b.Max, ""),
		Below(outside, b.Min, ""),
		AtOrAbove(outside, b.Max, ""),
	}
}

// RuleView is the JSON shape of a rule; unbounded endpoints render as null.
type RuleView struct {
	Label   string   `json:"label"`
	Lower   *float64 `json:"lower"`
	Upper   *float64 `json:"upper"`
	Message string   `json:"message,omitempty"`
}

// Views converts the rule set to its JSON representation.
func (rs RuleSet) Views() []RuleView {
	views := make([]RuleView, 0, len(rs))
	for _, r := range rs {
		v := RuleView{Label: r.Label, Message: r.Message}
		if !math.IsInf(r.Lower, -1) {
			lo := r.Lower
			v.Lower = &lo
		}
		if !math.IsInf(r.Upper, 1) {
			hi := r.Upper
			v.Upper = &hi
		}
		views = append(views, v)
	}
	return views
}
