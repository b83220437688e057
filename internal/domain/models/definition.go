package models

import "fmt"

// SpreadDefinition is the static configuration of one monitored spread:
// the two source series, the unit-scaling multiplier (100 converts a
// percentage-point difference to basis points), display strings, and the
// ordered rule set classifying the latest value. Built once at startup,
// never mutated.
type SpreadDefinition struct {
	ID             string
	Name           string
	SeriesA        string
	SeriesB        string
	Multiplier     float64
	Description    string
	Interpretation string
	NormalRange    string
	Rules          RuleSet
}

// Validate checks the structural invariants of the definition.
func (d SpreadDefinition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("definition has no id")
	}
	if d.SeriesA == "" || d.SeriesB == "" {
		return fmt.Errorf("definition %q is missing a source series", d.ID)
	}
	if d.SeriesA == d.SeriesB {
		return fmt.Errorf("definition %q references series %q on both legs", d.ID, d.SeriesA)
	}
	if d.Multiplier == 0 {
		return fmt.Errorf("definition %q has zero multiplier", d.ID)
	}
	if err := d.Rules.Validate(); err != nil {
		return fmt.Errorf("definition %q: %w", d.ID, err)
	}
	return nil
}

// SeriesIDs returns both legs in declaration order.
func (d SpreadDefinition) SeriesIDs() []string { return []string{d.SeriesA, d.SeriesB} }

// View converts the definition to its JSON representation.
func (d SpreadDefinition) View() DefinitionView {
	return DefinitionView{
		ID:             d.ID,
		Name:           d.Name,
		SeriesA:        d.SeriesA,
		SeriesB:        d.SeriesB,
		Multiplier:     d.Multiplier,
		Description:    d.Description,
		Interpretation: d.Interpretation,
		NormalRange:    d.NormalRange,
		Rules:          d.Rules.Views(),
	}
}
