package spread

import (
	"fmt"

	"SpreadWatch/internal/domain/models"
	xlogger "SpreadWatch/pkg/logger"
)

// Registry holds the validated spread definitions, immutable after
// construction. Iteration order is declaration order.
type Registry struct {
	defs []models.SpreadDefinition
	byID map[string]models.SpreadDefinition
}

// NewRegistry validates each definition and keeps the ones that pass.
// A failing definition is logged and skipped; only an entirely empty
// registry is an error.
func NewRegistry(defs []models.SpreadDefinition, l *xlogger.Logger) (*Registry, error) {
	r := &Registry{byID: make(map[string]models.SpreadDefinition, len(defs))}
	for _, d := range defs {
		if err := d.Validate(); err != nil {
			cfgErr := &ConfigurationError{DefinitionID: d.ID, Err: err}
			if l != nil {
				l.Warn("spread definition rejected", xlogger.String("definition", d.ID), xlogger.Error(cfgErr))
			}
			continue
		}
		if _, dup := r.byID[d.ID]; dup {
			if l != nil {
				l.Warn("duplicate spread definition skipped", xlogger.String("definition", d.ID))
			}
			continue
		}
		r.defs = append(r.defs, d)
		r.byID[d.ID] = d
	}
	if len(r.defs) == 0 {
		return nil, fmt.Errorf("registry: no valid spread definitions")
	}
	return r, nil
}

// Get looks up a definition by id.
func (r *Registry) Get(id string) (models.SpreadDefinition, bool) {
	d, ok := r.byID[id]
	return d, ok
}

// All returns the definitions in declaration order.
func (r *Registry) All() []models.SpreadDefinition { return r.defs }

// Len returns the number of valid definitions.
func (r *Registry) Len() int { return len(r.defs) }

// SeriesIDs returns the distinct underlying series across all
// definitions, first-appearance order. The monitor fetches each exactly
// once per overview.
func (r *Registry) SeriesIDs() []string {
	seen := make(map[string]struct{})
	var ids []string
	for _, d := range r.defs {
		for _, id := range d.SeriesIDs() {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids
}
