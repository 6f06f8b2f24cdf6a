// Package catalog - Boundary validation
package catalog

import (
	"renovation-cost/core/types"
	"renovation-cost/core/variables"
	"renovation-cost/internal/errors"
)

// ValidateMeasure checks a measure's rules against the engine's
// invariants: every rule has calculation steps, every step uses a known
// op and a resolvable operand, every rule has some price, and rule names
// are unique within the measure with at most one rule unnamed. Labor
// lines join on rule names, so duplicates or a second nameless rule would
// make that join ambiguous and are rejected here rather than left as
// undefined behavior.
func ValidateMeasure(m *types.Measure) error {
	if m.Name == "" {
		return errors.New(errors.TypeCatalog, "measure without a name")
	}

	seen := make(map[string]struct{}, len(m.MeasurePrices))
	unnamed := 0
	for i := range m.MeasurePrices {
		rule := &m.MeasurePrices[i]
		if err := validateRule(m.Name, rule); err != nil {
			return err
		}
		if rule.Name == "" {
			// Labor joins lines back to rules by name, so a second
			// nameless rule would join ambiguously.
			unnamed++
			if unnamed > 1 {
				return errors.Newf(errors.TypeCatalog,
					"measure %q: more than one unnamed price rule", m.Name)
			}
			continue
		}
		if _, dup := seen[rule.Name]; dup {
			return errors.Newf(errors.TypeCatalog,
				"measure %q: duplicate rule name %q", m.Name, rule.Name)
		}
		seen[rule.Name] = struct{}{}
	}

	seenJobs := make(map[string]struct{}, len(m.MaintenanceJobs))
	for i := range m.MaintenanceJobs {
		job := &m.MaintenanceJobs[i]
		if err := validateRule(m.Name, &job.PriceRule); err != nil {
			return err
		}
		if job.Name != "" {
			if _, dup := seenJobs[job.Name]; dup {
				return errors.Newf(errors.TypeCatalog,
					"measure %q: duplicate maintenance job name %q", m.Name, job.Name)
			}
			seenJobs[job.Name] = struct{}{}
		}
	}

	for _, t := range m.ApplicableTypes {
		if !t.Valid() {
			return errors.Newf(errors.TypeCatalog,
				"measure %q: unknown building type %q", m.Name, t)
		}
	}
	return nil
}

func validateRule(measureName string, rule *types.PriceRule) error {
	if len(rule.Calculation) == 0 {
		return errors.Newf(errors.TypeCatalog,
			"measure %q: rule %q has no calculation steps", measureName, rule.Name)
	}
	for _, step := range rule.Calculation {
		if !step.Type.Valid() {
			return errors.Newf(errors.TypeCatalog,
				"measure %q: rule %q uses unknown calculation type %q", measureName, rule.Name, step.Type)
		}
		if !variables.Known(step.Value) {
			return errors.Newf(errors.TypeCatalog,
				"measure %q: rule %q references unknown variable %q", measureName, rule.Name, step.Value)
		}
	}
	if rule.Price == nil && (rule.PricesPerType == nil || !rule.PricesPerType.Any()) {
		return errors.Newf(errors.TypeCatalog,
			"measure %q: rule %q has no price", measureName, rule.Name)
	}
	return nil
}

// ValidateBuilding checks that a building record only carries keys from
// the closed vocabularies, catching renamed or misspelled fields at the
// boundary.
func ValidateBuilding(b *types.BuildingRecord) error {
	for name := range b.Geometry {
		if !variables.IsGeometryName(name) {
			return errors.Newf(errors.TypeCatalog,
				"building record: unknown geometry variable %q", name)
		}
	}
	for name := range b.Derived {
		if !variables.IsDerivedName(name) {
			return errors.Newf(errors.TypeCatalog,
				"building record: unknown derived variable %q", name)
		}
	}
	return nil
}
