// Package variables - Variable resolution
package variables

import (
	"github.com/shopspring/decimal"

	"renovation-cost/core/types"
	"renovation-cost/internal/errors"
)

// Resolve maps a variable name to its numeric value for a building.
//
// Resolution order: numeric literals resolve to themselves, then the
// building's geometry namespace, then its derived namespace, then the
// legacy alias table. A name found nowhere fails with an UnknownVariable
// error; callers must treat that as fatal to the enclosing formula and
// never substitute zero, since zero is a legitimate computed value.
func Resolve(name string, building *types.BuildingRecord) (decimal.Decimal, error) {
	if name == "" {
		return decimal.Zero, errors.UnknownVariable("(empty)")
	}

	if lit, err := decimal.NewFromString(name); err == nil {
		return lit, nil
	}

	if v, ok := building.Lookup(name); ok {
		return decimal.NewFromFloat(v), nil
	}

	if canonical, ok := CanonicalAlias(name); ok {
		if v, ok := building.Lookup(canonical); ok {
			return decimal.NewFromFloat(v), nil
		}
	}

	return decimal.Zero, errors.UnknownVariable(name)
}

// Known reports whether a name can ever resolve: it is a numeric literal,
// a member of either vocabulary, or a legacy alias. Catalog validation
// uses this to reject bad formulas at the boundary.
func Known(name string) bool {
	if name == "" {
		return false
	}
	if _, err := decimal.NewFromString(name); err == nil {
		return true
	}
	if IsGeometryName(name) || IsDerivedName(name) {
		return true
	}
	_, ok := CanonicalAlias(name)
	return ok
}
