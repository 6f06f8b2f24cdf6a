// Package heatdemand looks up a measure's heat-demand value for a
// building type and build period.
package heatdemand

import (
	"strings"

	"renovation-cost/core/types"
)

// Value returns the heat demand of a measure for the given building type
// and build period. Returns 0 when the measure carries no heat-demand
// data, no series for the type, or no entry for the period; missing heat
// demand is not an error but surfaces as a warning upstream.
func Value(measure *types.Measure, buildingType types.BuildingType, buildPeriod string) float64 {
	if measure == nil || measure.HeatDemand == nil {
		return 0
	}

	series := measure.HeatDemand.ForType(buildingType)
	for _, point := range series {
		if matchPeriod(point.Period, buildPeriod) {
			return point.Value
		}
	}
	return 0
}

// Expected reports whether the measure carries heat-demand data for the
// given building type at all
func Expected(measure *types.Measure, buildingType types.BuildingType) bool {
	if measure == nil || measure.HeatDemand == nil || measure.HeatDemand.Empty() {
		return false
	}
	return len(measure.HeatDemand.ForType(buildingType)) > 0
}

// matchPeriod compares build-period labels ignoring case and surrounding
// whitespace; catalog data and intake forms are not always consistent
// about either.
func matchPeriod(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
