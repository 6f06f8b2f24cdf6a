// Package types - Measure catalog types
package types

// CalcOp is the operation a calculation step applies to the running quantity
type CalcOp string

const (
	// OpValue seeds the running quantity with the step's operand
	OpValue CalcOp = "value"

	// OpAdd adds the operand to the running quantity
	OpAdd CalcOp = "add"

	// OpSubtract subtracts the operand from the running quantity
	OpSubtract CalcOp = "subtract"

	// OpMultiply multiplies the running quantity by the operand
	OpMultiply CalcOp = "multiply"

	// OpDivide divides the running quantity by the operand
	OpDivide CalcOp = "divide"
)

// Valid reports whether the op is part of the closed op set
func (o CalcOp) Valid() bool {
	switch o {
	case OpValue, OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	}
	return false
}

// Calculation is one typed step of a price formula. The operand is a
// variable name or a numeric literal, resolved against the building record.
type Calculation struct {
	// Type is the arithmetic op combining this step into the quantity
	Type CalcOp `json:"type"`

	// Value is the operand: a variable name or a numeric literal
	Value string `json:"value"`

	// Position orders steps; positionless steps evaluate after all
	// positioned ones, otherwise in given order
	Position *int `json:"position,omitempty"`
}

// TierPrices holds per-building-type unit prices. A nil entry means no
// price is defined for that tier.
type TierPrices struct {
	// GroundLevel is the unit price for attached ground-level residences
	GroundLevel *float64 `json:"grondgebonden,omitempty"`

	// Stairwell is the unit price for stairwell-access residences
	Stairwell *float64 `json:"portiek,omitempty"`

	// Gallery is the unit price for gallery-access residences
	Gallery *float64 `json:"gallerij,omitempty"`
}

// ForType returns the price entry for a tier, or nil when absent
func (p *TierPrices) ForType(t BuildingType) *float64 {
	switch t {
	case GroundLevel:
		return p.GroundLevel
	case Stairwell:
		return p.Stairwell
	case Gallery:
		return p.Gallery
	}
	return nil
}

// Any reports whether at least one tier has a price defined
func (p *TierPrices) Any() bool {
	return p.GroundLevel != nil || p.Stairwell != nil || p.Gallery != nil
}

// PriceRule is one priced line of a measure: a quantity formula plus a unit
// price, optionally differentiated per building type. Rules are defined in
// the measure catalog and read-only to the engine.
type PriceRule struct {
	// Name labels the rule; maintenance and labor lines join on it
	Name string `json:"name,omitempty"`

	// Unit is the display unit of the quantity (m2, m1, st)
	Unit string `json:"unit,omitempty"`

	// Calculation is the ordered list of steps producing the quantity
	Calculation []Calculation `json:"calculation"`

	// Price is the flat unit price, used when no per-type prices exist
	Price *float64 `json:"price,omitempty"`

	// PricesPerType holds per-building-type unit prices
	PricesPerType *TierPrices `json:"pricesPerType,omitempty"`

	// IncludeLabor marks the rule as labor-bearing
	IncludeLabor bool `json:"includeLabor,omitempty"`

	// LaborNorm is the labor norm in hours per quantity unit
	LaborNorm float64 `json:"laborNorm,omitempty"`
}

// MaintenanceJob is a price rule that recurs on a fixed cycle
type MaintenanceJob struct {
	PriceRule

	// CycleStart is the year offset of the first occurrence
	CycleStart int `json:"cycleStart,omitempty"`

	// Cycle is the recurrence interval in years; zero or negative never recurs
	Cycle int `json:"cycle,omitempty"`
}

// HeatDemandPoint is one heat-demand value for a build period
type HeatDemandPoint struct {
	// Period is the build-period label (e.g. "1965-1974")
	Period string `json:"period"`

	// Value is the heat demand for that period
	Value float64 `json:"value"`
}

// HeatDemand holds per-building-type heat-demand series
type HeatDemand struct {
	GroundLevel []HeatDemandPoint `json:"grondgebonden,omitempty"`
	Stairwell   []HeatDemandPoint `json:"portiek,omitempty"`
	Gallery     []HeatDemandPoint `json:"gallerij,omitempty"`
}

// ForType returns the series for a tier
func (h *HeatDemand) ForType(t BuildingType) []HeatDemandPoint {
	switch t {
	case GroundLevel:
		return h.GroundLevel
	case Stairwell:
		return h.Stairwell
	case Gallery:
		return h.Gallery
	}
	return nil
}

// Empty reports whether no tier carries any data
func (h *HeatDemand) Empty() bool {
	return len(h.GroundLevel) == 0 && len(h.Stairwell) == 0 && len(h.Gallery) == 0
}

// Measure is one renovation work item from the catalog
type Measure struct {
	// Name identifies the measure
	Name string `json:"name"`

	// Group is the catalog group the measure belongs to
	Group string `json:"group,omitempty"`

	// MeasurePrices are the one-time price rules
	MeasurePrices []PriceRule `json:"measure_prices,omitempty"`

	// MaintenanceJobs are the recurring maintenance rules
	MaintenanceJobs []MaintenanceJob `json:"mjob_prices,omitempty"`

	// SplitPrices requests one output line per building type for rules
	// with per-type prices
	SplitPrices bool `json:"splitPrices,omitempty"`

	// Nuisance is the nuisance indicator; a non-nil empty value means the
	// indicator is expected but missing
	Nuisance *string `json:"nuisance,omitempty"`

	// HeatDemand holds heat-demand data per building type
	HeatDemand *HeatDemand `json:"heat_demand,omitempty"`

	// ApplicableTypes restricts the measure to building types; empty means
	// applicable to all
	ApplicableTypes []BuildingType `json:"applicableTypes,omitempty"`
}

// AppliesTo reports whether the measure applies to a building type
func (m *Measure) AppliesTo(t BuildingType) bool {
	if len(m.ApplicableTypes) == 0 {
		return true
	}
	for _, a := range m.ApplicableTypes {
		if a == t {
			return true
		}
	}
	return false
}

// HasMaintenance reports whether the measure carries named maintenance jobs
func (m *Measure) HasMaintenance() bool {
	for _, j := range m.MaintenanceJobs {
		if j.Name != "" {
			return true
		}
	}
	return false
}
