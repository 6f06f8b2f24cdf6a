// Package engine orchestrates a full per-measure estimate: material rules,
// labor, maintenance projection, corrections and the profit/VAT roll-up.
// The engine holds no state and performs no I/O; identical requests always
// produce identical estimates.
package engine

import (
	"fmt"

	"github.com/shopspring/decimal"

	"renovation-cost/core/formula"
	"renovation-cost/core/heatdemand"
	"renovation-cost/core/labor"
	"renovation-cost/core/maintenance"
	"renovation-cost/core/types"
)

// Request carries everything needed to estimate one measure for one
// residence. Settings are read-only for the duration of the calculation.
type Request struct {
	// Measure is the catalog measure to estimate
	Measure *types.Measure

	// Building is the residence record; nil while data loads
	Building *types.BuildingRecord

	// BuildingType is the residence's structural tier
	BuildingType types.BuildingType

	// BuildPeriod is the residence's build-period label
	BuildPeriod string

	// CornerHouse applies the corner-house correction to the base cost
	CornerHouse bool

	// Settings is the financial settings snapshot
	Settings *types.Settings

	// HorizonYears overrides the maintenance horizon; zero means the
	// default of 40 years
	HorizonYears int
}

// MeasureEstimate is the complete costed outcome for one measure
type MeasureEstimate struct {
	// MeasureName identifies the estimated measure
	MeasureName string `json:"measureName"`

	// Material is the itemized one-time price calculation
	Material types.MeasureCalculationResult `json:"material"`

	// Labor is the derived labor cost and details
	Labor labor.Result `json:"labor"`

	// Maintenance is the itemized maintenance price calculation
	Maintenance types.MeasureCalculationResult `json:"maintenance"`

	// MaintenanceProjection is the amortized maintenance obligation
	MaintenanceProjection maintenance.Projection `json:"maintenanceProjection"`

	// MaterialCost is the material price, zero when invalid
	MaterialCost decimal.Decimal `json:"materialCost"`

	// BaseCost is material plus labor, after any corner-house correction
	BaseCost decimal.Decimal `json:"baseCost"`

	// WithProfit is BaseCost raised by the profit percentage
	WithProfit decimal.Decimal `json:"withProfit"`

	// WithVAT is WithProfit raised by the VAT percentage
	WithVAT decimal.Decimal `json:"withVAT"`

	// HeatDemand is the measure's heat demand for this residence, 0 when
	// not applicable
	HeatDemand float64 `json:"heatDemand"`

	// ZeroPrice flags a valid calculation that prices at exactly zero, a
	// legitimate but noteworthy outcome distinct from an invalid one
	ZeroPrice bool `json:"zeroPrice"`

	// Warnings lists calculation issues worth surfacing; they never
	// affect validity or totals
	Warnings []string `json:"warnings,omitempty"`
}

// EstimateMeasure produces the full estimate for one measure. A nil
// measure yields an invalid estimate, mirroring the nil-building case;
// nil settings fall back to the defaults.
func EstimateMeasure(req Request) MeasureEstimate {
	if req.Measure == nil {
		material := types.InvalidResult("no measure to estimate")
		return MeasureEstimate{
			Material:    material,
			Maintenance: types.InvalidResult("no measure to estimate"),
			MaintenanceProjection: maintenance.Projection{
				Total:   decimal.Zero,
				PerYear: decimal.Zero,
			},
			MaterialCost: decimal.Zero,
			BaseCost:     decimal.Zero,
			WithProfit:   decimal.Zero,
			WithVAT:      decimal.Zero,
			Warnings:     []string{material.ErrorMessage},
		}
	}
	if req.Settings == nil {
		defaults := types.DefaultSettings()
		req.Settings = &defaults
	}

	horizon := req.HorizonYears
	if horizon <= 0 {
		horizon = maintenance.DefaultHorizonYears
	}

	material := formula.Evaluate(req.Measure.MeasurePrices, req.Building, req.BuildingType, req.Measure.SplitPrices)

	// Maintenance rules are never split by building type.
	maintResult := formula.Evaluate(maintenanceRules(req.Measure), req.Building, req.BuildingType, false)
	projection := maintenance.Amortize(maintResult, req.Measure.MaintenanceJobs, horizon, req.Settings.InflationPercentage/100)

	laborResult := labor.Compute(req.Measure.MeasurePrices, material, req.Settings.HourlyLaborCost)

	materialCost := decimal.Zero
	if material.IsValid {
		materialCost = material.Price
	}
	baseCost := materialCost.Add(laborResult.LaborCost)
	if req.CornerHouse {
		baseCost = applyPercentage(baseCost, req.Settings.CornerHouseCorrection)
	}

	withProfit := applyPercentage(baseCost, req.Settings.ProfitPercentage)
	withVAT := applyPercentage(withProfit, req.Settings.VATPercentage)

	estimate := MeasureEstimate{
		MeasureName:           req.Measure.Name,
		Material:              material,
		Labor:                 laborResult,
		Maintenance:           maintResult,
		MaintenanceProjection: projection,
		MaterialCost:          materialCost,
		BaseCost:              baseCost,
		WithProfit:            withProfit,
		WithVAT:               withVAT,
		HeatDemand:            heatdemand.Value(req.Measure, req.BuildingType, req.BuildPeriod),
		ZeroPrice:             material.IsValid && withVAT.IsZero(),
	}
	estimate.Warnings = collectWarnings(&req, &estimate)
	return estimate
}

// maintenanceRules strips the cycle attributes off the measure's
// maintenance jobs for plain formula evaluation
func maintenanceRules(m *types.Measure) []types.PriceRule {
	if len(m.MaintenanceJobs) == 0 {
		return nil
	}
	rules := make([]types.PriceRule, len(m.MaintenanceJobs))
	for i, job := range m.MaintenanceJobs {
		rules[i] = job.PriceRule
	}
	return rules
}

// collectWarnings gathers the calculation issues a planner should see
// before trusting the numbers
func collectWarnings(req *Request, est *MeasureEstimate) []string {
	var warnings []string

	if !est.Material.IsValid {
		msg := est.Material.ErrorMessage
		if msg == "" {
			msg = "price cannot be calculated"
		}
		warnings = append(warnings, msg)
	}

	if est.ZeroPrice {
		warnings = append(warnings, "total price is exactly zero")
	}

	if len(req.Measure.MaintenanceJobs) > 0 && !est.Maintenance.IsValid {
		msg := est.Maintenance.ErrorMessage
		if msg == "" {
			msg = "maintenance costs cannot be calculated"
		}
		warnings = append(warnings, msg)
	}

	if est.Maintenance.IsValid {
		for _, line := range est.Maintenance.Calculations {
			if line.Quantity.IsZero() || line.UnitPrice.IsZero() {
				warnings = append(warnings, fmt.Sprintf("maintenance line %q multiplies by zero", line.Name))
				break
			}
		}
	}

	if heatdemand.Expected(req.Measure, req.BuildingType) && est.HeatDemand == 0 {
		warnings = append(warnings, "heat demand missing or zero for this building type and build period")
	}

	if req.Measure.Nuisance != nil && *req.Measure.Nuisance == "" {
		warnings = append(warnings, "nuisance indicator missing")
	}

	return warnings
}

func applyPercentage(amount decimal.Decimal, pct float64) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(pct).Div(decimal.NewFromInt(100)))
	return amount.Mul(factor)
}
