// Package maintenance projects recurring maintenance costs over a fixed
// horizon under compounding inflation.
package maintenance

import (
	"github.com/shopspring/decimal"

	"renovation-cost/core/types"
)

// DefaultHorizonYears is the standard projection horizon
const DefaultHorizonYears = 40

// Projection is the amortized maintenance obligation over the horizon
type Projection struct {
	// Total is the summed inflated cost of every occurrence within the
	// horizon
	Total decimal.Decimal `json:"total"`

	// PerYear is Total divided by the horizon, a flat average
	PerYear decimal.Decimal `json:"perYear"`
}

// Amortize projects each maintenance job's cost across the horizon.
//
// Jobs are joined to their calculation line by index, guarded by name
// equality: maintenance rules are never split, so a valid result carries
// exactly one line per job in job order, and the index join keeps
// multiple unnamed jobs distinct. A job whose line is missing or carries
// a different name is skipped. A job with cycle <= 0 or cycleStart >= horizonYears
// never recurs within the horizon and contributes nothing. Every
// occurrence year y in cycleStart, cycleStart+cycle, ... below the horizon
// accrues baseCost * (1+inflationRate)^y: inflation compounds per elapsed
// year from year zero, so two jobs occurring in the same year inflate by
// the same factor regardless of their cycles.
//
// inflationRate is a fraction (0.01 means 1% per year).
func Amortize(result types.MeasureCalculationResult, jobs []types.MaintenanceJob, horizonYears int, inflationRate float64) Projection {
	projection := Projection{
		Total:   decimal.Zero,
		PerYear: decimal.Zero,
	}
	if !result.IsValid || len(jobs) == 0 || horizonYears <= 0 {
		return projection
	}

	growth := decimal.NewFromInt(1).Add(decimal.NewFromFloat(inflationRate))
	for i, job := range jobs {
		if job.Cycle <= 0 || job.CycleStart >= horizonYears {
			continue
		}

		if i >= len(result.Calculations) {
			continue
		}
		line := result.Calculations[i]
		if line.Name != job.Name {
			continue
		}

		start := job.CycleStart
		if start < 0 {
			start = 0
		}

		baseCost := line.TotalPrice
		for year := start; year < horizonYears; year += job.Cycle {
			inflated := baseCost.Mul(growth.Pow(decimal.NewFromInt(int64(year))))
			projection.Total = projection.Total.Add(inflated)
		}
	}

	projection.PerYear = projection.Total.Div(decimal.NewFromInt(int64(horizonYears)))
	return projection
}

// YearlyJobCost returns a job's single-occurrence cost spread over its
// cycle (euro per cycle year), for display next to the line. Returns zero
// for non-recurring jobs.
func YearlyJobCost(line types.CalculationLine, job *types.MaintenanceJob) decimal.Decimal {
	if job == nil || job.Cycle <= 0 {
		return decimal.Zero
	}
	return line.TotalPrice.Div(decimal.NewFromInt(int64(job.Cycle)))
}
