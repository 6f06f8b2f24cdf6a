// Package maintenance - Amortization tests
package maintenance

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"

	"renovation-cost/core/types"
)

func validResult(name string, total int64) types.MeasureCalculationResult {
	return types.MeasureCalculationResult{
		IsValid: true,
		Calculations: []types.CalculationLine{{
			Name:       name,
			TotalPrice: decimal.NewFromInt(total),
		}},
	}
}

func job(name string, cycleStart, cycle int) types.MaintenanceJob {
	return types.MaintenanceJob{
		PriceRule:  types.PriceRule{Name: name},
		CycleStart: cycleStart,
		Cycle:      cycle,
	}
}

// TestAmortizeWithoutInflation proves the occurrence count and the flat
// per-year average
func TestAmortizeWithoutInflation(t *testing.T) {
	result := validResult("Schilderwerk", 1000)
	jobs := []types.MaintenanceJob{job("Schilderwerk", 0, 10)}

	// Occurrences at years 0, 10, 20, 30 within a 40 year horizon.
	p := Amortize(result, jobs, 40, 0)
	if !p.Total.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("Expected total 4000, got %s", p.Total)
	}
	if !p.PerYear.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Expected per-year 100, got %s", p.PerYear)
	}
}

// TestAmortizeCompoundsInflationPerElapsedYear proves each occurrence
// inflates by (1+rate)^year from year zero
func TestAmortizeCompoundsInflationPerElapsedYear(t *testing.T) {
	result := validResult("Schilderwerk", 1000)
	jobs := []types.MaintenanceJob{job("Schilderwerk", 0, 10)}

	p := Amortize(result, jobs, 40, 0.01)

	expected := 0.0
	for _, year := range []int{0, 10, 20, 30} {
		expected += 1000 * math.Pow(1.01, float64(year))
	}
	got := p.Total.InexactFloat64()
	if math.Abs(got-expected) > 1e-6 {
		t.Errorf("Expected total %.6f, got %.6f", expected, got)
	}
}

// TestSameYearSameFactor proves two jobs occurring in the same year inflate
// identically regardless of their cycles
func TestSameYearSameFactor(t *testing.T) {
	result := types.MeasureCalculationResult{
		IsValid: true,
		Calculations: []types.CalculationLine{
			{Name: "A", TotalPrice: decimal.NewFromInt(500)},
			{Name: "B", TotalPrice: decimal.NewFromInt(500)},
		},
	}
	// Both occur exactly once, at year 20.
	jobs := []types.MaintenanceJob{job("A", 20, 25), job("B", 20, 30)}

	p := Amortize(result, jobs, 40, 0.02)
	expected := 1000 * math.Pow(1.02, 20)
	got := p.Total.InexactFloat64()
	if math.Abs(got-expected) > 1e-6 {
		t.Errorf("Expected total %.6f, got %.6f", expected, got)
	}
}

// TestStartBeyondHorizonContributesNothing proves jobs starting past the
// horizon are skipped
func TestStartBeyondHorizonContributesNothing(t *testing.T) {
	result := validResult("Schilderwerk", 1000)
	jobs := []types.MaintenanceJob{job("Schilderwerk", 45, 10)}

	p := Amortize(result, jobs, 40, 0.01)
	if !p.Total.IsZero() {
		t.Errorf("Expected zero total, got %s", p.Total)
	}
}

// TestNegativeStartClampsToZero proves a negative start behaves as year zero
func TestNegativeStartClampsToZero(t *testing.T) {
	result := validResult("Schilderwerk", 1000)

	negative := Amortize(result, []types.MaintenanceJob{job("Schilderwerk", -5, 10)}, 40, 0)
	zero := Amortize(result, []types.MaintenanceJob{job("Schilderwerk", 0, 10)}, 40, 0)
	if !negative.Total.Equal(zero.Total) {
		t.Errorf("Negative start %s should equal zero start %s", negative.Total, zero.Total)
	}
}

// TestNonRecurringJobContributesNothing proves cycle <= 0 never recurs
func TestNonRecurringJobContributesNothing(t *testing.T) {
	result := validResult("Schilderwerk", 1000)
	jobs := []types.MaintenanceJob{job("Schilderwerk", 0, 0)}

	p := Amortize(result, jobs, 40, 0)
	if !p.Total.IsZero() {
		t.Errorf("Expected zero total for cycle 0, got %s", p.Total)
	}
}

// TestUnnamedJobsEachKeepTheirOwnLine proves nameless jobs join their own
// line by position instead of collapsing onto the first one
func TestUnnamedJobsEachKeepTheirOwnLine(t *testing.T) {
	result := types.MeasureCalculationResult{
		IsValid: true,
		Calculations: []types.CalculationLine{
			{TotalPrice: decimal.NewFromInt(100)},
			{TotalPrice: decimal.NewFromInt(200)},
		},
	}
	// Cycle 40 in a 40 year horizon: each job occurs exactly once, at year 0.
	jobs := []types.MaintenanceJob{job("", 0, 40), job("", 0, 40)}

	p := Amortize(result, jobs, 40, 0)
	if !p.Total.Equal(decimal.NewFromInt(300)) {
		t.Errorf("Expected total 100 + 200 = 300, got %s", p.Total)
	}
}

// TestUnmatchedJobIsSkipped proves a job without a matching calculation
// line contributes nothing
func TestUnmatchedJobIsSkipped(t *testing.T) {
	result := validResult("Iets anders", 1000)
	jobs := []types.MaintenanceJob{job("Schilderwerk", 0, 10)}

	p := Amortize(result, jobs, 40, 0)
	if !p.Total.IsZero() {
		t.Errorf("Expected zero total for unmatched job, got %s", p.Total)
	}
}

// TestInvalidResultYieldsZero proves no projection accrues on an invalid
// calculation
func TestInvalidResultYieldsZero(t *testing.T) {
	result := types.MeasureCalculationResult{IsValid: false}
	jobs := []types.MaintenanceJob{job("Schilderwerk", 0, 10)}

	p := Amortize(result, jobs, 40, 0.01)
	if !p.Total.IsZero() || !p.PerYear.IsZero() {
		t.Errorf("Expected zero projection, got total %s per-year %s", p.Total, p.PerYear)
	}
}

// TestYearlyJobCost proves the per-cycle-year display figure
func TestYearlyJobCost(t *testing.T) {
	line := types.CalculationLine{TotalPrice: decimal.NewFromInt(1000)}
	j := job("Schilderwerk", 0, 8)

	v := YearlyJobCost(line, &j)
	if !v.Equal(decimal.NewFromInt(125)) {
		t.Errorf("Expected 1000 / 8 = 125, got %s", v)
	}

	flat := job("Eenmalig", 0, 0)
	if !YearlyJobCost(line, &flat).IsZero() {
		t.Error("Expected zero for non-recurring job")
	}
}
