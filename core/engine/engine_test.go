// Package engine - Estimate roll-up tests
package engine

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"renovation-cost/core/types"
)

func floatPtr(f float64) *float64 { return &f }
func strPtr(s string) *string     { return &s }

func testBuilding() *types.BuildingRecord {
	return &types.BuildingRecord{
		Geometry: map[string]float64{"breed": 6, "aantalWoningen": 4},
		Derived:  map[string]float64{"dakOppervlak": 80},
	}
}

func testMeasure() *types.Measure {
	return &types.Measure{
		Name: "Dakisolatie",
		MeasurePrices: []types.PriceRule{{
			Name:         "Dakisolatie",
			Unit:         "m2",
			Calculation:  []types.Calculation{{Type: types.OpValue, Value: "dakOppervlak"}},
			Price:        floatPtr(25),
			IncludeLabor: true,
			LaborNorm:    0.25,
		}},
	}
}

func testSettings() types.Settings {
	s := types.DefaultSettings()
	return s
}

// TestEstimateRollUp proves material, labor, profit and VAT chain together
func TestEstimateRollUp(t *testing.T) {
	settings := testSettings()
	est := EstimateMeasure(Request{
		Measure:      testMeasure(),
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		Settings:     &settings,
	})

	// Material: 80 * 25 = 2000. Labor: 0.25 * 80 * 51 = 1020.
	if !est.MaterialCost.Equal(decimal.NewFromInt(2000)) {
		t.Errorf("Expected material 2000, got %s", est.MaterialCost)
	}
	if !est.Labor.LaborCost.Equal(decimal.NewFromInt(1020)) {
		t.Errorf("Expected labor 1020, got %s", est.Labor.LaborCost)
	}
	if !est.BaseCost.Equal(decimal.NewFromInt(3020)) {
		t.Errorf("Expected base 3020, got %s", est.BaseCost)
	}

	// Profit 25%: 3775. VAT 21%: 4567.75.
	if !est.WithProfit.Equal(decimal.NewFromInt(3775)) {
		t.Errorf("Expected with-profit 3775, got %s", est.WithProfit)
	}
	if !est.WithVAT.Equal(decimal.NewFromFloat(4567.75)) {
		t.Errorf("Expected with-VAT 4567.75, got %s", est.WithVAT)
	}
	if est.ZeroPrice {
		t.Error("Non-zero estimate must not be flagged as zero price")
	}
	if len(est.Warnings) != 0 {
		t.Errorf("Expected no warnings, got %v", est.Warnings)
	}
}

// TestCornerHouseCorrection proves the correction scales the base cost
// before profit
func TestCornerHouseCorrection(t *testing.T) {
	settings := testSettings()
	est := EstimateMeasure(Request{
		Measure:      testMeasure(),
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		CornerHouse:  true,
		Settings:     &settings,
	})

	// Base 3020 corrected by -10% = 2718.
	if !est.BaseCost.Equal(decimal.NewFromInt(2718)) {
		t.Errorf("Expected corrected base 2718, got %s", est.BaseCost)
	}
}

// TestSplitPricesKeepLabor proves labor-bearing rules still accrue labor
// when the measure splits lines per building type
func TestSplitPricesKeepLabor(t *testing.T) {
	measure := &types.Measure{
		Name:        "Voordeur",
		SplitPrices: true,
		MeasurePrices: []types.PriceRule{{
			Name:          "Voordeur",
			Unit:          "st",
			Calculation:   []types.Calculation{{Type: types.OpValue, Value: "aantalWoningen"}},
			PricesPerType: &types.TierPrices{GroundLevel: floatPtr(100)},
			IncludeLabor:  true,
			LaborNorm:     0.5,
		}},
	}

	settings := testSettings()
	est := EstimateMeasure(Request{
		Measure:      measure,
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		Settings:     &settings,
	})

	if !est.Material.IsValid {
		t.Fatalf("Expected valid material result, got error: %s", est.Material.ErrorMessage)
	}
	// 0.5 * 4 * 51 = 102, joined through the split line's source name.
	if !est.Labor.LaborCost.Equal(decimal.NewFromFloat(102)) {
		t.Errorf("Expected labor 102 under split prices, got %s", est.Labor.LaborCost)
	}
	if !est.BaseCost.Equal(decimal.NewFromFloat(502)) {
		t.Errorf("Expected base 400 + 102 = 502, got %s", est.BaseCost)
	}
}

// TestMaintenanceProjectionInEstimate proves maintenance jobs flow into
// the projection
func TestMaintenanceProjectionInEstimate(t *testing.T) {
	measure := testMeasure()
	measure.MaintenanceJobs = []types.MaintenanceJob{{
		PriceRule: types.PriceRule{
			Name:        "Schilderwerk",
			Calculation: []types.Calculation{{Type: types.OpValue, Value: "breed"}},
			Price:       floatPtr(100),
		},
		CycleStart: 0,
		Cycle:      10,
	}}

	settings := testSettings()
	settings.InflationPercentage = 0
	est := EstimateMeasure(Request{
		Measure:      measure,
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		Settings:     &settings,
	})

	// 6 * 100 = 600 per occurrence, years 0/10/20/30 of 40.
	if !est.MaintenanceProjection.Total.Equal(decimal.NewFromInt(2400)) {
		t.Errorf("Expected maintenance total 2400, got %s", est.MaintenanceProjection.Total)
	}
	if !est.MaintenanceProjection.PerYear.Equal(decimal.NewFromInt(60)) {
		t.Errorf("Expected maintenance per-year 60, got %s", est.MaintenanceProjection.PerYear)
	}
}

// TestZeroPriceFlagged proves a valid zero outcome is flagged and warned,
// not treated as an error
func TestZeroPriceFlagged(t *testing.T) {
	measure := &types.Measure{
		Name: "Niets",
		MeasurePrices: []types.PriceRule{{
			Name:        "Niets",
			Calculation: []types.Calculation{{Type: types.OpValue, Value: "0"}},
			Price:       floatPtr(25),
		}},
	}

	settings := testSettings()
	est := EstimateMeasure(Request{
		Measure:      measure,
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		Settings:     &settings,
	})

	if !est.Material.IsValid {
		t.Fatalf("Expected valid zero result, got error: %s", est.Material.ErrorMessage)
	}
	if !est.ZeroPrice {
		t.Error("Expected zero-price flag")
	}
	if !hasWarning(est.Warnings, "zero") {
		t.Errorf("Expected a zero-price warning, got %v", est.Warnings)
	}
}

// TestInvalidMaterialWarned proves a failed price calculation surfaces as
// a warning carrying the cause
func TestInvalidMaterialWarned(t *testing.T) {
	measure := &types.Measure{
		Name: "Kapot",
		MeasurePrices: []types.PriceRule{{
			Name:        "Kapot",
			Calculation: []types.Calculation{{Type: types.OpValue, Value: "nokHoogte"}},
			Price:       floatPtr(25),
		}},
	}

	settings := testSettings()
	est := EstimateMeasure(Request{
		Measure:      measure,
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		Settings:     &settings,
	})

	if est.Material.IsValid {
		t.Fatal("Expected invalid material result")
	}
	if !est.MaterialCost.IsZero() || !est.BaseCost.IsZero() {
		t.Errorf("Invalid material must cost zero, got material %s base %s", est.MaterialCost, est.BaseCost)
	}
	if !hasWarning(est.Warnings, "nokHoogte") {
		t.Errorf("Expected warning naming the unresolvable variable, got %v", est.Warnings)
	}
}

// TestMissingNuisanceWarned proves an expected-but-empty nuisance
// indicator is surfaced
func TestMissingNuisanceWarned(t *testing.T) {
	measure := testMeasure()
	measure.Nuisance = strPtr("")

	settings := testSettings()
	est := EstimateMeasure(Request{
		Measure:      measure,
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		Settings:     &settings,
	})

	if !hasWarning(est.Warnings, "nuisance") {
		t.Errorf("Expected nuisance warning, got %v", est.Warnings)
	}
}

// TestMissingHeatDemandWarned proves expected heat demand that resolves to
// zero produces a warning
func TestMissingHeatDemandWarned(t *testing.T) {
	measure := testMeasure()
	measure.HeatDemand = &types.HeatDemand{
		GroundLevel: []types.HeatDemandPoint{{Period: "1945-1964", Value: 35}},
	}

	settings := testSettings()
	est := EstimateMeasure(Request{
		Measure:      measure,
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		BuildPeriod:  "1990-2000",
		Settings:     &settings,
	})

	if est.HeatDemand != 0 {
		t.Fatalf("Expected zero heat demand, got %v", est.HeatDemand)
	}
	if !hasWarning(est.Warnings, "heat demand") {
		t.Errorf("Expected heat-demand warning, got %v", est.Warnings)
	}
}

// TestMaintenanceMultiplyByZeroWarned proves a zero factor in a
// maintenance line is surfaced without failing the estimate
func TestMaintenanceMultiplyByZeroWarned(t *testing.T) {
	measure := testMeasure()
	measure.MaintenanceJobs = []types.MaintenanceJob{{
		PriceRule: types.PriceRule{
			Name:        "Schilderwerk",
			Calculation: []types.Calculation{{Type: types.OpValue, Value: "0"}},
			Price:       floatPtr(100),
		},
		Cycle: 10,
	}}

	settings := testSettings()
	est := EstimateMeasure(Request{
		Measure:      measure,
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		Settings:     &settings,
	})

	if !est.Maintenance.IsValid {
		t.Fatalf("Expected valid maintenance result, got error: %s", est.Maintenance.ErrorMessage)
	}
	if !hasWarning(est.Warnings, "zero") {
		t.Errorf("Expected multiply-by-zero warning, got %v", est.Warnings)
	}
}

// TestNilMeasureYieldsInvalidEstimate proves a missing measure degrades
// like a missing building instead of panicking
func TestNilMeasureYieldsInvalidEstimate(t *testing.T) {
	settings := testSettings()
	est := EstimateMeasure(Request{
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		Settings:     &settings,
	})

	if est.Material.IsValid {
		t.Fatal("Expected invalid material result for nil measure")
	}
	if !est.BaseCost.IsZero() || !est.WithVAT.IsZero() {
		t.Errorf("Expected zero costs, got base %s with-VAT %s", est.BaseCost, est.WithVAT)
	}
	if len(est.Warnings) == 0 {
		t.Error("Expected a warning for nil measure")
	}
}

// TestNilSettingsFallBackToDefaults proves estimation works without an
// explicit settings snapshot
func TestNilSettingsFallBackToDefaults(t *testing.T) {
	est := EstimateMeasure(Request{
		Measure:      testMeasure(),
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
	})

	// Default rate 51: material 2000, labor 1020.
	if !est.BaseCost.Equal(decimal.NewFromInt(3020)) {
		t.Errorf("Expected base 3020 under default settings, got %s", est.BaseCost)
	}
}

// TestEstimateIsDeterministic proves identical requests produce identical
// estimates
func TestEstimateIsDeterministic(t *testing.T) {
	settings := testSettings()
	req := Request{
		Measure:      testMeasure(),
		Building:     testBuilding(),
		BuildingType: types.GroundLevel,
		Settings:     &settings,
	}

	first := EstimateMeasure(req)
	for i := 0; i < 5; i++ {
		again := EstimateMeasure(req)
		if !again.WithVAT.Equal(first.WithVAT) {
			t.Fatalf("Run %d produced %s, first run produced %s", i, again.WithVAT, first.WithVAT)
		}
	}
}

func hasWarning(warnings []string, fragment string) bool {
	for _, w := range warnings {
		if strings.Contains(w, fragment) {
			return true
		}
	}
	return false
}
