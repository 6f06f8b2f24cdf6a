// Package catalog - Validation tests
package catalog

import (
	"strings"
	"testing"

	"renovation-cost/core/types"
)

func floatPtr(f float64) *float64 { return &f }

func validMeasure() types.Measure {
	return types.Measure{
		Name: "Dakisolatie",
		MeasurePrices: []types.PriceRule{{
			Name:        "Dakisolatie",
			Calculation: []types.Calculation{{Type: types.OpValue, Value: "dakOppervlak"}},
			Price:       floatPtr(25),
		}},
	}
}

// TestValidMeasurePasses proves a well-formed measure validates
func TestValidMeasurePasses(t *testing.T) {
	m := validMeasure()
	if err := ValidateMeasure(&m); err != nil {
		t.Fatalf("Expected valid measure, got error: %v", err)
	}
}

// TestMeasureWithoutNameRejected proves the name requirement
func TestMeasureWithoutNameRejected(t *testing.T) {
	m := validMeasure()
	m.Name = ""
	if err := ValidateMeasure(&m); err == nil {
		t.Error("Expected error for nameless measure, got none")
	}
}

// TestDuplicateRuleNamesRejected proves ambiguous joins are caught at load
func TestDuplicateRuleNamesRejected(t *testing.T) {
	m := validMeasure()
	m.MeasurePrices = append(m.MeasurePrices, m.MeasurePrices[0])

	err := ValidateMeasure(&m)
	if err == nil {
		t.Fatal("Expected error for duplicate rule names, got none")
	}
	if !strings.Contains(err.Error(), "duplicate") {
		t.Errorf("Expected duplicate message, got %q", err.Error())
	}
}

// TestMultipleUnnamedRulesRejected proves at most one price rule may go
// nameless
func TestMultipleUnnamedRulesRejected(t *testing.T) {
	m := validMeasure()
	nameless := types.PriceRule{
		Calculation: []types.Calculation{{Type: types.OpValue, Value: "breed"}},
		Price:       floatPtr(10),
	}
	m.MeasurePrices = append(m.MeasurePrices, nameless)
	if err := ValidateMeasure(&m); err != nil {
		t.Fatalf("Expected one unnamed rule to pass, got error: %v", err)
	}

	m.MeasurePrices = append(m.MeasurePrices, nameless)
	err := ValidateMeasure(&m)
	if err == nil {
		t.Fatal("Expected error for a second unnamed rule, got none")
	}
	if !strings.Contains(err.Error(), "unnamed") {
		t.Errorf("Expected unnamed message, got %q", err.Error())
	}
}

// TestDuplicateJobNamesRejected proves maintenance jobs get the same check
func TestDuplicateJobNamesRejected(t *testing.T) {
	m := validMeasure()
	j := types.MaintenanceJob{
		PriceRule: types.PriceRule{
			Name:        "Schilderwerk",
			Calculation: []types.Calculation{{Type: types.OpValue, Value: "breed"}},
			Price:       floatPtr(10),
		},
		Cycle: 8,
	}
	m.MaintenanceJobs = []types.MaintenanceJob{j, j}

	if err := ValidateMeasure(&m); err == nil {
		t.Error("Expected error for duplicate maintenance job names, got none")
	}
}

// TestUnknownVariableRejected proves unresolvable operands are caught at
// the boundary
func TestUnknownVariableRejected(t *testing.T) {
	m := validMeasure()
	m.MeasurePrices[0].Calculation[0].Value = "nietBestaand"

	err := ValidateMeasure(&m)
	if err == nil {
		t.Fatal("Expected error for unknown variable, got none")
	}
	if !strings.Contains(err.Error(), "nietBestaand") {
		t.Errorf("Expected message naming the variable, got %q", err.Error())
	}
}

// TestUnknownCalcOpRejected proves the op set is closed
func TestUnknownCalcOpRejected(t *testing.T) {
	m := validMeasure()
	m.MeasurePrices[0].Calculation[0].Type = "modulo"

	if err := ValidateMeasure(&m); err == nil {
		t.Error("Expected error for unknown calculation type, got none")
	}
}

// TestRuleWithoutStepsRejected proves every rule needs a formula
func TestRuleWithoutStepsRejected(t *testing.T) {
	m := validMeasure()
	m.MeasurePrices[0].Calculation = nil

	if err := ValidateMeasure(&m); err == nil {
		t.Error("Expected error for rule without steps, got none")
	}
}

// TestRuleWithoutPriceRejected proves every rule needs some price
func TestRuleWithoutPriceRejected(t *testing.T) {
	m := validMeasure()
	m.MeasurePrices[0].Price = nil
	m.MeasurePrices[0].PricesPerType = &types.TierPrices{}

	if err := ValidateMeasure(&m); err == nil {
		t.Error("Expected error for rule without any price, got none")
	}
}

// TestUnknownApplicableTypeRejected proves the applicability list is
// validated
func TestUnknownApplicableTypeRejected(t *testing.T) {
	m := validMeasure()
	m.ApplicableTypes = []types.BuildingType{"houseboat"}

	if err := ValidateMeasure(&m); err == nil {
		t.Error("Expected error for unknown building type, got none")
	}
}

// TestValidateBuilding proves record keys are checked against the
// vocabularies
func TestValidateBuilding(t *testing.T) {
	good := types.BuildingRecord{
		Geometry: map[string]float64{"breed": 6},
		Derived:  map[string]float64{"dakOppervlak": 80},
	}
	if err := ValidateBuilding(&good); err != nil {
		t.Fatalf("Expected valid building, got error: %v", err)
	}

	badGeometry := types.BuildingRecord{Geometry: map[string]float64{"width": 6}}
	if err := ValidateBuilding(&badGeometry); err == nil {
		t.Error("Expected error for unknown geometry key, got none")
	}

	badDerived := types.BuildingRecord{Derived: map[string]float64{"roofArea": 80}}
	if err := ValidateBuilding(&badDerived); err == nil {
		t.Error("Expected error for unknown derived key, got none")
	}
}

// TestFilterApplicable proves type filtering keeps catalog order
func TestFilterApplicable(t *testing.T) {
	measures := []types.Measure{
		{Name: "Overal"},
		{Name: "Alleen portiek", ApplicableTypes: []types.BuildingType{types.Stairwell}},
		{Name: "Ook overal"},
	}

	filtered := FilterApplicable(measures, types.GroundLevel)
	if len(filtered) != 2 {
		t.Fatalf("Expected 2 applicable measures, got %d", len(filtered))
	}
	if filtered[0].Name != "Overal" || filtered[1].Name != "Ook overal" {
		t.Errorf("Expected catalog order preserved, got %q then %q", filtered[0].Name, filtered[1].Name)
	}

	stairwell := FilterApplicable(measures, types.Stairwell)
	if len(stairwell) != 3 {
		t.Errorf("Expected 3 applicable measures for stairwell, got %d", len(stairwell))
	}
}
