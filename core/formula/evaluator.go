// Package formula evaluates measure price rules against a building record.
// Evaluation is pure: identical inputs always produce identical results,
// so callers may memoize freely.
package formula

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"renovation-cost/core/types"
	"renovation-cost/core/variables"
	"renovation-cost/internal/errors"
)

// Evaluate resolves every price rule of a measure into an itemized
// calculation result.
//
// A nil building is an expected state while data loads and yields an
// invalid result immediately. A rule that fails to resolve marks the whole
// result invalid carrying the first failure's message; remaining rules are
// still evaluated so their lines stay available for diagnostics, but a
// partial result is never reported as valid.
//
// When split is true, rules with per-type prices emit one line per
// building type that defines a price, all sharing the same quantity.
func Evaluate(rules []types.PriceRule, building *types.BuildingRecord, buildingType types.BuildingType, split bool) types.MeasureCalculationResult {
	if building == nil {
		return types.InvalidResult(errors.NoBuildingData().Error())
	}

	result := types.MeasureCalculationResult{
		IsValid:      true,
		Price:        decimal.Zero,
		Calculations: []types.CalculationLine{},
	}

	for idx := range rules {
		lines, err := evaluateRule(&rules[idx], building, buildingType, split)
		if err != nil {
			if result.IsValid {
				result.IsValid = false
				result.ErrorMessage = err.Error()
			}
			continue
		}
		for _, line := range lines {
			result.Price = result.Price.Add(line.TotalPrice)
			result.Calculations = append(result.Calculations, line)
		}
	}

	if !result.IsValid {
		result.Price = decimal.Zero
	}
	return result
}

// evaluateRule resolves one rule into its calculation lines
func evaluateRule(rule *types.PriceRule, building *types.BuildingRecord, buildingType types.BuildingType, split bool) ([]types.CalculationLine, error) {
	quantity, err := quantityOf(rule, building)
	if err != nil {
		return nil, err
	}

	if rule.PricesPerType != nil && rule.PricesPerType.Any() {
		if split {
			return splitLines(rule, quantity), nil
		}
		price := rule.PricesPerType.ForType(buildingType)
		if price == nil {
			return nil, errors.MissingTypedPrice(rule.Name, buildingType.String())
		}
		return []types.CalculationLine{makeLine(rule.Name, rule.Name, rule.Unit, quantity, decimal.NewFromFloat(*price))}, nil
	}

	if rule.Price == nil {
		return nil, fmt.Errorf("no price defined in rule %q", rule.Name)
	}
	return []types.CalculationLine{makeLine(rule.Name, rule.Name, rule.Unit, quantity, decimal.NewFromFloat(*rule.Price))}, nil
}

// quantityOf combines a rule's calculation steps into a single quantity.
// Steps evaluate in position order: positioned steps first, ascending,
// positionless steps after them in given order.
func quantityOf(rule *types.PriceRule, building *types.BuildingRecord) (decimal.Decimal, error) {
	if len(rule.Calculation) == 0 {
		return decimal.Zero, fmt.Errorf("no calculation steps in rule %q", rule.Name)
	}

	steps := make([]types.Calculation, len(rule.Calculation))
	copy(steps, rule.Calculation)
	sort.SliceStable(steps, func(i, j int) bool {
		pi, pj := steps[i].Position, steps[j].Position
		switch {
		case pi != nil && pj != nil:
			return *pi < *pj
		case pi != nil:
			return true
		default:
			return false
		}
	})

	quantity := decimal.Zero
	for i, step := range steps {
		operand, err := variables.Resolve(step.Value, building)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s in rule %q", err.Error(), rule.Name)
		}

		if i == 0 {
			quantity = operand
			continue
		}

		switch step.Type {
		case types.OpAdd:
			quantity = quantity.Add(operand)
		case types.OpSubtract:
			quantity = quantity.Sub(operand)
		case types.OpMultiply:
			quantity = quantity.Mul(operand)
		case types.OpDivide:
			if operand.IsZero() {
				return decimal.Zero, fmt.Errorf("division by zero in rule %q", rule.Name)
			}
			quantity = quantity.Div(operand)
		case types.OpValue:
			quantity = operand
		default:
			return decimal.Zero, fmt.Errorf("unknown calculation type %q in rule %q", step.Type, rule.Name)
		}
	}
	return quantity, nil
}

// splitLines emits one line per building type defining a price, all
// sharing the rule's quantity. Used where a catalog price legitimately
// differs by structural type but the physical quantity does not. The tier
// suffix is display only; Source keeps the rule name joinable.
func splitLines(rule *types.PriceRule, quantity decimal.Decimal) []types.CalculationLine {
	var lines []types.CalculationLine
	for _, t := range types.AllBuildingTypes() {
		price := rule.PricesPerType.ForType(t)
		if price == nil {
			continue
		}
		name := rule.Name
		if name != "" {
			name = fmt.Sprintf("%s (%s)", name, t)
		} else {
			name = t.String()
		}
		lines = append(lines, makeLine(name, rule.Name, rule.Unit, quantity, decimal.NewFromFloat(*price)))
	}
	return lines
}

func makeLine(name, source, unit string, quantity, unitPrice decimal.Decimal) types.CalculationLine {
	return types.CalculationLine{
		Name:       name,
		Source:     source,
		Unit:       unit,
		Quantity:   quantity,
		UnitPrice:  unitPrice,
		TotalPrice: quantity.Mul(unitPrice),
	}
}
