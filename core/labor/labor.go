// Package labor derives labor cost for labor-bearing price rules.
package labor

import (
	"github.com/shopspring/decimal"

	"renovation-cost/core/types"
)

// Result holds the derived labor cost and its detail records
type Result struct {
	// LaborCost is the summed labor cost across all labor-bearing rules
	LaborCost decimal.Decimal `json:"laborCost"`

	// Details holds one informational record per contributing rule
	Details []types.LaborLine `json:"laborDetails"`
}

// Compute derives labor cost for the rules flagged labor-bearing with a
// positive labor norm. Each such rule is joined to its resolved
// calculation line by source rule name, so per-tier display renaming
// never breaks the join; a rule without a matching line contributes
// nothing and is skipped, a data-consistency gap rather than an error.
// Split lines share their rule's quantity, so the first match suffices.
//
// Per rule: cost = laborNorm * matched quantity * hourlyRate.
func Compute(rules []types.PriceRule, calcResult types.MeasureCalculationResult, hourlyRate float64) Result {
	result := Result{
		LaborCost: decimal.Zero,
		Details:   []types.LaborLine{},
	}
	if !calcResult.IsValid {
		return result
	}

	rate := decimal.NewFromFloat(hourlyRate)
	for _, rule := range rules {
		if !rule.IncludeLabor || rule.LaborNorm <= 0 {
			continue
		}

		line, ok := findLine(calcResult.Calculations, rule.Name)
		if !ok {
			continue
		}

		norm := decimal.NewFromFloat(rule.LaborNorm)
		cost := norm.Mul(line.Quantity).Mul(rate)
		result.LaborCost = result.LaborCost.Add(cost)

		name := rule.Name
		if name == "" {
			name = "Arbeidskosten"
		}
		result.Details = append(result.Details, types.LaborLine{
			Name:     name,
			Norm:     rule.LaborNorm,
			Quantity: line.Quantity,
			Cost:     cost,
		})
	}
	return result
}

func findLine(lines []types.CalculationLine, source string) (types.CalculationLine, bool) {
	for _, line := range lines {
		if line.Source == source {
			return line, true
		}
	}
	return types.CalculationLine{}, false
}
