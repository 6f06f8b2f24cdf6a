// Package types - Calculation result types
package types

import "github.com/shopspring/decimal"

// CalculationLine is one resolved price line of a measure calculation.
// TotalPrice is always Quantity times UnitPrice.
type CalculationLine struct {
	// Name labels the line for display; per-tier lines carry a tier suffix
	Name string `json:"name,omitempty"`

	// Source is the producing rule's name; labor and maintenance join on
	// it, so it never carries display decoration
	Source string `json:"source,omitempty"`

	// Unit is the display unit of the quantity
	Unit string `json:"unit,omitempty"`

	// Quantity is the resolved formula quantity
	Quantity decimal.Decimal `json:"quantity"`

	// UnitPrice is the applied unit price
	UnitPrice decimal.Decimal `json:"unitPrice"`

	// TotalPrice is Quantity * UnitPrice
	TotalPrice decimal.Decimal `json:"totalPrice"`
}

// MeasureCalculationResult is the outcome of evaluating a measure's price
// rules. When IsValid is false the partial lines are retained for
// diagnostics but Price must not be used.
type MeasureCalculationResult struct {
	// IsValid is true only when every rule resolved without failure
	IsValid bool `json:"isValid"`

	// Price is the sum of all line totals
	Price decimal.Decimal `json:"price"`

	// Calculations holds one line per resolved rule (or per building type
	// when splitting)
	Calculations []CalculationLine `json:"calculations"`

	// ErrorMessage carries the first failure when IsValid is false
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// InvalidResult returns an invalid result carrying a message
func InvalidResult(message string) MeasureCalculationResult {
	return MeasureCalculationResult{
		IsValid:      false,
		Price:        decimal.Zero,
		Calculations: []CalculationLine{},
		ErrorMessage: message,
	}
}

// LaborLine is one informational labor detail record, retained alongside
// material lines for display and audit.
type LaborLine struct {
	// Name labels the labor line, copied from the source rule
	Name string `json:"name"`

	// Norm is the labor norm in hours per quantity unit
	Norm float64 `json:"norm"`

	// Quantity is the matched material quantity
	Quantity decimal.Decimal `json:"quantity"`

	// Cost is Norm * Quantity * hourly rate
	Cost decimal.Decimal `json:"cost"`
}
