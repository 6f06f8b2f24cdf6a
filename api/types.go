// Package api - Request and response types
package api

import (
	"renovation-cost/core/types"
)

// EstimateRequest asks for a full estimate of one or more measures
// against one residence.
type EstimateRequest struct {
	// Measures are the catalog measures to estimate
	Measures []types.Measure `json:"measures"`

	// Building is the residence record
	Building *types.BuildingRecord `json:"building"`

	// ResidenceType is the free-form residence type label; it is mapped
	// to a building type tier server-side
	ResidenceType string `json:"residenceType"`

	// BuildPeriod is the residence's build-period label
	BuildPeriod string `json:"buildPeriod,omitempty"`

	// CornerHouse applies the corner-house correction
	CornerHouse bool `json:"cornerHouse,omitempty"`

	// Settings overrides the server's financial settings snapshot
	Settings *types.Settings `json:"settings,omitempty"`

	// HorizonYears overrides the maintenance horizon
	HorizonYears int `json:"horizonYears,omitempty"`
}

// BudgetRequest asks for a budget cascade over a base amount
type BudgetRequest struct {
	// BaseAmount is the combined one-time cost entering the cascade
	BaseAmount float64 `json:"baseAmount"`

	// Settings overrides the server's financial settings snapshot
	Settings *types.Settings `json:"settings,omitempty"`
}
