// Package types - Financial settings snapshot
package types

// Settings is the organization-wide financial configuration used by a
// calculation batch. All percentage fields are whole percentages (21 means
// 21%). The snapshot is treated as read-only for the duration of a batch;
// the engine never mutates it.
type Settings struct {
	// HourlyLaborCost is the labor rate in euro per hour
	HourlyLaborCost float64 `json:"hourlyLaborCost"`

	// ProfitPercentage is the profit margin applied to a measure's base cost
	ProfitPercentage float64 `json:"profitPercentage"`

	// VATPercentage is the VAT rate
	VATPercentage float64 `json:"vatPercentage"`

	// InflationPercentage is the annual inflation used for maintenance
	// projection
	InflationPercentage float64 `json:"inflationPercentage"`

	// CornerHouseCorrection adjusts a corner residence's base cost,
	// typically negative
	CornerHouseCorrection float64 `json:"cornerHouseCorrection"`

	// ABKMaterieel is the site overhead / equipment surcharge
	ABKMaterieel float64 `json:"abkMaterieel"`

	// Afkoop is the buy-out surcharge
	Afkoop float64 `json:"afkoop"`

	// KostenPlanuitwerking is the plan-elaboration surcharge
	KostenPlanuitwerking float64 `json:"kostenPlanuitwerking"`

	// NazorgService is the after-care / service surcharge
	NazorgService float64 `json:"nazorgService"`

	// CarPiDicVerzekering is the CAR/PI/DIC insurance surcharge
	CarPiDicVerzekering float64 `json:"carPiDicVerzekering"`

	// Bankgarantie is the bank guarantee surcharge
	Bankgarantie float64 `json:"bankgarantie"`

	// AlgemeneKosten is the general costs surcharge
	AlgemeneKosten float64 `json:"algemeneKosten"`

	// Risico is the risk surcharge
	Risico float64 `json:"risico"`

	// Winst is the profit surcharge within the budget cascade
	Winst float64 `json:"winst"`

	// Planvoorbereiding is the plan-preparation surcharge
	Planvoorbereiding float64 `json:"planvoorbereiding"`

	// Huurdersbegeleiding is the tenant-guidance surcharge
	Huurdersbegeleiding float64 `json:"huurdersbegeleiding"`

	// CustomValue1 is an optional fixed amount added to direct costs
	CustomValue1 float64 `json:"customValue1,omitempty"`

	// CustomValue1Name labels the first custom amount
	CustomValue1Name string `json:"customValue1Name,omitempty"`

	// CustomValue2 is an optional fixed amount added to direct costs
	CustomValue2 float64 `json:"customValue2,omitempty"`

	// CustomValue2Name labels the second custom amount
	CustomValue2Name string `json:"customValue2Name,omitempty"`
}

// DefaultSettings returns the settings used until a snapshot is loaded
func DefaultSettings() Settings {
	return Settings{
		HourlyLaborCost:       51,
		ProfitPercentage:      25,
		VATPercentage:         21,
		InflationPercentage:   1,
		CornerHouseCorrection: -10,
	}
}
