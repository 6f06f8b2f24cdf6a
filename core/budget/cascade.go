// Package budget turns a base amount into a final VAT-inclusive budget
// figure through an ordered chain of percentage surcharges.
//
// Every surcharge takes its percentage over the fixed subtotal of direct
// and custom costs, never over the evolving running total. Each
// intermediate subtotal is retained in the breakdown so a display layer
// can show the full chain and a recomputation can reproduce every stage
// from the base amount and settings alone.
package budget

import (
	"github.com/shopspring/decimal"

	"renovation-cost/core/types"
)

// Breakdown holds every stage of the budget cascade. Field names are the
// wire contract with the display layer.
type Breakdown struct {
	// DirectCosts is the non-negative base amount
	DirectCosts decimal.Decimal `json:"directCosts"`

	// CustomValue1Amount is the first custom line, applied only when
	// direct costs are positive
	CustomValue1Amount decimal.Decimal `json:"customValue1Amount"`

	// CustomValue2Amount is the second custom line
	CustomValue2Amount decimal.Decimal `json:"customValue2Amount"`

	// SubtotalDirectAndCustom is the percentage base for every surcharge
	SubtotalDirectAndCustom decimal.Decimal `json:"subtotalDirectAndCustom"`

	// ABKMaterieelAmount is the site overhead / equipment surcharge
	ABKMaterieelAmount decimal.Decimal `json:"abkMaterieelAmount"`

	// SubtotalAfterABK is the running total after ABK
	SubtotalAfterABK decimal.Decimal `json:"subtotalAfterABK"`

	// AfkoopAmount is the buy-out surcharge
	AfkoopAmount decimal.Decimal `json:"afkoopAmount"`

	// SubtotalDirectABKAfkoop is the running total after buy-out
	SubtotalDirectABKAfkoop decimal.Decimal `json:"subtotalDirectABKAfkoop"`

	// PlanuitwerkingAmount is the plan-elaboration surcharge
	PlanuitwerkingAmount decimal.Decimal `json:"planuitwerkingAmount"`

	// SubtotalAfterPlanuitwerking is the running total after elaboration
	SubtotalAfterPlanuitwerking decimal.Decimal `json:"subtotalAfterPlanuitwerking"`

	// NazorgServiceAmount is the after-care / service surcharge
	NazorgServiceAmount decimal.Decimal `json:"nazorgServiceAmount"`

	// CarPiDicAmount is the CAR/PI/DIC insurance surcharge
	CarPiDicAmount decimal.Decimal `json:"carPiDicAmount"`

	// BankgarantieAmount is the bank guarantee surcharge
	BankgarantieAmount decimal.Decimal `json:"bankgarantieAmount"`

	// AlgemeneKostenAmount is the general costs surcharge
	AlgemeneKostenAmount decimal.Decimal `json:"algemeneKostenAmount"`

	// RisicoAmount is the risk surcharge
	RisicoAmount decimal.Decimal `json:"risicoAmount"`

	// WinstAmount is the profit surcharge
	WinstAmount decimal.Decimal `json:"winstAmount"`

	// SubtotalBouwkosten is the construction cost subtotal
	SubtotalBouwkosten decimal.Decimal `json:"subtotalBouwkosten"`

	// PlanvoorbereidingAmount is the plan-preparation surcharge
	PlanvoorbereidingAmount decimal.Decimal `json:"planvoorbereidingAmount"`

	// HuurdersbegeleidingAmount is the tenant-guidance surcharge
	HuurdersbegeleidingAmount decimal.Decimal `json:"huurdersbegeleidingAmount"`

	// SubtotalAfterBijkomendeKosten is the total offering excluding VAT
	SubtotalAfterBijkomendeKosten decimal.Decimal `json:"subtotalAfterBijkomendeKosten"`

	// TotalExclVAT equals SubtotalAfterBijkomendeKosten
	TotalExclVAT decimal.Decimal `json:"totalExclVAT"`

	// VAT is the value-added tax amount
	VAT decimal.Decimal `json:"vat"`

	// FinalAmount is the VAT-inclusive total
	FinalAmount decimal.Decimal `json:"finalAmount"`
}

// stage is one step of the cascade; stages run in fixed order over the
// accumulating breakdown
type stage func(b *Breakdown, s *types.Settings)

var stages = []stage{
	directAndCustom,
	abkMaterieel,
	afkoop,
	planuitwerking,
	bouwkosten,
	bijkomendeKosten,
	vat,
}

// Cascade computes the full budget breakdown from a base amount and a
// settings snapshot. The function is pure: re-invocation with identical
// inputs reproduces every intermediate value exactly.
func Cascade(baseAmount decimal.Decimal, settings *types.Settings) Breakdown {
	b := Breakdown{DirectCosts: baseAmount}
	if b.DirectCosts.IsNegative() {
		b.DirectCosts = decimal.Zero
	}
	for _, apply := range stages {
		apply(&b, settings)
	}
	return b
}

// directAndCustom fixes the percentage base: direct costs plus the two
// custom amounts. Custom amounts only apply on top of actual costs.
func directAndCustom(b *Breakdown, s *types.Settings) {
	if b.DirectCosts.IsPositive() {
		b.CustomValue1Amount = decimal.NewFromFloat(s.CustomValue1)
		b.CustomValue2Amount = decimal.NewFromFloat(s.CustomValue2)
	}
	b.SubtotalDirectAndCustom = b.DirectCosts.Add(b.CustomValue1Amount).Add(b.CustomValue2Amount)
}

func abkMaterieel(b *Breakdown, s *types.Settings) {
	b.ABKMaterieelAmount = percentOf(b.SubtotalDirectAndCustom, s.ABKMaterieel)
	b.SubtotalAfterABK = b.SubtotalDirectAndCustom.Add(b.ABKMaterieelAmount)
}

func afkoop(b *Breakdown, s *types.Settings) {
	b.AfkoopAmount = percentOf(b.SubtotalDirectAndCustom, s.Afkoop)
	b.SubtotalDirectABKAfkoop = b.SubtotalAfterABK.Add(b.AfkoopAmount)
}

func planuitwerking(b *Breakdown, s *types.Settings) {
	b.PlanuitwerkingAmount = percentOf(b.SubtotalDirectAndCustom, s.KostenPlanuitwerking)
	b.SubtotalAfterPlanuitwerking = b.SubtotalDirectABKAfkoop.Add(b.PlanuitwerkingAmount)
}

// bouwkosten applies the six parallel surcharges that close the
// construction cost subtotal
func bouwkosten(b *Breakdown, s *types.Settings) {
	base := b.SubtotalDirectAndCustom
	b.NazorgServiceAmount = percentOf(base, s.NazorgService)
	b.CarPiDicAmount = percentOf(base, s.CarPiDicVerzekering)
	b.BankgarantieAmount = percentOf(base, s.Bankgarantie)
	b.AlgemeneKostenAmount = percentOf(base, s.AlgemeneKosten)
	b.RisicoAmount = percentOf(base, s.Risico)
	b.WinstAmount = percentOf(base, s.Winst)

	b.SubtotalBouwkosten = b.SubtotalAfterPlanuitwerking.
		Add(b.NazorgServiceAmount).
		Add(b.CarPiDicAmount).
		Add(b.BankgarantieAmount).
		Add(b.AlgemeneKostenAmount).
		Add(b.RisicoAmount).
		Add(b.WinstAmount)
}

func bijkomendeKosten(b *Breakdown, s *types.Settings) {
	b.PlanvoorbereidingAmount = percentOf(b.SubtotalDirectAndCustom, s.Planvoorbereiding)
	b.HuurdersbegeleidingAmount = percentOf(b.SubtotalDirectAndCustom, s.Huurdersbegeleiding)
	b.SubtotalAfterBijkomendeKosten = b.SubtotalBouwkosten.
		Add(b.PlanvoorbereidingAmount).
		Add(b.HuurdersbegeleidingAmount)
	b.TotalExclVAT = b.SubtotalAfterBijkomendeKosten
}

func vat(b *Breakdown, s *types.Settings) {
	b.VAT = percentOf(b.TotalExclVAT, s.VATPercentage)
	b.FinalAmount = b.TotalExclVAT.Add(b.VAT)
}

func percentOf(base decimal.Decimal, pct float64) decimal.Decimal {
	return base.Mul(decimal.NewFromFloat(pct)).Div(decimal.NewFromInt(100))
}
