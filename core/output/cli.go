// Package output - Terminal report
package output

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"renovation-cost/core/budget"
)

// CLIFormatter renders a human-readable terminal report
type CLIFormatter struct {
	// ShowDetails includes the itemized calculation lines
	ShowDetails bool
}

// Format returns the format type
func (f *CLIFormatter) Format() Format {
	return FormatCLI
}

// Render writes the report as terminal text
func (f *CLIFormatter) Render(w io.Writer, report *Report) error {
	fmt.Fprintf(w, "Renovation cost estimate (%s", report.BuildingType)
	if report.BuildPeriod != "" {
		fmt.Fprintf(w, ", build period %s", report.BuildPeriod)
	}
	fmt.Fprintf(w, ")\n\n")

	for i := range report.Estimates {
		est := &report.Estimates[i]
		fmt.Fprintf(w, "%s\n", est.MeasureName)

		if !est.Material.IsValid {
			fmt.Fprintf(w, "  price not available: %s\n", est.Material.ErrorMessage)
		} else {
			if f.ShowDetails {
				for _, line := range est.Material.Calculations {
					fmt.Fprintf(w, "  %-40s %s %s x %s = %s\n",
						line.Name, line.Quantity.StringFixed(2), line.Unit,
						FormatEuro(line.UnitPrice), FormatEuro(line.TotalPrice))
				}
				for _, lab := range est.Labor.Details {
					fmt.Fprintf(w, "  labor: %-33s %s x %.2f h = %s\n",
						lab.Name, lab.Quantity.StringFixed(2), lab.Norm, FormatEuro(lab.Cost))
				}
			}
			fmt.Fprintf(w, "  one-time cost excl. VAT: %s (incl. VAT %s)\n",
				FormatEuro(est.BaseCost), FormatEuro(est.WithVAT))
		}

		if !est.MaintenanceProjection.Total.IsZero() {
			fmt.Fprintf(w, "  maintenance: %s over horizon, %s per year\n",
				FormatEuro(est.MaintenanceProjection.Total),
				FormatEuro(est.MaintenanceProjection.PerYear))
		}

		for _, warning := range est.Warnings {
			fmt.Fprintf(w, "  ! %s\n", warning)
		}
		fmt.Fprintln(w)
	}

	if report.Budget != nil {
		RenderBudget(w, report.Budget)
	}
	return nil
}

// BudgetLine is one display row of the budget cascade
type BudgetLine struct {
	// Label is the Dutch display name of the row
	Label string

	// Amount is the row's value
	Amount decimal.Decimal

	// Subtotal marks running-total rows
	Subtotal bool
}

// BudgetLines flattens a breakdown into display order, mirroring the
// cascade's stage order
func BudgetLines(b *budget.Breakdown) []BudgetLine {
	return []BudgetLine{
		{"Directe kosten", b.DirectCosts, false},
		{"Extra veld 1", b.CustomValue1Amount, false},
		{"Extra veld 2", b.CustomValue2Amount, false},
		{"Subtotaal direct + custom", b.SubtotalDirectAndCustom, true},
		{"ABK / materieel", b.ABKMaterieelAmount, false},
		{"Subtotaal na ABK", b.SubtotalAfterABK, true},
		{"Afkoop", b.AfkoopAmount, false},
		{"Directe kosten + ABK + Afkoop", b.SubtotalDirectABKAfkoop, true},
		{"Kosten t.b.v. nadere planuitwerking", b.PlanuitwerkingAmount, false},
		{"Subtotaal na planuitwerking", b.SubtotalAfterPlanuitwerking, true},
		{"Nazorg / Service", b.NazorgServiceAmount, false},
		{"CAR / PI / DIC verzekering", b.CarPiDicAmount, false},
		{"Bankgarantie", b.BankgarantieAmount, false},
		{"Algemene kosten (AK)", b.AlgemeneKostenAmount, false},
		{"Risico", b.RisicoAmount, false},
		{"Winst", b.WinstAmount, false},
		{"Bouwkosten", b.SubtotalBouwkosten, true},
		{"Planvoorbereiding", b.PlanvoorbereidingAmount, false},
		{"Huurdersbegeleiding", b.HuurdersbegeleidingAmount, false},
		{"Totale aanbieding excl. BTW", b.TotalExclVAT, true},
		{"BTW", b.VAT, false},
		{"Totaal incl. BTW", b.FinalAmount, true},
	}
}

// RenderBudget writes a breakdown as terminal text in cascade order. The
// standalone budget command shares it so the display cannot drift from
// the full report.
func RenderBudget(w io.Writer, b *budget.Breakdown) {
	fmt.Fprintf(w, "Budget\n")
	for _, line := range BudgetLines(b) {
		marker := "  "
		if line.Subtotal {
			marker = "= "
		}
		fmt.Fprintf(w, "%s%-42s %s\n", marker, line.Label, FormatEuro(line.Amount))
	}
}
