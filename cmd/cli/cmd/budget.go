// Package cmd - budget command
package cmd

import (
	"encoding/json"
	"os"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"renovation-cost/core/budget"
	"renovation-cost/core/catalog"
	"renovation-cost/core/output"
)

var (
	budgetAmount       float64
	budgetSettingsFile string
	budgetFormat       string
)

// budgetCmd represents the budget command
var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Cascade a base amount into a full budget breakdown",
	Long: `Apply the configured surcharge cascade to a base amount and print the
resulting breakdown, from direct costs through VAT to the final amount.

Examples:
  renovation-cost budget --amount 10000
  renovation-cost budget --amount 10000 --settings settings.json --format json`,
	RunE: runBudget,
}

func init() {
	budgetCmd.Flags().Float64VarP(&budgetAmount, "amount", "a", 0, "base amount to cascade (required)")
	budgetCmd.Flags().StringVarP(&budgetSettingsFile, "settings", "s", "", "financial settings file")
	budgetCmd.Flags().StringVarP(&budgetFormat, "format", "f", "cli", "output format (cli, json)")
	budgetCmd.MarkFlagRequired("amount")
}

func runBudget(cmd *cobra.Command, args []string) error {
	settings, err := catalog.LoadSettings(budgetSettingsFile)
	if err != nil {
		return err
	}

	breakdown := budget.Cascade(decimal.NewFromFloat(budgetAmount), &settings)

	if output.Format(budgetFormat) == output.FormatJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(breakdown)
	}

	output.RenderBudget(os.Stdout, &breakdown)
	return nil
}
