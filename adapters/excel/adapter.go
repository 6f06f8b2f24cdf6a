// Package excel exports an estimation report to an Excel workbook for
// sharing with planners and housing corporations.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"renovation-cost/core/output"
)

const (
	measureSheet = "Maatregelen"
	budgetSheet  = "Begroting"
)

// Generate renders a report into an .xlsx workbook and returns the file
// contents.
func Generate(report *output.Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), measureSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}
	subtotalStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 10},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtotal style: %w", err)
	}

	if err := writeMeasures(f, report, headerStyle, subtotalStyle); err != nil {
		return nil, err
	}
	if report.Budget != nil {
		if err := writeBudget(f, report, headerStyle, subtotalStyle); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeMeasures(f *excelize.File, report *output.Report, headerStyle, subtotalStyle int) error {
	widths := map[string]float64{"A": 44, "B": 12, "C": 8, "D": 14, "E": 16}
	for col, width := range widths {
		if err := f.SetColWidth(measureSheet, col, col, width); err != nil {
			return fmt.Errorf("set col width: %w", err)
		}
	}

	header := []interface{}{"Omschrijving", "Hoeveelheid", "Eenheid", "Eenheidsprijs", "Totaal"}
	if err := f.SetSheetRow(measureSheet, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := f.SetCellStyle(measureSheet, "A1", "E1", headerStyle); err != nil {
		return fmt.Errorf("style header: %w", err)
	}

	row := 2
	for i := range report.Estimates {
		est := &report.Estimates[i]

		cell := fmt.Sprintf("A%d", row)
		if err := f.SetCellValue(measureSheet, cell, est.MeasureName); err != nil {
			return fmt.Errorf("write measure name: %w", err)
		}
		if err := f.SetCellStyle(measureSheet, cell, fmt.Sprintf("E%d", row), subtotalStyle); err != nil {
			return fmt.Errorf("style measure row: %w", err)
		}
		row++

		if !est.Material.IsValid {
			if err := f.SetCellValue(measureSheet, fmt.Sprintf("A%d", row), "  "+est.Material.ErrorMessage); err != nil {
				return fmt.Errorf("write error line: %w", err)
			}
			row++
			continue
		}

		for _, line := range est.Material.Calculations {
			values := []interface{}{
				"  " + line.Name,
				line.Quantity.InexactFloat64(),
				line.Unit,
				line.UnitPrice.InexactFloat64(),
				line.TotalPrice.InexactFloat64(),
			}
			if err := f.SetSheetRow(measureSheet, fmt.Sprintf("A%d", row), &values); err != nil {
				return fmt.Errorf("write calculation line: %w", err)
			}
			row++
		}
		for _, lab := range est.Labor.Details {
			values := []interface{}{
				"  Arbeid: " + lab.Name,
				lab.Quantity.InexactFloat64(),
				"uur",
				lab.Norm,
				lab.Cost.InexactFloat64(),
			}
			if err := f.SetSheetRow(measureSheet, fmt.Sprintf("A%d", row), &values); err != nil {
				return fmt.Errorf("write labor line: %w", err)
			}
			row++
		}

		values := []interface{}{"  Eenmalige kosten excl. BTW", nil, nil, nil, est.BaseCost.InexactFloat64()}
		if err := f.SetSheetRow(measureSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("write measure total: %w", err)
		}
		row += 2
	}
	return nil
}

func writeBudget(f *excelize.File, report *output.Report, headerStyle, subtotalStyle int) error {
	if _, err := f.NewSheet(budgetSheet); err != nil {
		return fmt.Errorf("create budget sheet: %w", err)
	}
	if err := f.SetColWidth(budgetSheet, "A", "A", 44); err != nil {
		return fmt.Errorf("set col width: %w", err)
	}
	if err := f.SetColWidth(budgetSheet, "B", "B", 18); err != nil {
		return fmt.Errorf("set col width: %w", err)
	}

	header := []interface{}{"Post", "Bedrag"}
	if err := f.SetSheetRow(budgetSheet, "A1", &header); err != nil {
		return fmt.Errorf("write budget header: %w", err)
	}
	if err := f.SetCellStyle(budgetSheet, "A1", "B1", headerStyle); err != nil {
		return fmt.Errorf("style budget header: %w", err)
	}

	row := 2
	for _, line := range output.BudgetLines(report.Budget) {
		values := []interface{}{line.Label, line.Amount.InexactFloat64()}
		if err := f.SetSheetRow(budgetSheet, fmt.Sprintf("A%d", row), &values); err != nil {
			return fmt.Errorf("write budget line: %w", err)
		}
		if line.Subtotal {
			if err := f.SetCellStyle(budgetSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), subtotalStyle); err != nil {
				return fmt.Errorf("style budget line: %w", err)
			}
		}
		row++
	}
	return nil
}
