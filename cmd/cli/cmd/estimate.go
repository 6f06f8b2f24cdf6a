// Package cmd - estimate command
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"renovation-cost/adapters/excel"
	"renovation-cost/core/budget"
	"renovation-cost/core/catalog"
	"renovation-cost/core/engine"
	"renovation-cost/core/output"
	"renovation-cost/core/types"
	"renovation-cost/internal/config"
	"renovation-cost/internal/logging"
)

var (
	buildingFile  string
	measuresFile  string
	settingsFile  string
	residenceType string
	buildPeriod   string
	cornerHouse   bool
	measureName   string
	outputFormat  string
	exportFile    string
	showDetails   bool
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate renovation measures for a residence",
	Long: `Evaluate a measure catalog against a building record and produce an
itemized cost estimate with a cascaded budget.

Examples:
  renovation-cost estimate --building building.json --measures measures.json
  renovation-cost estimate --building building.json --measures measures.json --measure "Dakisolatie"
  renovation-cost estimate --building building.json --measures measures.json --export offerte.xlsx`,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&buildingFile, "building", "b", "", "building record file (required)")
	estimateCmd.Flags().StringVarP(&measuresFile, "measures", "m", "", "measure catalog file")
	estimateCmd.Flags().StringVarP(&settingsFile, "settings", "s", "", "financial settings file")
	estimateCmd.Flags().StringVarP(&residenceType, "type", "t", "", "residence type label (grondgebonden, portiek, galerij)")
	estimateCmd.Flags().StringVarP(&buildPeriod, "period", "p", "", "build period label")
	estimateCmd.Flags().BoolVar(&cornerHouse, "corner", false, "apply the corner-house correction")
	estimateCmd.Flags().StringVar(&measureName, "measure", "", "estimate a single measure by name")
	estimateCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format (cli, json)")
	estimateCmd.Flags().StringVar(&exportFile, "export", "", "write the report to an Excel workbook")
	estimateCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show itemized calculation lines")
	estimateCmd.MarkFlagRequired("building")
}

func runEstimate(cmd *cobra.Command, args []string) error {
	cfg := config.Get()
	startTime := time.Now()

	if measuresFile == "" {
		measuresFile = cfg.Catalog.MeasuresPath
	}
	if settingsFile == "" {
		settingsFile = cfg.Catalog.SettingsPath
	}
	if residenceType == "" {
		residenceType = cfg.Estimation.BuildingType
	}
	if buildPeriod == "" {
		buildPeriod = cfg.Estimation.BuildPeriod
	}

	building, err := catalog.LoadBuilding(buildingFile)
	if err != nil {
		return err
	}
	measures, err := catalog.LoadMeasures(measuresFile)
	if err != nil {
		return err
	}
	settings, err := catalog.LoadSettings(settingsFile)
	if err != nil {
		return err
	}

	buildingType := types.ParseBuildingType(residenceType)
	applicable := catalog.FilterApplicable(measures, buildingType)
	if measureName != "" {
		measure, ok := catalog.FindMeasure(applicable, measureName)
		if !ok {
			return fmt.Errorf("measure not found: %s", measureName)
		}
		applicable = []types.Measure{*measure}
	}
	if len(applicable) == 0 {
		fmt.Println("No applicable measures found.")
		return nil
	}

	logging.Info("starting estimation",
		zap.Int("measures", len(applicable)),
		zap.String("building_type", buildingType.String()))

	report := &output.Report{
		BuildingType: buildingType,
		BuildPeriod:  buildPeriod,
		Metadata: output.ReportMetadata{
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Version:   "0.1.0",
		},
	}

	baseTotal := decimal.Zero
	for i := range applicable {
		est := engine.EstimateMeasure(engine.Request{
			Measure:      &applicable[i],
			Building:     building,
			BuildingType: buildingType,
			BuildPeriod:  buildPeriod,
			CornerHouse:  cornerHouse,
			Settings:     &settings,
			HorizonYears: cfg.Estimation.HorizonYears,
		})
		baseTotal = baseTotal.Add(est.BaseCost)
		report.Estimates = append(report.Estimates, est)
	}

	breakdown := budget.Cascade(baseTotal, &settings)
	report.Budget = &breakdown
	report.Metadata.Duration = time.Since(startTime).String()

	format := output.Format(outputFormat)
	if outputFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter := output.New(format, showDetails && cfg.Output.ShowDetails)
	if err := formatter.Render(os.Stdout, report); err != nil {
		return err
	}

	if exportFile != "" {
		data, err := excel.Generate(report)
		if err != nil {
			return fmt.Errorf("excel export failed: %w", err)
		}
		if err := os.WriteFile(exportFile, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", exportFile, err)
		}
		fmt.Printf("Report written to %s\n", exportFile)
	}
	return nil
}
