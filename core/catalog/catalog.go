// Package catalog loads and validates measure catalogs, building records
// and financial settings from JSON files. This is the boundary with the
// external data providers: everything is validated here so the engine can
// assume well-formed inputs.
package catalog

import (
	"encoding/json"
	"os"

	"go.uber.org/zap"

	"renovation-cost/core/types"
	"renovation-cost/internal/errors"
	"renovation-cost/internal/logging"
)

// LoadMeasures reads and validates a measure catalog file
func LoadMeasures(path string) ([]types.Measure, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Catalog("reading measure catalog", err)
	}

	var measures []types.Measure
	if err := json.Unmarshal(data, &measures); err != nil {
		return nil, errors.Catalog("parsing measure catalog", err)
	}

	for i := range measures {
		if err := ValidateMeasure(&measures[i]); err != nil {
			return nil, err
		}
	}

	logging.Info("measure catalog loaded",
		zap.String("path", path),
		zap.Int("measures", len(measures)))
	return measures, nil
}

// LoadBuilding reads and validates a building record file
func LoadBuilding(path string) (*types.BuildingRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Catalog("reading building record", err)
	}

	var building types.BuildingRecord
	if err := json.Unmarshal(data, &building); err != nil {
		return nil, errors.Catalog("parsing building record", err)
	}

	if err := ValidateBuilding(&building); err != nil {
		return nil, err
	}

	logging.Info("building record loaded",
		zap.String("path", path),
		zap.Int("geometry", len(building.Geometry)),
		zap.Int("derived", len(building.Derived)))
	return &building, nil
}

// LoadSettings reads a financial settings snapshot; a missing file yields
// the defaults.
func LoadSettings(path string) (types.Settings, error) {
	settings := types.DefaultSettings()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Warn("settings file absent, using defaults", zap.String("path", path))
			return settings, nil
		}
		return settings, errors.Catalog("reading settings", err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return settings, errors.Catalog("parsing settings", err)
	}
	return settings, nil
}

// FilterApplicable returns the measures applicable to a building type,
// preserving catalog order
func FilterApplicable(measures []types.Measure, buildingType types.BuildingType) []types.Measure {
	var filtered []types.Measure
	for _, m := range measures {
		if m.AppliesTo(buildingType) {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// FindMeasure returns the named measure from a catalog
func FindMeasure(measures []types.Measure, name string) (*types.Measure, bool) {
	for i := range measures {
		if measures[i].Name == name {
			return &measures[i], true
		}
	}
	return nil, false
}
