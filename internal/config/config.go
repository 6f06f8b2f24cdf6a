// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"renovation-cost/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Catalog contains catalog file locations
	Catalog CatalogConfig `json:"catalog"`

	// Estimation contains estimation defaults
	Estimation EstimationConfig `json:"estimation"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// CatalogConfig locates the catalog input files
type CatalogConfig struct {
	// MeasuresPath is the measure catalog file
	MeasuresPath string `json:"measures_path"`

	// SettingsPath is the financial settings file
	SettingsPath string `json:"settings_path"`
}

// EstimationConfig contains estimation defaults
type EstimationConfig struct {
	// HorizonYears is the maintenance projection horizon
	HorizonYears int `json:"horizon_years"`

	// BuildingType is the default residence type label
	BuildingType string `json:"building_type"`

	// BuildPeriod is the default build-period label
	BuildPeriod string `json:"build_period"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (cli, json)
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows the itemized calculation breakdown
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	base := filepath.Join(homeDir, ".renovation-cost")

	return &Config{
		Version: "1.0",
		Catalog: CatalogConfig{
			MeasuresPath: filepath.Join(base, "measures.json"),
			SettingsPath: filepath.Join(base, "settings.json"),
		},
		Estimation: EstimationConfig{
			HorizonYears: 40,
			BuildingType: "grondgebonden",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load loads configuration from a file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
