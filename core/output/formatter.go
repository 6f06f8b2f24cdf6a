// Package output renders estimation reports for humans and machines.
// This package produces output only; it never performs cost logic.
package output

import (
	"io"

	"renovation-cost/core/budget"
	"renovation-cost/core/engine"
	"renovation-cost/core/types"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable terminal report
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"
)

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report) error
}

// Report is the complete estimation output for one residence
type Report struct {
	// BuildingType is the residence's structural tier
	BuildingType types.BuildingType `json:"buildingType"`

	// BuildPeriod is the residence's build-period label
	BuildPeriod string `json:"buildPeriod,omitempty"`

	// Estimates holds one entry per estimated measure
	Estimates []engine.MeasureEstimate `json:"estimates"`

	// Budget is the cascaded budget breakdown over the combined base cost
	Budget *budget.Breakdown `json:"budget,omitempty"`

	// Metadata contains execution context
	Metadata ReportMetadata `json:"metadata"`
}

// ReportMetadata contains execution context
type ReportMetadata struct {
	// Timestamp is when the report was produced
	Timestamp string `json:"timestamp"`

	// Duration is how long the estimation took
	Duration string `json:"duration,omitempty"`

	// Version is the tool version
	Version string `json:"version"`
}

// New returns the formatter for a format name, defaulting to CLI
func New(format Format, showDetails bool) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	default:
		return &CLIFormatter{ShowDetails: showDetails}
	}
}
