// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

import "strings"

// BuildingType classifies a residence by its structural access type.
// Catalog prices may differ per type.
type BuildingType string

const (
	// GroundLevel is an attached ground-level residence (grondgebonden)
	GroundLevel BuildingType = "ground_level"

	// Stairwell is a stacked residence with stairwell access (portiek)
	Stairwell BuildingType = "stairwell"

	// Gallery is a stacked residence with gallery access (galerij)
	Gallery BuildingType = "gallery"
)

// String returns the string representation
func (t BuildingType) String() string {
	return string(t)
}

// Valid reports whether the building type is one of the known tiers
func (t BuildingType) Valid() bool {
	switch t {
	case GroundLevel, Stairwell, Gallery:
		return true
	}
	return false
}

// AllBuildingTypes lists the tiers in display order
func AllBuildingTypes() []BuildingType {
	return []BuildingType{GroundLevel, Stairwell, Gallery}
}

// ParseBuildingType maps a free-form residence type label to a tier.
// Labels mentioning "portiek" map to Stairwell, "galerij" (or the common
// misspelling "gallerij") to Gallery, anything else to GroundLevel.
func ParseBuildingType(label string) BuildingType {
	l := strings.ToLower(label)
	switch {
	case strings.Contains(l, "portiek"):
		return Stairwell
	case strings.Contains(l, "galerij"), strings.Contains(l, "gallerij"):
		return Gallery
	default:
		return GroundLevel
	}
}

// BuildingRecord exposes the two variable namespaces of a residence:
// raw geometry entered per building and derived quantities computed upstream.
// Values are plain numbers; zero is a legitimate value and is distinct from
// a missing key.
type BuildingRecord struct {
	// Geometry holds raw building-geometry variables (room sizes, facade
	// height, number of units)
	Geometry map[string]float64 `json:"geometry"`

	// Derived holds aggregate calculation variables computed upstream
	// (roof area, window perimeter, panel counts)
	Derived map[string]float64 `json:"derived"`
}

// Lookup returns the value for a variable name, searching geometry first
// and then the derived namespace.
func (b *BuildingRecord) Lookup(name string) (float64, bool) {
	if v, ok := b.Geometry[name]; ok {
		return v, true
	}
	if v, ok := b.Derived[name]; ok {
		return v, true
	}
	return 0, false
}
