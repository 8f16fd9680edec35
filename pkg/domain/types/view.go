package types

import "fmt"

// HeatMapView selects which axes of a risk are aggregated into the heat map
type HeatMapView string

const (
	ViewInherent HeatMapView = "inherent"
	ViewResidual HeatMapView = "residual"
)

// IsValid checks if the heat map view is valid
func (v HeatMapView) IsValid() bool {
	switch v {
	case ViewInherent, ViewResidual:
		return true
	default:
		return false
	}
}

// Normalize returns the view, treating empty as ViewInherent
func (v HeatMapView) Normalize() HeatMapView {
	if v == "" {
		return ViewInherent
	}
	return v
}

// String returns the string representation of the heat map view
func (v HeatMapView) String() string {
	return string(v)
}

// ParseHeatMapView parses a string into a HeatMapView
func ParseHeatMapView(s string) (HeatMapView, error) {
	view := HeatMapView(s).Normalize()
	if !view.IsValid() {
		return "", fmt.Errorf("invalid heat map view: %s", s)
	}
	return view, nil
}
