package types

import "fmt"

// SeverityBand represents the 4-band display classification of a risk score.
// This is the labeling policy used by heat map and table rendering. It is
// intentionally distinct from FilterBucket, which uses different boundaries.
type SeverityBand string

const (
	SeverityLow      SeverityBand = "low"
	SeverityModerate SeverityBand = "moderate"
	SeverityHigh     SeverityBand = "high"
	SeverityCritical SeverityBand = "critical"
)

// AllSeverityBands returns all valid severity bands
func AllSeverityBands() []SeverityBand {
	return []SeverityBand{
		SeverityLow,
		SeverityModerate,
		SeverityHigh,
		SeverityCritical,
	}
}

// IsValid checks if the severity band is valid
func (s SeverityBand) IsValid() bool {
	switch s {
	case SeverityLow,
		SeverityModerate,
		SeverityHigh,
		SeverityCritical:
		return true
	default:
		return false
	}
}

// String returns the string representation of the severity band
func (s SeverityBand) String() string {
	return string(s)
}

// ParseSeverityBand parses a string into a SeverityBand
func ParseSeverityBand(s string) (SeverityBand, error) {
	band := SeverityBand(s)
	if !band.IsValid() {
		return "", fmt.Errorf("invalid severity band: %s", s)
	}
	return band, nil
}
