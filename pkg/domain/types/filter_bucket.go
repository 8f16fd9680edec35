package types

import "fmt"

// FilterBucket represents the coarse 3-band classification used for risk
// list filtering and portfolio summary counts. Its boundaries differ from
// SeverityBand; the two policies must not be merged (see DESIGN.md).
type FilterBucket string

const (
	FilterLow    FilterBucket = "low"
	FilterMedium FilterBucket = "medium"
	FilterHigh   FilterBucket = "high"
)

// AllFilterBuckets returns all valid filter buckets
func AllFilterBuckets() []FilterBucket {
	return []FilterBucket{
		FilterLow,
		FilterMedium,
		FilterHigh,
	}
}

// IsValid checks if the filter bucket is valid
func (f FilterBucket) IsValid() bool {
	switch f {
	case FilterLow,
		FilterMedium,
		FilterHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the filter bucket
func (f FilterBucket) String() string {
	return string(f)
}

// ParseFilterBucket parses a string into a FilterBucket
func ParseFilterBucket(s string) (FilterBucket, error) {
	bucket := FilterBucket(s)
	if !bucket.IsValid() {
		return "", fmt.Errorf("invalid filter bucket: %s", s)
	}
	return bucket, nil
}
