package types

import "fmt"

// MilestoneStatus represents the state of a regulatory milestone letter
type MilestoneStatus string

const (
	MilestonePending MilestoneStatus = "pending"
	MilestoneSent    MilestoneStatus = "sent"
	MilestoneOverdue MilestoneStatus = "overdue"
)

// IsValid checks if the milestone status is valid
func (m MilestoneStatus) IsValid() bool {
	switch m {
	case MilestonePending, MilestoneSent, MilestoneOverdue:
		return true
	default:
		return false
	}
}

// String returns the string representation of the milestone status
func (m MilestoneStatus) String() string {
	return string(m)
}

// MilestoneKind identifies which milestone letter an operation refers to
type MilestoneKind string

const (
	MilestoneFourWeek      MilestoneKind = "four-week"
	MilestoneEightWeek     MilestoneKind = "eight-week"
	MilestoneFinalResponse MilestoneKind = "final"
)

// IsValid checks if the milestone kind is valid
func (k MilestoneKind) IsValid() bool {
	switch k {
	case MilestoneFourWeek, MilestoneEightWeek, MilestoneFinalResponse:
		return true
	default:
		return false
	}
}

// String returns the string representation of the milestone kind
func (k MilestoneKind) String() string {
	return string(k)
}

// ParseMilestoneKind parses a string into a MilestoneKind
func ParseMilestoneKind(s string) (MilestoneKind, error) {
	kind := MilestoneKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid milestone kind: %s", s)
	}
	return kind, nil
}
