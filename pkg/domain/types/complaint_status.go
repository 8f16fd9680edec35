package types

// ComplaintStatus represents the lifecycle state of a complaint.
// It is derived from the presence of a resolved date, never stored.
type ComplaintStatus string

const (
	ComplaintStatusOpen     ComplaintStatus = "OPEN"
	ComplaintStatusResolved ComplaintStatus = "RESOLVED"
)

// IsValid checks if the complaint status is valid
func (s ComplaintStatus) IsValid() bool {
	switch s {
	case ComplaintStatusOpen, ComplaintStatusResolved:
		return true
	default:
		return false
	}
}

// String returns the string representation of the complaint status
func (s ComplaintStatus) String() string {
	return string(s)
}
