package model

import (
	"time"

	"github.com/regmon-lab/regmon/pkg/domain/types"
)

// Complaint represents a customer complaint tracked against the FCA 8-week
// resolution window. Complainant details carry the masq secret tag so they
// are redacted from structured logs.
type Complaint struct {
	ID          int64
	Reference   string
	OrgID       string
	Subject     string
	Description string

	ComplainantName  string `masq:"secret"`
	ComplainantEmail string `masq:"secret"`

	ReceivedDate time.Time
	// ResolutionDeadline overrides the default 56-day deadline when set
	ResolutionDeadline *time.Time
	ResolvedDate       *time.Time

	FourWeekLetterSent  bool
	EightWeekLetterSent bool
	FinalResponseSent   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsResolved reports whether a resolved date has been recorded
func (c *Complaint) IsResolved() bool {
	return c.ResolvedDate != nil
}

// Status returns the derived lifecycle status of the complaint
func (c *Complaint) Status() types.ComplaintStatus {
	if c.IsResolved() {
		return types.ComplaintStatusResolved
	}
	return types.ComplaintStatusOpen
}

// LetterSent reports whether the milestone letter of the given kind has
// been recorded as sent
func (c *Complaint) LetterSent(kind types.MilestoneKind) bool {
	switch kind {
	case types.MilestoneFourWeek:
		return c.FourWeekLetterSent
	case types.MilestoneEightWeek:
		return c.EightWeekLetterSent
	case types.MilestoneFinalResponse:
		return c.FinalResponseSent
	default:
		return false
	}
}
