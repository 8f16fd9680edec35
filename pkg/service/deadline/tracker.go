// Package deadline classifies complaints against the FCA 8-week (56-day)
// regulatory resolution window. All functions are pure calculators over
// the complaint's date fields at a given evaluation time.
package deadline

import (
	"math"
	"time"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
)

const (
	// ResolutionSLADays is the fixed regulatory resolution window.
	// This is a domain constant, not configuration.
	ResolutionSLADays = 56

	// FourWeekDays marks the 4-week holding letter milestone
	FourWeekDays = 28

	// redThresholdDays is the elapsed-days boundary for the red state
	redThresholdDays = 49

	day = 24 * time.Hour
)

// Status is the evaluated deadline position of a single complaint
type Status struct {
	DaysElapsed       int                `json:"daysElapsed"`
	DaysUntilDeadline int                `json:"daysUntilDeadline"`
	Progress          int                `json:"progress"`
	Status            types.TrafficLight `json:"status"`
	PastFourWeeks     bool               `json:"pastFourWeeks"`
	PastEightWeeks    bool               `json:"pastEightWeeks"`
	IsResolved        bool               `json:"isResolved"`
	Deadline          time.Time          `json:"deadline"`
}

// Milestones bundles the milestone letter classifications of a complaint
type Milestones struct {
	FourWeek      types.MilestoneStatus `json:"fourWeek"`
	EightWeek     types.MilestoneStatus `json:"eightWeek"`
	FinalResponse types.MilestoneStatus `json:"finalResponse"`
}

// Evaluate computes elapsed time, deadline progress and the traffic-light
// urgency of a complaint at the given time. Elapsed and remaining days use
// whole-day floor arithmetic, never calendar-aware month math.
//
// The red/amber thresholds (49/28 days) always key off receivedDate, even
// when resolutionDeadline overrides the default 56-day window. A custom
// deadline therefore shifts PastEightWeeks and DaysUntilDeadline but not
// the traffic light. Known inconsistency, preserved on purpose; flagged
// for product review in DESIGN.md.
func Evaluate(receivedDate time.Time, resolutionDeadline, resolvedDate *time.Time, now time.Time) Status {
	daysElapsed := int(now.Sub(receivedDate) / day)

	deadline := receivedDate.Add(ResolutionSLADays * day)
	if resolutionDeadline != nil {
		deadline = *resolutionDeadline
	}

	daysUntil := int(deadline.Sub(now) / day)
	if daysUntil < 0 {
		daysUntil = 0
	}

	progress := int(math.Round(float64(daysElapsed) / ResolutionSLADays * 100))
	if progress > 100 {
		progress = 100
	}

	status := types.TrafficGreen
	switch {
	case daysElapsed >= redThresholdDays:
		status = types.TrafficRed
	case daysElapsed >= FourWeekDays:
		status = types.TrafficAmber
	}

	return Status{
		DaysElapsed:       daysElapsed,
		DaysUntilDeadline: daysUntil,
		Progress:          progress,
		Status:            status,
		PastFourWeeks:     now.After(receivedDate.Add(FourWeekDays * day)),
		PastEightWeeks:    now.After(deadline),
		IsResolved:        resolvedDate != nil,
		Deadline:          deadline,
	}
}

// MilestoneStatus classifies a single milestone letter: sent when the flag
// is set, overdue when its mark has passed without the letter, pending
// otherwise
func MilestoneStatus(sent, past bool) types.MilestoneStatus {
	switch {
	case sent:
		return types.MilestoneSent
	case past:
		return types.MilestoneOverdue
	default:
		return types.MilestonePending
	}
}

// EvaluateMilestones classifies the three milestone letters of a complaint
// at the given time. The final response has no overdue state of its own;
// the 8-week marker already covers that deadline.
func EvaluateMilestones(c *model.Complaint, now time.Time) Milestones {
	st := Evaluate(c.ReceivedDate, c.ResolutionDeadline, c.ResolvedDate, now)

	finalResponse := types.MilestonePending
	if c.FinalResponseSent {
		finalResponse = types.MilestoneSent
	}

	return Milestones{
		FourWeek:      MilestoneStatus(c.FourWeekLetterSent, st.PastFourWeeks),
		EightWeek:     MilestoneStatus(c.EightWeekLetterSent, st.PastEightWeeks),
		FinalResponse: finalResponse,
	}
}
