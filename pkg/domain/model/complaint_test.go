package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
)

func TestComplaint_Status(t *testing.T) {
	c := &model.Complaint{ReceivedDate: time.Now()}
	gt.B(t, c.IsResolved()).False()
	gt.Value(t, c.Status()).Equal(types.ComplaintStatusOpen)

	resolved := time.Now()
	c.ResolvedDate = &resolved
	gt.B(t, c.IsResolved()).True()
	gt.Value(t, c.Status()).Equal(types.ComplaintStatusResolved)
}

func TestComplaint_LetterSent(t *testing.T) {
	c := &model.Complaint{
		FourWeekLetterSent: true,
		FinalResponseSent:  true,
	}

	gt.B(t, c.LetterSent(types.MilestoneFourWeek)).True()
	gt.B(t, c.LetterSent(types.MilestoneEightWeek)).False()
	gt.B(t, c.LetterSent(types.MilestoneFinalResponse)).True()
	gt.B(t, c.LetterSent(types.MilestoneKind("unknown"))).False()
}
