package deadline_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
	"github.com/regmon-lab/regmon/pkg/service/deadline"
)

var baseTime = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func daysAfter(n int) time.Time {
	return baseTime.Add(time.Duration(n) * 24 * time.Hour)
}

func TestEvaluate_TrafficLight(t *testing.T) {
	cases := []struct {
		name     string
		elapsed  int
		expected types.TrafficLight
	}{
		{"fresh complaint is green", 0, types.TrafficGreen},
		{"ten days is green", 10, types.TrafficGreen},
		{"day before four weeks is green", 27, types.TrafficGreen},
		{"four weeks turns amber", 28, types.TrafficAmber},
		{"thirty days is amber", 30, types.TrafficAmber},
		{"day before seven weeks is amber", 48, types.TrafficAmber},
		{"seven weeks turns red", 49, types.TrafficRed},
		{"fifty days is red", 50, types.TrafficRed},
		{"past the deadline stays red", 60, types.TrafficRed},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			st := deadline.Evaluate(baseTime, nil, nil, daysAfter(tc.elapsed))
			gt.Value(t, st.Status).Equal(tc.expected)
			gt.Value(t, st.DaysElapsed).Equal(tc.elapsed)
		})
	}
}

func TestEvaluate_Progress(t *testing.T) {
	t.Run("rounds to nearest percent", func(t *testing.T) {
		st := deadline.Evaluate(baseTime, nil, nil, daysAfter(10))
		// 10/56 = 17.86%
		gt.Value(t, st.Progress).Equal(18)
	})

	t.Run("half way", func(t *testing.T) {
		st := deadline.Evaluate(baseTime, nil, nil, daysAfter(28))
		gt.Value(t, st.Progress).Equal(50)
	})

	t.Run("caps at 100", func(t *testing.T) {
		st := deadline.Evaluate(baseTime, nil, nil, daysAfter(70))
		gt.Value(t, st.Progress).Equal(100)
	})

	t.Run("never decreases as time passes", func(t *testing.T) {
		prev := -1
		for d := 0; d <= 80; d++ {
			st := deadline.Evaluate(baseTime, nil, nil, daysAfter(d))
			gt.B(t, st.Progress >= prev).True()
			prev = st.Progress
		}
	})
}

func TestEvaluate_Deadline(t *testing.T) {
	t.Run("default deadline is 56 days after receipt", func(t *testing.T) {
		st := deadline.Evaluate(baseTime, nil, nil, daysAfter(10))
		gt.Value(t, st.Deadline).Equal(daysAfter(56))
		gt.Value(t, st.DaysUntilDeadline).Equal(46)
		gt.B(t, st.PastEightWeeks).False()
	})

	t.Run("remaining days floor at zero", func(t *testing.T) {
		st := deadline.Evaluate(baseTime, nil, nil, daysAfter(60))
		gt.Value(t, st.DaysUntilDeadline).Equal(0)
		gt.B(t, st.PastEightWeeks).True()
	})

	t.Run("custom deadline overrides the window", func(t *testing.T) {
		custom := daysAfter(70)
		st := deadline.Evaluate(baseTime, &custom, nil, daysAfter(60))
		gt.Value(t, st.Deadline).Equal(custom)
		gt.Value(t, st.DaysUntilDeadline).Equal(10)
		gt.B(t, st.PastEightWeeks).False()
		// traffic light still keys off receipt date
		gt.Value(t, st.Status).Equal(types.TrafficRed)
	})
}

func TestEvaluate_Resolved(t *testing.T) {
	resolved := daysAfter(20)
	st := deadline.Evaluate(baseTime, nil, &resolved, daysAfter(30))
	gt.B(t, st.IsResolved).True()

	open := deadline.Evaluate(baseTime, nil, nil, daysAfter(30))
	gt.B(t, open.IsResolved).False()
}

func TestMilestoneStatus(t *testing.T) {
	gt.Value(t, deadline.MilestoneStatus(true, false)).Equal(types.MilestoneSent)
	gt.Value(t, deadline.MilestoneStatus(true, true)).Equal(types.MilestoneSent)
	gt.Value(t, deadline.MilestoneStatus(false, true)).Equal(types.MilestoneOverdue)
	gt.Value(t, deadline.MilestoneStatus(false, false)).Equal(types.MilestonePending)
}

func TestEvaluateMilestones(t *testing.T) {
	t.Run("all pending before the four week mark", func(t *testing.T) {
		c := &model.Complaint{ReceivedDate: baseTime}
		ms := deadline.EvaluateMilestones(c, daysAfter(10))

		gt.Value(t, ms.FourWeek).Equal(types.MilestonePending)
		gt.Value(t, ms.EightWeek).Equal(types.MilestonePending)
		gt.Value(t, ms.FinalResponse).Equal(types.MilestonePending)
	})

	t.Run("four week letter overdue at day 35", func(t *testing.T) {
		c := &model.Complaint{ReceivedDate: baseTime}
		ms := deadline.EvaluateMilestones(c, daysAfter(35))

		gt.Value(t, ms.FourWeek).Equal(types.MilestoneOverdue)
		gt.Value(t, ms.EightWeek).Equal(types.MilestonePending)
	})

	t.Run("sent letters stay sent past their mark", func(t *testing.T) {
		c := &model.Complaint{
			ReceivedDate:        baseTime,
			FourWeekLetterSent:  true,
			EightWeekLetterSent: true,
		}
		ms := deadline.EvaluateMilestones(c, daysAfter(60))

		gt.Value(t, ms.FourWeek).Equal(types.MilestoneSent)
		gt.Value(t, ms.EightWeek).Equal(types.MilestoneSent)
	})

	t.Run("eight week letter overdue past the deadline", func(t *testing.T) {
		c := &model.Complaint{ReceivedDate: baseTime, FourWeekLetterSent: true}
		ms := deadline.EvaluateMilestones(c, daysAfter(60))

		gt.Value(t, ms.FourWeek).Equal(types.MilestoneSent)
		gt.Value(t, ms.EightWeek).Equal(types.MilestoneOverdue)
	})

	t.Run("final response is sent or pending, never overdue", func(t *testing.T) {
		c := &model.Complaint{ReceivedDate: baseTime}
		ms := deadline.EvaluateMilestones(c, daysAfter(90))
		gt.Value(t, ms.FinalResponse).Equal(types.MilestonePending)

		c.FinalResponseSent = true
		ms = deadline.EvaluateMilestones(c, daysAfter(90))
		gt.Value(t, ms.FinalResponse).Equal(types.MilestoneSent)
	})
}
