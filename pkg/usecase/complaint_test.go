package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
	"github.com/regmon-lab/regmon/pkg/repository/memory"
	"github.com/regmon-lab/regmon/pkg/service/deadline"
	"github.com/regmon-lab/regmon/pkg/usecase"
)

type fakeNotifier struct {
	mu       sync.Mutex
	resolved []int64
	overdue  []int64
	notified chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{notified: make(chan struct{}, 16)}
}

func (f *fakeNotifier) NotifyOverdue(ctx context.Context, c *model.Complaint, st deadline.Status, ms deadline.Milestones) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.overdue = append(f.overdue, c.ID)
	f.notified <- struct{}{}
	return nil
}

func (f *fakeNotifier) NotifyResolved(ctx context.Context, c *model.Complaint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolved = append(f.resolved, c.ID)
	f.notified <- struct{}{}
	return nil
}

func (f *fakeNotifier) resolvedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.resolved)
}

func (f *fakeNotifier) waitNotified(t *testing.T) {
	t.Helper()
	select {
	case <-f.notified:
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for notification")
	}
}

func TestComplaintUseCase_CreateComplaint(t *testing.T) {
	t.Run("create complaint with defaults", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Complaint.CreateComplaint(ctx, &model.Complaint{
			Subject:         "Unexpected charge",
			ComplainantName: "Sam Smith",
		})
		gt.NoError(t, err).Required()

		gt.Number(t, created.ID).NotEqual(0)
		gt.Value(t, created.Reference).NotEqual("")
		gt.B(t, created.ReceivedDate.IsZero()).False()
		gt.Value(t, created.Status()).Equal(types.ComplaintStatusOpen)
	})

	t.Run("explicit reference and received date are kept", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		received := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
		created, err := uc.Complaint.CreateComplaint(ctx, &model.Complaint{
			Subject:      "Slow refund",
			Reference:    "CMP-2025-001",
			ReceivedDate: received,
		})
		gt.NoError(t, err).Required()

		gt.Value(t, created.Reference).Equal("CMP-2025-001")
		gt.Value(t, created.ReceivedDate).Equal(received)
	})

	t.Run("create complaint without subject fails", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		_, err := uc.Complaint.CreateComplaint(ctx, &model.Complaint{})
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})
}

func TestComplaintUseCase_UpdateComplaint(t *testing.T) {
	t.Run("resolution transition notifies once", func(t *testing.T) {
		notifier := newFakeNotifier()
		uc := usecase.New(memory.New(), usecase.WithNotifier(notifier))
		ctx := context.Background()

		created, err := uc.Complaint.CreateComplaint(ctx, &model.Complaint{
			Subject: "Account closure delay",
		})
		gt.NoError(t, err).Required()

		resolved := time.Now().UTC()
		created.ResolvedDate = &resolved
		updated, err := uc.Complaint.UpdateComplaint(ctx, created)
		gt.NoError(t, err).Required()
		gt.B(t, updated.IsResolved()).True()

		notifier.waitNotified(t)
		gt.Value(t, notifier.resolvedCount()).Equal(1)

		// updating an already resolved complaint must not notify again
		updated.Subject = "Account closure delay (amended)"
		_, err = uc.Complaint.UpdateComplaint(ctx, updated)
		gt.NoError(t, err).Required()

		time.Sleep(50 * time.Millisecond)
		gt.Value(t, notifier.resolvedCount()).Equal(1)
	})

	t.Run("update without subject fails", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		created, err := uc.Complaint.CreateComplaint(ctx, &model.Complaint{Subject: "Valid"})
		gt.NoError(t, err).Required()

		created.Subject = ""
		_, err = uc.Complaint.UpdateComplaint(ctx, created)
		gt.Error(t, err).Is(usecase.ErrInvalidInput)
	})
}

func TestComplaintUseCase_MarkLetterSent(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	created, err := uc.Complaint.CreateComplaint(ctx, &model.Complaint{
		Subject: "Missing statement",
	})
	gt.NoError(t, err).Required()

	updated, err := uc.Complaint.MarkLetterSent(ctx, created.ID, types.MilestoneFourWeek)
	gt.NoError(t, err).Required()
	gt.B(t, updated.FourWeekLetterSent).True()
	gt.B(t, updated.EightWeekLetterSent).False()

	// idempotent
	again, err := uc.Complaint.MarkLetterSent(ctx, created.ID, types.MilestoneFourWeek)
	gt.NoError(t, err).Required()
	gt.B(t, again.FourWeekLetterSent).True()

	_, err = uc.Complaint.MarkLetterSent(ctx, created.ID, types.MilestoneKind("twelve-week"))
	gt.Error(t, err).Is(usecase.ErrInvalidInput)
}

func TestComplaintUseCase_Deadline(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	received := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := uc.Complaint.CreateComplaint(ctx, &model.Complaint{
		Subject:      "Fee dispute",
		ReceivedDate: received,
	})
	gt.NoError(t, err).Required()

	view, err := uc.Complaint.Deadline(ctx, created.ID, received.Add(30*24*time.Hour))
	gt.NoError(t, err).Required()

	gt.Value(t, view.Status.DaysElapsed).Equal(30)
	gt.Value(t, view.Status.Status).Equal(types.TrafficAmber)
	gt.Value(t, view.Milestones.FourWeek).Equal(types.MilestoneOverdue)
	gt.Value(t, view.Milestones.EightWeek).Equal(types.MilestonePending)

	_, err = uc.Complaint.Deadline(ctx, 99999, time.Now())
	gt.Error(t, err)
}
