package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/regmon-lab/regmon/pkg/domain/interfaces"
	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
	"github.com/regmon-lab/regmon/pkg/service/deadline"
	"github.com/regmon-lab/regmon/pkg/service/slacknotify"
	"github.com/regmon-lab/regmon/pkg/utils/async"
)

type ComplaintUseCase struct {
	repo     interfaces.Repository
	notifier slacknotify.Service
}

func NewComplaintUseCase(repo interfaces.Repository, notifier slacknotify.Service) *ComplaintUseCase {
	return &ComplaintUseCase{
		repo:     repo,
		notifier: notifier,
	}
}

// DeadlineView bundles the evaluated deadline position and milestone
// letter classifications of a complaint
type DeadlineView struct {
	Status     deadline.Status     `json:"status"`
	Milestones deadline.Milestones `json:"milestones"`
}

func (uc *ComplaintUseCase) CreateComplaint(ctx context.Context, c *model.Complaint) (*model.Complaint, error) {
	if c.Subject == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "complaint subject is required")
	}

	if c.Reference == "" {
		c.Reference = uuid.NewString()
	}
	if c.ReceivedDate.IsZero() {
		c.ReceivedDate = time.Now().UTC()
	}

	created, err := uc.repo.Complaint().Create(ctx, c)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create complaint")
	}

	return created, nil
}

func (uc *ComplaintUseCase) GetComplaint(ctx context.Context, id int64) (*model.Complaint, error) {
	c, err := uc.repo.Complaint().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get complaint")
	}

	return c, nil
}

func (uc *ComplaintUseCase) ListComplaints(ctx context.Context) ([]*model.Complaint, error) {
	complaints, err := uc.repo.Complaint().List(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list complaints")
	}

	return complaints, nil
}

// UpdateComplaint persists changes to a complaint. When the update records
// a resolution for the first time, a Slack note is dispatched asynchronously.
func (uc *ComplaintUseCase) UpdateComplaint(ctx context.Context, c *model.Complaint) (*model.Complaint, error) {
	if c.Subject == "" {
		return nil, goerr.Wrap(ErrInvalidInput, "complaint subject is required")
	}

	existing, err := uc.repo.Complaint().Get(ctx, c.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get complaint")
	}

	updated, err := uc.repo.Complaint().Update(ctx, c)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update complaint")
	}

	if uc.notifier != nil && !existing.IsResolved() && updated.IsResolved() {
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.notifier.NotifyResolved(ctx, updated)
		})
	}

	return updated, nil
}

func (uc *ComplaintUseCase) DeleteComplaint(ctx context.Context, id int64) error {
	if err := uc.repo.Complaint().Delete(ctx, id); err != nil {
		return goerr.Wrap(err, "failed to delete complaint")
	}

	return nil
}

// MarkLetterSent records a milestone letter as sent. Marking an already
// sent letter is a no-op success.
func (uc *ComplaintUseCase) MarkLetterSent(ctx context.Context, id int64, kind types.MilestoneKind) (*model.Complaint, error) {
	if !kind.IsValid() {
		return nil, goerr.Wrap(ErrInvalidInput, "invalid milestone kind", goerr.V("kind", kind))
	}

	c, err := uc.repo.Complaint().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get complaint")
	}

	if c.LetterSent(kind) {
		return c, nil
	}

	switch kind {
	case types.MilestoneFourWeek:
		c.FourWeekLetterSent = true
	case types.MilestoneEightWeek:
		c.EightWeekLetterSent = true
	case types.MilestoneFinalResponse:
		c.FinalResponseSent = true
	}

	updated, err := uc.repo.Complaint().Update(ctx, c)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update complaint")
	}

	return updated, nil
}

// Deadline evaluates the complaint's deadline position at the given time
func (uc *ComplaintUseCase) Deadline(ctx context.Context, id int64, now time.Time) (*DeadlineView, error) {
	c, err := uc.repo.Complaint().Get(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get complaint")
	}

	return &DeadlineView{
		Status:     deadline.Evaluate(c.ReceivedDate, c.ResolutionDeadline, c.ResolvedDate, now),
		Milestones: deadline.EvaluateMilestones(c, now),
	}, nil
}
