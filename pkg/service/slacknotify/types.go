package slacknotify

import (
	"context"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/service/deadline"
)

// Service posts complaint deadline notifications to a compliance channel
type Service interface {
	// NotifyOverdue posts an alert for a complaint that is red or has an
	// overdue milestone letter
	NotifyOverdue(ctx context.Context, c *model.Complaint, st deadline.Status, ms deadline.Milestones) error

	// NotifyResolved posts a short note when a complaint is resolved
	NotifyResolved(ctx context.Context, c *model.Complaint) error
}
