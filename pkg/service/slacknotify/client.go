// Package slacknotify posts complaint deadline alerts to Slack.
package slacknotify

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"

	"github.com/regmon-lab/regmon/pkg/domain/model"
	"github.com/regmon-lab/regmon/pkg/domain/types"
	"github.com/regmon-lab/regmon/pkg/service/deadline"
)

// client implements Service interface
type client struct {
	api       *slack.Client
	channelID string
	baseURL   string
}

// Option is a functional option for client configuration
type Option func(*client)

// WithBaseURL adds a dashboard link to notifications when set
func WithBaseURL(baseURL string) Option {
	return func(c *client) {
		c.baseURL = baseURL
	}
}

// New creates a new Slack notifier posting to the given channel
func New(token, channelID string, opts ...Option) (Service, error) {
	if token == "" {
		return nil, goerr.New("Slack bot token is required")
	}
	if channelID == "" {
		return nil, goerr.New("Slack channel ID is required")
	}

	c := &client{
		api:       slack.New(token),
		channelID: channelID,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// attachmentColor maps traffic light states to Slack attachment colors
func attachmentColor(status types.TrafficLight) string {
	switch status {
	case types.TrafficRed:
		return "danger"
	case types.TrafficAmber:
		return "warning"
	default:
		return "good"
	}
}

func (c *client) NotifyOverdue(ctx context.Context, complaint *model.Complaint, st deadline.Status, ms deadline.Milestones) error {
	fields := []slack.AttachmentField{
		{Title: "Reference", Value: complaint.Reference, Short: true},
		{Title: "Days elapsed", Value: fmt.Sprintf("%d", st.DaysElapsed), Short: true},
		{Title: "Days until deadline", Value: fmt.Sprintf("%d", st.DaysUntilDeadline), Short: true},
		{Title: "Progress", Value: fmt.Sprintf("%d%%", st.Progress), Short: true},
		{Title: "4-week letter", Value: ms.FourWeek.String(), Short: true},
		{Title: "8-week letter", Value: ms.EightWeek.String(), Short: true},
	}

	attachment := slack.Attachment{
		Color:  attachmentColor(st.Status),
		Title:  fmt.Sprintf("Complaint #%d approaching resolution deadline", complaint.ID),
		Text:   complaint.Subject,
		Fields: fields,
	}
	if c.baseURL != "" {
		attachment.TitleLink = fmt.Sprintf("%s/complaints/%d", c.baseURL, complaint.ID)
	}

	_, _, err := c.api.PostMessageContext(ctx, c.channelID,
		slack.MsgOptionText(fmt.Sprintf("Complaint #%d is %s", complaint.ID, st.Status), false),
		slack.MsgOptionAttachments(attachment),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post overdue notification",
			goerr.V("complaintID", complaint.ID), goerr.V("channelID", c.channelID))
	}

	return nil
}

func (c *client) NotifyResolved(ctx context.Context, complaint *model.Complaint) error {
	_, _, err := c.api.PostMessageContext(ctx, c.channelID,
		slack.MsgOptionText(fmt.Sprintf("Complaint #%d (%s) has been resolved", complaint.ID, complaint.Reference), false),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post resolved notification",
			goerr.V("complaintID", complaint.ID), goerr.V("channelID", c.channelID))
	}

	return nil
}
