package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/regmon-lab/regmon/pkg/service/slacknotify"
)

// Slack holds CLI flags for Slack notification configuration
type Slack struct {
	botToken  string
	channelID string
	baseURL   string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack bot token for deadline notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("REGMON_SLACK_BOT_TOKEN"),
			Destination: &s.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel-id",
			Usage:       "Slack channel ID receiving deadline notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("REGMON_SLACK_CHANNEL_ID"),
			Destination: &s.channelID,
		},
	}
}

func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(s.botToken)),
		slog.String("channel-id", s.channelID),
	)
}

// SetBaseURL sets the dashboard base URL included in notification links
func (s *Slack) SetBaseURL(baseURL string) {
	s.baseURL = baseURL
}

// IsConfigured reports whether Slack notifications are enabled
func (s *Slack) IsConfigured() bool {
	return s.botToken != ""
}

// Configure initializes the Slack notifier, or returns nil when not configured
func (s *Slack) Configure() (slacknotify.Service, error) {
	if !s.IsConfigured() {
		return nil, nil
	}
	if s.channelID == "" {
		return nil, goerr.New("slack-channel-id is required when slack-bot-token is set")
	}

	var opts []slacknotify.Option
	if s.baseURL != "" {
		opts = append(opts, slacknotify.WithBaseURL(s.baseURL))
	}

	svc, err := slacknotify.New(s.botToken, s.channelID, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to initialize slack notifier")
	}
	return svc, nil
}
