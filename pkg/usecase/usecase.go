package usecase

import (
	"github.com/regmon-lab/regmon/pkg/domain/interfaces"
	"github.com/regmon-lab/regmon/pkg/domain/model/config"
	"github.com/regmon-lab/regmon/pkg/service/slacknotify"
)

type UseCases struct {
	repo       interfaces.Repository
	riskConfig *config.RiskConfig
	notifier   slacknotify.Service

	Risk      *RiskUseCase
	Complaint *ComplaintUseCase
}

type Option func(*UseCases)

// WithRiskConfig enables category/scale validation against the taxonomy
func WithRiskConfig(cfg *config.RiskConfig) Option {
	return func(uc *UseCases) {
		uc.riskConfig = cfg
	}
}

// WithNotifier enables Slack notifications for complaint lifecycle events
func WithNotifier(notifier slacknotify.Service) Option {
	return func(uc *UseCases) {
		uc.notifier = notifier
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Risk = NewRiskUseCase(repo, uc.riskConfig)
	uc.Complaint = NewComplaintUseCase(repo, uc.notifier)

	return uc
}
