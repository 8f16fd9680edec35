package worker

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/regmon-lab/regmon/pkg/domain/interfaces"
	"github.com/regmon-lab/regmon/pkg/domain/types"
	"github.com/regmon-lab/regmon/pkg/service/deadline"
	"github.com/regmon-lab/regmon/pkg/service/slacknotify"
	"github.com/regmon-lab/regmon/pkg/utils/logging"
)

// notifyConcurrency bounds the Slack notification fan-out per sweep
const notifyConcurrency = 4

// DeadlineSweepWorker periodically evaluates open complaints against the
// 8-week resolution window and notifies the compliance channel when a
// complaint turns red or a milestone letter becomes overdue.
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type DeadlineSweepWorker struct {
	repo     interfaces.Repository
	notifier slacknotify.Service
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}

	// notified tracks the last traffic light posted per complaint so a
	// sweep only alerts on transitions, not on every tick. Accessed only
	// from the worker goroutine.
	notified map[int64]types.TrafficLight
}

// NewDeadlineSweepWorker creates a worker sweeping at the given interval
func NewDeadlineSweepWorker(repo interfaces.Repository, notifier slacknotify.Service, interval time.Duration) *DeadlineSweepWorker {
	return &DeadlineSweepWorker{
		repo:     repo,
		notifier: notifier,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
		notified: make(map[int64]types.TrafficLight),
	}
}

// Start begins the background sweep loop.
// The initial sweep and periodic sweeps run in a background goroutine and
// do not block server startup.
func (w *DeadlineSweepWorker) Start(ctx context.Context) error {
	logging.Default().Info("Deadline sweep worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *DeadlineSweepWorker) Stop() {
	logging.Default().Info("Deadline sweep worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Deadline sweep worker stopped")
}

func (w *DeadlineSweepWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	if err := w.Sweep(ctx, time.Now()); err != nil {
		logging.Default().Error("Initial deadline sweep failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.Sweep(ctx, time.Now()); err != nil {
				// Log error but continue worker
				logging.Default().Error("Deadline sweep failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.Default().Info("Deadline sweep worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Deadline sweep worker context cancelled")
			return
		}
	}
}

// Sweep performs a single evaluation cycle over all open complaints
func (w *DeadlineSweepWorker) Sweep(ctx context.Context, now time.Time) error {
	complaints, err := w.repo.Complaint().ListOpen(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to list open complaints")
	}

	type alert struct {
		id     int64
		status types.TrafficLight
	}
	alerts := make([]alert, 0, len(complaints))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(notifyConcurrency)

	for _, c := range complaints {
		c := c
		st := deadline.Evaluate(c.ReceivedDate, c.ResolutionDeadline, c.ResolvedDate, now)
		ms := deadline.EvaluateMilestones(c, now)

		needsAlert := st.Status == types.TrafficRed ||
			ms.FourWeek == types.MilestoneOverdue ||
			ms.EightWeek == types.MilestoneOverdue
		if !needsAlert {
			continue
		}
		if w.notified[c.ID] == st.Status {
			continue
		}
		alerts = append(alerts, alert{id: c.ID, status: st.Status})

		eg.Go(func() error {
			if err := w.notifier.NotifyOverdue(egCtx, c, st, ms); err != nil {
				return goerr.Wrap(err, "failed to notify overdue complaint", goerr.V("complaintID", c.ID))
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return err
	}

	for _, a := range alerts {
		w.notified[a.id] = a.status
	}

	logging.Default().Info("Deadline sweep completed",
		"open", len(complaints), "alerts", len(alerts))

	return nil
}
