package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/regmon-lab/regmon/pkg/cli/config"
	server "github.com/regmon-lab/regmon/pkg/controller/http"
	"github.com/regmon-lab/regmon/pkg/service/worker"
	"github.com/regmon-lab/regmon/pkg/usecase"
	"github.com/regmon-lab/regmon/pkg/utils/logging"
	"github.com/regmon-lab/regmon/pkg/utils/safe"
)

func cmdServe(version string) *cli.Command {
	var (
		addr          string
		configPath    string
		baseURL       string
		sweepInterval time.Duration

		repoCfg   config.Repository
		slackCfg  config.Slack
		sentryCfg config.Sentry
	)

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       "127.0.0.1:8080",
			Category:    "Server",
			Sources:     cli.EnvVars("REGMON_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Path to risk taxonomy TOML file",
			Category:    "Server",
			Sources:     cli.EnvVars("REGMON_CONFIG"),
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Public base URL used in notification links",
			Category:    "Server",
			Sources:     cli.EnvVars("REGMON_BASE_URL"),
			Destination: &baseURL,
		},
		&cli.DurationFlag{
			Name:        "sweep-interval",
			Usage:       "Interval between complaint deadline sweeps",
			Value:       time.Hour,
			Category:    "Server",
			Sources:     cli.EnvVars("REGMON_SWEEP_INTERVAL"),
			Destination: &sweepInterval,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP server",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			logger := logging.Default()

			sentryCloser, err := sentryCfg.Configure(version)
			if err != nil {
				return err
			}
			defer sentryCloser()

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return err
			}
			defer safe.Close(ctx, repo)

			ucOpts := []usecase.Option{}

			if configPath != "" {
				appCfg, err := config.LoadAppConfiguration(configPath)
				if err != nil {
					return err
				}
				ucOpts = append(ucOpts, usecase.WithRiskConfig(appCfg.ToDomainRiskConfig()))
				logger.Info("Risk taxonomy loaded",
					"path", configPath,
					"categories", len(appCfg.Categories),
				)
			}

			slackCfg.SetBaseURL(baseURL)
			notifier, err := slackCfg.Configure()
			if err != nil {
				return err
			}
			if notifier != nil {
				ucOpts = append(ucOpts, usecase.WithNotifier(notifier))
				logger.Info("Slack notifications enabled", "slack", slackCfg)
			}

			uc := usecase.New(repo, ucOpts...)

			if notifier != nil {
				sweeper := worker.NewDeadlineSweepWorker(repo, notifier, sweepInterval)
				if err := sweeper.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start deadline sweep worker")
				}
				defer sweeper.Stop()
			} else {
				logger.Warn("Slack is not configured, deadline notifications are disabled")
			}

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           server.New(uc),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server", "addr", addr, "version", version)
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- goerr.Wrap(err, "HTTP server failed")
				}
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Shutting down", "signal", sig.String())
			case <-ctx.Done():
				logger.Info("Shutting down", "reason", "context canceled")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown HTTP server")
			}

			return nil
		},
	}
}
