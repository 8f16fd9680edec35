package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/regmon-lab/regmon/pkg/cli/config"
	"github.com/regmon-lab/regmon/pkg/utils/logging"
)

// Run executes the CLI application
func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "regmon",
		Usage:   "Compliance risk register and complaints deadline management",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("Starting regmon", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(version),
			cmdValidate(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("CLI execution failed", "error", err)
		return err
	}

	return nil
}
