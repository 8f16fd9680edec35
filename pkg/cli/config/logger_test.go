package config_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"

	"github.com/regmon-lab/regmon/pkg/cli/config"
)

// runFlags parses args through a throwaway command so flag destinations
// are filled the same way the real CLI fills them
func runFlags(t *testing.T, flags []cli.Flag, args []string) {
	t.Helper()

	cmd := &cli.Command{
		Name:  "test",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return nil
		},
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...))).Required()
}

func TestLogger_Configure(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		var loggerCfg config.Logger
		runFlags(t, loggerCfg.Flags(), nil)

		closer, err := loggerCfg.Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("invalid level is rejected", func(t *testing.T) {
		var loggerCfg config.Logger
		runFlags(t, loggerCfg.Flags(), []string{"--log-level", "verbose"})

		_, err := loggerCfg.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid format is rejected", func(t *testing.T) {
		var loggerCfg config.Logger
		runFlags(t, loggerCfg.Flags(), []string{"--log-format", "xml"})

		_, err := loggerCfg.Configure()
		gt.Error(t, err)
	})

	t.Run("json format to file", func(t *testing.T) {
		var loggerCfg config.Logger
		path := filepath.Join(t.TempDir(), "app.log")
		runFlags(t, loggerCfg.Flags(), []string{"--log-format", "json", "--log-output", path})

		closer, err := loggerCfg.Configure()
		gt.NoError(t, err).Required()
		closer()
	})
}
