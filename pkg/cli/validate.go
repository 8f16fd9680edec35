package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/regmon-lab/regmon/pkg/cli/config"
)

func cmdValidate() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate a risk taxonomy TOML file",
		ArgsUsage: "<config.toml>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return goerr.New("exactly one config file path is required")
			}
			path := cmd.Args().First()

			appCfg, err := config.LoadAppConfiguration(path)
			if err != nil {
				color.Red("✗ %s is invalid", path)
				return err
			}

			color.Green("✓ %s is valid", path)
			fmt.Printf("  categories: %d\n", len(appCfg.Categories))
			fmt.Printf("  likelihood levels: %d\n", len(appCfg.Likelihood))
			fmt.Printf("  impact levels: %d\n", len(appCfg.Impact))
			return nil
		},
	}
}
