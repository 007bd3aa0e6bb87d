package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/fixwatch/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func statsCommand() *cli.Command {
	var remoteCfg config.Remote

	return &cli.Command{
		Name:  "stats",
		Usage: "Show aggregate statistics from the monitoring service",
		Flags: remoteCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCase(&remoteCfg)
			if err != nil {
				return err
			}

			stats, err := uc.Stats(ctx)
			if err != nil {
				return err
			}

			fmt.Printf("repositories:\t%d (%d active)\n", stats.TotalRepositories, stats.ActiveRepositories)
			fmt.Printf("fixes applied:\t%d\n", stats.SuccessfulFixes)
			fmt.Printf("failures seen:\t%d\n", stats.FailuresDetected)
			return nil
		},
	}
}
