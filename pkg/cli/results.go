package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/fixwatch/pkg/cli/config"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/infra"
	"github.com/m-mizutani/fixwatch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func newResultsUseCase(remoteSvc interfaces.RemoteService, limit int) *usecase.UseCase {
	return usecase.New(
		infra.New(infra.WithRemote(remoteSvc)),
		usecase.WithResultLimit(limit),
	)
}

func resultsCommand() *cli.Command {
	var (
		status    string
		repoName  string
		search    string
		limit     int
		remoteCfg config.Remote
	)

	resultFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "status",
			Usage:       "Filter by status [all|success|failure|error|unknown]",
			Value:       model.FilterAll,
			Destination: &status,
		},
		&cli.StringFlag{
			Name:        "repository",
			Usage:       "Filter by repository name or ID",
			Value:       model.FilterAll,
			Destination: &repoName,
		},
		&cli.StringFlag{
			Name:        "search",
			Usage:       "Substring search over name, root cause, error message and status",
			Destination: &search,
		},
		&cli.IntFlag{
			Name:        "limit",
			Usage:       "Maximum number of results to fetch",
			Value:       100,
			Destination: &limit,
		},
	}

	return &cli.Command{
		Name:    "results",
		Aliases: []string{"res"},
		Usage:   "List monitoring results",
		Flags: slice.Flatten(
			resultFlags,
			remoteCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			remoteSvc, err := remoteCfg.New()
			if err != nil {
				return err
			}

			uc := newResultsUseCase(remoteSvc, limit)

			if err := uc.SyncRepositories(ctx); err != nil {
				return err
			}
			if err := uc.RefreshResults(ctx); err != nil {
				return err
			}

			repos, err := uc.ListRepositories(ctx)
			if err != nil {
				return err
			}

			results, err := uc.FilteredResults(ctx, model.FilterState{
				Status:     status,
				Repository: resolveRepositoryFilter(repos, repoName),
				Search:     search,
			})
			if err != nil {
				return err
			}

			for _, result := range results {
				line := fmt.Sprintf("%s\t%s\t%s\t%s",
					result.Timestamp.Format("2006-01-02 15:04:05"),
					result.RepoID,
					statusLabel(result.Status),
					derefOr(result.RootCause, "-"),
				)
				fmt.Println(line)
			}

			counts, err := uc.StatusCounts(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("\n%d success / %d failure / %d error / %d unknown\n",
				counts[types.ResultStatusSuccess],
				counts[types.ResultStatusFailure],
				counts[types.ResultStatusError],
				counts[types.ResultStatusUnknown],
			)

			return nil
		},
	}
}

// resolveRepositoryFilter maps a repository name to its ID, since the
// filter predicate compares IDs. A value that already is an ID, or the
// all/empty sentinel, passes through unchanged.
func resolveRepositoryFilter(repos []*model.Repository, value string) string {
	if value == model.FilterAll || value == "" {
		return value
	}

	for _, repo := range repos {
		if string(repo.ID) == value {
			return value
		}
	}
	for _, repo := range repos {
		if repo.Name == value {
			return string(repo.ID)
		}
	}

	return value
}

func statusLabel(status types.ResultStatus) string {
	switch status {
	case types.ResultStatusSuccess:
		return color.GreenString(string(status))
	case types.ResultStatusFailure:
		return color.RedString(string(status))
	case types.ResultStatusError:
		return color.MagentaString(string(status))
	default:
		return color.YellowString(string(status))
	}
}

func derefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
