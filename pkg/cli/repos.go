package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/fixwatch/pkg/cli/config"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/infra"
	"github.com/m-mizutani/fixwatch/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func newUseCase(remoteCfg *config.Remote) (*usecase.UseCase, error) {
	remoteSvc, err := remoteCfg.New()
	if err != nil {
		return nil, err
	}

	return usecase.New(infra.New(infra.WithRemote(remoteSvc))), nil
}

func repoIDArg(c *cli.Command) (types.RepoID, error) {
	id := c.Args().First()
	if id == "" {
		return "", goerr.New("repository ID is required")
	}
	return types.RepoID(id), nil
}

func reposCommand() *cli.Command {
	var remoteCfg config.Remote

	return &cli.Command{
		Name:    "repos",
		Aliases: []string{"r"},
		Usage:   "Manage monitored repositories",
		Flags:   remoteCfg.Flags(),
		Commands: []*cli.Command{
			reposListCommand(&remoteCfg),
			reposAddCommand(&remoteCfg),
			reposSetActiveCommand(&remoteCfg, "pause", false),
			reposSetActiveCommand(&remoteCfg, "resume", true),
			reposDeleteCommand(&remoteCfg),
			reposMonitorCommand(&remoteCfg),
		},
	}
}

func reposListCommand(remoteCfg *config.Remote) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List monitored repositories",
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCase(remoteCfg)
			if err != nil {
				return err
			}

			if err := uc.SyncRepositories(ctx); err != nil {
				return err
			}
			repos, err := uc.ListRepositories(ctx)
			if err != nil {
				return err
			}

			for _, repo := range repos {
				state := color.GreenString("active")
				if !repo.IsActive {
					state = color.YellowString("paused")
				}
				fmt.Printf("%s\t%s/%s\t%s\t%s\n", repo.ID, repo.Owner, repo.Name, state, repo.URL)
			}
			return nil
		},
	}
}

func reposAddCommand(remoteCfg *config.Remote) *cli.Command {
	var (
		repoURL     string
		accessToken string
	)

	addFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "url",
			Usage:       "Repository URL (auto-detected from the current directory's origin remote when omitted)",
			Destination: &repoURL,
		},
		&cli.StringFlag{
			Name:        "token",
			Usage:       "GitHub access token with repo and workflow scopes",
			Sources:     cli.EnvVars("FIXWATCH_GITHUB_TOKEN"),
			Destination: &accessToken,
		},
	}

	return &cli.Command{
		Name:  "add",
		Usage: "Start watching a repository",
		Flags: addFlags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := newUseCase(remoteCfg)
			if err != nil {
				return err
			}

			if repoURL == "" {
				detected, err := DetectRepositoryURL(".")
				if err != nil {
					return goerr.Wrap(err, "no --url given and auto-detection failed")
				}
				repoURL = detected
			}

			repo, err := uc.AddRepository(ctx, &model.AddRepositoryInput{
				URL:         repoURL,
				AccessToken: types.AccessToken(accessToken),
			})
			if err != nil {
				return err
			}

			fmt.Printf("added %s (%s/%s)\n", repo.ID, repo.Owner, repo.Name)
			return nil
		},
	}
}

func reposSetActiveCommand(remoteCfg *config.Remote, name string, isActive bool) *cli.Command {
	usage := "Pause monitoring for a repository"
	if isActive {
		usage = "Resume monitoring for a repository"
	}

	return &cli.Command{
		Name:      name,
		Usage:     usage,
		ArgsUsage: "<repository-id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := repoIDArg(c)
			if err != nil {
				return err
			}

			uc, err := newUseCase(remoteCfg)
			if err != nil {
				return err
			}
			if err := uc.SyncRepositories(ctx); err != nil {
				return err
			}

			repo, err := uc.SetRepositoryActive(ctx, id, isActive)
			if err != nil {
				return err
			}

			fmt.Printf("%s %s/%s\n", name+"d", repo.Owner, repo.Name)
			return nil
		},
	}
}

func reposDeleteCommand(remoteCfg *config.Remote) *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Stop watching a repository",
		ArgsUsage: "<repository-id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := repoIDArg(c)
			if err != nil {
				return err
			}

			uc, err := newUseCase(remoteCfg)
			if err != nil {
				return err
			}
			if err := uc.SyncRepositories(ctx); err != nil {
				return err
			}

			if err := uc.RemoveRepository(ctx, id); err != nil {
				return err
			}

			fmt.Printf("deleted %s\n", id)
			return nil
		},
	}
}

func reposMonitorCommand(remoteCfg *config.Remote) *cli.Command {
	return &cli.Command{
		Name:      "monitor",
		Usage:     "Trigger a monitoring run and wait for it to finish",
		ArgsUsage: "<repository-id>",
		Action: func(ctx context.Context, c *cli.Command) error {
			id, err := repoIDArg(c)
			if err != nil {
				return err
			}

			uc, err := newUseCase(remoteCfg)
			if err != nil {
				return err
			}
			if err := uc.SyncRepositories(ctx); err != nil {
				return err
			}

			if err := uc.TriggerMonitoring(ctx, id); err != nil {
				return err
			}

			// The run is asynchronous; follow the phase until it lands
			// back on idle and report the last terminal phase seen.
			last := types.TriggerPhaseMonitoring
			ticker := time.NewTicker(200 * time.Millisecond)
			defer ticker.Stop()

			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-ticker.C:
				}

				phase := uc.TriggerPhase(id)
				if phase == types.TriggerPhaseIdle {
					switch last {
					case types.TriggerPhaseError:
						return goerr.New("monitoring run failed", goerr.V("repo_id", id))
					default:
						fmt.Println(color.GreenString("monitoring completed"))
						return nil
					}
				}
				last = phase
			}
		},
	}
}
