package cli

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	cliapp "github.com/urfave/cli/v3"
)

func TestResultsFlagParsing(t *testing.T) {
	cmd := resultsCommand()
	cmd.Action = func(ctx context.Context, c *cliapp.Command) error {
		return nil
	}

	gt.NoError(t, cmd.Run(context.Background(), []string{"results", "--limit", "25", "--status", "failure"}))
	gt.V(t, cmd.Int("limit")).Equal(25)
	gt.V(t, cmd.String("status")).Equal("failure")
	gt.V(t, cmd.String("repository")).Equal(model.FilterAll)
}

func TestResolveRepositoryFilter(t *testing.T) {
	repos := []*model.Repository{
		{ID: "repo-1", Name: "api-server"},
		{ID: "repo-2", Name: "frontend"},
	}

	t.Run("display name resolves to the ID", func(t *testing.T) {
		gt.V(t, resolveRepositoryFilter(repos, "frontend")).Equal("repo-2")
	})

	t.Run("an ID passes through even when another repo shares the name", func(t *testing.T) {
		shadowed := append(repos, &model.Repository{ID: "repo-3", Name: "repo-1"})
		gt.V(t, resolveRepositoryFilter(shadowed, "repo-1")).Equal("repo-1")
	})

	t.Run("sentinels pass through", func(t *testing.T) {
		gt.V(t, resolveRepositoryFilter(repos, model.FilterAll)).Equal(model.FilterAll)
		gt.V(t, resolveRepositoryFilter(repos, "")).Equal("")
	})

	t.Run("unknown value is left as-is", func(t *testing.T) {
		gt.V(t, resolveRepositoryFilter(repos, "nope")).Equal("nope")
	})
}
