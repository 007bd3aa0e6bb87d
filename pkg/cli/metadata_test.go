package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/fixwatch/pkg/cli"
)

func initRepoWithOrigin(t *testing.T, remoteURL string) string {
	t.Helper()

	dir := t.TempDir()
	repo := gt.R1(git.PlainInit(dir, false)).NoError(t)

	_, err := repo.CreateRemote(&gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{remoteURL},
	})
	gt.NoError(t, err)

	return dir
}

func TestDetectRepositoryURL(t *testing.T) {
	t.Run("ssh remote", func(t *testing.T) {
		dir := initRepoWithOrigin(t, "git@github.com:acme/api-server.git")

		url := gt.R1(cli.DetectRepositoryURL(dir)).NoError(t)
		gt.V(t, url).Equal("https://github.com/acme/api-server")
	})

	t.Run("https remote", func(t *testing.T) {
		dir := initRepoWithOrigin(t, "https://github.com/acme/frontend.git")

		url := gt.R1(cli.DetectRepositoryURL(dir)).NoError(t)
		gt.V(t, url).Equal("https://github.com/acme/frontend")
	})

	t.Run("non-github remote", func(t *testing.T) {
		dir := initRepoWithOrigin(t, "https://gitlab.com/acme/frontend.git")

		_, err := cli.DetectRepositoryURL(dir)
		gt.Error(t, err)
	})

	t.Run("not a git repository", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "empty")
		gt.NoError(t, os.MkdirAll(dir, 0o755))

		_, err := cli.DetectRepositoryURL(dir)
		gt.Error(t, err)
	})
}
