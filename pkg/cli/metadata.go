package cli

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/goerr/v2"
)

// DetectRepositoryURL reads the origin remote of the git repository at
// dir and returns its HTTPS github.com URL. Both SSH and HTTPS remote
// formats are recognized. Used when "repos add" is invoked without an
// explicit URL.
func DetectRepositoryURL(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin")
	}

	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found")
	}

	url := remote.Config().URLs[0]
	owner, name, ok := parseRemoteURL(url)
	if !ok {
		return "", goerr.New("failed to parse GitHub owner/repo from git remote URL", goerr.V("url", url))
	}

	return fmt.Sprintf("https://github.com/%s/%s", owner, name), nil
}

func parseRemoteURL(url string) (owner, name string, ok bool) {
	var path string
	switch {
	case strings.HasPrefix(url, "git@github.com:"):
		// SSH format: git@github.com:owner/repo.git
		path = strings.TrimPrefix(url, "git@github.com:")
	case strings.Contains(url, "github.com/"):
		// HTTPS format: https://github.com/owner/repo.git
		parts := strings.SplitN(url, "github.com/", 2)
		path = parts[1]
	default:
		return "", "", false
	}

	path = strings.TrimSuffix(path, ".git")
	ownerRepo := strings.Split(path, "/")
	if len(ownerRepo) != 2 || ownerRepo[0] == "" || ownerRepo[1] == "" {
		return "", "", false
	}

	return ownerRepo[0], ownerRepo[1], true
}
