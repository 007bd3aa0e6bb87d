package model

import (
	"net/url"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

// AddRepositoryInput is the request to start watching a repository. The
// access token needs repo and workflow scopes on the remote side.
type AddRepositoryInput struct {
	URL         string
	AccessToken types.AccessToken
}

// Validate checks the input before any remote call is made. The URL must
// be an HTTPS GitHub repository URL with exactly owner/repo path parts.
func (x *AddRepositoryInput) Validate() error {
	if x.AccessToken == "" {
		return goerr.Wrap(types.ErrValidationFailed, "access token is empty")
	}
	if _, _, err := parseGitHubURL(x.URL); err != nil {
		return err
	}
	return nil
}

// OwnerRepo returns the owner and repository name parsed from the URL.
// Validate must have passed first.
func (x *AddRepositoryInput) OwnerRepo() (string, string) {
	owner, name, _ := parseGitHubURL(x.URL)
	return owner, name
}

func parseGitHubURL(raw string) (owner, name string, err error) {
	if raw == "" {
		return "", "", goerr.Wrap(types.ErrValidationFailed, "repository URL is empty")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", "", goerr.Wrap(types.ErrValidationFailed, "invalid repository URL", goerr.V("url", raw))
	}
	if u.Scheme != "https" || u.Host != "github.com" {
		return "", "", goerr.Wrap(types.ErrValidationFailed, "URL must be an HTTPS github.com URL", goerr.V("url", raw))
	}

	parts := strings.Split(strings.Trim(strings.TrimSuffix(u.Path, ".git"), "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.Wrap(types.ErrValidationFailed, "URL path must be /{owner}/{repo}", goerr.V("url", raw))
	}

	return parts[0], parts[1], nil
}
