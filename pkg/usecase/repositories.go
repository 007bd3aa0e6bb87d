package usecase

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/repository"
	"github.com/m-mizutani/fixwatch/pkg/utils/logging"
)

// SyncRepositories refetches the repository collection from the
// monitoring service and replaces the registry view wholesale. A
// malformed payload fails the whole sync; the previous view stays intact.
func (x *UseCase) SyncRepositories(ctx context.Context) error {
	raws, err := x.clients.Remote().ListRepositories(ctx)
	if err != nil {
		return err
	}

	repos := make([]*model.Repository, 0, len(raws))
	for _, raw := range raws {
		repo, err := model.NormalizeRepository(raw)
		if err != nil {
			return err
		}
		repos = append(repos, repo)
	}

	if err := x.clients.Registry().ReplaceRepositories(ctx, repos); err != nil {
		return err
	}

	logging.From(ctx).Debug("synced repositories", "count", len(repos))

	return nil
}

func (x *UseCase) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	return x.clients.Registry().ListRepositories(ctx)
}

func (x *UseCase) GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error) {
	return x.clients.Registry().GetRepository(ctx, id)
}

// AddRepository validates the input, registers the repository with the
// monitoring service, and appends the accepted entity to the registry.
// Validation happens before any remote call.
func (x *UseCase) AddRepository(ctx context.Context, input *model.AddRepositoryInput) (*model.Repository, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	raw, err := x.clients.Remote().AddRepository(ctx, input)
	if err != nil {
		return nil, err
	}

	repo, err := model.NormalizeRepository(raw)
	if err != nil {
		return nil, err
	}

	if err := x.clients.Registry().PutRepository(ctx, repo); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("repository added", "id", repo.ID, "name", repo.Name)

	return repo, nil
}

// SetRepositoryActive toggles monitoring for a repository. The registry
// takes the server-confirmed post-state; on failure it is left unchanged
// and the error propagates. Concurrent toggles on the same id resolve
// last-write-wins by arrival order.
func (x *UseCase) SetRepositoryActive(ctx context.Context, id types.RepoID, isActive bool) (*model.Repository, error) {
	raw, err := x.clients.Remote().UpdateRepository(ctx, id, isActive)
	if err != nil {
		return nil, err
	}

	repo, err := model.NormalizeRepository(raw)
	if err != nil {
		return nil, err
	}

	if err := x.clients.Registry().PutRepository(ctx, repo); err != nil {
		return nil, err
	}

	action := "paused"
	if repo.IsActive {
		action = "resumed"
	}
	logging.From(ctx).Info("repository monitoring "+action, "id", repo.ID, "name", repo.Name)

	return repo, nil
}

// RemoveRepository deletes the repository remotely and only then removes
// it from the registry; it is never removed speculatively. Results that
// reference the repository stay in the result collection and degrade to
// "Unknown Repository" in filtered views.
func (x *UseCase) RemoveRepository(ctx context.Context, id types.RepoID) error {
	if err := x.clients.Remote().DeleteRepository(ctx, id); err != nil {
		return err
	}

	if err := x.clients.Registry().RemoveRepository(ctx, id); err != nil {
		// A concurrent sync may have dropped the entry already
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return goerr.Wrap(err, "failed to remove repository from registry", goerr.V("id", id))
	}

	logging.From(ctx).Info("repository removed", "id", id)

	return nil
}
