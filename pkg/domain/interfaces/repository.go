package interfaces

import (
	"context"

	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

// Registry is the process-scoped view of repositories and monitoring
// results. Updates are whole-value replacements only: either the full
// collection or one full entry, never a partial field write. Concurrent
// writes to the same entry resolve last-write-wins by arrival order.
type Registry interface {
	// ReplaceRepositories swaps the whole repository collection,
	// preserving the given order for List.
	ReplaceRepositories(ctx context.Context, repos []*model.Repository) error
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
	GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error)
	// PutRepository replaces a single entry, or appends it when absent.
	PutRepository(ctx context.Context, repo *model.Repository) error
	RemoveRepository(ctx context.Context, id types.RepoID) error

	// ReplaceResults swaps the whole result collection. Results are
	// immutable; there is no per-entry write.
	ReplaceResults(ctx context.Context, results []*model.MonitoringResult) error
	ListResults(ctx context.Context) ([]*model.MonitoringResult, error)
}
