package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . RemoteService

import (
	"context"

	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

// RemoteService is the monitoring/auto-fix service consumed by this
// client. The wire format is owned by the service; implementations must
// collapse every failure into the types.ErrRemote* taxonomy.
type RemoteService interface {
	ListRepositories(ctx context.Context) ([]*model.RawRepository, error)
	AddRepository(ctx context.Context, input *model.AddRepositoryInput) (*model.RawRepository, error)
	GetRepository(ctx context.Context, id types.RepoID) (*model.RawRepository, error)
	UpdateRepository(ctx context.Context, id types.RepoID, isActive bool) (*model.RawRepository, error)
	DeleteRepository(ctx context.Context, id types.RepoID) error

	TriggerMonitoring(ctx context.Context, id types.RepoID) error

	ListResultsForRepository(ctx context.Context, id types.RepoID, limit int) ([]*model.RawResult, error)
	ListAllResults(ctx context.Context, limit int) ([]*model.RawResult, error)

	GetStats(ctx context.Context) (*model.Stats, error)
}
