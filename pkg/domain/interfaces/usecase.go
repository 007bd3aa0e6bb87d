package interfaces

import (
	"context"

	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

type UseCase interface {
	SyncRepositories(ctx context.Context) error
	ListRepositories(ctx context.Context) ([]*model.Repository, error)
	GetRepository(ctx context.Context, id types.RepoID) (*model.Repository, error)
	AddRepository(ctx context.Context, input *model.AddRepositoryInput) (*model.Repository, error)
	SetRepositoryActive(ctx context.Context, id types.RepoID, isActive bool) (*model.Repository, error)
	RemoveRepository(ctx context.Context, id types.RepoID) error

	TriggerMonitoring(ctx context.Context, id types.RepoID) error
	TriggerPhase(id types.RepoID) types.TriggerPhase

	RefreshResults(ctx context.Context) error
	Results(ctx context.Context) ([]*model.MonitoringResult, error)
	FilteredResults(ctx context.Context, filter model.FilterState) ([]*model.MonitoringResult, error)
	StatusCounts(ctx context.Context) (map[types.ResultStatus]int, error)
	RecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error)

	LoadRepositoryDetail(ctx context.Context, id types.RepoID) (*model.RepositoryDetail, error)

	Stats(ctx context.Context) (*model.Stats, error)
}
