package usecase

import (
	"context"

	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/utils/logging"
)

// RefreshResults refetches the result collection from the monitoring
// service, newest first, and replaces the in-memory view wholesale.
func (x *UseCase) RefreshResults(ctx context.Context) error {
	raws, err := x.clients.Remote().ListAllResults(ctx, x.resultLimit)
	if err != nil {
		return err
	}

	results := make([]*model.MonitoringResult, 0, len(raws))
	for _, raw := range raws {
		result, err := model.NormalizeResult(raw)
		if err != nil {
			return err
		}
		results = append(results, result)
	}

	if err := x.clients.Registry().ReplaceResults(ctx, results); err != nil {
		return err
	}

	logging.From(ctx).Debug("refreshed monitoring results", "count", len(results))

	return nil
}

// Results returns the unfiltered result collection, newest first.
func (x *UseCase) Results(ctx context.Context) ([]*model.MonitoringResult, error) {
	return x.clients.Registry().ListResults(ctx)
}

// FilteredResults computes the filtered view over the current
// collection. Filtering is pure; calling this on every keystroke is
// fine.
func (x *UseCase) FilteredResults(ctx context.Context, filter model.FilterState) ([]*model.MonitoringResult, error) {
	results, err := x.clients.Registry().ListResults(ctx)
	if err != nil {
		return nil, err
	}

	repos, err := x.clients.Registry().ListRepositories(ctx)
	if err != nil {
		return nil, err
	}

	return filter.Apply(results, model.NewRepoIndex(repos)), nil
}

// StatusCounts reports headline counts per status over the unfiltered
// collection. The counts do not change with the active filter state.
func (x *UseCase) StatusCounts(ctx context.Context) (map[types.ResultStatus]int, error) {
	results, err := x.clients.Registry().ListResults(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[types.ResultStatus]int, 4)
	for _, status := range []types.ResultStatus{
		types.ResultStatusSuccess,
		types.ResultStatusFailure,
		types.ResultStatusError,
		types.ResultStatusUnknown,
	} {
		counts[status] = model.CountByStatus(results, status)
	}

	return counts, nil
}

// Stats fetches the service-wide summary from the monitoring service.
func (x *UseCase) Stats(ctx context.Context) (*model.Stats, error) {
	return x.clients.Remote().GetStats(ctx)
}
