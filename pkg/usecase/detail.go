package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

// LoadRepositoryDetail fetches one repository and its results from the
// monitoring service. Each call supersedes the previous one: when a slow
// response resolves after a newer request was issued (for the same or a
// different repository), it is discarded and reported as
// types.ErrStaleResponse so it can never overwrite the newer view.
// Cancellation is cooperative, by token comparison at resolution time.
func (x *UseCase) LoadRepositoryDetail(ctx context.Context, id types.RepoID) (*model.RepositoryDetail, error) {
	x.detailMu.Lock()
	token := types.NewFetchToken()
	x.detailRepoID = id
	x.detailToken = token
	x.detailMu.Unlock()

	rawRepo, err := x.clients.Remote().GetRepository(ctx, id)
	if err != nil {
		return nil, err
	}
	repo, err := model.NormalizeRepository(rawRepo)
	if err != nil {
		return nil, err
	}

	rawResults, err := x.clients.Remote().ListResultsForRepository(ctx, id, x.resultLimit)
	if err != nil {
		return nil, err
	}
	results := make([]*model.MonitoringResult, 0, len(rawResults))
	for _, raw := range rawResults {
		result, err := model.NormalizeResult(raw)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}

	x.detailMu.Lock()
	defer x.detailMu.Unlock()
	if x.detailToken != token {
		return nil, goerr.Wrap(types.ErrStaleResponse, "repository detail superseded",
			goerr.V("requested", id),
			goerr.V("current", x.detailRepoID),
		)
	}

	return &model.RepositoryDetail{
		Repository: repo,
		Results:    results,
	}, nil
}
