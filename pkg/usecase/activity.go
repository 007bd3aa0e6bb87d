package usecase

import (
	"context"

	"github.com/m-mizutani/fixwatch/pkg/domain/model"
)

// DefaultActivityLimit is the size of the recent-activity feed.
const DefaultActivityLimit = 5

// RecentActivity joins the newest results with repository names. The
// result collection is already ordered newest first by the monitoring
// service; entries whose repository is gone are dropped from the feed.
func (x *UseCase) RecentActivity(ctx context.Context, limit int) ([]model.ActivityEntry, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	results, err := x.clients.Registry().ListResults(ctx)
	if err != nil {
		return nil, err
	}

	repos, err := x.clients.Registry().ListRepositories(ctx)
	if err != nil {
		return nil, err
	}

	return model.RecentActivity(results, model.NewRepoIndex(repos), limit), nil
}
