package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

func TestRecentActivity(t *testing.T) {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	index := model.NewRepoIndex([]*model.Repository{
		{ID: "A", Name: "alpha-service"},
		{ID: "B", Name: "bravo-service"},
	})

	// Newest first, as the remote returns them
	results := []*model.MonitoringResult{
		{ID: "1", RepoID: "A", Status: types.ResultStatusFailure, Timestamp: now.Add(4 * time.Hour)},
		{ID: "2", RepoID: "gone", Status: types.ResultStatusSuccess, Timestamp: now.Add(3 * time.Hour)},
		{ID: "3", RepoID: "B", Status: types.ResultStatusSuccess, Timestamp: now.Add(2 * time.Hour)},
		{ID: "4", RepoID: "A", Status: types.ResultStatusError, Timestamp: now.Add(time.Hour)},
		{ID: "5", RepoID: "B", Status: types.ResultStatusSuccess, Timestamp: now},
	}

	t.Run("joins repository names", func(t *testing.T) {
		entries := model.RecentActivity(results, index, 5)

		gt.A(t, entries).Length(4).
			At(0, func(t testing.TB, v model.ActivityEntry) {
				gt.V(t, v.Result.ID).Equal(types.ResultID("1"))
				gt.V(t, v.RepoName).Equal("alpha-service")
			}).
			At(1, func(t testing.TB, v model.ActivityEntry) {
				gt.V(t, v.Result.ID).Equal(types.ResultID("3"))
				gt.V(t, v.RepoName).Equal("bravo-service")
			})
	})

	t.Run("limit is taken before dropping orphans", func(t *testing.T) {
		// The head slice of size 2 contains one unresolvable entry, so
		// the feed holds a single row rather than backfilling
		entries := model.RecentActivity(results, index, 2)

		gt.A(t, entries).Length(1).
			At(0, func(t testing.TB, v model.ActivityEntry) {
				gt.V(t, v.Result.ID).Equal(types.ResultID("1"))
			})
	})

	t.Run("limit beyond collection size", func(t *testing.T) {
		entries := model.RecentActivity(results, index, 100)
		gt.A(t, entries).Length(4)
	})

	t.Run("empty collection", func(t *testing.T) {
		entries := model.RecentActivity(nil, index, 5)
		gt.A(t, entries).Length(0)
	})
}
