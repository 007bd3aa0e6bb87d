package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

func ptr[T any](v T) *T { return &v }

func filterFixture() ([]*model.MonitoringResult, model.RepoIndex) {
	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	repos := []*model.Repository{
		{ID: "A", Name: "alpha-service"},
		{ID: "B", Name: "bravo-service"},
	}

	results := []*model.MonitoringResult{
		{ID: "1", RepoID: "A", Status: types.ResultStatusSuccess, Timestamp: now.Add(3 * time.Hour)},
		{ID: "2", RepoID: "B", Status: types.ResultStatusFailure, Timestamp: now.Add(2 * time.Hour),
			RootCause: ptr("OOM in test runner")},
		{ID: "3", RepoID: "gone", Status: types.ResultStatusError, Timestamp: now.Add(time.Hour),
			ErrorMessage: ptr("clone failed")},
		{ID: "4", RepoID: "A", Status: types.ResultStatusUnknown, Timestamp: now},
	}

	return results, model.NewRepoIndex(repos)
}

func resultIDs(results []*model.MonitoringResult) []types.ResultID {
	ids := make([]types.ResultID, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestFilterApply(t *testing.T) {
	results, index := filterFixture()

	t.Run("neutral filter returns the input unchanged", func(t *testing.T) {
		filter := model.NewFilterState()
		gt.True(t, filter.IsNeutral())

		filtered := filter.Apply(results, index)
		gt.A(t, filtered).Length(4)
		gt.V(t, filtered[0] == results[0]).Equal(true)
	})

	t.Run("empty values behave like the all sentinel", func(t *testing.T) {
		filtered := model.FilterState{}.Apply(results, index)
		gt.A(t, filtered).Length(4)
	})

	t.Run("status predicate", func(t *testing.T) {
		filtered := model.FilterState{Status: "failure", Repository: model.FilterAll}.Apply(results, index)
		gt.V(t, resultIDs(filtered)).Equal([]types.ResultID{"2"})
	})

	t.Run("repository predicate", func(t *testing.T) {
		filtered := model.FilterState{Status: model.FilterAll, Repository: "A"}.Apply(results, index)
		gt.V(t, resultIDs(filtered)).Equal([]types.ResultID{"1", "4"})
	})

	t.Run("repository with no results yields empty", func(t *testing.T) {
		filtered := model.FilterState{Status: model.FilterAll, Repository: "C"}.Apply(results, index)
		gt.A(t, filtered).Length(0)
	})

	t.Run("search matches repository name case-insensitively", func(t *testing.T) {
		filtered := model.FilterState{Status: model.FilterAll, Repository: model.FilterAll, Search: "ALPHA"}.Apply(results, index)
		gt.V(t, resultIDs(filtered)).Equal([]types.ResultID{"1", "4"})
	})

	t.Run("search matches root cause and error message", func(t *testing.T) {
		filtered := model.FilterState{Search: "oom"}.Apply(results, index)
		gt.V(t, resultIDs(filtered)).Equal([]types.ResultID{"2"})

		filtered = model.FilterState{Search: "clone"}.Apply(results, index)
		gt.V(t, resultIDs(filtered)).Equal([]types.ResultID{"3"})
	})

	t.Run("orphaned result is searchable under the unknown label", func(t *testing.T) {
		filtered := model.FilterState{Search: "unknown repo"}.Apply(results, index)
		gt.V(t, resultIDs(filtered)).Equal([]types.ResultID{"3"})
	})

	t.Run("predicates compose with AND", func(t *testing.T) {
		filtered := model.FilterState{Status: "success", Repository: "A", Search: "alpha"}.Apply(results, index)
		gt.V(t, resultIDs(filtered)).Equal([]types.ResultID{"1"})

		filtered = model.FilterState{Status: "failure", Repository: "A"}.Apply(results, index)
		gt.A(t, filtered).Length(0)
	})

	t.Run("input order is preserved", func(t *testing.T) {
		filtered := model.FilterState{Repository: "A", Status: model.FilterAll}.Apply(results, index)
		gt.V(t, resultIDs(filtered)).Equal([]types.ResultID{"1", "4"})
	})
}

func TestCountByStatus(t *testing.T) {
	results, _ := filterFixture()

	counts := map[types.ResultStatus]int{
		types.ResultStatusSuccess: model.CountByStatus(results, types.ResultStatusSuccess),
		types.ResultStatusFailure: model.CountByStatus(results, types.ResultStatusFailure),
		types.ResultStatusError:   model.CountByStatus(results, types.ResultStatusError),
		types.ResultStatusUnknown: model.CountByStatus(results, types.ResultStatusUnknown),
	}

	gt.V(t, counts[types.ResultStatusSuccess]).Equal(1)
	gt.V(t, counts[types.ResultStatusFailure]).Equal(1)
	gt.V(t, counts[types.ResultStatusError]).Equal(1)
	gt.V(t, counts[types.ResultStatusUnknown]).Equal(1)

	var total int
	for _, n := range counts {
		total += n
	}
	gt.V(t, total).Equal(len(results))
}

func TestDisplayName(t *testing.T) {
	_, index := filterFixture()

	gt.V(t, index.DisplayName("A")).Equal("alpha-service")
	gt.V(t, index.DisplayName("gone")).Equal(model.UnknownRepositoryName)
}
