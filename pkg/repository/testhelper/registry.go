package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/fixwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/repository"
)

// TestAll runs all test cases for Registry
// This is the main entry point for testing any Registry implementation
func TestAll(t *testing.T, newRegistry func() interfaces.Registry) {
	t.Run("RepositoryReplaceAndOrder", func(t *testing.T) {
		TestRepositoryReplaceAndOrder(t, newRegistry())
	})
	t.Run("RepositoryPutAndRemove", func(t *testing.T) {
		TestRepositoryPutAndRemove(t, newRegistry())
	})
	t.Run("RepositoryIsolation", func(t *testing.T) {
		TestRepositoryIsolation(t, newRegistry())
	})
	t.Run("ResultReplace", func(t *testing.T) {
		TestResultReplace(t, newRegistry())
	})
}

func newTestRepo(name string, active bool) *model.Repository {
	owner := fmt.Sprintf("owner-%s", uuid.New().String()[:8])
	return &model.Repository{
		ID:        types.RepoID(uuid.New().String()),
		Name:      name,
		Owner:     owner,
		URL:       fmt.Sprintf("https://github.com/%s/%s", owner, name),
		IsActive:  active,
		CreatedAt: time.Now(),
	}
}

// TestRepositoryReplaceAndOrder tests whole-collection replacement and
// insertion-order listing
func TestRepositoryReplaceAndOrder(t *testing.T, reg interfaces.Registry) {
	ctx := context.Background()

	repoA := newTestRepo("alpha", true)
	repoB := newTestRepo("beta", false)
	repoC := newTestRepo("gamma", true)

	gt.NoError(t, reg.ReplaceRepositories(ctx, []*model.Repository{repoA, repoB, repoC}))

	listed := gt.R1(reg.ListRepositories(ctx)).NoError(t)
	gt.A(t, listed).Length(3)
	gt.V(t, listed[0].ID).Equal(repoA.ID)
	gt.V(t, listed[1].ID).Equal(repoB.ID)
	gt.V(t, listed[2].ID).Equal(repoC.ID)

	got := gt.R1(reg.GetRepository(ctx, repoB.ID)).NoError(t)
	gt.V(t, got.Name).Equal("beta")
	gt.V(t, got.IsActive).Equal(false)

	// Replacing again swaps the whole collection
	gt.NoError(t, reg.ReplaceRepositories(ctx, []*model.Repository{repoC}))
	listed = gt.R1(reg.ListRepositories(ctx)).NoError(t)
	gt.A(t, listed).Length(1)

	_, err := reg.GetRepository(ctx, repoA.ID)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()

	// Duplicate IDs in one replacement are rejected
	err = reg.ReplaceRepositories(ctx, []*model.Repository{repoA, repoA})
	gt.B(t, errors.Is(err, repository.ErrInvalidInput)).True()
}

// TestRepositoryPutAndRemove tests single-entry replacement and removal
func TestRepositoryPutAndRemove(t *testing.T, reg interfaces.Registry) {
	ctx := context.Background()

	repo := newTestRepo("delta", true)
	gt.NoError(t, reg.ReplaceRepositories(ctx, []*model.Repository{repo}))

	// Put replaces the whole entry
	updated := *repo
	updated.IsActive = false
	now := time.Now()
	updated.LastMonitoredAt = &now
	gt.NoError(t, reg.PutRepository(ctx, &updated))

	got := gt.R1(reg.GetRepository(ctx, repo.ID)).NoError(t)
	gt.V(t, got.IsActive).Equal(false)
	gt.B(t, got.LastMonitoredAt != nil).True()

	// Put appends an unknown entry
	extra := newTestRepo("epsilon", true)
	gt.NoError(t, reg.PutRepository(ctx, extra))
	listed := gt.R1(reg.ListRepositories(ctx)).NoError(t)
	gt.A(t, listed).Length(2)
	gt.V(t, listed[1].ID).Equal(extra.ID)

	// Remove drops the entry; removing twice fails
	gt.NoError(t, reg.RemoveRepository(ctx, repo.ID))
	err := reg.RemoveRepository(ctx, repo.ID)
	gt.B(t, errors.Is(err, repository.ErrNotFound)).True()

	listed = gt.R1(reg.ListRepositories(ctx)).NoError(t)
	gt.A(t, listed).Length(1)
	gt.V(t, listed[0].ID).Equal(extra.ID)
}

// TestRepositoryIsolation verifies the registry hands out copies, not
// shared pointers
func TestRepositoryIsolation(t *testing.T, reg interfaces.Registry) {
	ctx := context.Background()

	repo := newTestRepo("zeta", true)
	gt.NoError(t, reg.ReplaceRepositories(ctx, []*model.Repository{repo}))

	got := gt.R1(reg.GetRepository(ctx, repo.ID)).NoError(t)
	got.IsActive = false
	got.Name = "mutated"

	again := gt.R1(reg.GetRepository(ctx, repo.ID)).NoError(t)
	gt.V(t, again.IsActive).Equal(true)
	gt.V(t, again.Name).Equal("zeta")
}

// TestResultReplace tests whole-collection replacement of results
func TestResultReplace(t *testing.T, reg interfaces.Registry) {
	ctx := context.Background()

	rootCause := "flaky integration test"
	results := []*model.MonitoringResult{
		{
			ID:        types.ResultID(uuid.New().String()),
			RepoID:    types.RepoID(uuid.New().String()),
			Status:    types.ResultStatusFailure,
			Timestamp: time.Now(),
			RootCause: &rootCause,
		},
		{
			ID:        types.ResultID(uuid.New().String()),
			RepoID:    types.RepoID(uuid.New().String()),
			Status:    types.ResultStatusSuccess,
			Timestamp: time.Now().Add(-time.Hour),
		},
	}

	gt.NoError(t, reg.ReplaceResults(ctx, results))

	listed := gt.R1(reg.ListResults(ctx)).NoError(t)
	gt.A(t, listed).Length(2)
	gt.V(t, listed[0].Status).Equal(types.ResultStatusFailure)

	// Results are copies; mutating a listed entry must not leak back
	*listed[0].RootCause = "mutated"
	again := gt.R1(reg.ListResults(ctx)).NoError(t)
	gt.V(t, *again[0].RootCause).Equal("flaky integration test")

	// Replacement with an empty collection clears the view
	gt.NoError(t, reg.ReplaceResults(ctx, nil))
	listed = gt.R1(reg.ListResults(ctx)).NoError(t)
	gt.A(t, listed).Length(0)
}
