package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/repository"
)

type repoEntry struct {
	repo *model.Repository
}

type registry struct {
	mu sync.RWMutex

	// order preserves the sequence repositories were received in;
	// List returns entries in this order.
	order   []string
	repos   map[string]*repoEntry
	results []*model.MonitoringResult
}

// Repository operations

func (r *registry) ReplaceRepositories(ctx context.Context, repos []*model.Repository) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order := make([]string, 0, len(repos))
	entries := make(map[string]*repoEntry, len(repos))
	for _, repo := range repos {
		id := string(repo.ID)
		if _, exists := entries[id]; exists {
			return goerr.Wrap(repository.ErrInvalidInput, "duplicate repository ID",
				goerr.V("repoID", repo.ID),
			)
		}
		order = append(order, id)
		entries[id] = &repoEntry{repo: copyRepository(repo)}
	}

	r.order = order
	r.repos = entries

	return nil
}

func (r *registry) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	repos := make([]*model.Repository, 0, len(r.order))
	for _, id := range r.order {
		repos = append(repos, copyRepository(r.repos[id].repo))
	}

	return repos, nil
}

func (r *registry) GetRepository(ctx context.Context, repoID types.RepoID) (*model.Repository, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, exists := r.repos[string(repoID)]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", repoID),
		)
	}

	return copyRepository(entry.repo), nil
}

func (r *registry) PutRepository(ctx context.Context, repo *model.Repository) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := string(repo.ID)
	if _, exists := r.repos[id]; !exists {
		r.order = append(r.order, id)
	}
	r.repos[id] = &repoEntry{repo: copyRepository(repo)}

	return nil
}

func (r *registry) RemoveRepository(ctx context.Context, repoID types.RepoID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := string(repoID)
	if _, exists := r.repos[id]; !exists {
		return goerr.Wrap(repository.ErrNotFound, "repository not found",
			goerr.V("repoID", repoID),
		)
	}

	delete(r.repos, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}

// Result operations

func (r *registry) ReplaceResults(ctx context.Context, results []*model.MonitoringResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	replaced := make([]*model.MonitoringResult, len(results))
	for i, result := range results {
		replaced[i] = copyResult(result)
	}
	r.results = replaced

	return nil
}

func (r *registry) ListResults(ctx context.Context) ([]*model.MonitoringResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	results := make([]*model.MonitoringResult, len(r.results))
	for i, result := range r.results {
		results[i] = copyResult(result)
	}

	return results, nil
}

// Helper functions for deep copy

func copyRepository(repo *model.Repository) *model.Repository {
	if repo == nil {
		return nil
	}
	cpy := *repo
	if repo.LastMonitoredAt != nil {
		ts := *repo.LastMonitoredAt
		cpy.LastMonitoredAt = &ts
	}
	return &cpy
}

func copyResult(result *model.MonitoringResult) *model.MonitoringResult {
	if result == nil {
		return nil
	}
	cpy := *result
	cpy.RootCause = copyStringPtr(result.RootCause)
	cpy.ErrorMessage = copyStringPtr(result.ErrorMessage)
	cpy.CommitSHA = copyStringPtr(result.CommitSHA)
	cpy.IssueURL = copyStringPtr(result.IssueURL)
	cpy.LogsSnippet = copyStringPtr(result.LogsSnippet)
	if result.FailedRunID != nil {
		runID := *result.FailedRunID
		cpy.FailedRunID = &runID
	}
	return &cpy
}

func copyStringPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
