package model

import (
	"strings"

	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

// FilterAll is the sentinel that disables a predicate.
const FilterAll = "all"

// UnknownRepositoryName labels results whose repository is no longer in
// the registry. Such results stay visible and searchable.
const UnknownRepositoryName = "Unknown Repository"

// RepoIndex is a lookup from repository ID to its canonical entity.
type RepoIndex map[types.RepoID]*Repository

func NewRepoIndex(repos []*Repository) RepoIndex {
	index := make(RepoIndex, len(repos))
	for _, repo := range repos {
		index[repo.ID] = repo
	}
	return index
}

// DisplayName returns the repository name for an ID, falling back to
// UnknownRepositoryName when the ID does not resolve.
func (x RepoIndex) DisplayName(id types.RepoID) string {
	if repo, ok := x[id]; ok {
		return repo.Name
	}
	return UnknownRepositoryName
}

// FilterState is the ephemeral view filter over the result collection.
// It is not persisted and is recomputed on every change.
type FilterState struct {
	Status     string // FilterAll or a result status value
	Repository string // FilterAll or a repository ID
	Search     string // free text, case-insensitive
}

// NewFilterState returns a filter that matches everything.
func NewFilterState() FilterState {
	return FilterState{Status: FilterAll, Repository: FilterAll}
}

// IsNeutral reports whether the filter matches every result.
func (x FilterState) IsNeutral() bool {
	return (x.Status == FilterAll || x.Status == "") &&
		(x.Repository == FilterAll || x.Repository == "") &&
		x.Search == ""
}

// Apply computes the filtered view of results. Predicates compose with
// AND; a predicate whose filter value is the all/empty sentinel is
// skipped. The search predicate matches case-insensitively against the
// repository name (or UnknownRepositoryName), root cause, error message,
// and status, any one of which suffices. Apply never mutates its inputs
// and preserves input order.
func (x FilterState) Apply(results []*MonitoringResult, index RepoIndex) []*MonitoringResult {
	if x.IsNeutral() {
		return results
	}

	search := strings.ToLower(x.Search)

	filtered := make([]*MonitoringResult, 0, len(results))
	for _, result := range results {
		if x.Status != FilterAll && x.Status != "" && string(result.Status) != x.Status {
			continue
		}
		if x.Repository != FilterAll && x.Repository != "" && string(result.RepoID) != x.Repository {
			continue
		}
		if search != "" && !matchSearch(result, index, search) {
			continue
		}
		filtered = append(filtered, result)
	}

	return filtered
}

func matchSearch(result *MonitoringResult, index RepoIndex, search string) bool {
	if strings.Contains(strings.ToLower(index.DisplayName(result.RepoID)), search) {
		return true
	}
	if result.RootCause != nil && strings.Contains(strings.ToLower(*result.RootCause), search) {
		return true
	}
	if result.ErrorMessage != nil && strings.Contains(strings.ToLower(*result.ErrorMessage), search) {
		return true
	}
	return strings.Contains(strings.ToLower(string(result.Status)), search)
}

// CountByStatus counts results with the given status over the unfiltered
// collection. Headline statistics use this regardless of the active
// filter state.
func CountByStatus(results []*MonitoringResult, status types.ResultStatus) int {
	var n int
	for _, result := range results {
		if result.Status == status {
			n++
		}
	}
	return n
}
