package server

import (
	"time"

	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

type repoResponse struct {
	ID            types.RepoID `json:"id"`
	Name          string       `json:"name"`
	Owner         string       `json:"owner"`
	URL           string       `json:"url"`
	IsActive      bool         `json:"is_active"`
	CreatedAt     time.Time    `json:"created_at"`
	LastMonitored *time.Time   `json:"last_monitored,omitempty"`
}

type resultResponse struct {
	ID        types.ResultID     `json:"id"`
	RepoID    types.RepoID       `json:"repo_id"`
	Status    types.ResultStatus `json:"status"`
	Timestamp time.Time          `json:"timestamp"`

	RootCause    *string `json:"root_cause,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
	FixApplied   bool    `json:"fix_applied"`
	FailedRunID  *int64  `json:"failed_run_id,omitempty"`
	CommitSHA    *string `json:"commit_sha,omitempty"`
	IssueURL     *string `json:"issue_url,omitempty"`
	LogsSnippet  *string `json:"logs_snippet,omitempty"`
}

type activityResponse struct {
	resultResponse
	RepoName string `json:"repo_name"`
}

type detailResponse struct {
	Repository repoResponse     `json:"repository"`
	Results    []resultResponse `json:"results"`
}

type statusCounts struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
	Error   int `json:"error"`
	Unknown int `json:"unknown"`
}

type resultsResponse struct {
	Results []resultResponse `json:"results"`
	Total   int              `json:"total"`
	Counts  statusCounts     `json:"counts"`
}

func toRepoResponse(repo *model.Repository) repoResponse {
	return repoResponse{
		ID:            repo.ID,
		Name:          repo.Name,
		Owner:         repo.Owner,
		URL:           repo.URL,
		IsActive:      repo.IsActive,
		CreatedAt:     repo.CreatedAt,
		LastMonitored: repo.LastMonitoredAt,
	}
}

func toRepoResponses(repos []*model.Repository) []repoResponse {
	resp := make([]repoResponse, 0, len(repos))
	for _, repo := range repos {
		resp = append(resp, toRepoResponse(repo))
	}
	return resp
}

func toResultResponse(result *model.MonitoringResult) resultResponse {
	return resultResponse{
		ID:           result.ID,
		RepoID:       result.RepoID,
		Status:       result.Status,
		Timestamp:    result.Timestamp,
		RootCause:    result.RootCause,
		ErrorMessage: result.ErrorMessage,
		FixApplied:   result.FixApplied,
		FailedRunID:  result.FailedRunID,
		CommitSHA:    result.CommitSHA,
		IssueURL:     result.IssueURL,
		LogsSnippet:  result.LogsSnippet,
	}
}

func toResultResponses(results []*model.MonitoringResult) []resultResponse {
	resp := make([]resultResponse, 0, len(results))
	for _, result := range results {
		resp = append(resp, toResultResponse(result))
	}
	return resp
}

func toActivityResponses(entries []model.ActivityEntry) []activityResponse {
	resp := make([]activityResponse, 0, len(entries))
	for _, entry := range entries {
		resp = append(resp, activityResponse{
			resultResponse: toResultResponse(entry.Result),
			RepoName:       entry.RepoName,
		})
	}
	return resp
}
