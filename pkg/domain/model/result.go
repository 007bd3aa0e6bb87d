package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

// RawResult is a monitoring run record as returned by the monitoring
// service. The same "id"/"_id" aliasing applies as for repositories.
// Optional fields are pointers so that "no data" stays distinguishable
// from an explicit empty value.
type RawResult struct {
	ID    string `json:"id,omitempty"`
	AltID string `json:"_id,omitempty"`

	RepoID    string    `json:"repo_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`

	RootCause    *string `json:"root_cause,omitempty"`
	ErrorMessage *string `json:"error_message,omitempty"`
	FixApplied   bool    `json:"fix_applied,omitempty"`
	FailedRunID  *int64  `json:"failed_run_id,omitempty"`
	CommitSHA    *string `json:"commit_sha,omitempty"`
	IssueURL     *string `json:"issue_url,omitempty"`
	LogsSnippet  *string `json:"logs_snippet,omitempty"`
}

// MonitoringResult is one immutable record of a completed monitoring run.
// It is never mutated after normalization; the in-memory collection is
// replaced wholesale on refetch.
type MonitoringResult struct {
	ID        types.ResultID
	RepoID    types.RepoID
	Status    types.ResultStatus
	Timestamp time.Time

	RootCause    *string
	ErrorMessage *string
	FixApplied   bool
	FailedRunID  *int64
	CommitSHA    *string
	IssueURL     *string
	LogsSnippet  *string
}

// NormalizeResult maps a raw record into the canonical shape. A status
// value outside the closed enumeration becomes ResultStatusUnknown. The
// referenced repository is not required to exist.
func NormalizeResult(raw *RawResult) (*MonitoringResult, error) {
	id, err := resolveID(raw.ID, raw.AltID)
	if err != nil {
		return nil, goerr.Wrap(err, "result payload has no identifier",
			goerr.V("repo_id", raw.RepoID),
			goerr.V("timestamp", raw.Timestamp),
		)
	}

	return &MonitoringResult{
		ID:           types.ResultID(id),
		RepoID:       types.RepoID(raw.RepoID),
		Status:       types.ParseResultStatus(raw.Status),
		Timestamp:    raw.Timestamp,
		RootCause:    raw.RootCause,
		ErrorMessage: raw.ErrorMessage,
		FixApplied:   raw.FixApplied,
		FailedRunID:  raw.FailedRunID,
		CommitSHA:    raw.CommitSHA,
		IssueURL:     raw.IssueURL,
		LogsSnippet:  raw.LogsSnippet,
	}, nil
}
