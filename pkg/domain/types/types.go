package types

import "log/slog"

type (
	RepoID      string
	ResultID    string
	AccessToken string
)

// ResultStatus is the outcome category of a single monitoring run. The
// remote service computes it; this client never derives it.
type ResultStatus string

const (
	ResultStatusSuccess ResultStatus = "success"
	ResultStatusFailure ResultStatus = "failure"
	ResultStatusError   ResultStatus = "error"

	// ResultStatusUnknown is assigned to any status value outside the
	// closed set above. It is kept as its own category and never folded
	// into success/failure/error.
	ResultStatusUnknown ResultStatus = "unknown"
)

// ParseResultStatus maps a raw status string to the closed enumeration.
func ParseResultStatus(s string) ResultStatus {
	switch ResultStatus(s) {
	case ResultStatusSuccess, ResultStatusFailure, ResultStatusError:
		return ResultStatus(s)
	default:
		return ResultStatusUnknown
	}
}

// TriggerPhase is the lifecycle phase of a manual monitoring run for one
// repository.
type TriggerPhase string

const (
	TriggerPhaseIdle       TriggerPhase = "idle"
	TriggerPhaseMonitoring TriggerPhase = "monitoring"
	TriggerPhaseCompleted  TriggerPhase = "completed"
	TriggerPhaseError      TriggerPhase = "error"
)

func (x AccessToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x AccessToken) String() string {
	return "***********"
}
