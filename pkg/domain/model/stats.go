package model

// Stats is the headline summary reported by the monitoring service.
type Stats struct {
	TotalRepositories  int `json:"total_repositories"`
	ActiveRepositories int `json:"active_repositories"`
	SuccessfulFixes    int `json:"successful_fixes"`
	FailuresDetected   int `json:"failures_detected"`
}
