package model

// ActivityEntry is one row of the recent-activity feed: a monitoring
// result joined with its repository display name.
type ActivityEntry struct {
	Result   *MonitoringResult
	RepoName string
}

// RecentActivity joins the first limit results with repository names.
//
// Precondition: results must already be ordered descending by timestamp,
// as returned by the monitoring service. This function takes a stable
// slice of the head and does not re-sort.
//
// Entries whose repository does not resolve in the index are dropped
// silently; the feed is presentation-only and never labels unknowns.
// The returned feed may therefore hold fewer than limit entries.
func RecentActivity(results []*MonitoringResult, index RepoIndex, limit int) []ActivityEntry {
	if limit > len(results) {
		limit = len(results)
	}

	entries := make([]ActivityEntry, 0, limit)
	for _, result := range results[:limit] {
		repo, ok := index[result.RepoID]
		if !ok {
			continue
		}
		entries = append(entries, ActivityEntry{
			Result:   result,
			RepoName: repo.Name,
		})
	}

	return entries
}
