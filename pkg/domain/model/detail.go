package model

// RepositoryDetail is the joined view for one repository: its canonical
// entity plus its monitoring results, newest first.
type RepositoryDetail struct {
	Repository *Repository
	Results    []*MonitoringResult
}
