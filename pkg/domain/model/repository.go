package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
)

// RawRepository is a repository record as returned by the monitoring
// service. The identifier may arrive under either "id" or "_id".
type RawRepository struct {
	ID    string `json:"id,omitempty"`
	AltID string `json:"_id,omitempty"`

	Name          string     `json:"name"`
	Owner         string     `json:"owner"`
	URL           string     `json:"url"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
	LastMonitored *time.Time `json:"last_monitored,omitempty"`
}

// Repository is the canonical client-side view of a monitored repository.
type Repository struct {
	ID       types.RepoID
	Name     string
	Owner    string
	URL      string
	IsActive bool

	CreatedAt       time.Time
	LastMonitoredAt *time.Time
}

// NormalizeRepository maps a raw record into the canonical shape. It is a
// pure function; the input is not retained.
func NormalizeRepository(raw *RawRepository) (*Repository, error) {
	id, err := resolveID(raw.ID, raw.AltID)
	if err != nil {
		return nil, goerr.Wrap(err, "repository payload has no identifier",
			goerr.V("name", raw.Name),
			goerr.V("url", raw.URL),
		)
	}

	repo := &Repository{
		ID:        types.RepoID(id),
		Name:      raw.Name,
		Owner:     raw.Owner,
		URL:       raw.URL,
		IsActive:  raw.IsActive,
		CreatedAt: raw.CreatedAt,
	}
	if raw.LastMonitored != nil {
		ts := *raw.LastMonitored
		repo.LastMonitoredAt = &ts
	}

	return repo, nil
}

// resolveID prefers the canonical "id" field and falls back to the "_id"
// alias. Neither present is a malformed payload.
func resolveID(id, altID string) (string, error) {
	switch {
	case id != "":
		return id, nil
	case altID != "":
		return altID, nil
	default:
		return "", types.ErrMissingID
	}
}
