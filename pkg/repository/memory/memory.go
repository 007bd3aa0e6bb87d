package memory

import "github.com/m-mizutani/fixwatch/pkg/domain/interfaces"

// New creates a new in-memory registry
func New() interfaces.Registry {
	return &registry{
		repos: make(map[string]*repoEntry),
	}
}
