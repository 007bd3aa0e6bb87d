package infra

import (
	"github.com/m-mizutani/fixwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/fixwatch/pkg/repository/memory"
)

type Clients struct {
	remote   interfaces.RemoteService
	registry interfaces.Registry
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		registry: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Remote() interfaces.RemoteService {
	return x.remote
}
func (x *Clients) Registry() interfaces.Registry {
	return x.registry
}

func WithRemote(client interfaces.RemoteService) Option {
	return func(x *Clients) {
		x.remote = client
	}
}

func WithRegistry(reg interfaces.Registry) Option {
	return func(x *Clients) {
		x.registry = reg
	}
}
