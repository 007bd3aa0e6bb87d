package usecase

import (
	"sync"
	"time"

	"github.com/m-mizutani/fixwatch/pkg/domain/interfaces"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/infra"
)

const (
	// defaultResultLimit caps how many results one refetch pulls.
	defaultResultLimit = 100

	// defaultSettleDelay is the wait between a trigger acknowledgment
	// and the result refetch. The remote run is asynchronous; results
	// are usually not visible the instant the trigger call returns.
	defaultSettleDelay = 3 * time.Second

	// Cool-downs return the terminal display phases to idle.
	defaultCompletedCooldown = 2 * time.Second
	defaultErrorCooldown     = 3 * time.Second
)

type UseCase struct {
	clients *infra.Clients

	resultLimit       int
	settleDelay       time.Duration
	completedCooldown time.Duration
	errorCooldown     time.Duration

	triggerMu sync.Mutex
	triggers  map[types.RepoID]*triggerRun

	detailMu     sync.Mutex
	detailRepoID types.RepoID
	detailToken  types.FetchToken
}

var _ interfaces.UseCase = &UseCase{}

type Option func(*UseCase)

// WithResultLimit sets how many results one refetch pulls.
func WithResultLimit(limit int) Option {
	return func(x *UseCase) {
		x.resultLimit = limit
	}
}

// WithSettleDelay overrides the post-trigger settle delay.
func WithSettleDelay(d time.Duration) Option {
	return func(x *UseCase) {
		x.settleDelay = d
	}
}

// WithCooldowns overrides how long the completed and error phases are
// held before returning to idle.
func WithCooldowns(completed, errored time.Duration) Option {
	return func(x *UseCase) {
		x.completedCooldown = completed
		x.errorCooldown = errored
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:           clients,
		resultLimit:       defaultResultLimit,
		settleDelay:       defaultSettleDelay,
		completedCooldown: defaultCompletedCooldown,
		errorCooldown:     defaultErrorCooldown,
		triggers:          make(map[types.RepoID]*triggerRun),
	}

	for _, opt := range options {
		opt(uc)
	}

	return uc
}
