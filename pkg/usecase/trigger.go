package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/fixwatch/pkg/domain/model"
	"github.com/m-mizutani/fixwatch/pkg/domain/types"
	"github.com/m-mizutani/fixwatch/pkg/utils/errutil"
	"github.com/m-mizutani/fixwatch/pkg/utils/logging"
)

// triggerRun tracks one repository's manual monitoring workflow. The
// token changes on every run; phase timers compare it at resolution time
// so a timer from a superseded run never clobbers the current one.
type triggerRun struct {
	phase types.TriggerPhase
	token types.FetchToken
}

// TriggerPhase returns the current workflow phase for a repository.
// Repositories without an in-flight run are idle.
func (x *UseCase) TriggerPhase(id types.RepoID) types.TriggerPhase {
	x.triggerMu.Lock()
	defer x.triggerMu.Unlock()

	if run, ok := x.triggers[id]; ok {
		return run.phase
	}
	return types.TriggerPhaseIdle
}

// TriggerMonitoring starts a manual monitoring run. The active flag is
// checked under the trigger lock at the moment of transition, not at
// request time: a repository paused since the caller last looked is
// rejected here. Rejections are synchronous and leave the phase at idle;
// the asynchronous part of the workflow reports through the phase only.
func (x *UseCase) TriggerMonitoring(ctx context.Context, id types.RepoID) error {
	x.triggerMu.Lock()
	defer x.triggerMu.Unlock()

	run, ok := x.triggers[id]
	if !ok {
		run = &triggerRun{phase: types.TriggerPhaseIdle}
		x.triggers[id] = run
	}

	if run.phase != types.TriggerPhaseIdle {
		return goerr.Wrap(types.ErrInvalidState, "monitoring is already in progress",
			goerr.V("id", id),
			goerr.V("phase", run.phase),
		)
	}

	repo, err := x.clients.Registry().GetRepository(ctx, id)
	if err != nil {
		return err
	}
	if !repo.IsActive {
		return goerr.Wrap(types.ErrInvalidState, "monitoring is paused, resume it first",
			goerr.V("id", id),
		)
	}

	token := types.NewFetchToken()
	run.phase = types.TriggerPhaseMonitoring
	run.token = token

	logging.From(ctx).Info("monitoring triggered", "id", id, "name", repo.Name)

	go x.runMonitoring(ctx, id, token)

	return nil
}

func (x *UseCase) runMonitoring(ctx context.Context, id types.RepoID, token types.FetchToken) {
	if err := x.clients.Remote().TriggerMonitoring(ctx, id); err != nil {
		x.settleError(ctx, id, token, err)
		return
	}

	// Settle: the remote run is asynchronous and its result is not in
	// the collection the moment the trigger call returns.
	select {
	case <-time.After(x.settleDelay):
	case <-ctx.Done():
		x.settleError(ctx, id, token, goerr.Wrap(ctx.Err(), "monitoring run abandoned", goerr.V("id", id)))
		return
	}

	// The repository may have been paused mid-flight
	if repo, err := x.clients.Registry().GetRepository(ctx, id); err == nil && !repo.IsActive {
		x.settleError(ctx, id, token, goerr.Wrap(types.ErrInvalidState, "repository paused while monitoring", goerr.V("id", id)))
		return
	}

	if err := x.RefreshResults(ctx); err != nil {
		x.settleError(ctx, id, token, err)
		return
	}

	// Best effort: pick up the server-side lastMonitoredAt update
	if raw, err := x.clients.Remote().GetRepository(ctx, id); err == nil {
		if repo, err := model.NormalizeRepository(raw); err == nil {
			_ = x.clients.Registry().PutRepository(ctx, repo)
		}
	}

	x.setPhase(id, token, types.TriggerPhaseCompleted)
	x.schedulePhaseReset(id, token, types.TriggerPhaseCompleted, x.completedCooldown)
}

func (x *UseCase) settleError(ctx context.Context, id types.RepoID, token types.FetchToken, err error) {
	errutil.HandleError(ctx, "monitoring run failed", err)
	x.setPhase(id, token, types.TriggerPhaseError)
	x.schedulePhaseReset(id, token, types.TriggerPhaseError, x.errorCooldown)
}

// setPhase applies a phase change only when the token still belongs to
// the current run.
func (x *UseCase) setPhase(id types.RepoID, token types.FetchToken, phase types.TriggerPhase) {
	x.triggerMu.Lock()
	defer x.triggerMu.Unlock()

	if run, ok := x.triggers[id]; ok && run.token == token {
		run.phase = phase
	}
}

// schedulePhaseReset returns a terminal display phase to idle after its
// cool-down. Display-only transition; stale timers are no-ops.
func (x *UseCase) schedulePhaseReset(id types.RepoID, token types.FetchToken, from types.TriggerPhase, after time.Duration) {
	time.AfterFunc(after, func() {
		x.triggerMu.Lock()
		defer x.triggerMu.Unlock()

		if run, ok := x.triggers[id]; ok && run.token == token && run.phase == from {
			run.phase = types.TriggerPhaseIdle
		}
	})
}
