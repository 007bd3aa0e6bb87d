package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrMissingID is returned by normalization when a raw payload
	// carries neither of the aliased identifier fields.
	ErrMissingID = goerr.New("missing identifier")

	// ErrInvalidState is returned when an operation is attempted in an
	// illegal lifecycle state, e.g. triggering a paused repository.
	ErrInvalidState = goerr.New("invalid state")

	// ErrStaleResponse marks a completed remote call whose target context
	// has changed since the request was issued. The response is discarded.
	ErrStaleResponse = goerr.New("stale response discarded")

	// Remote error taxonomy. All failures from the monitoring service are
	// collapsed into exactly one of these before the rest of the system
	// sees them.
	ErrRemoteNetwork  = goerr.New("remote: network error")
	ErrRemoteServer   = goerr.New("remote: server error")
	ErrRemoteNotFound = goerr.New("remote: not found")
	ErrRemotePaused   = goerr.New("remote: monitoring is paused")
)
