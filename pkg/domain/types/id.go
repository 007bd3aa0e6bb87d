package types

import "github.com/google/uuid"

type RequestID string

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

// FetchToken identifies one in-flight remote fetch. Staleness checks
// compare tokens at resolution time instead of aborting requests.
type FetchToken string

func NewFetchToken() FetchToken {
	return FetchToken(uuid.NewString())
}
