package state

import (
	"context"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
)

// StateManager provides shared access to live sessions.
// Implementations must be thread-safe.
type StateManager interface {
	// Get returns a copy of the session with the given ID.
	Get(ctx context.Context, sessionID string) (*types.SessionState, error)
	// Set stores the session, replacing any session with the same ID.
	Set(ctx context.Context, session *types.SessionState) error
	// Delete removes the session. Deleting an unknown session is not an error.
	Delete(ctx context.Context, sessionID string) error
	// List returns copies of all live sessions.
	List(ctx context.Context) ([]*types.SessionState, error)
}

type ErrNotFound struct {
	SessionID string
}

func (e *ErrNotFound) Error() string {
	return "session " + e.SessionID + " not found"
}

func IsNotFound(err error) bool {
	_, ok := err.(*ErrNotFound)
	return ok
}
