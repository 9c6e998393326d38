package repositories

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
)

// Repository stores the state of live sessions so that a session survives
// a server restart. It never links one session to another.
type Repository interface {
	Close(ctx context.Context) error
	// SaveSessions upserts all sessions in one transaction.
	SaveSessions(ctx context.Context, sessions []*types.SessionState) error
	SaveSession(ctx context.Context, session *types.SessionState) error
	// LoadSession returns ErrNotFound when no session has the ID.
	LoadSession(ctx context.Context, sessionID string) (*types.SessionState, error)
	DeleteSession(ctx context.Context, sessionID string) error
	// DeleteSessionsBefore removes sessions last updated before the unix
	// millisecond timestamp and returns how many were removed.
	DeleteSessionsBefore(ctx context.Context, updatedBefore int64) (int64, error)
}

// NewRepositoryFromURL opens the repository selected by the URL scheme:
// sqlite://<path> or postgresql://...
func NewRepositoryFromURL(ctx context.Context, connStr string) (Repository, error) {
	u, err := url.Parse(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse connection string: %v", err)
	}

	switch u.Scheme {
	case "sqlite":
		return NewSQLiteRepository(ctx, u.Host+u.Path)
	case "postgres", "postgresql":
		return NewPostgresRepository(ctx, u.String())
	default:
		return nil, fmt.Errorf("unknown database type %s", u.Scheme)
	}
}
