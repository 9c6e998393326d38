package workers

import (
	"context"
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/Michel-2503/Kopfrechnen/pkg/repositories"
	"github.com/Michel-2503/Kopfrechnen/pkg/state"
)

type SaveSessionsWorker struct {
	repository      repositories.Repository
	saveSessionChan <-chan SaveSessionRequest
	stateManager    state.StateManager
	interval        time.Duration
}

type NewSaveSessionsWorkerOptions struct {
	Repository      repositories.Repository
	SaveSessionChan <-chan SaveSessionRequest
	StateManager    state.StateManager
	Interval        time.Duration
}

// SaveSessionRequest asks for one session to be written right away.
type SaveSessionRequest struct {
	Session *types.SessionState
}

// NewSaveSessionsWorker creates a new SaveSessionsWorker.
// The worker processes save requests from the session manager and
// periodically saves all live sessions to the repository.
func NewSaveSessionsWorker(opts NewSaveSessionsWorkerOptions) *SaveSessionsWorker {
	return &SaveSessionsWorker{
		repository:      opts.Repository,
		saveSessionChan: opts.SaveSessionChan,
		stateManager:    opts.StateManager,
		interval:        opts.Interval,
	}
}

func (w *SaveSessionsWorker) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			// flush what is in memory before the repository is closed
			w.saveSessions(context.Background())
			return
		case saveRequest := <-w.saveSessionChan:
			w.saveSession(ctx, saveRequest)
		case <-ticker.C:
			w.saveSessions(ctx)
		}
	}
}

func (w *SaveSessionsWorker) saveSession(ctx context.Context, saveRequest SaveSessionRequest) {
	if err := w.repository.SaveSession(ctx, saveRequest.Session); err != nil {
		log.Error("Failed to save session %s: %v", saveRequest.Session.ID, err)
	}
}

func (w *SaveSessionsWorker) saveSessions(ctx context.Context) {
	sessions, err := w.stateManager.List(ctx)
	if err != nil {
		log.Error("Failed to list sessions: %v", err)
		return
	}
	if len(sessions) == 0 {
		return
	}
	if err := w.repository.SaveSessions(ctx, sessions); err != nil {
		log.Error("Failed to save sessions: %v", err)
		return
	}
	log.Trace("Saved %d sessions", len(sessions))
}
