package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	mocks "github.com/Michel-2503/Kopfrechnen/mocks/github.com/Michel-2503/Kopfrechnen/pkg/repositories"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/Michel-2503/Kopfrechnen/pkg/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSaveSessionsWorker_saveSessions(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		sessions []*types.SessionState
		setup    func(repo *mocks.Repository)
	}{
		{
			name:     "no sessions skips the repository",
			sessions: nil,
			setup:    func(repo *mocks.Repository) {},
		},
		{
			name: "all sessions in one call",
			sessions: []*types.SessionState{
				types.NewSessionState("a", "", 1),
				types.NewSessionState("b", "", 2),
			},
			setup: func(repo *mocks.Repository) {
				repo.EXPECT().SaveSessions(mock.Anything, mock.MatchedBy(func(sessions []*types.SessionState) bool {
					return len(sessions) == 2 && sessions[0].ID == "a" && sessions[1].ID == "b"
				})).Return(nil).Once()
			},
		},
		{
			name:     "repository errors are logged",
			sessions: []*types.SessionState{types.NewSessionState("a", "", 1)},
			setup: func(repo *mocks.Repository) {
				repo.EXPECT().SaveSessions(mock.Anything, mock.Anything).Return(errors.New("disk full")).Once()
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewRepository(t)
			tt.setup(repo)

			stateManager := state.NewInMemoryStateManager()
			for _, s := range tt.sessions {
				require.NoError(t, stateManager.Set(ctx, s))
			}

			w := NewSaveSessionsWorker(NewSaveSessionsWorkerOptions{
				Repository:   repo,
				StateManager: stateManager,
				Interval:     time.Hour,
			})
			w.saveSessions(ctx)
		})
	}
}

func TestSaveSessionsWorker_saveRequest(t *testing.T) {
	repo := mocks.NewRepository(t)
	saveChan := make(chan SaveSessionRequest, 1)
	session := types.NewSessionState("a", "", 1)

	saved := make(chan struct{})
	repo.EXPECT().SaveSession(mock.Anything, session).Run(func(ctx context.Context, s *types.SessionState) {
		close(saved)
	}).Return(nil).Once()
	// the final flush on shutdown finds no sessions in memory
	w := NewSaveSessionsWorker(NewSaveSessionsWorkerOptions{
		Repository:      repo,
		SaveSessionChan: saveChan,
		StateManager:    state.NewInMemoryStateManager(),
		Interval:        time.Hour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	saveChan <- SaveSessionRequest{Session: session}
	select {
	case <-saved:
	case <-time.After(time.Second):
		t.Fatal("save request was not processed")
	}
	cancel()
	<-done
	assert.True(t, repo.AssertExpectations(t))
}
