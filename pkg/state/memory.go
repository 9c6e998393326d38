package state

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
)

type InMemoryStateManager struct {
	lock     sync.RWMutex
	sessions map[string]*types.SessionState
}

func NewInMemoryStateManager() *InMemoryStateManager {
	return &InMemoryStateManager{
		sessions: make(map[string]*types.SessionState),
	}
}

func (m *InMemoryStateManager) Get(ctx context.Context, sessionID string) (*types.SessionState, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, &ErrNotFound{SessionID: sessionID}
	}
	return session.Copy(), nil
}

func (m *InMemoryStateManager) Set(ctx context.Context, session *types.SessionState) error {
	if session == nil {
		return fmt.Errorf("session is nil")
	}
	if session.ID == "" {
		return fmt.Errorf("session has no ID")
	}

	m.lock.Lock()
	defer m.lock.Unlock()
	m.sessions[session.ID] = session.Copy()
	return nil
}

func (m *InMemoryStateManager) Delete(ctx context.Context, sessionID string) error {
	m.lock.Lock()
	defer m.lock.Unlock()
	delete(m.sessions, sessionID)
	return nil
}

// List returns the sessions ordered by creation time.
func (m *InMemoryStateManager) List(ctx context.Context) ([]*types.SessionState, error) {
	m.lock.RLock()
	defer m.lock.RUnlock()

	sessions := make([]*types.SessionState, 0, len(m.sessions))
	for _, session := range m.sessions {
		sessions = append(sessions, session.Copy())
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].CreatedAt == sessions[j].CreatedAt {
			return sessions[i].ID < sessions[j].ID
		}
		return sessions[i].CreatedAt < sessions[j].CreatedAt
	})
	return sessions, nil
}
