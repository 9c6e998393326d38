package game

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/clients"
	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/messages"
	"github.com/Michel-2503/Kopfrechnen/pkg/queue"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/constants"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/session"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/Michel-2503/Kopfrechnen/pkg/repositories"
	"github.com/Michel-2503/Kopfrechnen/pkg/state"
	"github.com/Michel-2503/Kopfrechnen/pkg/workers"
	"github.com/google/uuid"
)

// Manager owns every mutation of session state. Transitions run one at a
// time under the manager's lock; deferred transitions arrive on the event
// queue and are applied by the loop started with Start.
type Manager struct {
	lock            sync.Mutex
	stateManager    state.StateManager
	repository      repositories.Repository
	machine         *session.Machine
	eventQueue      queue.Queue
	clientManager   *clients.ClientManager
	scheduler       Scheduler
	saveSessionChan chan<- workers.SaveSessionRequest
	loopInterval    time.Duration
	now             func() time.Time
}

// NewManagerOptions contains options for creating a new Manager.
// Repository and SaveSessionChan are optional.
type NewManagerOptions struct {
	StateManager    state.StateManager
	Repository      repositories.Repository
	Machine         *session.Machine
	EventQueue      queue.Queue
	ClientManager   *clients.ClientManager
	Scheduler       Scheduler
	SaveSessionChan chan<- workers.SaveSessionRequest
	LoopInterval    time.Duration
}

func NewManager(opts NewManagerOptions) *Manager {
	scheduler := opts.Scheduler
	if scheduler == nil {
		scheduler = NewTimerScheduler(opts.EventQueue)
	}
	return &Manager{
		stateManager:    opts.StateManager,
		repository:      opts.Repository,
		machine:         opts.Machine,
		eventQueue:      opts.EventQueue,
		clientManager:   opts.ClientManager,
		scheduler:       scheduler,
		saveSessionChan: opts.SaveSessionChan,
		loopInterval:    opts.LoopInterval,
		now:             time.Now,
	}
}

// transition is one of the session.Machine operations.
type transition func(s types.SessionState) (types.SessionState, []types.ScheduledEvent, error)

// Start runs the loop that applies fired timer events until ctx is done.
func (m *Manager) Start(ctx context.Context) error {
	ticker := time.NewTicker(m.loopInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.processTimerEvents(ctx)
		}
	}
}

// StartSession creates a session for the owner and starts its first level.
func (m *Manager) StartSession(ctx context.Context, ownerID string) (*types.SessionState, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	s := types.NewSessionState(uuid.NewString(), ownerID, m.now().UnixMilli())
	next, err := m.apply(ctx, *s, m.machine.Start)
	if err != nil {
		return nil, err
	}
	log.Debug("Started session %s", next.ID)
	return next, nil
}

// Get returns the session if it exists and belongs to the owner.
func (m *Manager) Get(ctx context.Context, sessionID string, ownerID string) (*types.SessionState, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	return m.load(ctx, sessionID, ownerID)
}

func (m *Manager) SubmitAnswer(ctx context.Context, sessionID string, ownerID string, raw string) (*types.SessionState, error) {
	return m.update(ctx, sessionID, ownerID, func(s types.SessionState) (types.SessionState, []types.ScheduledEvent, error) {
		return m.machine.SubmitAnswer(s, raw)
	})
}

func (m *Manager) Advance(ctx context.Context, sessionID string, ownerID string) (*types.SessionState, error) {
	return m.update(ctx, sessionID, ownerID, m.machine.Advance)
}

func (m *Manager) StartNextLevel(ctx context.Context, sessionID string, ownerID string) (*types.SessionState, error) {
	return m.update(ctx, sessionID, ownerID, m.machine.StartNextLevel)
}

func (m *Manager) Restart(ctx context.Context, sessionID string, ownerID string) (*types.SessionState, error) {
	return m.update(ctx, sessionID, ownerID, m.machine.Restart)
}

// ReapSessions removes sessions last updated before the timestamp from
// memory and from the repository, and tells their subscribers.
func (m *Manager) ReapSessions(ctx context.Context, updatedBefore int64) (int, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	sessions, err := m.stateManager.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list sessions: %v", err)
	}

	reaped := 0
	for _, s := range sessions {
		if s.UpdatedAt >= updatedBefore {
			continue
		}
		if err := m.stateManager.Delete(ctx, s.ID); err != nil {
			return reaped, fmt.Errorf("failed to delete session %s: %v", s.ID, err)
		}
		reaped++
		if m.clientManager != nil {
			m.clientManager.Broadcast(s.ID, &messages.Message{
				Type:      messages.MessageTypeServerSessionClosed,
				SessionID: s.ID,
			})
		}
	}

	if m.repository != nil {
		n, err := m.repository.DeleteSessionsBefore(ctx, updatedBefore)
		if err != nil {
			return reaped, fmt.Errorf("failed to delete stored sessions: %v", err)
		}
		log.Debug("Deleted %d stored sessions", n)
	}

	return reaped, nil
}

// HandleClientEvent saves the session when its last subscriber disconnects.
func (m *Manager) HandleClientEvent(event clients.ClientEvent) {
	if event.Type != clients.ClientEventDisconnected || m.clientManager == nil {
		return
	}
	if len(m.clientManager.GetClients(event.SessionID)) > 0 {
		return
	}

	m.lock.Lock()
	s, err := m.stateManager.Get(context.Background(), event.SessionID)
	m.lock.Unlock()
	if err != nil {
		if !state.IsNotFound(err) {
			log.Error("Failed to get session %s: %v", event.SessionID, err)
		}
		return
	}
	m.requestSave(s)
}

func (m *Manager) update(ctx context.Context, sessionID string, ownerID string, t transition) (*types.SessionState, error) {
	m.lock.Lock()
	defer m.lock.Unlock()

	s, err := m.load(ctx, sessionID, ownerID)
	if err != nil {
		return nil, err
	}
	return m.apply(ctx, *s, t)
}

// apply runs the transition, stores the result, schedules its events and
// publishes the new snapshot. It must be called with the lock held.
func (m *Manager) apply(ctx context.Context, s types.SessionState, t transition) (*types.SessionState, error) {
	next, events, err := t(s)
	if err != nil {
		return nil, err
	}
	if err := m.stateManager.Set(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to store session: %v", err)
	}
	for _, event := range events {
		m.scheduler.Schedule(event)
	}
	m.publish(&next)
	if next.Phase != s.Phase && next.Phase.IsTerminal() {
		m.requestSave(&next)
	}
	return &next, nil
}

// load returns the session from memory, falling back to the repository.
// Sessions of other owners are reported as not found.
func (m *Manager) load(ctx context.Context, sessionID string, ownerID string) (*types.SessionState, error) {
	s, err := m.stateManager.Get(ctx, sessionID)
	if err != nil {
		if !state.IsNotFound(err) || m.repository == nil {
			return nil, err
		}
		s, err = m.repository.LoadSession(ctx, sessionID)
		if err != nil {
			if repositories.IsNotFound(err) {
				return nil, &state.ErrNotFound{SessionID: sessionID}
			}
			return nil, fmt.Errorf("failed to load session: %v", err)
		}
		if err := m.stateManager.Set(ctx, s); err != nil {
			return nil, fmt.Errorf("failed to store session: %v", err)
		}
		// timers do not survive a restart of the server
		for _, event := range pendingEvents(s) {
			m.scheduler.Schedule(event)
		}
		log.Debug("Loaded session %s from repository", sessionID)
	}

	if s.OwnerID != ownerID {
		return nil, &state.ErrNotFound{SessionID: sessionID}
	}
	return s, nil
}

// pendingEvents returns the deferred transitions a session is still waiting for.
func pendingEvents(s *types.SessionState) []types.ScheduledEvent {
	var events []types.ScheduledEvent
	if s.Phase == types.PhasePlaying && s.Lives <= 0 {
		events = append(events, types.ScheduledEvent{
			Kind:      types.EventGameOver,
			SessionID: s.ID,
			Epoch:     s.Epoch,
			Seq:       s.EventSeq,
			Delay:     constants.GameOverDelay,
		})
	}
	if s.Celebrating {
		events = append(events, types.ScheduledEvent{
			Kind:      types.EventCelebrationEnd,
			SessionID: s.ID,
			Epoch:     s.Epoch,
			Seq:       s.CelebrationSeq,
			Delay:     constants.CelebrationDuration,
		})
	}
	return events
}

// processTimerEvents applies all fired timer events in the queue.
func (m *Manager) processTimerEvents(ctx context.Context) {
	pendingEvents := m.eventQueue.ReadAllMessages()
	if len(pendingEvents) == 0 {
		return
	}

	m.lock.Lock()
	defer m.lock.Unlock()

	for _, item := range pendingEvents {
		timerEvent, ok := item.(*types.TimerEvent)
		if !ok {
			log.Error("unhandled timer event type: %T", item)
			continue
		}
		event := timerEvent.Event

		s, err := m.stateManager.Get(ctx, event.SessionID)
		if err != nil {
			if state.IsNotFound(err) {
				log.Trace("Dropping %s event for removed session %s", event.Kind, event.SessionID)
			} else {
				log.Error("Failed to get session %s: %v", event.SessionID, err)
			}
			continue
		}

		next, changed := m.machine.HandleEvent(*s, event)
		if !changed {
			log.Trace("Ignoring stale %s event for session %s", event.Kind, event.SessionID)
			continue
		}
		if err := m.stateManager.Set(ctx, &next); err != nil {
			log.Error("Failed to store session %s: %v", next.ID, err)
			continue
		}
		m.publish(&next)
		if next.Phase.IsTerminal() {
			m.requestSave(&next)
		}
	}
}

// publish sends the session's snapshot to its subscribers.
func (m *Manager) publish(s *types.SessionState) {
	if m.clientManager == nil {
		return
	}
	msg, err := messages.NewSnapshotMessage(messages.NewSessionView(s))
	if err != nil {
		log.Error("Failed to create snapshot for session %s: %v", s.ID, err)
		return
	}
	if dropped := m.clientManager.Broadcast(s.ID, msg); dropped > 0 {
		log.Warn("%d subscribers of session %s missed a snapshot", dropped, s.ID)
	}
}

// requestSave asks the save worker to write the session without waiting.
func (m *Manager) requestSave(s *types.SessionState) {
	if m.saveSessionChan == nil {
		return
	}
	select {
	case m.saveSessionChan <- workers.SaveSessionRequest{Session: s.Copy()}:
	default:
		log.Warn("Save queue is full, session %s is saved with the next batch", s.ID)
	}
}
