// Package session implements the game-progression state machine.
//
// Every transition takes the current SessionState by value and returns the
// next state together with the events it schedules. Deferred transitions
// (game over after the last life, end of the celebration) are applied later
// through HandleEvent and are ignored once the session has been restarted.
package session

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/constants"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
)

// ErrInvalidTransition is returned when a trigger has no edge from the session's phase.
var ErrInvalidTransition = errors.New("invalid transition")

// ProblemGenerator produces the problem for a fresh question.
type ProblemGenerator interface {
	Generate(level int) types.Problem
}

// Machine applies transitions to session states.
// A Machine is not safe for concurrent use.
type Machine struct {
	generator ProblemGenerator
	rand      *rand.Rand
	now       func() time.Time
}

// NewMachine creates a Machine. The seed drives the feedback selection.
func NewMachine(generator ProblemGenerator, seed int64) *Machine {
	return &Machine{
		generator: generator,
		rand:      rand.New(rand.NewSource(seed)),
		now:       time.Now,
	}
}

// SetClock replaces the clock used to stamp UpdatedAt.
func (m *Machine) SetClock(now func() time.Time) {
	m.now = now
}

func invalidTransition(action string, phase types.Phase) error {
	return fmt.Errorf("%w: cannot %s in phase %s", ErrInvalidTransition, action, phase)
}

// Start begins a session from the start screen, or starts over after the
// session finished or ended in game over. Pending events of the previous
// play-through become stale.
func (m *Machine) Start(s types.SessionState) (types.SessionState, []types.ScheduledEvent, error) {
	switch s.Phase {
	case types.PhaseStart, types.PhaseFinished, types.PhaseGameOver:
	default:
		return s, nil, invalidTransition("start", s.Phase)
	}

	s.Epoch++
	s.Phase = types.PhasePlaying
	s.Level = 1
	s.Lives = constants.StartingLives
	s.Score = 0
	s.ScoreAtLevelStart = 0
	s.LevelScore = 0
	s.QuestionIndex = 1
	s.Celebrating = false
	m.nextQuestion(&s)
	return s, nil, nil
}

// Restart is Start for sessions that already ended.
func (m *Machine) Restart(s types.SessionState) (types.SessionState, []types.ScheduledEvent, error) {
	if s.Phase == types.PhaseStart {
		return s, nil, invalidTransition("restart", s.Phase)
	}
	return m.Start(s)
}

// SubmitAnswer scores raw against the current problem. It does nothing
// when the question was already answered or raw is empty.
func (m *Machine) SubmitAnswer(s types.SessionState, raw string) (types.SessionState, []types.ScheduledEvent, error) {
	if s.Phase != types.PhasePlaying || s.Problem == nil {
		return s, nil, invalidTransition("submit an answer", s.Phase)
	}
	if s.IsAnswered || IsEmptyAnswer(raw) {
		return s, nil, nil
	}

	value, ok := ParseAnswer(raw)
	correct := ok && value == s.Problem.Answer

	s.IsAnswered = true
	s.IsCorrect = correct
	s.UpdatedAt = m.now().UnixMilli()

	var events []types.ScheduledEvent
	if correct {
		s.Score++
		s.Feedback = m.pick(correctMessages)
		s.Celebrating = true
		s.EventSeq++
		s.CelebrationSeq = s.EventSeq
		events = append(events, m.schedule(s, types.EventCelebrationEnd, constants.CelebrationDuration))
	} else {
		s.Lives--
		s.Feedback = m.pick(incorrectMessages)
		if s.Lives <= 0 {
			s.EventSeq++
			events = append(events, m.schedule(s, types.EventGameOver, constants.GameOverDelay))
		}
	}
	return s, events, nil
}

// Advance moves past an answered question: to the next question, to the
// level-cleared screen, or to the end of the session after the last level.
// It does nothing before the question is answered or once no lives are left.
func (m *Machine) Advance(s types.SessionState) (types.SessionState, []types.ScheduledEvent, error) {
	if s.Phase != types.PhasePlaying {
		return s, nil, invalidTransition("advance", s.Phase)
	}
	if !s.CanAdvance() {
		return s, nil, nil
	}

	if s.QuestionIndex < constants.QuestionsPerLevel {
		s.QuestionIndex++
		m.nextQuestion(&s)
		return s, nil, nil
	}

	s.LevelScore = s.Score - s.ScoreAtLevelStart
	s.UpdatedAt = m.now().UnixMilli()
	if s.Level < constants.MaxLevel {
		s.ScoreAtLevelStart = s.Score
		s.Phase = types.PhaseLevelCleared
	} else {
		s.Phase = types.PhaseFinished
	}
	return s, nil, nil
}

// StartNextLevel leaves the level-cleared screen with a bonus life.
func (m *Machine) StartNextLevel(s types.SessionState) (types.SessionState, []types.ScheduledEvent, error) {
	if s.Phase != types.PhaseLevelCleared {
		return s, nil, invalidTransition("start the next level", s.Phase)
	}

	s.Level++
	s.Lives += constants.LevelClearedBonusLives
	s.QuestionIndex = 1
	s.Phase = types.PhasePlaying
	m.nextQuestion(&s)
	return s, nil, nil
}

// HandleEvent applies a scheduled event whose delay has elapsed. It reports
// whether the state changed; events from an earlier epoch never apply.
func (m *Machine) HandleEvent(s types.SessionState, event types.ScheduledEvent) (types.SessionState, bool) {
	if event.Epoch != s.Epoch || (event.SessionID != "" && event.SessionID != s.ID) {
		return s, false
	}

	switch event.Kind {
	case types.EventGameOver:
		if s.Phase != types.PhasePlaying || s.Lives > 0 {
			return s, false
		}
		s.Phase = types.PhaseGameOver
	case types.EventCelebrationEnd:
		if !s.Celebrating || event.Seq != s.CelebrationSeq {
			return s, false
		}
		s.Celebrating = false
	default:
		return s, false
	}
	s.UpdatedAt = m.now().UnixMilli()
	return s, true
}

func (m *Machine) nextQuestion(s *types.SessionState) {
	p := m.generator.Generate(s.Level)
	s.Problem = &p
	s.IsAnswered = false
	s.IsCorrect = false
	s.Feedback = ""
	s.UpdatedAt = m.now().UnixMilli()
}

func (m *Machine) schedule(s types.SessionState, kind types.EventKind, delay time.Duration) types.ScheduledEvent {
	return types.ScheduledEvent{
		Kind:      kind,
		SessionID: s.ID,
		Epoch:     s.Epoch,
		Seq:       s.EventSeq,
		Delay:     delay,
	}
}

func (m *Machine) pick(messages []string) string {
	return messages[m.rand.Intn(len(messages))]
}
