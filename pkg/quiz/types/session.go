package types

import "github.com/Michel-2503/Kopfrechnen/pkg/quiz/constants"

// Phase is the state-machine state of a session.
type Phase string

const (
	PhaseStart        Phase = "start"
	PhasePlaying      Phase = "playing"
	PhaseLevelCleared Phase = "level-cleared"
	PhaseFinished     Phase = "finished"
	PhaseGameOver     Phase = "game-over"
)

// IsTerminal reports whether the phase ends a session.
func (p Phase) IsTerminal() bool {
	return p == PhaseFinished || p == PhaseGameOver
}

// SessionState is the complete state of one play-through.
// Transitions take a SessionState by value and return the next one.
type SessionState struct {
	ID      string
	OwnerID string
	// Epoch is incremented by every start or restart. Scheduled events
	// carry the epoch they were scheduled in.
	Epoch uint64
	// EventSeq numbers the scheduled events of the session
	EventSeq uint64

	Phase             Phase
	Level             int
	Lives             int
	Score             int
	QuestionIndex     int
	ScoreAtLevelStart int
	// LevelScore is the score gained in the level that just ended.
	// It is set when a level is cleared or the session is finished.
	LevelScore int

	Problem    *Problem
	IsAnswered bool
	IsCorrect  bool
	Feedback   string

	// Celebrating is on after a correct answer until the celebration-end
	// event with CelebrationSeq fires. It has no effect on scoring.
	Celebrating    bool
	CelebrationSeq uint64

	CreatedAt int64
	UpdatedAt int64
}

// NewSessionState returns a session waiting on the start screen.
func NewSessionState(id string, ownerID string, now int64) *SessionState {
	return &SessionState{
		ID:        id,
		OwnerID:   ownerID,
		Phase:     PhaseStart,
		Level:     1,
		Lives:     constants.StartingLives,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Copy returns a copy of the session. Problems are immutable and shared.
func (s *SessionState) Copy() *SessionState {
	c := *s
	return &c
}

// CurrentLevelScore returns the score gained in the current level.
func (s *SessionState) CurrentLevelScore() int {
	if s.Phase == PhaseLevelCleared || s.Phase == PhaseFinished {
		return s.LevelScore
	}
	return s.Score - s.ScoreAtLevelStart
}

// CanAdvance reports whether the player may move past the current question.
func (s *SessionState) CanAdvance() bool {
	return s.Phase == PhasePlaying && s.IsAnswered && s.Lives > 0
}

// IsLastQuestion reports whether the current question closes its level.
func (s *SessionState) IsLastQuestion() bool {
	return s.QuestionIndex == constants.QuestionsPerLevel
}
