package session

import (
	"strconv"
	"testing"
	"time"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/constants"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/problems"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedGenerator hands out "answer + 0" problems so tests know every answer.
type fixedGenerator struct {
	answer int
	calls  []int
}

func (g *fixedGenerator) Generate(level int) types.Problem {
	g.calls = append(g.calls, level)
	return types.Problem{Text: "7 + 0", Answer: g.answer, Level: level, Kind: types.ProblemKindArithmetic}
}

func newTestMachine(t *testing.T) (*Machine, *fixedGenerator) {
	t.Helper()
	g := &fixedGenerator{answer: 7}
	m := NewMachine(g, 1)
	m.SetClock(func() time.Time { return time.UnixMilli(1000) })
	return m, g
}

func started(t *testing.T, m *Machine) types.SessionState {
	t.Helper()
	s, events, err := m.Start(*types.NewSessionState("s1", "", 0))
	require.NoError(t, err)
	require.Empty(t, events)
	return s
}

func mustSubmit(t *testing.T, m *Machine, s types.SessionState, raw string) (types.SessionState, []types.ScheduledEvent) {
	t.Helper()
	next, events, err := m.SubmitAnswer(s, raw)
	require.NoError(t, err)
	return next, events
}

func mustAdvance(t *testing.T, m *Machine, s types.SessionState) types.SessionState {
	t.Helper()
	next, _, err := m.Advance(s)
	require.NoError(t, err)
	return next
}

// playLevel answers every question of the current level correctly and
// advances past the last one.
func playLevel(t *testing.T, m *Machine, s types.SessionState) types.SessionState {
	t.Helper()
	for i := 0; i < constants.QuestionsPerLevel; i++ {
		s, _ = mustSubmit(t, m, s, "7")
		s = mustAdvance(t, m, s)
	}
	return s
}

func TestMachine_Start(t *testing.T) {
	m, g := newTestMachine(t)
	s := started(t, m)

	assert.Equal(t, types.PhasePlaying, s.Phase)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, constants.StartingLives, s.Lives)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, 1, s.QuestionIndex)
	assert.Equal(t, uint64(1), s.Epoch)
	assert.False(t, s.IsAnswered)
	require.NotNil(t, s.Problem)
	assert.Equal(t, []int{1}, g.calls)
	assert.Equal(t, int64(1000), s.UpdatedAt)
}

func TestMachine_Start_invalidPhase(t *testing.T) {
	m, _ := newTestMachine(t)
	s := started(t, m)

	next, _, err := m.Start(s)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, s, next)

	_, _, err = m.Restart(*types.NewSessionState("s2", "", 0))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMachine_SubmitAnswer(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		wantCorrect   bool
		wantScore     int
		wantLives     int
		wantEventKind types.EventKind
	}{
		{name: "correct", input: "7", wantCorrect: true, wantScore: 1, wantLives: constants.StartingLives, wantEventKind: types.EventCelebrationEnd},
		{name: "correct with whitespace", input: " 7 ", wantCorrect: true, wantScore: 1, wantLives: constants.StartingLives, wantEventKind: types.EventCelebrationEnd},
		{name: "correct with trailing garbage", input: "7abc", wantCorrect: true, wantScore: 1, wantLives: constants.StartingLives, wantEventKind: types.EventCelebrationEnd},
		{name: "incorrect", input: "8", wantCorrect: false, wantScore: 0, wantLives: constants.StartingLives - 1},
		{name: "not a number", input: "seven", wantCorrect: false, wantScore: 0, wantLives: constants.StartingLives - 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestMachine(t)
			s := started(t, m)

			next, events := mustSubmit(t, m, s, tt.input)

			assert.True(t, next.IsAnswered)
			assert.Equal(t, tt.wantCorrect, next.IsCorrect)
			assert.Equal(t, tt.wantScore, next.Score)
			assert.Equal(t, tt.wantLives, next.Lives)
			assert.NotEmpty(t, next.Feedback)
			if tt.wantCorrect {
				assert.Contains(t, correctMessages, next.Feedback)
				assert.True(t, next.Celebrating)
				require.Len(t, events, 1)
				assert.Equal(t, tt.wantEventKind, events[0].Kind)
				assert.Equal(t, constants.CelebrationDuration, events[0].Delay)
				assert.Equal(t, next.CelebrationSeq, events[0].Seq)
			} else {
				assert.Contains(t, incorrectMessages, next.Feedback)
				assert.False(t, next.Celebrating)
				assert.Empty(t, events)
			}
		})
	}
}

func TestMachine_SubmitAnswer_noops(t *testing.T) {
	m, _ := newTestMachine(t)
	s := started(t, m)

	for _, input := range []string{"", "   "} {
		next, events := mustSubmit(t, m, s, input)
		assert.Equal(t, s, next)
		assert.False(t, next.IsAnswered)
		assert.Empty(t, events)
	}

	answered, _ := mustSubmit(t, m, s, "1")
	again, events := mustSubmit(t, m, answered, "7")
	assert.Equal(t, answered, again)
	assert.Empty(t, events)
}

func TestMachine_SubmitAnswer_invalidPhase(t *testing.T) {
	m, _ := newTestMachine(t)
	_, _, err := m.SubmitAnswer(*types.NewSessionState("s1", "", 0), "7")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMachine_gameOver(t *testing.T) {
	m, _ := newTestMachine(t)
	s := started(t, m)

	var events []types.ScheduledEvent
	for i := 0; i < constants.StartingLives; i++ {
		s, events = mustSubmit(t, m, s, "0")
		if i < constants.StartingLives-1 {
			assert.Empty(t, events)
			s = mustAdvance(t, m, s)
		}
	}

	assert.Equal(t, 0, s.Lives)
	assert.Equal(t, 0, s.Score)
	assert.Equal(t, types.PhasePlaying, s.Phase, "game over waits for the delay")
	require.Len(t, events, 1)
	assert.Equal(t, types.EventGameOver, events[0].Kind)
	assert.Equal(t, constants.GameOverDelay, events[0].Delay)

	// advancing races the deferred transition and is disabled
	blocked := mustAdvance(t, m, s)
	assert.Equal(t, s, blocked)

	over, changed := m.HandleEvent(s, events[0])
	assert.True(t, changed)
	assert.Equal(t, types.PhaseGameOver, over.Phase)
	assert.Equal(t, 0, over.Score)

	_, _, err := m.Advance(over)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMachine_staleGameOverAfterRestart(t *testing.T) {
	m, _ := newTestMachine(t)
	s := started(t, m)

	var events []types.ScheduledEvent
	for i := 0; i < constants.StartingLives; i++ {
		s, events = mustSubmit(t, m, s, "0")
		if s.Lives > 0 {
			s = mustAdvance(t, m, s)
		}
	}
	require.Len(t, events, 1)

	over, changed := m.HandleEvent(s, events[0])
	require.True(t, changed)

	restarted, _, err := m.Restart(over)
	require.NoError(t, err)
	assert.Equal(t, over.Epoch+1, restarted.Epoch)

	// the old timer fires again, e.g. delivered twice; the new session is untouched
	after, changed := m.HandleEvent(restarted, events[0])
	assert.False(t, changed)
	assert.Equal(t, restarted, after)
	assert.Equal(t, types.PhasePlaying, after.Phase)
	assert.Equal(t, constants.StartingLives, after.Lives)
}

func TestMachine_celebrationEnd(t *testing.T) {
	m, _ := newTestMachine(t)
	s := started(t, m)

	s, first := mustSubmit(t, m, s, "7")
	require.Len(t, first, 1)
	s = mustAdvance(t, m, s)
	s, second := mustSubmit(t, m, s, "7")
	require.Len(t, second, 1)

	// the first celebration's timer must not end the second one
	next, changed := m.HandleEvent(s, first[0])
	assert.False(t, changed)
	assert.True(t, next.Celebrating)

	next, changed = m.HandleEvent(s, second[0])
	assert.True(t, changed)
	assert.False(t, next.Celebrating)
	assert.Equal(t, s.Score, next.Score)
	assert.Equal(t, s.Lives, next.Lives)
}

func TestMachine_Advance(t *testing.T) {
	m, g := newTestMachine(t)
	s := started(t, m)

	unanswered := mustAdvance(t, m, s)
	assert.Equal(t, s, unanswered, "advance waits for an answer")

	s, _ = mustSubmit(t, m, s, "7")
	s = mustAdvance(t, m, s)
	assert.Equal(t, 2, s.QuestionIndex)
	assert.False(t, s.IsAnswered)
	assert.Empty(t, s.Feedback)
	assert.Len(t, g.calls, 2)
}

func TestMachine_levelCleared(t *testing.T) {
	m, g := newTestMachine(t)
	s := started(t, m)

	for i := 0; i < constants.QuestionsPerLevel; i++ {
		input := "7"
		if i == 0 {
			input = "1"
		}
		s, _ = mustSubmit(t, m, s, input)
		require.LessOrEqual(t, s.QuestionIndex, constants.QuestionsPerLevel)
		s = mustAdvance(t, m, s)
	}

	assert.Equal(t, types.PhaseLevelCleared, s.Phase)
	assert.Equal(t, 1, s.Level)
	assert.Equal(t, 9, s.Score)
	assert.Equal(t, 9, s.LevelScore)
	assert.Equal(t, 9, s.CurrentLevelScore())
	assert.Equal(t, 9, s.ScoreAtLevelStart)

	livesBefore := s.Lives
	next, _, err := m.StartNextLevel(s)
	require.NoError(t, err)
	assert.Equal(t, types.PhasePlaying, next.Phase)
	assert.Equal(t, 2, next.Level)
	assert.Equal(t, 1, next.QuestionIndex)
	assert.Equal(t, livesBefore+1, next.Lives)
	assert.Equal(t, 0, next.CurrentLevelScore())
	assert.Equal(t, 2, g.calls[len(g.calls)-1])

	_, _, err = m.StartNextLevel(next)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestMachine_finished(t *testing.T) {
	m, _ := newTestMachine(t)
	s := started(t, m)

	for level := 1; level < constants.MaxLevel; level++ {
		s = playLevel(t, m, s)
		require.Equal(t, types.PhaseLevelCleared, s.Phase)
		var err error
		s, _, err = m.StartNextLevel(s)
		require.NoError(t, err)
	}
	// lose a life on the last level; finishing only needs lives > 0
	s, _ = mustSubmit(t, m, s, "0")
	s = mustAdvance(t, m, s)
	for i := 1; i < constants.QuestionsPerLevel; i++ {
		s, _ = mustSubmit(t, m, s, "7")
		s = mustAdvance(t, m, s)
	}

	assert.Equal(t, types.PhaseFinished, s.Phase)
	assert.Equal(t, constants.MaxLevel, s.Level)
	assert.Equal(t, constants.StartingLives+constants.MaxLevel-1-1, s.Lives)
	assert.Equal(t, constants.QuestionsPerLevel*constants.MaxLevel-1, s.Score)
	assert.Equal(t, constants.QuestionsPerLevel-1, s.LevelScore)

	restarted, _, err := m.Restart(s)
	require.NoError(t, err)
	assert.Equal(t, 1, restarted.Level)
	assert.Equal(t, 0, restarted.Score)
	assert.Equal(t, constants.StartingLives, restarted.Lives)
	assert.Equal(t, 1, restarted.QuestionIndex)
}

func TestMachine_withGenerator(t *testing.T) {
	m := NewMachine(problems.NewGenerator(5), 5)
	s, _, err := m.Start(*types.NewSessionState("s1", "", 0))
	require.NoError(t, err)

	for i := 0; i < constants.QuestionsPerLevel; i++ {
		s, _, err = m.SubmitAnswer(s, strconv.Itoa(s.Problem.Answer))
		require.NoError(t, err)
		require.True(t, s.IsCorrect, s.Problem.Text)
		s, _, err = m.Advance(s)
		require.NoError(t, err)
	}
	assert.Equal(t, types.PhaseLevelCleared, s.Phase)
	assert.Equal(t, constants.QuestionsPerLevel, s.Score)
}
