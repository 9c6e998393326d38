package models

import "github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"

// Session is the row stored for one live session.
type Session struct {
	SessionID         string `json:"session_id"`
	OwnerID           string `json:"owner_id,omitempty"`
	Epoch             int64  `json:"epoch"`
	EventSeq          int64  `json:"event_seq"`
	Phase             string `json:"phase"`
	Level             int    `json:"level"`
	Lives             int    `json:"lives"`
	Score             int    `json:"score"`
	QuestionIndex     int    `json:"question_index"`
	ScoreAtLevelStart int    `json:"score_at_level_start"`
	LevelScore        int    `json:"level_score"`
	HasProblem        bool   `json:"has_problem"`
	ProblemText       string `json:"problem_text"`
	ProblemAnswer     int    `json:"problem_answer"`
	ProblemLevel      int    `json:"problem_level"`
	ProblemKind       string `json:"problem_kind"`
	IsAnswered        bool   `json:"is_answered"`
	IsCorrect         bool   `json:"is_correct"`
	Feedback          string `json:"feedback"`
	Celebrating       bool   `json:"celebrating"`
	CelebrationSeq    int64  `json:"celebration_seq"`
	CreatedAt         int64  `json:"created_at"`
	UpdatedAt         int64  `json:"updated_at"`
}

// SessionColumns lists the sessions table columns in the order of Fields.
var SessionColumns = []string{
	"session_id", "owner_id", "epoch", "event_seq", "phase", "level", "lives", "score",
	"question_index", "score_at_level_start", "level_score", "has_problem",
	"problem_text", "problem_answer", "problem_level", "problem_kind",
	"is_answered", "is_correct", "feedback", "celebrating", "celebration_seq",
	"created_at", "updated_at",
}

// Fields returns pointers to the row fields in SessionColumns order, for Scan.
func (m *Session) Fields() []any {
	return []any{
		&m.SessionID, &m.OwnerID, &m.Epoch, &m.EventSeq, &m.Phase, &m.Level, &m.Lives, &m.Score,
		&m.QuestionIndex, &m.ScoreAtLevelStart, &m.LevelScore, &m.HasProblem,
		&m.ProblemText, &m.ProblemAnswer, &m.ProblemLevel, &m.ProblemKind,
		&m.IsAnswered, &m.IsCorrect, &m.Feedback, &m.Celebrating, &m.CelebrationSeq,
		&m.CreatedAt, &m.UpdatedAt,
	}
}

// Values returns the row values in SessionColumns order, for Exec.
func (m *Session) Values() []any {
	return []any{
		m.SessionID, m.OwnerID, m.Epoch, m.EventSeq, m.Phase, m.Level, m.Lives, m.Score,
		m.QuestionIndex, m.ScoreAtLevelStart, m.LevelScore, m.HasProblem,
		m.ProblemText, m.ProblemAnswer, m.ProblemLevel, m.ProblemKind,
		m.IsAnswered, m.IsCorrect, m.Feedback, m.Celebrating, m.CelebrationSeq,
		m.CreatedAt, m.UpdatedAt,
	}
}

func SessionFromState(s *types.SessionState) *Session {
	m := &Session{
		SessionID:         s.ID,
		OwnerID:           s.OwnerID,
		Epoch:             int64(s.Epoch),
		EventSeq:          int64(s.EventSeq),
		Phase:             string(s.Phase),
		Level:             s.Level,
		Lives:             s.Lives,
		Score:             s.Score,
		QuestionIndex:     s.QuestionIndex,
		ScoreAtLevelStart: s.ScoreAtLevelStart,
		LevelScore:        s.LevelScore,
		IsAnswered:        s.IsAnswered,
		IsCorrect:         s.IsCorrect,
		Feedback:          s.Feedback,
		Celebrating:       s.Celebrating,
		CelebrationSeq:    int64(s.CelebrationSeq),
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.Problem != nil {
		m.HasProblem = true
		m.ProblemText = s.Problem.Text
		m.ProblemAnswer = s.Problem.Answer
		m.ProblemLevel = s.Problem.Level
		m.ProblemKind = string(s.Problem.Kind)
	}
	return m
}

func (m *Session) State() *types.SessionState {
	s := &types.SessionState{
		ID:                m.SessionID,
		OwnerID:           m.OwnerID,
		Epoch:             uint64(m.Epoch),
		EventSeq:          uint64(m.EventSeq),
		Phase:             types.Phase(m.Phase),
		Level:             m.Level,
		Lives:             m.Lives,
		Score:             m.Score,
		QuestionIndex:     m.QuestionIndex,
		ScoreAtLevelStart: m.ScoreAtLevelStart,
		LevelScore:        m.LevelScore,
		IsAnswered:        m.IsAnswered,
		IsCorrect:         m.IsCorrect,
		Feedback:          m.Feedback,
		Celebrating:       m.Celebrating,
		CelebrationSeq:    uint64(m.CelebrationSeq),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.HasProblem {
		s.Problem = &types.Problem{
			Text:   m.ProblemText,
			Answer: m.ProblemAnswer,
			Level:  m.ProblemLevel,
			Kind:   types.ProblemKind(m.ProblemKind),
		}
	}
	return s
}
