package messages

import (
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/constants"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
)

// SessionView is what clients see of a session. The answer of a question
// is only included once the question has been answered.
type SessionView struct {
	SessionID         string `json:"sessionID"`
	Phase             string `json:"phase"`
	Level             int    `json:"level"`
	MaxLevel          int    `json:"maxLevel"`
	Lives             int    `json:"lives"`
	Score             int    `json:"score"`
	QuestionIndex     int    `json:"questionIndex"`
	QuestionsPerLevel int    `json:"questionsPerLevel"`
	LevelScore        int    `json:"levelScore"`
	Problem           string `json:"problem,omitempty"`
	Answer            *int   `json:"answer,omitempty"`
	IsAnswered        bool   `json:"isAnswered"`
	IsCorrect         bool   `json:"isCorrect"`
	Feedback          string `json:"feedback,omitempty"`
	Celebrating       bool   `json:"celebrating"`
	UpdatedAt         int64  `json:"updatedAt"`
}

func NewSessionView(s *types.SessionState) *SessionView {
	v := &SessionView{
		SessionID:         s.ID,
		Phase:             string(s.Phase),
		Level:             s.Level,
		MaxLevel:          constants.MaxLevel,
		Lives:             s.Lives,
		Score:             s.Score,
		QuestionIndex:     s.QuestionIndex,
		QuestionsPerLevel: constants.QuestionsPerLevel,
		LevelScore:        s.CurrentLevelScore(),
		IsAnswered:        s.IsAnswered,
		IsCorrect:         s.IsCorrect,
		Feedback:          s.Feedback,
		Celebrating:       s.Celebrating,
		UpdatedAt:         s.UpdatedAt,
	}
	if s.Problem != nil {
		v.Problem = s.Problem.Prompt()
		if s.IsAnswered {
			answer := s.Problem.Answer
			v.Answer = &answer
		}
	}
	return v
}

// NewSessionViewDefaults returns an empty view carrying the game constants.
func NewSessionViewDefaults() *SessionView {
	return &SessionView{
		MaxLevel:          constants.MaxLevel,
		QuestionsPerLevel: constants.QuestionsPerLevel,
	}
}
