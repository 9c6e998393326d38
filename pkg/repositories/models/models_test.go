package models

import (
	"testing"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/stretchr/testify/assert"
)

func TestSession_roundTrip(t *testing.T) {
	tests := []struct {
		name  string
		state *types.SessionState
	}{
		{
			name:  "start screen without problem",
			state: types.NewSessionState("s1", "owner", 1000),
		},
		{
			name: "playing with an answered problem",
			state: &types.SessionState{
				ID: "s2", Epoch: 3, EventSeq: 5, Phase: types.PhasePlaying,
				Level: 3, Lives: 2, Score: 17, QuestionIndex: 4, ScoreAtLevelStart: 15,
				Problem:    &types.Problem{Text: "3x + 4 = 19", Answer: 5, Level: 3, Kind: types.ProblemKindEquation},
				IsAnswered: true, IsCorrect: true, Feedback: "Super!",
				Celebrating: true, CelebrationSeq: 5, CreatedAt: 10, UpdatedAt: 20,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := SessionFromState(tt.state)
			assert.Len(t, row.Values(), len(SessionColumns))
			assert.Len(t, row.Fields(), len(SessionColumns))
			assert.Equal(t, tt.state, row.State())
		})
	}
}
