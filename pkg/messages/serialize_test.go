package messages

import (
	"testing"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeSnapshot(t *testing.T) {
	answer := 62
	type args struct {
		view *SessionView
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{
			name: "unanswered question",
			args: args{
				view: &SessionView{
					SessionID: "s1", Phase: "playing", Level: 1, MaxLevel: 4, Lives: 3,
					QuestionIndex: 1, QuestionsPerLevel: 10, Problem: "45 + 17 = ?", UpdatedAt: 1000,
				},
			},
		},
		{
			name: "answered question with celebration",
			args: args{
				view: &SessionView{
					SessionID: "s1", Phase: "playing", Level: 1, MaxLevel: 4, Lives: 3, Score: 1,
					QuestionIndex: 1, QuestionsPerLevel: 10, LevelScore: 1, Problem: "45 + 17 = ?",
					Answer: &answer, IsAnswered: true, IsCorrect: true, Feedback: "Super!",
					Celebrating: true, UpdatedAt: 1001,
				},
			},
		},
		{
			name: "game over",
			args: args{
				view: &SessionView{
					SessionID: "s2", Phase: "game-over", Level: 2, MaxLevel: 4,
					QuestionsPerLevel: 10, QuestionIndex: 4, Score: 12,
				},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := SerializeSnapshot(tt.args.view)
			if (err != nil) != tt.wantErr {
				t.Errorf("SerializeSnapshot() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			got, err := DeserializeSnapshot(b)
			if (err != nil) != tt.wantErr {
				t.Errorf("DeserializeSnapshot() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			assert.Equal(t, tt.args.view, got)
		})
	}
}

func TestSerializeDeserializeMessage(t *testing.T) {
	view := NewSessionView(types.NewSessionState("s1", "", 5))
	m, err := NewSnapshotMessage(view)
	require.NoError(t, err)

	b, err := SerializeMessage(m)
	require.NoError(t, err)

	got, err := DeserializeMessage(b)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeServerSnapshot, got.Type)
	assert.Equal(t, "s1", got.SessionID)

	gotView, err := DeserializeSnapshot(got.Payload)
	require.NoError(t, err)
	assert.Equal(t, view, gotView)
}

func TestDeserializeMessage_invalid(t *testing.T) {
	_, err := DeserializeMessage([]byte("not zstd"))
	assert.Error(t, err)
}

func TestNewSessionView_hidesUnansweredAnswer(t *testing.T) {
	s := types.NewSessionState("s1", "", 0)
	s.Phase = types.PhasePlaying
	s.Problem = &types.Problem{Text: "3x + 4 = 19", Answer: 5, Level: 3, Kind: types.ProblemKindEquation}

	view := NewSessionView(s)
	assert.Nil(t, view.Answer)
	assert.Equal(t, "3x + 4 = 19", view.Problem)

	s.IsAnswered = true
	view = NewSessionView(s)
	require.NotNil(t, view.Answer)
	assert.Equal(t, 5, *view.Answer)
}
