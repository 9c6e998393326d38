package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteRepository(t *testing.T) Repository {
	t.Helper()
	repo, err := NewSQLiteRepository(context.Background(), filepath.Join(t.TempDir(), "quiz.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close(context.Background()) })
	return repo
}

func playingSession(id string, updatedAt int64) *types.SessionState {
	s := types.NewSessionState(id, "owner-"+id, updatedAt)
	s.Phase = types.PhasePlaying
	s.Epoch = 1
	s.QuestionIndex = 2
	s.Score = 1
	s.Problem = &types.Problem{Text: "45 + 17", Answer: 62, Level: 1, Kind: types.ProblemKindArithmetic}
	return s
}

func TestSQLiteRepository_saveAndLoad(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLiteRepository(t)

	s := playingSession("a", 100)
	require.NoError(t, repo.SaveSession(ctx, s))

	got, err := repo.LoadSession(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, s, got)

	s.IsAnswered = true
	s.IsCorrect = true
	s.Score = 2
	require.NoError(t, repo.SaveSession(ctx, s))

	got, err = repo.LoadSession(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Score)
	assert.True(t, got.IsAnswered)
}

func TestSQLiteRepository_loadMissing(t *testing.T) {
	repo := newTestSQLiteRepository(t)

	_, err := repo.LoadSession(context.Background(), "missing")
	assert.True(t, IsNotFound(err))
}

func TestSQLiteRepository_saveSessionsAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestSQLiteRepository(t)

	require.NoError(t, repo.SaveSessions(ctx, []*types.SessionState{
		playingSession("old", 100),
		playingSession("new", 500),
		types.NewSessionState("fresh", "", 900),
	}))

	n, err := repo.DeleteSessionsBefore(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.LoadSession(ctx, "old")
	assert.True(t, IsNotFound(err))

	fresh, err := repo.LoadSession(ctx, "fresh")
	require.NoError(t, err)
	assert.Nil(t, fresh.Problem)
	assert.Equal(t, types.PhaseStart, fresh.Phase)

	require.NoError(t, repo.DeleteSession(ctx, "new"))
	_, err = repo.LoadSession(ctx, "new")
	assert.True(t, IsNotFound(err))
}

func TestNewRepositoryFromURL(t *testing.T) {
	ctx := context.Background()

	repo, err := NewRepositoryFromURL(ctx, "sqlite://"+filepath.Join(t.TempDir(), "quiz.db"))
	require.NoError(t, err)
	assert.IsType(t, &SQLiteRepository{}, repo)
	repo.Close(ctx)

	_, err = NewRepositoryFromURL(ctx, "mysql://localhost/quiz")
	assert.Error(t, err)
}
