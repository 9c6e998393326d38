package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Michel-2503/Kopfrechnen/pkg/log"
	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/Michel-2503/Kopfrechnen/pkg/repositories/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	postgresUpsertSession = fmt.Sprintf(`
	INSERT INTO sessions (%s) VALUES (%s)
	ON CONFLICT (session_id) DO UPDATE SET %s;
	`, sessionColumnList, placeholders(len(models.SessionColumns), true), excludedAssignments())
	postgresSelectSession = fmt.Sprintf(`
	SELECT %s FROM sessions WHERE session_id = $1;
	`, sessionColumnList)
)

func excludedAssignments() string {
	s := ""
	for _, c := range models.SessionColumns[1:] {
		if s != "" {
			s += ", "
		}
		s += c + " = EXCLUDED." + c
	}
	return s
}

type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository connects to the database and applies the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	var username string
	var database string
	if err := pool.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to query database: %v", err)
	}
	log.Info("Connected to %s as %s", database, username)

	migrations, err := loadMigrations("postgres")
	if err != nil {
		pool.Close()
		return nil, err
	}
	for _, m := range migrations {
		if _, err := pool.Exec(ctx, m.sql); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.name, err)
		}
	}

	return &PostgresRepository{
		pool: pool,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	r.pool.Close()
	return nil
}

func (r *PostgresRepository) SaveSessions(ctx context.Context, sessions []*types.SessionState) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, session := range sessions {
		batch.Queue(postgresUpsertSession, models.SessionFromState(session).Values()...)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to save sessions: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *PostgresRepository) SaveSession(ctx context.Context, session *types.SessionState) error {
	if _, err := r.pool.Exec(ctx, postgresUpsertSession, models.SessionFromState(session).Values()...); err != nil {
		return fmt.Errorf("failed to save session %s: %v", session.ID, err)
	}
	return nil
}

func (r *PostgresRepository) LoadSession(ctx context.Context, sessionID string) (*types.SessionState, error) {
	m, err := scanSession(r.pool.QueryRow(ctx, postgresSelectSession, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan session: %v", err)
	}
	return m.State(), nil
}

func (r *PostgresRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE session_id = $1;`, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %v", err)
	}
	return nil
}

func (r *PostgresRepository) DeleteSessionsBefore(ctx context.Context, updatedBefore int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE updated_at < $1;`, updatedBefore)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sessions: %v", err)
	}
	return tag.RowsAffected(), nil
}
