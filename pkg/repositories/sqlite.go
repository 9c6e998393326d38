package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Michel-2503/Kopfrechnen/pkg/quiz/types"
	"github.com/Michel-2503/Kopfrechnen/pkg/repositories/models"
	_ "github.com/mattn/go-sqlite3"
)

var (
	sqliteUpsertSession = fmt.Sprintf(`
	INSERT OR REPLACE INTO sessions (%s)
	VALUES (%s);
	`, sessionColumnList, placeholders(len(models.SessionColumns), false))
	sqliteSelectSession = fmt.Sprintf(`
	SELECT %s FROM sessions WHERE session_id = ?;
	`, sessionColumnList)
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}
	// sqlite allows a single writer
	db.SetMaxOpenConns(1)

	migrations, err := loadMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for _, m := range migrations {
		if _, err := db.ExecContext(ctx, m.sql); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %s: %v", m.name, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveSessions(ctx context.Context, sessions []*types.SessionState) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	for _, session := range sessions {
		if _, err := tx.ExecContext(ctx, sqliteUpsertSession, models.SessionFromState(session).Values()...); err != nil {
			return fmt.Errorf("failed to save session %s: %v", session.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) SaveSession(ctx context.Context, session *types.SessionState) error {
	if _, err := r.db.ExecContext(ctx, sqliteUpsertSession, models.SessionFromState(session).Values()...); err != nil {
		return fmt.Errorf("failed to save session %s: %v", session.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) LoadSession(ctx context.Context, sessionID string) (*types.SessionState, error) {
	m, err := scanSession(r.db.QueryRowContext(ctx, sqliteSelectSession, sessionID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan session: %v", err)
	}
	return m.State(), nil
}

func (r *SQLiteRepository) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE session_id = ?;`, sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %v", err)
	}
	return nil
}

func (r *SQLiteRepository) DeleteSessionsBefore(ctx context.Context, updatedBefore int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at < ?;`, updatedBefore)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sessions: %v", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted sessions: %v", err)
	}
	return n, nil
}
