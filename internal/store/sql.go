package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/codefionn/calcpad/internal/display"
	"github.com/codefionn/calcpad/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	text TEXT NOT NULL,
	state TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// SQL is a store backed by a SQLite database. Both the cgo driver
// ("sqlite3") and the pure Go driver ("sqlite") are registered.
type SQL struct {
	db     *sql.DB
	driver string
	log    *logger.Logger
}

// NewSQL opens (creating if needed) the database at path with driverName.
func NewSQL(driverName, path string) (*SQL, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open(driverName, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite allows a single writer; one connection also keeps ":memory:" a single database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return &SQL{
		db:     db,
		driver: driverName,
		log:    logger.Global().WithPrefix("store:" + driverName),
	}, nil
}

func (s *SQL) Load(ctx context.Context, id string) (display.Snapshot, bool, error) {
	if id == "" {
		return display.Snapshot{}, false, ErrEmptySessionID
	}

	var text, state string
	err := s.db.QueryRowContext(ctx, `SELECT text, state FROM sessions WHERE id = ?`, id).Scan(&text, &state)
	if errors.Is(err, sql.ErrNoRows) {
		return display.Snapshot{}, false, nil
	}
	if err != nil {
		return display.Snapshot{}, false, fmt.Errorf("failed to load session %s: %w", id, err)
	}

	parsed, err := display.ParseState(state)
	if err != nil {
		s.log.Warn("session %s has an unreadable state, ignoring it: %v", id, err)
		return display.Snapshot{}, false, nil
	}
	return display.Snapshot{Text: text, State: parsed}, true, nil
}

func (s *SQL) Save(ctx context.Context, id string, snap display.Snapshot) error {
	if id == "" {
		return ErrEmptySessionID
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, text, state, updated_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET text = excluded.text, state = excluded.state, updated_at = excluded.updated_at`,
		id, snap.Text, snap.State.String(), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return nil
}

func (s *SQL) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

var _ Pruner = (*SQL)(nil)

// Prune removes snapshots not updated since before and returns how many were removed.
func (s *SQL) Prune(ctx context.Context, before time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE updated_at < ?`, before.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("pruned %d stale sessions", n)
	}
	return n, nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}
