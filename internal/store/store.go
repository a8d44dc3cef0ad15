// Package store keeps the latest display snapshot of each calculator
// session so that a reloaded page or a restarted terminal keypad resumes
// where it left off. Only one snapshot per session is kept.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codefionn/calcpad/internal/config"
	"github.com/codefionn/calcpad/internal/display"
)

// ErrEmptySessionID is returned for operations without a session id
var ErrEmptySessionID = errors.New("empty session id")

// Store is the interface for snapshot persistence.
type Store interface {
	// Load returns the snapshot saved for id; found is false if there is none.
	Load(ctx context.Context, id string) (snap display.Snapshot, found bool, err error)
	// Save stores the snapshot for id, replacing any previous one.
	Save(ctx context.Context, id string, snap display.Snapshot) error
	// Delete removes the snapshot for id.
	Delete(ctx context.Context, id string) error
	// Close releases resources.
	Close() error
}

// Pruner is implemented by stores that can drop stale sessions
type Pruner interface {
	// Prune deletes snapshots last saved before the given time and
	// returns how many were removed.
	Prune(ctx context.Context, before time.Time) (int64, error)
}

// Open creates the store selected by cfg
func Open(cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case config.StoreMemory, "":
		return NewMemory(), nil
	case config.StoreSQLite3, config.StoreSQLite:
		s, err := NewSQL(cfg.Driver, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s store at %s: %w", cfg.Driver, cfg.Path, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}
