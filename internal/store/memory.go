package store

import (
	"context"
	"sync"

	"github.com/codefionn/calcpad/internal/display"
)

// Memory is an in-memory store, lost on exit.
type Memory struct {
	mu    sync.RWMutex
	snaps map[string]display.Snapshot
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{snaps: make(map[string]display.Snapshot)}
}

func (m *Memory) Load(_ context.Context, id string) (display.Snapshot, bool, error) {
	if id == "" {
		return display.Snapshot{}, false, ErrEmptySessionID
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap, ok := m.snaps[id]
	return snap, ok, nil
}

func (m *Memory) Save(_ context.Context, id string, snap display.Snapshot) error {
	if id == "" {
		return ErrEmptySessionID
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snaps[id] = snap
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.snaps, id)
	return nil
}

func (m *Memory) Close() error {
	return nil
}

// Len returns the number of stored sessions.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.snaps)
}
