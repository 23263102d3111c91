// Package prefs stores small user preferences that survive between runs of
// the tool, such as the last listener identifier typed into the add prompt.
package prefs

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// PreviousListenerKey remembers the last identifier entered when adding a
// listener.
const PreviousListenerKey = "previousListenerName"

var ErrUnknownBackend = errors.New("prefs: unknown backend")

// Store is a process-wide string key/value store.
type Store interface {
	// GetString returns def when key has no value.
	GetString(ctx context.Context, key, def string) (string, error)
	PutString(ctx context.Context, key, value string) error
	Close() error
}

const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Open creates the store for backend at path.
func Open(backend, path string) (Store, error) {
	switch backend {
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendFile:
		return OpenFile(path)
	case BackendMemory, "":
		return NewMemory(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
}

// Memory keeps preferences for the life of the process only.
type Memory struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) GetString(_ context.Context, key, def string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *Memory) PutString(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
