package testutil

import (
	"context"
	"sync"
)

// MemorySnapshots is an in-memory pantry.SnapshotStore for tests.
//
// Failures are injectable per key so tests can exercise the store's
// recovery paths: a failed load leaves the collection at its empty
// default, a failed save leaves in-memory state authoritative.
//
// Thread-safety: all methods are safe for concurrent use.
type MemorySnapshots struct {
	mu       sync.Mutex
	data     map[string][]byte
	loadErr  map[string]error
	saveErr  map[string]error
	saves    int
}

// NewMemorySnapshots creates an empty snapshot store.
func NewMemorySnapshots() *MemorySnapshots {
	return &MemorySnapshots{
		data:    make(map[string][]byte),
		loadErr: make(map[string]error),
		saveErr: make(map[string]error),
	}
}

// Load returns the blob for key, or (nil, nil) if never written.
func (m *MemorySnapshots) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.loadErr[key]; err != nil {
		return nil, err
	}
	data, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save replaces the blob for key.
func (m *MemorySnapshots) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.saveErr[key]; err != nil {
		return err
	}
	stored := make([]byte, len(data))
	copy(stored, data)
	m.data[key] = stored
	m.saves++
	return nil
}

// Seed stores a blob directly, bypassing failure injection. Used to
// arrange pre-existing persisted state.
func (m *MemorySnapshots) Seed(key string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
}

// Stored returns the current blob for key, or nil.
func (m *MemorySnapshots) Stored(key string) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.data[key]
}

// FailLoads makes subsequent loads of key return err (nil clears).
func (m *MemorySnapshots) FailLoads(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr[key] = err
}

// FailSaves makes subsequent saves of key return err (nil clears).
func (m *MemorySnapshots) FailSaves(key string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveErr[key] = err
}

// SaveCount reports how many successful saves have happened.
func (m *MemorySnapshots) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}
