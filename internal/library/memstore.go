package library

import (
	"context"
	"sync"

	"github.com/claude/liftplan/internal/models"
)

// MemStore is an in-memory Store for tests and ephemeral setups.
type MemStore struct {
	mu   sync.RWMutex
	libs map[string]models.UserLibrary
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{libs: make(map[string]models.UserLibrary)}
}

// Library implements Store.
func (m *MemStore) Library(_ context.Context, userID string) (models.UserLibrary, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	lib, ok := m.libs[userID]
	return lib, ok, nil
}

// SaveLibrary implements Store.
func (m *MemStore) SaveLibrary(_ context.Context, lib models.UserLibrary) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.libs[lib.UserID] = lib
	return nil
}
