package calibration

import (
	"context"
	"sync"
)

// MemStore is an in-memory Store for tests and ephemeral setups.
type MemStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemStore creates an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{records: make(map[string]Record)}
}

func key(userID, exerciseID string) string {
	return userID + "\x00" + exerciseID
}

// CalibrationRecord implements Store.
func (m *MemStore) CalibrationRecord(_ context.Context, userID, exerciseID string) (Record, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[key(userID, exerciseID)]
	return rec, ok, nil
}

// PutCalibrationRecord stores or replaces a record.
func (m *MemStore) PutCalibrationRecord(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key(rec.UserID, rec.ExerciseID)] = rec
	return nil
}
