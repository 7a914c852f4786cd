// Package library manages per-user exercise/protocol favorites. All
// mutations for one user are serialized through a per-user lock, so a
// star and a batch add issued near-simultaneously cannot silently lose
// one update. Each mutation is one read-modify-write against the store
// and one durable save.
package library

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/claude/liftplan/internal/models"
)

// Store persists user libraries keyed by user id.
type Store interface {
	// Library returns the stored library. found=false means the user
	// has never saved one.
	Library(ctx context.Context, userID string) (models.UserLibrary, bool, error)
	// SaveLibrary writes the library back durably.
	SaveLibrary(ctx context.Context, lib models.UserLibrary) error
}

// Service is the single-writer-per-user mutation layer over a Store.
type Service struct {
	store Store
	log   *slog.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a Service.
func NewService(store Store, log *slog.Logger) *Service {
	return &Service{store: store, log: log, locks: make(map[string]*sync.Mutex)}
}

// userLock returns the mutex serializing all writes for one user.
func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

// Library returns the user's library, or an empty one when none is
// stored yet.
func (s *Service) Library(ctx context.Context, userID string) (models.UserLibrary, error) {
	lib, found, err := s.store.Library(ctx, userID)
	if err != nil {
		return models.UserLibrary{}, fmt.Errorf("loading library for %s: %w", userID, err)
	}
	if !found {
		return models.UserLibrary{UserID: userID}, nil
	}
	return lib, nil
}

// mutate runs fn on the user's current library under the per-user lock
// and saves the result with a fresh LastModified. fn returning false
// means no change was made and the save is skipped.
func (s *Service) mutate(ctx context.Context, userID string, fn func(*models.UserLibrary) bool) error {
	l := s.userLock(userID)
	l.Lock()
	defer l.Unlock()

	lib, err := s.Library(ctx, userID)
	if err != nil {
		return err
	}
	if !fn(&lib) {
		return nil
	}
	lib.LastModified = time.Now().UTC()
	if err := s.store.SaveLibrary(ctx, lib); err != nil {
		return fmt.Errorf("saving library for %s: %w", userID, err)
	}
	return nil
}

// StarExercise adds one exercise to the user's favorites. Starring an
// already-starred exercise is a no-op.
func (s *Service) StarExercise(ctx context.Context, userID, exerciseID string) error {
	return s.mutate(ctx, userID, func(lib *models.UserLibrary) bool {
		if lib.HasExercise(exerciseID) {
			return false
		}
		lib.ExerciseIDs = append(lib.ExerciseIDs, exerciseID)
		return true
	})
}

// UnstarExercise removes one exercise from the user's favorites.
func (s *Service) UnstarExercise(ctx context.Context, userID, exerciseID string) error {
	return s.mutate(ctx, userID, func(lib *models.UserLibrary) bool {
		for i, id := range lib.ExerciseIDs {
			if id == exerciseID {
				lib.ExerciseIDs = append(lib.ExerciseIDs[:i], lib.ExerciseIDs[i+1:]...)
				return true
			}
		}
		return false
	})
}

// AddExercises batch-adds exercises (e.g. auto-add on workout creation
// or plan activation). The whole batch is applied as one atomic update
// and one durable write. Returns how many ids were actually new.
func (s *Service) AddExercises(ctx context.Context, userID string, exerciseIDs []string) (int, error) {
	added := 0
	err := s.mutate(ctx, userID, func(lib *models.UserLibrary) bool {
		for _, id := range exerciseIDs {
			if lib.HasExercise(id) {
				continue
			}
			lib.ExerciseIDs = append(lib.ExerciseIDs, id)
			added++
		}
		return added > 0
	})
	if err != nil {
		return 0, err
	}
	if added > 0 {
		s.log.Info("library batch add", "user", userID, "added", added, "requested", len(exerciseIDs))
	}
	return added, nil
}

// StarProtocol adds or replaces a protocol entry in the user's library.
func (s *Service) StarProtocol(ctx context.Context, userID string, entry models.ProtocolLibraryEntry) error {
	if entry.IntensityLow > entry.IntensityHigh {
		return fmt.Errorf("protocol %s: intensity range low %.2f above high %.2f",
			entry.ProtocolID, entry.IntensityLow, entry.IntensityHigh)
	}
	return s.mutate(ctx, userID, func(lib *models.UserLibrary) bool {
		for i, e := range lib.Protocols {
			if e.ProtocolID == entry.ProtocolID {
				lib.Protocols[i] = entry
				return true
			}
		}
		lib.Protocols = append(lib.Protocols, entry)
		return true
	})
}

// UnstarProtocol removes a protocol entry from the user's library.
func (s *Service) UnstarProtocol(ctx context.Context, userID, protocolID string) error {
	return s.mutate(ctx, userID, func(lib *models.UserLibrary) bool {
		for i, e := range lib.Protocols {
			if e.ProtocolID == protocolID {
				lib.Protocols = append(lib.Protocols[:i], lib.Protocols[i+1:]...)
				return true
			}
		}
		return false
	})
}

// SetProtocolEnabled toggles a protocol entry without touching its
// other settings.
func (s *Service) SetProtocolEnabled(ctx context.Context, userID, protocolID string, enabled bool) error {
	return s.mutate(ctx, userID, func(lib *models.UserLibrary) bool {
		for i, e := range lib.Protocols {
			if e.ProtocolID == protocolID {
				if e.Enabled == enabled {
					return false
				}
				lib.Protocols[i].Enabled = enabled
				return true
			}
		}
		return false
	})
}
