// Package engine selects exercises for a training session, assigns
// each a protocol from the user's library, and computes per-set
// targets. It is pure computation over injected catalog snapshots:
// no I/O, no shared mutable state, safe for concurrent use.
package engine

import "github.com/claude/liftplan/internal/models"

// ExerciseSource is a read-only exercise catalog snapshot.
type ExerciseSource interface {
	Exercise(id string) (models.Exercise, bool)
	Exercises() []models.Exercise
}

// ProtocolSource is a read-only protocol catalog snapshot.
type ProtocolSource interface {
	Protocol(id string) (models.ProtocolConfig, bool)
}

// Criteria describes one selection request. Built fresh per generation
// request, never persisted.
type Criteria struct {
	ExperienceLevel models.ExperienceLevel `json:"experience_level"`
	LibraryIDs      []string               `json:"library_ids,omitempty"`
	ExcludedIDs     []string               `json:"excluded_ids,omitempty"`
	Equipment       []models.Equipment     `json:"equipment"`
	MuscleTargets   []models.MuscleGroup   `json:"muscle_targets"`
	// EmphasizedMuscles boost candidates during scoring but do not
	// filter the pool.
	EmphasizedMuscles []models.MuscleGroup `json:"emphasized_muscles,omitempty"`
	CompoundCount     int                  `json:"compound_count"`
	IsolationCount    int                  `json:"isolation_count"`
	// PreferBodyweightCompounds doubles the score of bodyweight
	// compound candidates (e.g. for home or travel sessions).
	PreferBodyweightCompounds bool `json:"prefer_bodyweight_compounds,omitempty"`
	// SplitDay tags the request with the plan day it belongs to
	// (e.g. "push", "pull", "legs"). Informational only.
	SplitDay string `json:"split_day,omitempty"`
}

func (c Criteria) allowsEquipment(eq models.Equipment) bool {
	for _, e := range c.Equipment {
		if e == eq {
			return true
		}
	}
	return false
}

func (c Criteria) excludes(id string) bool {
	for _, e := range c.ExcludedIDs {
		if e == id {
			return true
		}
	}
	return false
}

func (c Criteria) inLibrary(id string) bool {
	for _, l := range c.LibraryIDs {
		if l == id {
			return true
		}
	}
	return false
}

// Selection is the outcome of a successful selection: the chosen
// exercise ids in prescription order (compounds first), partitioned
// into ids that came from the user's library versus ids the engine
// introduced from the wider catalog.
type Selection struct {
	ExerciseIDs []string `json:"exercise_ids"`
	FromLibrary []string `json:"from_library"`
	Introduced  []string `json:"introduced"`
	// UsedFallback records whether the candidate pool had to be
	// expanded beyond the user's library.
	UsedFallback bool `json:"used_fallback"`
}
