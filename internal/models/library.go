package models

import "time"

// ProtocolLibraryEntry is a user's configuration of one protocol: which
// exercise types it may be assigned to, the intensity band it is valid
// in, and how strongly it should be weighted during matching.
type ProtocolLibraryEntry struct {
	ProtocolID string `json:"protocol_id"`
	Enabled    bool   `json:"enabled"`
	// ApplicableTo must be consulted before matching the entry against
	// any exercise type.
	ApplicableTo []ExerciseType `json:"applicable_to"`
	// Intensity band, inclusive on both ends. Low <= High.
	IntensityLow  float64 `json:"intensity_low"`
	IntensityHigh float64 `json:"intensity_high"`
	// PreferredGoals empty means "any goal".
	PreferredGoals     []Goal      `json:"preferred_goals,omitempty"`
	SelectionWeight    float64     `json:"selection_weight"`
	PreferredEquipment []Equipment `json:"preferred_equipment,omitempty"`
}

// AppliesTo reports whether the entry may be matched against the given
// exercise type.
func (e ProtocolLibraryEntry) AppliesTo(t ExerciseType) bool {
	for _, at := range e.ApplicableTo {
		if at == t {
			return true
		}
	}
	return false
}

// AllowsGoal reports whether the entry accepts the given goal. An empty
// preferred-goals list accepts any goal.
func (e ProtocolLibraryEntry) AllowsGoal(g Goal) bool {
	if len(e.PreferredGoals) == 0 {
		return true
	}
	for _, pg := range e.PreferredGoals {
		if pg == g {
			return true
		}
	}
	return false
}

// UserLibrary is one user's curated favorites: starred exercises and
// configured protocols. It biases selection and matching but never
// restricts the fallback pool.
type UserLibrary struct {
	UserID       string                 `json:"user_id"`
	ExerciseIDs  []string               `json:"exercise_ids"`
	Protocols    []ProtocolLibraryEntry `json:"protocols"`
	LastModified time.Time              `json:"last_modified"`
}

// HasExercise reports whether the exercise is starred.
func (l UserLibrary) HasExercise(id string) bool {
	for _, e := range l.ExerciseIDs {
		if e == id {
			return true
		}
	}
	return false
}
