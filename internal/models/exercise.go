package models

import "strings"

// Equipment identifies the implement an exercise is performed with.
type Equipment string

const (
	EquipmentBarbell        Equipment = "barbell"
	EquipmentDumbbell       Equipment = "dumbbell"
	EquipmentKettlebell     Equipment = "kettlebell"
	EquipmentCable          Equipment = "cable"
	EquipmentMachine        Equipment = "machine"
	EquipmentBodyweight     Equipment = "bodyweight"
	EquipmentResistanceBand Equipment = "resistance_band"
)

// ExerciseType classifies how an exercise is used inside a session.
type ExerciseType string

const (
	TypeCompound  ExerciseType = "compound"
	TypeIsolation ExerciseType = "isolation"
	TypeWarmup    ExerciseType = "warmup"
	TypeCooldown  ExerciseType = "cooldown"
	TypeCardio    ExerciseType = "cardio"
)

// ExperienceLevel is an ordered training-age classification.
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
	LevelElite        ExperienceLevel = "elite"
)

// levelRank orders experience levels for at-or-below comparisons.
var levelRank = map[ExperienceLevel]int{
	LevelBeginner:     0,
	LevelIntermediate: 1,
	LevelAdvanced:     2,
	LevelElite:        3,
}

// AtOrBelow reports whether l is at or below max in training-age order.
// Unknown levels are treated as above everything, so they never leak
// into a beginner's fallback pool.
func (l ExperienceLevel) AtOrBelow(max ExperienceLevel) bool {
	lr, ok := levelRank[l]
	if !ok {
		return false
	}
	mr, ok := levelRank[max]
	if !ok {
		return false
	}
	return lr <= mr
}

// MuscleGroup is a muscle tag (e.g. "chest", "quads", "lats").
type MuscleGroup string

// MovementPattern is an optional movement tag (e.g. "squat", "hinge",
// "horizontal_push"). Empty means untagged.
type MovementPattern string

// Exercise is one catalog entry. Catalog records are immutable for the
// lifetime of a snapshot; the engine never mutates them.
type Exercise struct {
	ID              string          `json:"id" yaml:"id"`
	Name            string          `json:"name" yaml:"name"`
	Equipment       Equipment       `json:"equipment" yaml:"equipment"`
	Type            ExerciseType    `json:"type" yaml:"type"`
	MuscleGroups    []MuscleGroup   `json:"muscle_groups" yaml:"muscle_groups"`
	MovementPattern MovementPattern `json:"movement_pattern,omitempty" yaml:"movement_pattern,omitempty"`
	// BaseExercise groups equipment variants of the same movement
	// (e.g. all bench-press variants). Empty means ungrouped.
	BaseExercise    string          `json:"base_exercise,omitempty" yaml:"base_exercise,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level" yaml:"experience_level"`
}

// Targets reports whether the exercise hits at least one of the given
// muscle groups.
func (e Exercise) Targets(muscles []MuscleGroup) bool {
	for _, want := range muscles {
		for _, have := range e.MuscleGroups {
			if have == want {
				return true
			}
		}
	}
	return false
}

var canonicalEquipment = map[string]Equipment{
	"barbell":         EquipmentBarbell,
	"dumbbell":        EquipmentDumbbell,
	"kettlebell":      EquipmentKettlebell,
	"cable":           EquipmentCable,
	"machine":         EquipmentMachine,
	"bodyweight":      EquipmentBodyweight,
	"body weight":     EquipmentBodyweight,
	"resistance_band": EquipmentResistanceBand,
	"resistance band": EquipmentResistanceBand,
	"band":            EquipmentResistanceBand,
}

// NormalizeEquipment maps a free-form equipment string to its canonical
// value. Lookup is case-insensitive. Unknown strings are returned as-is
// with known=false so callers can log a warning.
func NormalizeEquipment(s string) (Equipment, bool) {
	if eq, ok := canonicalEquipment[strings.ToLower(strings.TrimSpace(s))]; ok {
		return eq, true
	}
	return Equipment(s), false
}

var canonicalLevel = map[string]ExperienceLevel{
	"beginner":     LevelBeginner,
	"novice":       LevelBeginner,
	"intermediate": LevelIntermediate,
	"advanced":     LevelAdvanced,
	"elite":        LevelElite,
}

// NormalizeExperienceLevel maps a free-form level string to its canonical
// value, case-insensitively. Unknown strings are returned as-is with
// known=false.
func NormalizeExperienceLevel(s string) (ExperienceLevel, bool) {
	if lvl, ok := canonicalLevel[strings.ToLower(strings.TrimSpace(s))]; ok {
		return lvl, true
	}
	return ExperienceLevel(s), false
}
