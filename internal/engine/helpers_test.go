package engine

import "github.com/claude/liftplan/internal/models"

// chestFixture is the candidate set shared by pool and selector tests.
// It mixes equipment variants of the same base movement, repeated
// movement patterns, and a non-chest compound.
func chestFixture() []models.Exercise {
	return []models.Exercise{
		{
			ID: "barbell_bench_press", Name: "Barbell Bench Press",
			Equipment: models.EquipmentBarbell, Type: models.TypeCompound,
			MuscleGroups:    []models.MuscleGroup{"chest", "triceps"},
			MovementPattern: "horizontal_push", BaseExercise: "bench_press",
			ExperienceLevel: models.LevelBeginner,
		},
		{
			ID: "dumbbell_bench_press", Name: "Dumbbell Bench Press",
			Equipment: models.EquipmentDumbbell, Type: models.TypeCompound,
			MuscleGroups:    []models.MuscleGroup{"chest", "triceps"},
			MovementPattern: "horizontal_push", BaseExercise: "bench_press",
			ExperienceLevel: models.LevelBeginner,
		},
		{
			ID: "incline_dumbbell_press", Name: "Incline Dumbbell Press",
			Equipment: models.EquipmentDumbbell, Type: models.TypeCompound,
			MuscleGroups:    []models.MuscleGroup{"chest", "front_delts"},
			MovementPattern: "incline_push", BaseExercise: "incline_press",
			ExperienceLevel: models.LevelBeginner,
		},
		{
			ID: "push_up", Name: "Push-Up",
			Equipment: models.EquipmentBodyweight, Type: models.TypeCompound,
			MuscleGroups:    []models.MuscleGroup{"chest", "triceps"},
			MovementPattern: "horizontal_push", BaseExercise: "push_up",
			ExperienceLevel: models.LevelBeginner,
		},
		{
			ID: "weighted_dip", Name: "Weighted Dip",
			Equipment: models.EquipmentBodyweight, Type: models.TypeCompound,
			MuscleGroups:    []models.MuscleGroup{"chest", "triceps"},
			MovementPattern: "vertical_push", BaseExercise: "dip",
			ExperienceLevel: models.LevelIntermediate,
		},
		{
			ID: "barbell_back_squat", Name: "Barbell Back Squat",
			Equipment: models.EquipmentBarbell, Type: models.TypeCompound,
			MuscleGroups:    []models.MuscleGroup{"quads", "glutes"},
			MovementPattern: "squat", BaseExercise: "squat",
			ExperienceLevel: models.LevelBeginner,
		},
		{
			ID: "cable_fly", Name: "Cable Fly",
			Equipment: models.EquipmentCable, Type: models.TypeIsolation,
			MuscleGroups: []models.MuscleGroup{"chest"}, BaseExercise: "fly",
			ExperienceLevel: models.LevelBeginner,
		},
		{
			ID: "dumbbell_fly", Name: "Dumbbell Fly",
			Equipment: models.EquipmentDumbbell, Type: models.TypeIsolation,
			MuscleGroups: []models.MuscleGroup{"chest"}, BaseExercise: "fly",
			ExperienceLevel: models.LevelBeginner,
		},
		{
			ID: "dumbbell_lateral_raise", Name: "Dumbbell Lateral Raise",
			Equipment: models.EquipmentDumbbell, Type: models.TypeIsolation,
			MuscleGroups: []models.MuscleGroup{"side_delts"}, BaseExercise: "lateral_raise",
			ExperienceLevel: models.LevelBeginner,
		},
		{
			ID: "tricep_pushdown", Name: "Tricep Pushdown",
			Equipment: models.EquipmentCable, Type: models.TypeIsolation,
			MuscleGroups: []models.MuscleGroup{"triceps"}, BaseExercise: "tricep_extension",
			ExperienceLevel: models.LevelBeginner,
		},
	}
}

// fixtureSource is an in-memory ExerciseSource over chestFixture.
type fixtureSource struct {
	list []models.Exercise
}

func newFixtureSource(list []models.Exercise) *fixtureSource {
	return &fixtureSource{list: list}
}

func (f *fixtureSource) Exercise(id string) (models.Exercise, bool) {
	for _, ex := range f.list {
		if ex.ID == id {
			return ex, true
		}
	}
	return models.Exercise{}, false
}

func (f *fixtureSource) Exercises() []models.Exercise {
	return f.list
}

// protoMap is an in-memory ProtocolSource.
type protoMap map[string]models.ProtocolConfig

func (m protoMap) Protocol(id string) (models.ProtocolConfig, bool) {
	p, ok := m[id]
	return p, ok
}

func containsID(ids []string, id string) bool {
	for _, got := range ids {
		if got == id {
			return true
		}
	}
	return false
}
