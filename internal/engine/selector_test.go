package engine

import (
	"errors"
	"testing"

	"github.com/claude/liftplan/internal/models"
)

// TestSelectExactCounts verifies the selector returns exactly the
// requested number of compounds and isolations, compounds first, with
// deterministic lexical tiebreaking at equal score.
func TestSelectExactCounts(t *testing.T) {
	s := NewSelector()

	sel, err := s.Select(chestFixture(), Criteria{
		Equipment:      []models.Equipment{models.EquipmentBarbell, models.EquipmentDumbbell},
		MuscleTargets:  []models.MuscleGroup{"chest"},
		CompoundCount:  2,
		IsolationCount: 1,
	})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	want := []string{"barbell_bench_press", "incline_dumbbell_press", "dumbbell_fly"}
	if len(sel.ExerciseIDs) != len(want) {
		t.Fatalf("expected %d exercises, got %v", len(want), sel.ExerciseIDs)
	}
	for i, id := range want {
		if sel.ExerciseIDs[i] != id {
			t.Errorf("position %d: expected %s, got %s", i, id, sel.ExerciseIDs[i])
		}
	}
}

// TestSelectBaseExerciseUniqueness verifies two variants of the same
// base movement never appear together, across the compound and
// isolation halves of the session.
func TestSelectBaseExerciseUniqueness(t *testing.T) {
	s := NewSelector()

	sel, err := s.Select(chestFixture(), Criteria{
		Equipment:      []models.Equipment{models.EquipmentBarbell, models.EquipmentDumbbell, models.EquipmentCable},
		MuscleTargets:  []models.MuscleGroup{"chest", "triceps"},
		CompoundCount:  2,
		IsolationCount: 2,
	})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	seen := make(map[string]string)
	catalog := newFixtureSource(chestFixture())
	for _, id := range sel.ExerciseIDs {
		ex, _ := catalog.Exercise(id)
		if ex.BaseExercise == "" {
			continue
		}
		if prev, dup := seen[ex.BaseExercise]; dup {
			t.Errorf("base %s selected twice: %s and %s", ex.BaseExercise, prev, id)
		}
		seen[ex.BaseExercise] = id
	}
}

// TestSelectMovementPatternFillPass verifies the movement-pattern
// constraint is soft: when the pool only offers repeats of one pattern,
// the second pass still fills the remaining slots.
func TestSelectMovementPatternFillPass(t *testing.T) {
	pool := []models.Exercise{
		{
			ID: "floor_press", Equipment: models.EquipmentBarbell, Type: models.TypeCompound,
			MuscleGroups: []models.MuscleGroup{"chest"}, MovementPattern: "horizontal_push",
			BaseExercise: "floor_press", ExperienceLevel: models.LevelBeginner,
		},
		{
			ID: "machine_chest_press", Equipment: models.EquipmentMachine, Type: models.TypeCompound,
			MuscleGroups: []models.MuscleGroup{"chest"}, MovementPattern: "horizontal_push",
			BaseExercise: "chest_press", ExperienceLevel: models.LevelBeginner,
		},
	}

	sel, err := NewSelector().Select(pool, Criteria{
		Equipment:     []models.Equipment{models.EquipmentBarbell, models.EquipmentMachine},
		MuscleTargets: []models.MuscleGroup{"chest"},
		CompoundCount: 2,
	})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(sel.ExerciseIDs) != 2 {
		t.Fatalf("fill pass should relax the pattern constraint, got %v", sel.ExerciseIDs)
	}
	if sel.ExerciseIDs[0] != "floor_press" || sel.ExerciseIDs[1] != "machine_chest_press" {
		t.Errorf("unexpected order: %v", sel.ExerciseIDs)
	}
}

// TestSelectBodyweightPreference verifies the bodyweight boost
// reorders compounds ahead of otherwise higher-ranked candidates.
func TestSelectBodyweightPreference(t *testing.T) {
	sel, err := NewSelector().Select(chestFixture(), Criteria{
		Equipment:                 []models.Equipment{models.EquipmentBarbell, models.EquipmentBodyweight},
		MuscleTargets:             []models.MuscleGroup{"chest"},
		CompoundCount:             1,
		PreferBodyweightCompounds: true,
	})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if sel.ExerciseIDs[0] != "push_up" {
		t.Errorf("expected bodyweight compound first, got %s", sel.ExerciseIDs[0])
	}
}

// TestSelectEmphasisBoost verifies an emphasized muscle lifts a
// candidate above its lexical position.
func TestSelectEmphasisBoost(t *testing.T) {
	sel, err := NewSelector().Select(chestFixture(), Criteria{
		Equipment:         []models.Equipment{models.EquipmentBarbell, models.EquipmentDumbbell},
		MuscleTargets:     []models.MuscleGroup{"chest"},
		EmphasizedMuscles: []models.MuscleGroup{"front_delts"},
		CompoundCount:     1,
	})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	// Only incline_dumbbell_press hits front_delts in this fixture.
	if sel.ExerciseIDs[0] != "incline_dumbbell_press" {
		t.Errorf("expected emphasized candidate first, got %s", sel.ExerciseIDs[0])
	}
}

// TestSelectLibraryBoostAndPartition verifies library membership boosts
// ranking and that the result is partitioned into from-library and
// introduced ids.
func TestSelectLibraryBoostAndPartition(t *testing.T) {
	sel, err := NewSelector().Select(chestFixture(), Criteria{
		LibraryIDs:     []string{"incline_dumbbell_press"},
		Equipment:      []models.Equipment{models.EquipmentBarbell, models.EquipmentDumbbell},
		MuscleTargets:  []models.MuscleGroup{"chest"},
		CompoundCount:  2,
		IsolationCount: 1,
	})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	if sel.ExerciseIDs[0] != "incline_dumbbell_press" {
		t.Errorf("library member should rank first, got %s", sel.ExerciseIDs[0])
	}
	if !containsID(sel.FromLibrary, "incline_dumbbell_press") || len(sel.FromLibrary) != 1 {
		t.Errorf("unexpected from-library partition: %v", sel.FromLibrary)
	}
	if len(sel.Introduced) != 2 {
		t.Errorf("expected 2 introduced exercises, got %v", sel.Introduced)
	}
}

// TestSelectIsolationBalanceBoost verifies isolations covering a target
// muscle the compounds missed outrank lexically earlier candidates.
func TestSelectIsolationBalanceBoost(t *testing.T) {
	sel, err := NewSelector().Select(chestFixture(), Criteria{
		Equipment:      []models.Equipment{models.EquipmentBarbell, models.EquipmentDumbbell},
		MuscleTargets:  []models.MuscleGroup{"chest", "side_delts"},
		CompoundCount:  1,
		IsolationCount: 1,
	})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	// barbell_bench_press covers chest; side_delts is still open, so
	// the lateral raise wins over the lexically earlier fly.
	if sel.ExerciseIDs[1] != "dumbbell_lateral_raise" {
		t.Errorf("expected balance boost to pick dumbbell_lateral_raise, got %s", sel.ExerciseIDs[1])
	}
}

// TestSelectInsufficientCompounds verifies the typed validation error
// carries the request context for clients to act on.
func TestSelectInsufficientCompounds(t *testing.T) {
	_, err := NewSelector().Select(chestFixture(), Criteria{
		Equipment:     []models.Equipment{models.EquipmentBarbell},
		MuscleTargets: []models.MuscleGroup{"chest"},
		CompoundCount: 3,
	})

	var insufficient *InsufficientCompoundError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientCompoundError, got %v", err)
	}
	if insufficient.Needed != 3 || insufficient.Available != 1 {
		t.Errorf("expected needed=3 available=1, got needed=%d available=%d",
			insufficient.Needed, insufficient.Available)
	}
}

// TestSelectInsufficientIsolations verifies the isolation counterpart.
func TestSelectInsufficientIsolations(t *testing.T) {
	_, err := NewSelector().Select(chestFixture(), Criteria{
		Equipment:      []models.Equipment{models.EquipmentBarbell},
		MuscleTargets:  []models.MuscleGroup{"chest"},
		CompoundCount:  1,
		IsolationCount: 1,
	})

	var insufficient *InsufficientIsolationError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientIsolationError, got %v", err)
	}
	if insufficient.Available != 0 {
		t.Errorf("expected no barbell isolations for chest, got %d", insufficient.Available)
	}
}
