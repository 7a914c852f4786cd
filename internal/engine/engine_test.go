package engine_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/claude/liftplan/internal/calibration"
	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/models"
)

func plannerCatalog(t *testing.T) *catalog.Snapshot {
	t.Helper()
	exercises := []models.Exercise{
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
			ID: "dumbbell_fly", Name: "Dumbbell Fly",
			Equipment: models.EquipmentDumbbell, Type: models.TypeIsolation,
			MuscleGroups: []models.MuscleGroup{"chest"}, BaseExercise: "fly",
			ExperienceLevel: models.LevelBeginner,
		},
	}
	protocols := []models.ProtocolConfig{
		{
			ID: "straight_sets_basic", Family: "straight_sets", VariantName: "Straight Sets",
			Reps:                 []int{8, 8, 8},
			IntensityAdjustments: []float64{0, 0, 0},
			RestBetweenSets:      []int{120, 120, 120},
			RPE:                  []float64{7.5, 8, 8.5},
		},
	}

	cat, err := catalog.New(exercises, protocols)
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}
	return cat
}

func testLibrary() models.UserLibrary {
	return models.UserLibrary{
		UserID:      "u1",
		ExerciseIDs: []string{"barbell_bench_press"},
		Protocols: []models.ProtocolLibraryEntry{{
			ProtocolID:      "straight_sets_basic",
			Enabled:         true,
			ApplicableTo:    []models.ExerciseType{models.TypeCompound, models.TypeIsolation},
			IntensityLow:    0,
			IntensityHigh:   1,
			SelectionWeight: 1.0,
		}},
	}
}

// TestGenerateFullSession runs the whole pipeline end to end: a
// one-exercise library forces pool expansion, selection picks two
// distinct-base compounds plus an isolation, the matched protocol
// produces per-set targets, and calibration data resolves working
// weights where it exists.
func TestGenerateFullSession(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := plannerCatalog(t)

	store := calibration.NewMemStore()
	store.PutCalibrationRecord(ctx, calibration.Record{
		UserID: "u1", ExerciseID: "barbell_bench_press", OneRMKg: 100,
	})
	store.PutCalibrationRecord(ctx, calibration.Record{
		UserID: "u1", ExerciseID: "dumbbell_fly", RangeLowKg: 10, RangeHighKg: 17.5, Estimated: true,
	})

	planner := engine.NewPlanner(cat, cat, calibration.NewCalculator(store, log), log)

	plan, err := planner.Generate(ctx, engine.Request{
		UserID:    "u1",
		Goal:      models.GoalHypertrophy,
		Intensity: 0.75,
		Library:   testLibrary(),
		Criteria: engine.Criteria{
			ExperienceLevel: models.LevelIntermediate,
			Equipment:       []models.Equipment{models.EquipmentBarbell, models.EquipmentDumbbell},
			MuscleTargets:   []models.MuscleGroup{"chest"},
			CompoundCount:   2,
			IsolationCount:  1,
		},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !plan.UsedFallback {
		t.Error("a one-exercise library should force pool expansion")
	}
	if len(plan.Exercises) != 3 {
		t.Fatalf("expected 3 prescriptions, got %d", len(plan.Exercises))
	}

	wantOrder := []string{"barbell_bench_press", "incline_dumbbell_press", "dumbbell_fly"}
	for i, id := range wantOrder {
		if plan.Exercises[i].Exercise.ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, plan.Exercises[i].Exercise.ID)
		}
	}
	if len(plan.FromLibrary) != 1 || plan.FromLibrary[0] != "barbell_bench_press" {
		t.Errorf("unexpected from-library partition: %v", plan.FromLibrary)
	}
	if len(plan.Introduced) != 2 {
		t.Errorf("expected 2 introduced exercises, got %v", plan.Introduced)
	}

	bench := plan.Exercises[0]
	if bench.ProtocolID != "straight_sets_basic" {
		t.Fatalf("expected protocol match, got %q", bench.ProtocolID)
	}
	if bench.Subtitle != "3×8 · RPE 8" {
		t.Errorf("unexpected subtitle %q", bench.Subtitle)
	}
	if len(bench.Sets) != 3 {
		t.Fatalf("expected 3 sets, got %d", len(bench.Sets))
	}
	first := bench.Sets[0]
	if first.SetNumber != 1 || first.Reps != 8 || first.RestSec != 120 {
		t.Errorf("unexpected first set %+v", first)
	}
	if first.RPE == nil || *first.RPE != 7.5 {
		t.Errorf("expected RPE 7.5 on set 1, got %v", first.RPE)
	}
	if first.Weight.Kg != 75 || first.Weight.CalibrationNeeded {
		t.Errorf("expected 75 kg from 100 kg 1RM at 0.75, got %+v", first.Weight)
	}

	incline := plan.Exercises[1]
	if !incline.Sets[0].Weight.CalibrationNeeded {
		t.Error("uncalibrated compound should flag calibration needed")
	}

	fly := plan.Exercises[2]
	if fly.Sets[0].Weight.Kg != 12.5 || !fly.Sets[0].Weight.Estimated {
		t.Errorf("unexpected isolation weight %+v", fly.Sets[0].Weight)
	}
}

// TestGenerateWithoutProtocolMatch verifies a protocol miss degrades to
// a prescription without protocol or sets, not a failed generation.
func TestGenerateWithoutProtocolMatch(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := plannerCatalog(t)

	lib := testLibrary()
	lib.Protocols[0].ApplicableTo = []models.ExerciseType{models.TypeCompound}

	planner := engine.NewPlanner(cat, cat, calibration.NewCalculator(calibration.NewMemStore(), log), log)

	plan, err := planner.Generate(ctx, engine.Request{
		UserID:    "u1",
		Goal:      models.GoalHypertrophy,
		Intensity: 0.75,
		Library:   lib,
		Criteria: engine.Criteria{
			ExperienceLevel: models.LevelBeginner,
			Equipment:       []models.Equipment{models.EquipmentDumbbell},
			MuscleTargets:   []models.MuscleGroup{"chest"},
			CompoundCount:   1,
			IsolationCount:  1,
		},
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	var fly *engine.Prescription
	for i := range plan.Exercises {
		if plan.Exercises[i].Exercise.ID == "dumbbell_fly" {
			fly = &plan.Exercises[i]
		}
	}
	if fly == nil {
		t.Fatal("expected dumbbell_fly in the plan")
	}
	if fly.ProtocolID != "" || len(fly.Sets) != 0 {
		t.Errorf("isolation should have no protocol here, got %q with %d sets", fly.ProtocolID, len(fly.Sets))
	}
}

// TestGenerateInsufficientPool verifies pool validation surfaces as a
// typed hard error from Generate.
func TestGenerateInsufficientPool(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := plannerCatalog(t)

	planner := engine.NewPlanner(cat, cat, calibration.NewCalculator(calibration.NewMemStore(), log), log)

	_, err := planner.Generate(ctx, engine.Request{
		UserID:    "u1",
		Intensity: 0.7,
		Library:   testLibrary(),
		Criteria: engine.Criteria{
			ExperienceLevel: models.LevelBeginner,
			Equipment:       []models.Equipment{models.EquipmentBarbell},
			MuscleTargets:   []models.MuscleGroup{"chest"},
			CompoundCount:   5,
		},
	})
	if err == nil {
		t.Fatal("expected insufficient-pool error")
	}
}
