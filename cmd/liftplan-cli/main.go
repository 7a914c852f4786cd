package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/claude/liftplan/internal/calibration"
	"github.com/claude/liftplan/internal/catalog"
	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/library"
	"github.com/claude/liftplan/internal/localstore"
	"github.com/claude/liftplan/internal/models"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	exercisesPath := flag.String("exercises", "data/exercises.yaml", "path to exercise catalog")
	protocolsPath := flag.String("protocols", "data/protocols.yaml", "path to protocol catalog")
	stateDir := flag.String("state", "", "state directory (default ~/.liftplan)")
	user := flag.String("user", "local", "user id")

	star := flag.String("star", "", "star an exercise id and exit")
	unstar := flag.String("unstar", "", "unstar an exercise id and exit")
	calibrate := flag.String("calibrate", "", "exercise id to store calibration for (with -one-rm or -range)")
	oneRM := flag.Float64("one-rm", 0, "1RM in kg for -calibrate")
	weightRange := flag.String("range", "", "working-weight range in kg for -calibrate, e.g. 10-17.5")
	estimated := flag.Bool("estimated", false, "mark the -calibrate value as estimated")

	goal := flag.String("goal", "hypertrophy", "training goal")
	intensity := flag.Float64("intensity", 0.75, "base intensity as a fraction of 1RM")
	level := flag.String("level", "intermediate", "experience level")
	muscles := flag.String("muscles", "", "comma-separated target muscle groups (required to generate)")
	emphasize := flag.String("emphasize", "", "comma-separated emphasized muscle groups")
	equipment := flag.String("equipment", "barbell,dumbbell,bodyweight", "comma-separated available equipment")
	compounds := flag.Int("compounds", 2, "compound exercises to select")
	isolations := flag.Int("isolations", 2, "isolation exercises to select")
	bodyweight := flag.Bool("bodyweight", false, "prefer bodyweight compounds")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("liftplan-cli", Version)
		return
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	ctx := context.Background()

	dir := *stateDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot resolve home directory: %v\n", err)
			os.Exit(1)
		}
		dir = filepath.Join(home, ".liftplan")
	}

	store, err := localstore.Open(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	cat, err := catalog.Load(*exercisesPath, *protocolsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	libSvc := library.NewService(store, log)

	switch {
	case *star != "":
		requireCatalogExercise(cat, *star)
		if err := libSvc.StarExercise(ctx, *user, *star); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("starred %s\n", *star)
		return

	case *unstar != "":
		if err := libSvc.UnstarExercise(ctx, *user, *unstar); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("unstarred %s\n", *unstar)
		return

	case *calibrate != "":
		requireCatalogExercise(cat, *calibrate)
		rec := calibration.Record{
			UserID:     *user,
			ExerciseID: *calibrate,
			OneRMKg:    *oneRM,
			Estimated:  *estimated,
			UpdatedAt:  time.Now().UTC(),
		}
		if *weightRange != "" {
			if _, err := fmt.Sscanf(*weightRange, "%f-%f", &rec.RangeLowKg, &rec.RangeHighKg); err != nil {
				fmt.Fprintf(os.Stderr, "Error: invalid -range %q (want e.g. 10-17.5)\n", *weightRange)
				os.Exit(1)
			}
		}
		if err := store.PutCalibrationRecord(ctx, rec); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("calibration stored for %s\n", *calibrate)
		return
	}

	if *muscles == "" {
		fmt.Fprintf(os.Stderr, "Usage: liftplan-cli -muscles chest,triceps [-goal hypertrophy] [-intensity 0.75] ...\n\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	lib, err := libSvc.Library(ctx, *user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// A fresh local library has no protocol entries. Auto-add every
	// catalog protocol with defaults so generation is useful out of
	// the box; the user can disable entries afterwards.
	if len(lib.Protocols) == 0 {
		for _, p := range cat.Protocols() {
			entry := models.ProtocolLibraryEntry{
				ProtocolID:      p.ID,
				Enabled:         true,
				ApplicableTo:    []models.ExerciseType{models.TypeCompound, models.TypeIsolation},
				IntensityLow:    0,
				IntensityHigh:   1,
				SelectionWeight: 1.0,
			}
			if err := libSvc.StarProtocol(ctx, *user, entry); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
		lib, err = libSvc.Library(ctx, *user)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	goalVal, _ := models.NormalizeGoal(*goal)
	levelVal, _ := models.NormalizeExperienceLevel(*level)

	weights := calibration.NewCalculator(store, log)
	planner := engine.NewPlanner(cat, cat, weights, log)

	plan, err := planner.Generate(ctx, engine.Request{
		UserID:    *user,
		Goal:      goalVal,
		Intensity: *intensity,
		Library:   lib,
		Criteria: engine.Criteria{
			ExperienceLevel:           levelVal,
			Equipment:                 parseEquipment(*equipment),
			MuscleTargets:             parseMuscles(*muscles),
			EmphasizedMuscles:         parseMuscles(*emphasize),
			CompoundCount:             *compounds,
			IsolationCount:            *isolations,
			PreferBodyweightCompounds: *bodyweight,
		},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printPlan(plan)
}

func requireCatalogExercise(cat *catalog.Snapshot, id string) {
	if _, ok := cat.Exercise(id); !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown exercise %q\n", id)
		os.Exit(1)
	}
}

func parseMuscles(s string) []models.MuscleGroup {
	var out []models.MuscleGroup
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, models.MuscleGroup(part))
		}
	}
	return out
}

func parseEquipment(s string) []models.Equipment {
	var out []models.Equipment
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			eq, _ := models.NormalizeEquipment(part)
			out = append(out, eq)
		}
	}
	return out
}

func printPlan(plan *engine.SessionPlan) {
	fmt.Println()
	fmt.Println("=== Session Plan ===")
	fmt.Printf("  Goal:         %s\n", plan.Goal)
	if plan.UsedFallback {
		fmt.Println("  Pool:         expanded beyond library")
	} else {
		fmt.Println("  Pool:         library")
	}
	fmt.Println()

	for i, rx := range plan.Exercises {
		fmt.Printf("%d. %s (%s, %s)\n", i+1, rx.Exercise.Name, rx.Exercise.Equipment, rx.Exercise.Type)
		if rx.ProtocolID == "" {
			fmt.Println("   no protocol assigned")
			continue
		}
		fmt.Printf("   %s\n", rx.Subtitle)
		for _, set := range rx.Sets {
			line := fmt.Sprintf("   set %d: %d reps", set.SetNumber, set.Reps)
			switch {
			case set.Weight.CalibrationNeeded:
				line += ", calibration needed"
			case set.Weight.Kg > 0:
				line += fmt.Sprintf(", %.1f kg", set.Weight.Kg)
				if set.Weight.Estimated {
					line += " (est)"
				}
			}
			if set.RPE != nil {
				line += fmt.Sprintf(", RPE %.1f", *set.RPE)
			}
			if set.RestSec > 0 {
				line += fmt.Sprintf(", rest %ds", set.RestSec)
			}
			fmt.Println(line)
		}
	}
	fmt.Println()
}
