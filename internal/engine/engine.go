package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/liftplan/internal/models"
	"github.com/google/uuid"
)

// Planner runs the full prescription pipeline for one session:
// pool building, selection, protocol matching, and per-set targets.
type Planner struct {
	exercises ExerciseSource
	protocols ProtocolSource
	weights   WeightCalculator
	log       *slog.Logger
}

// NewPlanner creates a Planner over the given catalog snapshots and
// weight-calculation collaborator.
func NewPlanner(exercises ExerciseSource, protocols ProtocolSource, weights WeightCalculator, log *slog.Logger) *Planner {
	return &Planner{exercises: exercises, protocols: protocols, weights: weights, log: log}
}

// Request describes one session-generation request.
type Request struct {
	UserID string      `json:"user_id"`
	Goal   models.Goal `json:"goal"`
	// Intensity is the session's base working intensity as a fraction
	// of 1RM, in [0,1].
	Intensity float64            `json:"intensity"`
	Library   models.UserLibrary `json:"-"`
	Criteria  Criteria           `json:"criteria"`
}

// SetTarget is the prescription for one set of one exercise.
type SetTarget struct {
	SetNumber       int          `json:"set_number"`
	Reps            int          `json:"reps"`
	RPE             *float64     `json:"rpe,omitempty"`
	RestSec         int          `json:"rest_sec"`
	IntensityOffset float64      `json:"intensity_offset"`
	Weight          WeightTarget `json:"weight"`
}

// Prescription is one exercise with its assigned protocol and per-set
// targets. ProtocolID is empty when no library protocol matched; the
// exercise is still prescribed and displays as "no protocol assigned".
type Prescription struct {
	Exercise   models.Exercise `json:"exercise"`
	ProtocolID string          `json:"protocol_id,omitempty"`
	Subtitle   string          `json:"subtitle,omitempty"`
	Sets       []SetTarget     `json:"sets,omitempty"`
}

// SessionPlan is the complete output of one generation request.
type SessionPlan struct {
	ID           uuid.UUID      `json:"id"`
	UserID       string         `json:"user_id"`
	Goal         models.Goal    `json:"goal"`
	SplitDay     string         `json:"split_day,omitempty"`
	Exercises    []Prescription `json:"exercises"`
	FromLibrary  []string       `json:"from_library"`
	Introduced   []string       `json:"introduced"`
	UsedFallback bool           `json:"used_fallback"`
	GeneratedAt  time.Time      `json:"generated_at"`
}

// Generate builds a session plan. Pool insufficiency is the only hard
// failure; protocol misses and missing calibration degrade to explicit
// absent values on the affected prescriptions.
func (p *Planner) Generate(ctx context.Context, req Request) (*SessionPlan, error) {
	c := req.Criteria
	if len(c.LibraryIDs) == 0 {
		c.LibraryIDs = req.Library.ExerciseIDs
	}

	pool, usedFallback := NewPoolBuilder(p.exercises).BuildPool(c)
	sel, err := NewSelector().Select(pool, c)
	if err != nil {
		return nil, err
	}
	sel.UsedFallback = usedFallback

	matcher := NewMatcher(p.protocols, p.log)

	plan := &SessionPlan{
		ID:           uuid.New(),
		UserID:       req.UserID,
		Goal:         req.Goal,
		SplitDay:     c.SplitDay,
		FromLibrary:  sel.FromLibrary,
		Introduced:   sel.Introduced,
		UsedFallback: sel.UsedFallback,
		GeneratedAt:  time.Now().UTC(),
	}

	for _, id := range sel.ExerciseIDs {
		ex, ok := p.exercises.Exercise(id)
		if !ok {
			// Selected from this same catalog; cannot happen unless the
			// snapshot was swapped mid-call.
			return nil, fmt.Errorf("selected exercise %q not in catalog", id)
		}

		rx := Prescription{Exercise: ex}
		if protoID, ok := matcher.Match(req.Library, ex.Type, req.Intensity, req.Goal, ex.Equipment); ok {
			if proto, ok := p.protocols.Protocol(protoID); ok {
				rx.ProtocolID = protoID
				rx.Subtitle = Subtitle(proto)
				rx.Sets, err = p.buildSets(ctx, req, ex, proto)
				if err != nil {
					return nil, err
				}
			}
		}
		plan.Exercises = append(plan.Exercises, rx)
	}

	return plan, nil
}

func (p *Planner) buildSets(ctx context.Context, req Request, ex models.Exercise, proto models.ProtocolConfig) ([]SetTarget, error) {
	sets := make([]SetTarget, 0, proto.SetCount())
	for n := 1; n <= proto.SetCount(); n++ {
		st := SetTarget{SetNumber: n}
		st.Reps, _ = TargetReps(proto, n)
		st.IntensityOffset, _ = IntensityAdjustment(proto, n)
		st.RestSec, _ = RestTime(proto, n)
		if rpe, ok := TargetRPE(proto, n); ok {
			st.RPE = &rpe
		}

		w, err := p.weights.TargetWeight(ctx, req.UserID, ex, req.Intensity, st.IntensityOffset, st.RPE)
		if err != nil {
			return nil, fmt.Errorf("computing target weight for %s set %d: %w", ex.ID, n, err)
		}
		if w.CalibrationNeeded {
			p.log.Debug("calibration needed", "user", req.UserID, "exercise", ex.ID)
		}
		st.Weight = w
		sets = append(sets, st)
	}
	return sets, nil
}
