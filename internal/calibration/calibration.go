// Package calibration resolves concrete working weights from per-user
// strength data: a measured or estimated 1RM for compound lifts, and a
// working-weight range for isolation work.
package calibration

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/claude/liftplan/internal/engine"
	"github.com/claude/liftplan/internal/models"
)

// Plate-math rounding increments.
const (
	compoundIncrementKg  = 2.5
	isolationIncrementKg = 0.5
)

// Record is the calibration data for one (user, exercise) pair.
// OneRM covers compound lifts; RangeLowKg/RangeHighKg cover isolation
// work. Either side may be absent (zero).
type Record struct {
	UserID     string  `json:"user_id"`
	ExerciseID string  `json:"exercise_id"`
	OneRMKg    float64 `json:"one_rm_kg,omitempty"`
	// Estimated marks a 1RM derived from related exercises rather than
	// a tested single.
	Estimated   bool      `json:"estimated,omitempty"`
	RangeLowKg  float64   `json:"range_low_kg,omitempty"`
	RangeHighKg float64   `json:"range_high_kg,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Store reads calibration records. found=false means no data exists for
// the pair; that is a normal state, not an error.
type Store interface {
	CalibrationRecord(ctx context.Context, userID, exerciseID string) (Record, bool, error)
}

// Calculator implements engine.WeightCalculator over a Store.
type Calculator struct {
	store Store
	log   *slog.Logger
}

// NewCalculator creates a Calculator.
func NewCalculator(store Store, log *slog.Logger) *Calculator {
	return &Calculator{store: store, log: log}
}

// TargetWeight resolves the load for one set.
//
// Compound: 1RM × (baseIntensity + offset), rounded to 2.5 kg, with the
// estimated flag carried through. Isolation: position within the stored
// working range chosen by RPE (6.5 → low, 9.5 → high, midpoint without
// RPE), rounded to 0.5 kg. Types without load prescriptions (warmup,
// cooldown, cardio) get a zero target. Missing data yields a
// calibration-needed indicator, never an error.
func (c *Calculator) TargetWeight(ctx context.Context, userID string, ex models.Exercise, baseIntensity, offset float64, rpe *float64) (engine.WeightTarget, error) {
	switch ex.Type {
	case models.TypeCompound, models.TypeIsolation:
	default:
		return engine.WeightTarget{}, nil
	}

	rec, found, err := c.store.CalibrationRecord(ctx, userID, ex.ID)
	if err != nil {
		return engine.WeightTarget{}, err
	}

	if ex.Type == models.TypeCompound {
		if !found || rec.OneRMKg <= 0 {
			return engine.WeightTarget{CalibrationNeeded: true}, nil
		}
		raw := rec.OneRMKg * (baseIntensity + offset)
		if raw < 0 {
			raw = 0
		}
		return engine.WeightTarget{
			Kg:        roundToIncrement(raw, compoundIncrementKg),
			Estimated: rec.Estimated,
		}, nil
	}

	if !found || rec.RangeHighKg <= 0 {
		return engine.WeightTarget{CalibrationNeeded: true}, nil
	}
	pos := 0.5
	if rpe != nil {
		pos = (*rpe - 6.5) / 3.0
		pos = math.Max(0, math.Min(1, pos))
	}
	raw := rec.RangeLowKg + (rec.RangeHighKg-rec.RangeLowKg)*pos
	return engine.WeightTarget{
		Kg:        roundToIncrement(raw, isolationIncrementKg),
		Estimated: rec.Estimated,
	}, nil
}

// roundToIncrement rounds to the nearest loading increment (e.g. 2.5 kg
// plate pairs).
func roundToIncrement(raw, increment float64) float64 {
	return math.Round(raw/increment) * increment
}
