package engine

import (
	"context"

	"github.com/claude/liftplan/internal/models"
)

// Per-set queries are 1-indexed as seen by callers and backed by
// 0-indexed slices. A set number outside the backing sequence returns
// ok=false rather than an error: a protocol that prescribes rest for
// only the first two of three sets is valid data, not a fault.

// TargetReps returns the rep target for the given set number.
func TargetReps(p models.ProtocolConfig, setNumber int) (int, bool) {
	if setNumber < 1 || setNumber > len(p.Reps) {
		return 0, false
	}
	return p.Reps[setNumber-1], true
}

// IntensityAdjustment returns the per-set intensity offset for the
// given set number.
func IntensityAdjustment(p models.ProtocolConfig, setNumber int) (float64, bool) {
	if setNumber < 1 || setNumber > len(p.IntensityAdjustments) {
		return 0, false
	}
	return p.IntensityAdjustments[setNumber-1], true
}

// TargetRPE returns the RPE target for the given set number, if the
// protocol prescribes RPE at all.
func TargetRPE(p models.ProtocolConfig, setNumber int) (float64, bool) {
	if setNumber < 1 || setNumber > len(p.RPE) {
		return 0, false
	}
	return p.RPE[setNumber-1], true
}

// RestTime returns the rest in seconds after the given set number.
func RestTime(p models.ProtocolConfig, setNumber int) (int, bool) {
	if setNumber < 1 || setNumber > len(p.RestBetweenSets) {
		return 0, false
	}
	return p.RestBetweenSets[setNumber-1], true
}

// WeightTarget is the concrete load for one set. When no calibration
// data exists for the user and exercise, CalibrationNeeded is set and
// Kg is zero; this is an explicit "not available" signal, never an
// error. Estimated marks weights derived from an estimated rather than
// measured 1RM.
type WeightTarget struct {
	Kg                float64 `json:"kg"`
	Estimated         bool    `json:"estimated,omitempty"`
	CalibrationNeeded bool    `json:"calibration_needed,omitempty"`
}

// WeightCalculator resolves a concrete working weight for one set from
// external calibration data. Compound exercises derive load from 1RM ×
// (base intensity + offset); isolation exercises use a working-weight
// range heuristic. Errors are reserved for store failures.
type WeightCalculator interface {
	TargetWeight(ctx context.Context, userID string, ex models.Exercise, baseIntensity, offset float64, rpe *float64) (WeightTarget, error)
}
