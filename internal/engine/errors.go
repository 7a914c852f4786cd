package engine

import (
	"fmt"

	"github.com/claude/liftplan/internal/models"
)

// InsufficientCompoundError is returned when the filtered pool cannot
// supply the required number of compound exercises. It carries enough
// context for the caller to produce actionable guidance; resubmitting
// identical input cannot succeed.
type InsufficientCompoundError struct {
	Needed        int
	Available     int
	MuscleTargets []models.MuscleGroup
	Equipment     []models.Equipment
}

func (e *InsufficientCompoundError) Error() string {
	return fmt.Sprintf("insufficient compound exercises: need %d, have %d for muscles %v with equipment %v",
		e.Needed, e.Available, e.MuscleTargets, e.Equipment)
}

// InsufficientIsolationError is the isolation-exercise counterpart of
// InsufficientCompoundError.
type InsufficientIsolationError struct {
	Needed        int
	Available     int
	MuscleTargets []models.MuscleGroup
	Equipment     []models.Equipment
}

func (e *InsufficientIsolationError) Error() string {
	return fmt.Sprintf("insufficient isolation exercises: need %d, have %d for muscles %v with equipment %v",
		e.Needed, e.Available, e.MuscleTargets, e.Equipment)
}
