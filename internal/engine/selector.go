package engine

import (
	"sort"

	"github.com/claude/liftplan/internal/models"
)

// Selector filters, scores, and greedily picks exercises from a
// candidate pool under diversity constraints.
type Selector struct{}

// NewSelector creates a Selector.
func NewSelector() *Selector {
	return &Selector{}
}

type candidate struct {
	ex    models.Exercise
	score float64
}

// Select runs the full selection pipeline: equipment filter, muscle
// filter, compound/isolation partition, pool validation, then scored
// greedy selection. Compounds come first in the result.
func (s *Selector) Select(pool []models.Exercise, c Criteria) (*Selection, error) {
	var compoundPool, isolationPool []models.Exercise
	for _, ex := range pool {
		if !c.allowsEquipment(ex.Equipment) {
			continue
		}
		if !ex.Targets(c.MuscleTargets) {
			continue
		}
		switch ex.Type {
		case models.TypeCompound:
			compoundPool = append(compoundPool, ex)
		case models.TypeIsolation:
			isolationPool = append(isolationPool, ex)
		}
	}

	if len(compoundPool) < c.CompoundCount {
		return nil, &InsufficientCompoundError{
			Needed:        c.CompoundCount,
			Available:     len(compoundPool),
			MuscleTargets: c.MuscleTargets,
			Equipment:     c.Equipment,
		}
	}
	if len(isolationPool) < c.IsolationCount {
		return nil, &InsufficientIsolationError{
			Needed:        c.IsolationCount,
			Available:     len(isolationPool),
			MuscleTargets: c.MuscleTargets,
			Equipment:     c.Equipment,
		}
	}

	compounds := s.selectCompounds(compoundPool, c)
	isolations := s.selectIsolations(isolationPool, compounds, c)

	sel := &Selection{}
	for _, ex := range append(compounds, isolations...) {
		sel.ExerciseIDs = append(sel.ExerciseIDs, ex.ID)
		if c.inLibrary(ex.ID) {
			sel.FromLibrary = append(sel.FromLibrary, ex.ID)
		} else {
			sel.Introduced = append(sel.Introduced, ex.ID)
		}
	}
	return sel, nil
}

// rank sorts candidates by score descending. Equal scores fall back to
// lexical order on exercise id, so selection is deterministic for a
// given pool.
func rank(cands []candidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].score != cands[j].score {
			return cands[i].score > cands[j].score
		}
		return cands[i].ex.ID < cands[j].ex.ID
	})
}

// selectCompounds walks the ranked list twice. The first pass treats
// movement-pattern repetition as a soft constraint; the second pass
// relaxes it to fill any remaining slots. Base-exercise uniqueness is
// enforced in both passes.
func (s *Selector) selectCompounds(pool []models.Exercise, c Criteria) []models.Exercise {
	cands := make([]candidate, 0, len(pool))
	for _, ex := range pool {
		cands = append(cands, candidate{ex: ex, score: compoundScore(compoundBoosts{
			bodyweight: c.PreferBodyweightCompounds && ex.Equipment == models.EquipmentBodyweight,
			library:    c.inLibrary(ex.ID),
			emphasis:   ex.Targets(c.EmphasizedMuscles),
		})})
	}
	rank(cands)

	var selected []models.Exercise
	usedID := make(map[string]bool)
	usedBase := make(map[string]bool)
	usedPattern := make(map[models.MovementPattern]bool)

	// Constrained pass: prefer one exercise per movement pattern.
	for _, cand := range cands {
		if len(selected) >= c.CompoundCount {
			break
		}
		ex := cand.ex
		if ex.BaseExercise != "" && usedBase[ex.BaseExercise] {
			continue
		}
		if ex.MovementPattern != "" && usedPattern[ex.MovementPattern] {
			continue
		}
		selected = append(selected, ex)
		usedID[ex.ID] = true
		if ex.BaseExercise != "" {
			usedBase[ex.BaseExercise] = true
		}
		if ex.MovementPattern != "" {
			usedPattern[ex.MovementPattern] = true
		}
	}

	// Fill pass: ignore movement patterns, keep base uniqueness.
	for _, cand := range cands {
		if len(selected) >= c.CompoundCount {
			break
		}
		ex := cand.ex
		if usedID[ex.ID] {
			continue
		}
		if ex.BaseExercise != "" && usedBase[ex.BaseExercise] {
			continue
		}
		selected = append(selected, ex)
		usedID[ex.ID] = true
		if ex.BaseExercise != "" {
			usedBase[ex.BaseExercise] = true
		}
	}

	return selected
}

// selectIsolations scores with the muscle-balance boost against the
// already-selected compounds and greedily picks, enforcing only
// base-exercise uniqueness (which also spans the compounds, so the
// session never contains two variants of one movement).
func (s *Selector) selectIsolations(pool []models.Exercise, compounds []models.Exercise, c Criteria) []models.Exercise {
	covered := make(map[models.MuscleGroup]bool)
	for _, ex := range compounds {
		for _, m := range ex.MuscleGroups {
			covered[m] = true
		}
	}

	cands := make([]candidate, 0, len(pool))
	for _, ex := range pool {
		cands = append(cands, candidate{ex: ex, score: isolationScore(isolationBoosts{
			library:  c.inLibrary(ex.ID),
			emphasis: ex.Targets(c.EmphasizedMuscles),
			balance:  coversUncoveredTarget(ex, c.MuscleTargets, covered),
		})})
	}
	rank(cands)

	usedID := make(map[string]bool)
	usedBase := make(map[string]bool)
	for _, ex := range compounds {
		usedID[ex.ID] = true
		if ex.BaseExercise != "" {
			usedBase[ex.BaseExercise] = true
		}
	}

	var selected []models.Exercise
	for _, cand := range cands {
		if len(selected) >= c.IsolationCount {
			break
		}
		ex := cand.ex
		if usedID[ex.ID] {
			continue
		}
		if ex.BaseExercise != "" && usedBase[ex.BaseExercise] {
			continue
		}
		selected = append(selected, ex)
		usedID[ex.ID] = true
		if ex.BaseExercise != "" {
			usedBase[ex.BaseExercise] = true
		}
	}
	return selected
}

// coversUncoveredTarget reports whether ex hits a target muscle that no
// selected compound covers yet.
func coversUncoveredTarget(ex models.Exercise, targets []models.MuscleGroup, covered map[models.MuscleGroup]bool) bool {
	for _, t := range targets {
		if covered[t] {
			continue
		}
		for _, m := range ex.MuscleGroups {
			if m == t {
				return true
			}
		}
	}
	return false
}
