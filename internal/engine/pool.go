package engine

import "github.com/claude/liftplan/internal/models"

// PoolBuilder assembles the candidate exercise pool for a selection
// request: library-first, expanding to the whole catalog at or below
// the user's experience level when the library cannot cover the
// requested session shape.
type PoolBuilder struct {
	catalog ExerciseSource
}

// NewPoolBuilder creates a PoolBuilder over the given catalog snapshot.
func NewPoolBuilder(catalog ExerciseSource) *PoolBuilder {
	return &PoolBuilder{catalog: catalog}
}

// BuildPool returns the candidate pool and whether fallback expansion
// was used.
//
// The library is probed with the equipment and muscle filters applied,
// but when it passes, the unfiltered library-resolved list is returned:
// the selector re-applies the same filters uniformly, so the probe only
// decides which pool to hand over. Unknown library ids are skipped.
func (b *PoolBuilder) BuildPool(c Criteria) (pool []models.Exercise, usedFallback bool) {
	library := b.resolveLibrary(c)
	if len(library) == 0 {
		return b.fallbackPool(c), true
	}

	compounds, isolations := 0, 0
	for _, ex := range library {
		if !c.allowsEquipment(ex.Equipment) || !ex.Targets(c.MuscleTargets) {
			continue
		}
		switch ex.Type {
		case models.TypeCompound:
			compounds++
		case models.TypeIsolation:
			isolations++
		}
	}

	if compounds >= c.CompoundCount && isolations >= c.IsolationCount {
		return library, false
	}
	return b.fallbackPool(c), true
}

// resolveLibrary maps the library ids minus exclusions to catalog
// records, preserving library order.
func (b *PoolBuilder) resolveLibrary(c Criteria) []models.Exercise {
	var out []models.Exercise
	for _, id := range c.LibraryIDs {
		if c.excludes(id) {
			continue
		}
		if ex, ok := b.catalog.Exercise(id); ok {
			out = append(out, ex)
		}
	}
	return out
}

// fallbackPool is every catalog exercise at or below the user's
// experience level, minus exclusions. No equipment or muscle filtering
// happens here; the selector applies those uniformly.
func (b *PoolBuilder) fallbackPool(c Criteria) []models.Exercise {
	var out []models.Exercise
	for _, ex := range b.catalog.Exercises() {
		if c.excludes(ex.ID) {
			continue
		}
		if !ex.ExperienceLevel.AtOrBelow(c.ExperienceLevel) {
			continue
		}
		out = append(out, ex)
	}
	return out
}
