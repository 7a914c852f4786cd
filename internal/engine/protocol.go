package engine

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/claude/liftplan/internal/models"
)

// incompatibleFamilies maps equipment to protocol family keywords that
// cannot be executed on it. Matching is a case-insensitive substring
// check against both the protocol family and its id. All equipment not
// listed here is fully compatible.
var incompatibleFamilies = map[models.Equipment][]string{
	models.EquipmentResistanceBand: {"drop_set", "heavy_negative", "cluster", "wave_loading", "pyramid"},
	models.EquipmentBodyweight:     {"wave_loading", "pyramid", "drop_set"},
}

// Matcher selects a protocol for a chosen exercise from the user's
// enabled protocol library. A miss is a soft condition: the exercise
// is prescribed without a protocol, never a failed generation.
type Matcher struct {
	protocols ProtocolSource
	log       *slog.Logger
}

// NewMatcher creates a Matcher over the given protocol catalog.
func NewMatcher(protocols ProtocolSource, log *slog.Logger) *Matcher {
	return &Matcher{protocols: protocols, log: log}
}

// Match returns the best protocol id for the exercise type, session
// intensity (fraction of 1RM in [0,1]), goal, and equipment, or
// ok=false when no enabled library entry qualifies.
func (m *Matcher) Match(lib models.UserLibrary, exType models.ExerciseType, intensity float64, goal models.Goal, eq models.Equipment) (string, bool) {
	type scoredEntry struct {
		id    string
		score float64
	}
	var eligible []scoredEntry

	for _, entry := range lib.Protocols {
		if !entry.Enabled {
			continue
		}
		if !entry.AppliesTo(exType) {
			continue
		}
		if !m.equipmentCompatible(entry.ProtocolID, eq) {
			continue
		}
		if intensity < entry.IntensityLow || intensity > entry.IntensityHigh {
			continue
		}
		if !entry.AllowsGoal(goal) {
			continue
		}

		score := entry.SelectionWeight
		if containsEquipment(entry.PreferredEquipment, eq) {
			score *= 2.0
		}
		eligible = append(eligible, scoredEntry{id: entry.ProtocolID, score: score})
	}

	if len(eligible) == 0 {
		m.log.Debug("no protocol matched",
			"exercise_type", exType, "intensity", intensity, "goal", goal, "equipment", eq)
		return "", false
	}

	sort.Slice(eligible, func(i, j int) bool {
		if eligible[i].score != eligible[j].score {
			return eligible[i].score > eligible[j].score
		}
		return eligible[i].id < eligible[j].id
	})
	return eligible[0].id, true
}

// equipmentCompatible checks the protocol's family and id against the
// incompatibility table for the given equipment.
func (m *Matcher) equipmentCompatible(protocolID string, eq models.Equipment) bool {
	banned, ok := incompatibleFamilies[eq]
	if !ok {
		return true
	}

	haystack := strings.ToLower(protocolID)
	if p, ok := m.protocols.Protocol(protocolID); ok && p.Family != "" {
		haystack += " " + strings.ToLower(p.Family)
	}

	for _, family := range banned {
		if strings.Contains(haystack, family) {
			return false
		}
	}
	return true
}

func containsEquipment(list []models.Equipment, eq models.Equipment) bool {
	for _, e := range list {
		if e == eq {
			return true
		}
	}
	return false
}
