package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/claude/liftplan/internal/models"
)

// DefaultTempo is the controlled baseline tempo. Protocols using it
// don't call it out in the subtitle.
const DefaultTempo = "2-0-2"

// specialFamilies lists protocol families whose set structure cannot be
// summarized as sets×reps; they display only their variant name.
var specialFamilies = []string{
	"calibration",
	"myo_rest_pause",
	"wave",
	"ratchet",
	"pyramid",
}

// Subtitle renders the one-line set-structure summary shown under an
// exercise. Uniform-rep protocols read like "3×8 · Tempo 3-1-3 · RPE 8";
// everything else falls back to the variant name.
func Subtitle(p models.ProtocolConfig) string {
	if isSpecialProtocol(p) {
		return p.VariantName
	}

	if !uniformReps(p.Reps) {
		return p.VariantName
	}

	parts := []string{fmt.Sprintf("%d×%d", len(p.Reps), p.Reps[0])}
	if p.Tempo != "" && p.Tempo != DefaultTempo {
		parts = append(parts, "Tempo "+p.Tempo)
	}
	if mean, ok := meanRPE(p.RPE); ok {
		parts = append(parts, "RPE "+strconv.FormatFloat(mean, 'f', -1, 64))
	}
	return strings.Join(parts, " · ")
}

func isSpecialProtocol(p models.ProtocolConfig) bool {
	haystack := strings.ToLower(p.ID + " " + p.Family)
	for _, family := range specialFamilies {
		if strings.Contains(haystack, family) {
			return true
		}
	}
	return false
}

// uniformReps reports whether every set prescribes the same rep count.
// An empty rep sequence is not uniform; it has no sets to summarize.
func uniformReps(reps []int) bool {
	if len(reps) == 0 {
		return false
	}
	for _, r := range reps[1:] {
		if r != reps[0] {
			return false
		}
	}
	return true
}

// meanRPE averages the prescribed RPE across sets, rounded to the
// nearest 0.5.
func meanRPE(rpe []float64) (float64, bool) {
	if len(rpe) == 0 {
		return 0, false
	}
	sum := 0.0
	for _, r := range rpe {
		sum += r
	}
	mean := sum / float64(len(rpe))
	return float64(int(mean*2+0.5)) / 2, true
}
