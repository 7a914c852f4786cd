package models

import "strings"

// Goal is the user's current training objective.
type Goal string

const (
	GoalStrength       Goal = "strength"
	GoalHypertrophy    Goal = "hypertrophy"
	GoalEndurance      Goal = "endurance"
	GoalFatLoss        Goal = "fat_loss"
	GoalGeneralFitness Goal = "general_fitness"
)

var canonicalGoal = map[string]Goal{
	"strength":        GoalStrength,
	"hypertrophy":     GoalHypertrophy,
	"muscle gain":     GoalHypertrophy,
	"endurance":       GoalEndurance,
	"fat_loss":        GoalFatLoss,
	"fat loss":        GoalFatLoss,
	"weight loss":     GoalFatLoss,
	"general_fitness": GoalGeneralFitness,
	"general fitness": GoalGeneralFitness,
	"general":         GoalGeneralFitness,
}

// NormalizeGoal maps a free-form goal string to its canonical value,
// case-insensitively. Unknown strings are returned as-is with
// known=false so callers can log a warning.
func NormalizeGoal(s string) (Goal, bool) {
	if g, ok := canonicalGoal[strings.ToLower(strings.TrimSpace(s))]; ok {
		return g, true
	}
	return Goal(s), false
}
