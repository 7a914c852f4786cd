package engine

// Scoring boosts are multiplicative and applied in a fixed order. The
// multipliers are part of the engine's observable behavior; changing
// them changes which exercises users see.
const (
	bodyweightBoost = 2.0
	libraryBoost    = 1.2
	emphasisBoost   = 1.5
	balanceBoost    = 1.3
)

type compoundBoosts struct {
	bodyweight bool
	library    bool
	emphasis   bool
}

func compoundScore(b compoundBoosts) float64 {
	score := 1.0
	if b.bodyweight {
		score *= bodyweightBoost
	}
	if b.library {
		score *= libraryBoost
	}
	if b.emphasis {
		score *= emphasisBoost
	}
	return score
}

type isolationBoosts struct {
	library  bool
	emphasis bool
	// balance: the candidate covers at least one target muscle not
	// already covered by the selected compounds.
	balance bool
}

func isolationScore(b isolationBoosts) float64 {
	score := 1.0
	if b.library {
		score *= libraryBoost
	}
	if b.emphasis {
		score *= emphasisBoost
	}
	if b.balance {
		score *= balanceBoost
	}
	return score
}
