package spacedrep

// Tier is a coarse human-readable mastery label derived from strength.
type Tier string

const (
	TierNew        Tier = "new"
	TierLearning   Tier = "learning"
	TierPracticing Tier = "practicing"
	TierFamiliar   Tier = "familiar"
	TierStrong     Tier = "strong"
	TierMastered   Tier = "mastered"
)

// tierByStrength maps each strength value to its tier. One entry per
// strength, so TierOf stays in lockstep with IntervalTable.
var tierByStrength = [StrengthMax + 1]Tier{
	TierNew,
	TierLearning,
	TierPracticing,
	TierFamiliar,
	TierStrong,
	TierMastered,
}

// TierOf returns the mastery tier for a strength value. It is monotonic:
// a higher strength never maps to a lower tier.
//
// Panics if strength is outside [0, StrengthMax].
func TierOf(strength int) Tier {
	mustValidStrength(strength)
	return tierByStrength[strength]
}
