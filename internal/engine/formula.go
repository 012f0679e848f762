package engine

import "math"

// Pure reward formulas. No state lives here; callers pass the attribute level
// and streak count they read off the engine state.
//
// Reward model: Souls scale with a 5%-per-attribute-level bonus, XP with a
// flat (1 + attribute level) multiplier, and both take the same streak-based
// diminishing returns once three or more same-category tasks are completed in
// a row. All results are floored and never negative.

const (
	// AttributeBonusRate is the per-attribute-level Souls bonus (5% per level).
	AttributeBonusRate = 0.05

	// StreakPenaltyThreshold is the streak length at which diminishing
	// returns kick in.
	StreakPenaltyThreshold = 3

	// StreakPenaltyStep is the reduction per streak step past the threshold.
	StreakPenaltyStep = 0.15

	// StreakPenaltyFloor caps how far diminishing returns can reduce rewards.
	StreakPenaltyFloor = 0.5
)

// AttributeLevel derives an attribute level from accumulated category XP
// (100 XP per level).
func AttributeLevel(categoryXP int) int {
	if categoryXP <= 0 {
		return 0
	}
	return categoryXP / XPPerAttributeLevel
}

// AttributeBonus is the multiplicative Souls bonus for an attribute level.
func AttributeBonus(level int) float64 {
	if level < 0 {
		level = 0
	}
	return 1 + float64(level)*AttributeBonusRate
}

// XPMultiplier is the flat XP multiplier for an attribute level:
// level 0 = 1x, level 1 = 2x, and so on.
func XPMultiplier(level int) int {
	if level < 0 {
		level = 0
	}
	return 1 + level
}

// StreakPenalty returns the diminishing-returns factor for a run of
// consecutive same-category completions.
func StreakPenalty(streak int) float64 {
	if streak < StreakPenaltyThreshold {
		return 1
	}
	p := 1 - float64(streak-StreakPenaltyThreshold+1)*StreakPenaltyStep
	return math.Max(StreakPenaltyFloor, p)
}

// SoulsReward computes the Souls earned for completing a task.
func SoulsReward(baseSouls, attributeLevel, streak int) int {
	if baseSouls <= 0 {
		return 0
	}
	r := float64(baseSouls) * AttributeBonus(attributeLevel) * StreakPenalty(streak)
	return int(math.Floor(r))
}

// XPReward computes the player XP earned for completing a task.
func XPReward(baseXP, attributeLevel, streak int) int {
	if baseXP <= 0 {
		return 0
	}
	r := float64(baseXP*XPMultiplier(attributeLevel)) * StreakPenalty(streak)
	return int(math.Floor(r))
}

// XPToLevelAt returns the XP needed to clear the given level:
// floor(100 * 1.5^(level-1)).
func XPToLevelAt(level int) int {
	if level < 1 {
		level = 1
	}
	return int(math.Floor(XPLevelBase * math.Pow(XPLevelGrowth, float64(level-1))))
}

// EffectiveMaxHP applies the hollow-adjusted cap to a base max HP:
// floor(baseMaxHp * max(minPercent, 1 - hollow*reduction)).
// Integer percent math keeps hollow level 3 at exactly 70% instead of the
// 0.699999... a float product would give.
func EffectiveMaxHP(baseMaxHP, hollowLevel int) int {
	if hollowLevel < 0 {
		hollowLevel = 0
	}
	if hollowLevel > MaxHollowLevel {
		hollowLevel = MaxHollowLevel
	}
	pct := 100 - hollowLevel*int(HPReductionPerHollow*100)
	if floor := int(MinHPPercent * 100); pct < floor {
		pct = floor
	}
	return baseMaxHP * pct / 100
}
