package engine

import "math"

// Attribute progression: per-category XP counters feeding the 100-XP-per-level
// attribute curve, plus the consecutive-same-category streak. These counters
// are separate from the XP reward credited to the player's overall level.

// incrementCategoryCounter bumps the category bucket by one completion.
// Callers must hold e.mu.
func (e *Engine) incrementCategoryCounter(c Category) {
	e.state.CategoryXP[c]++
}

// updateCategoryStreak extends the streak on a repeat category, or zeroes all
// streaks and starts a new one on a category change. Callers must hold e.mu.
func (e *Engine) updateCategoryStreak(c Category) {
	if e.state.LastCategory != nil && *e.state.LastCategory == c {
		e.state.CategoryStreak[c]++
		return
	}
	for cat := range e.state.CategoryStreak {
		e.state.CategoryStreak[cat] = 0
	}
	e.state.CategoryStreak[c] = 1
	last := c
	e.state.LastCategory = &last
}

// deductCategoryXP regresses a category bucket after a failure, never below
// zero. Callers must hold e.mu.
func (e *Engine) deductCategoryXP(c Category, baseXP int) {
	loss := int(math.Floor(float64(baseXP) * FailCategoryXPFactor))
	e.state.CategoryXP[c] -= loss
	if e.state.CategoryXP[c] < 0 {
		e.state.CategoryXP[c] = 0
	}
}

// attributeLevelFor reads the current attribute level of a category.
// Callers must hold e.mu.
func (e *Engine) attributeLevelFor(c Category) int {
	return AttributeLevel(e.state.CategoryXP[c])
}
