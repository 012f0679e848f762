package engine

import (
	"context"
	"math"
)

// Death/recovery state machine. The only way into the downed state is HP
// reaching zero inside loseHP; the only way out is an explicit Revive.

// down applies the full death bundle. Callers must hold e.mu and have just
// floored HP at zero.
func (e *Engine) down() {
	soulsLost := int(math.Floor(float64(e.state.Souls) * DeathSoulsFactor))
	e.state.Souls -= soulsLost
	e.state.SoulsLostTotal += soulsLost
	e.state.DeathCount++
	if e.state.HollowLevel < MaxHollowLevel {
		e.state.HollowLevel++
	}
	e.state.ActiveBuffs.DamageReduction = false
	e.state.IsDowned = true
}

// ReviveResult describes a completed recovery run.
type ReviveResult struct {
	HP          int
	HollowLevel int
}

// Revive brings a downed player back at a quarter (rounded up) of the
// hollow-adjusted max HP. Returns nil when the player is not downed.
func (e *Engine) Revive(ctx context.Context) (*ReviveResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.state.IsDowned {
		return nil, nil
	}
	max := e.effectiveMaxHP()
	e.state.HP = int(math.Ceil(float64(max) * ReviveHPFactor))
	e.state.IsDowned = false

	res := &ReviveResult{HP: e.state.HP, HollowLevel: e.state.HollowLevel}
	return res, e.save(ctx)
}
