package engine

import (
	"context"
	"math"
)

// Vitals operations. Exported methods take the engine lock and persist;
// the unexported forms mutate in place and are composed by task resolution.

// GainXP credits XP, halved (floored) while downed, and applies level-ups.
// It returns the number of levels gained.
func (e *Engine) GainXP(ctx context.Context, amount int) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	levels := e.gainXP(amount)
	return levels, e.save(ctx)
}

func (e *Engine) gainXP(amount int) int {
	if amount <= 0 {
		return 0
	}
	if e.state.IsDowned {
		amount = int(math.Floor(float64(amount) * DownedXPFactor))
	}

	e.state.XP += amount
	levels := 0
	for e.state.XP >= e.state.XPToLevel {
		e.state.XP -= e.state.XPToLevel
		e.state.Level++
		e.state.XPToLevel = XPToLevelAt(e.state.Level)
		levels++
	}
	return levels
}

// GainSouls credits Souls. An active reward-multiplier buff doubles the amount
// and is consumed. Returns the amount actually credited.
func (e *Engine) GainSouls(ctx context.Context, amount int) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	credited := e.gainSouls(amount)
	return credited, e.save(ctx)
}

func (e *Engine) gainSouls(amount int) int {
	if amount <= 0 {
		return 0
	}
	if e.state.ActiveBuffs.RewardMultiplier {
		amount *= 2
		e.state.ActiveBuffs.RewardMultiplier = false
	}
	e.state.Souls += amount
	return amount
}

// SpendSouls debits Souls. Returns false and leaves state untouched when the
// balance is insufficient.
func (e *Engine) SpendSouls(ctx context.Context, amount int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.spendSouls(amount) {
		return false, nil
	}
	return true, e.save(ctx)
}

func (e *Engine) spendSouls(amount int) bool {
	if amount < 0 || e.state.Souls < amount {
		return false
	}
	e.state.Souls -= amount
	return true
}

// LoseHP subtracts HP, floored at zero. An active damage-reduction buff halves
// the amount (rounded up) and is consumed. Hitting exactly zero while alive
// triggers the downed transition atomically with the HP change. Returns true
// when the player went down.
func (e *Engine) LoseHP(ctx context.Context, amount int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	downed := e.loseHP(amount)
	return downed, e.save(ctx)
}

func (e *Engine) loseHP(amount int) bool {
	if amount <= 0 {
		return false
	}
	if e.state.ActiveBuffs.DamageReduction {
		amount = (amount + 1) / 2
		e.state.ActiveBuffs.DamageReduction = false
	}

	e.state.HP -= amount
	if e.state.HP < 0 {
		e.state.HP = 0
	}
	if e.state.HP == 0 && !e.state.IsDowned {
		e.down()
		return true
	}
	return false
}

// StakeHP commits HP ahead of an attempt. Precondition-guarded: returns false
// without mutation when HP is insufficient or the player is downed.
func (e *Engine) StakeHP(ctx context.Context, amount int) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if amount < 0 || e.state.IsDowned || e.state.HP < amount {
		return false, nil
	}
	e.state.HP -= amount
	return true, e.save(ctx)
}

// RecoverHP heals, capped at the hollow-adjusted effective max HP.
// Returns the HP actually restored.
func (e *Engine) RecoverHP(ctx context.Context, amount int) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	healed := e.recoverHP(amount)
	return healed, e.save(ctx)
}

func (e *Engine) recoverHP(amount int) int {
	if amount <= 0 {
		return 0
	}
	max := e.effectiveMaxHP()
	before := e.state.HP
	e.state.HP += amount
	if e.state.HP > max {
		e.state.HP = max
	}
	return e.state.HP - before
}

func (e *Engine) effectiveMaxHP() int {
	return EffectiveMaxHP(e.state.BaseMaxHP, e.state.HollowLevel)
}
