package engine

import "context"

// Inventory, flask and buff operations. All guards are precondition checks
// that return false and leave state untouched; nothing here errors except
// persistence.

// BuyItem purchases a shop consumable with Souls. Estus flasks fill a flask
// charge (capped at MaxFlasks); every other item lands in the inventory map,
// capped at the item's MaxQuantity.
func (e *Engine) BuyItem(ctx context.Context, id ShopItemID) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := ShopItems[id]
	if !ok {
		return false, nil
	}

	if id == ItemEstusFlask {
		if e.state.Flasks >= e.state.MaxFlasks {
			return false, nil
		}
		if !e.spendSouls(item.Cost) {
			return false, nil
		}
		e.state.Flasks++
		return true, e.save(ctx)
	}

	if e.state.Inventory[id] >= item.MaxQuantity {
		return false, nil
	}
	if !e.spendSouls(item.Cost) {
		return false, nil
	}
	e.state.Inventory[id]++
	return true, e.save(ctx)
}

// UseItem consumes one owned item and applies its effect.
// Item-specific preconditions: the effigy needs a hollow level to cure, buff
// items refuse to stack on an already active buff.
func (e *Engine) UseItem(ctx context.Context, id ShopItemID) (bool, error) {
	if id == ItemEstusFlask {
		return e.UseFlask(ctx)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Inventory[id] <= 0 {
		return false, nil
	}

	switch id {
	case ItemHumanEffigy:
		if e.state.HollowLevel <= 0 {
			return false, nil
		}
		e.state.HollowLevel--
	case ItemRingOfProtection:
		if e.state.ActiveBuffs.DamageReduction {
			return false, nil
		}
		e.state.ActiveBuffs.DamageReduction = true
	case ItemGoldenPineResin:
		if e.state.ActiveBuffs.RewardMultiplier {
			return false, nil
		}
		e.state.ActiveBuffs.RewardMultiplier = true
	default:
		return false, nil
	}

	e.state.Inventory[id]--
	return true, e.save(ctx)
}

// UseFlask drinks a flask charge, healing up to the effective max HP.
// Refused while downed or with no charges left.
func (e *Engine) UseFlask(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.Flasks <= 0 || e.state.IsDowned {
		return false, nil
	}
	e.state.Flasks--
	e.recoverHP(FlaskHealAmount)
	return true, e.save(ctx)
}

// BuyEquipment purchases a permanent equipment piece. No re-sale.
func (e *Engine) BuyEquipment(ctx context.Context, id EquipmentID) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	item, ok := EquipmentItems[id]
	if !ok {
		return false, nil
	}
	eq := e.state.Equipment[id]
	if eq == nil {
		eq = &EquipmentState{}
		e.state.Equipment[id] = eq
	}
	if eq.Owned {
		return false, nil
	}
	if !e.spendSouls(item.Cost) {
		return false, nil
	}
	eq.Owned = true
	return true, e.save(ctx)
}

// EquipItem toggles the equipped flag of an owned piece. Free toggle, no
// stacking limit.
func (e *Engine) EquipItem(ctx context.Context, id EquipmentID) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	eq := e.state.Equipment[id]
	if eq == nil || !eq.Owned {
		return false, nil
	}
	eq.Equipped = !eq.Equipped
	return true, e.save(ctx)
}
