package engine

import "context"

// Reward catalog: free-form, user-defined incentives. Buying one only spends
// Souls and logs history; rewards never touch vitals or inventory.

// AddReward creates a catalog entry.
func (e *Engine) AddReward(ctx context.Context, title string, cost int, notes string) (*Reward, error) {
	t, err := normalizeTitle(title)
	if err != nil {
		return nil, err
	}
	if cost < 0 {
		cost = 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	r := Reward{ID: e.newID(), Title: t, Cost: cost, Notes: notes}
	e.state.Rewards = append(e.state.Rewards, r)

	cp := r
	return &cp, e.save(ctx)
}

type UpdateRewardInput struct {
	Title *string
	Cost  *int
	Notes *string
}

// UpdateReward merges fields into a catalog entry. Returns false when absent.
func (e *Engine) UpdateReward(ctx context.Context, id string, in UpdateRewardInput) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.findReward(id)
	if r == nil {
		return false, nil
	}
	if in.Title != nil {
		if title, err := normalizeTitle(*in.Title); err == nil {
			r.Title = title
		}
	}
	if in.Cost != nil && *in.Cost >= 0 {
		r.Cost = *in.Cost
	}
	if in.Notes != nil {
		r.Notes = *in.Notes
	}
	return true, e.save(ctx)
}

// DeleteReward removes a catalog entry. Returns false when absent.
func (e *Engine) DeleteReward(ctx context.Context, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.state.Rewards {
		if e.state.Rewards[i].ID == id {
			e.state.Rewards = append(e.state.Rewards[:i], e.state.Rewards[i+1:]...)
			return true, e.save(ctx)
		}
	}
	return false, nil
}

// BuyReward spends Souls on a reward and logs it. Returns false on an unknown
// id or an unaffordable cost.
func (e *Engine) BuyReward(ctx context.Context, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	r := e.findReward(id)
	if r == nil {
		return false, nil
	}
	if !e.spendSouls(r.Cost) {
		return false, nil
	}

	e.appendHistory(HistoryEntry{
		TaskID:      r.ID,
		TaskTitle:   r.Title,
		TaskType:    "reward",
		Action:      ActionNegative,
		SoulsEarned: -r.Cost,
	})
	return true, e.save(ctx)
}

// findReward locates a reward by id. Callers must hold e.mu.
func (e *Engine) findReward(id string) *Reward {
	for i := range e.state.Rewards {
		if e.state.Rewards[i].ID == id {
			return &e.state.Rewards[i]
		}
	}
	return nil
}
