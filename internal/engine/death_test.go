package engine

import (
	"context"
	"testing"
)

func TestCriticalHabitFailInstantDeath(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	habit := addTestTask(t, eng, AddTaskInput{
		Type: TaskHabit, Title: "No doomscrolling", IsCritical: true,
	})
	eng.state.Souls = 100
	// Even an active damage-reduction buff cannot stop a critical fail.
	eng.state.ActiveBuffs.DamageReduction = true

	res, err := eng.FailTask(ctx, TaskHabit, habit.ID)
	if err != nil {
		t.Fatalf("FailTask: %v", err)
	}
	if res == nil || !res.InstantDeath || !res.Downed {
		t.Fatalf("result=%+v, want instant death", res)
	}
	if res.HPLost != 50 || res.SoulsLost != 50 {
		t.Fatalf("hpLost=%d soulsLost=%d, want 50 50", res.HPLost, res.SoulsLost)
	}
	st := eng.Snapshot()
	if st.HP != 0 || !st.IsDowned || st.DeathCount != 1 || st.HollowLevel != 1 {
		t.Fatalf("post-death state hp=%d downed=%v deaths=%d hollow=%d",
			st.HP, st.IsDowned, st.DeathCount, st.HollowLevel)
	}
}

func TestFailWithStakeBelowHP(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	todo := addTestTask(t, eng, AddTaskInput{Type: TaskTodo, Title: "File taxes"})
	eng.state.HP = 3
	eng.state.Souls = 40

	res, err := eng.FailTask(ctx, TaskTodo, todo.ID)
	if err != nil {
		t.Fatalf("FailTask: %v", err)
	}
	// Todo stake is 5; HP floors at zero and the death bundle fires once.
	if res.HPLost != 3 || !res.Downed || res.InstantDeath {
		t.Fatalf("result=%+v, want hpLost=3 downed", res)
	}
	st := eng.Snapshot()
	if st.HP != 0 || st.Souls != 20 || st.DeathCount != 1 {
		t.Fatalf("hp=%d souls=%d deaths=%d, want 0 20 1", st.HP, st.Souls, st.DeathCount)
	}
}

func TestReviveAtQuarterEffectiveMax(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	res, err := eng.Revive(ctx)
	if err != nil || res != nil {
		t.Fatalf("Revive while alive=%+v,%v, want nil,nil", res, err)
	}

	eng.state.HP = 0
	eng.state.IsDowned = true
	eng.state.HollowLevel = 1

	res, err = eng.Revive(ctx)
	if err != nil {
		t.Fatalf("Revive: %v", err)
	}
	// Hollow 1 gives 45 effective max; a quarter rounded up is 12.
	if res.HP != 12 || res.HollowLevel != 1 {
		t.Fatalf("result=%+v, want hp=12 hollow=1", res)
	}
	st := eng.Snapshot()
	if st.IsDowned || st.HP != 12 {
		t.Fatalf("downed=%v hp=%d, want false 12", st.IsDowned, st.HP)
	}
}

func TestHollowLevelCapsAtMax(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	eng.state.HollowLevel = MaxHollowLevel
	eng.state.HP = 1
	if _, err := eng.LoseHP(ctx, 1); err != nil {
		t.Fatalf("LoseHP: %v", err)
	}
	st := eng.Snapshot()
	if st.HollowLevel != MaxHollowLevel {
		t.Fatalf("hollow=%d, want capped at %d", st.HollowLevel, MaxHollowLevel)
	}
	if st.DeathCount != 1 {
		t.Fatalf("deaths=%d, want 1 (death still counts past the cap)", st.DeathCount)
	}
}

func TestDeathClearsDamageReductionOnly(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	eng.state.HP = 1
	eng.state.ActiveBuffs.RewardMultiplier = true
	// Buff halves 4 to 2, still enough to drop 1 HP to zero.
	eng.state.ActiveBuffs.DamageReduction = true
	if _, err := eng.LoseHP(ctx, 4); err != nil {
		t.Fatalf("LoseHP: %v", err)
	}
	st := eng.Snapshot()
	if !st.IsDowned {
		t.Fatal("expected downed")
	}
	if st.ActiveBuffs.DamageReduction {
		t.Fatal("damage reduction must not survive death")
	}
	if !st.ActiveBuffs.RewardMultiplier {
		t.Fatal("reward multiplier should survive death")
	}
}
