package engine

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"bonfire/internal/storage"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// newTestEngine loads an engine over a real sqlite snapshot store in a temp
// dir, with deterministic ids and a pinned clock.
func newTestEngine(t *testing.T) (*Engine, *storage.SnapshotStore) {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	db, err := storage.Open(ctx, filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	store := storage.NewSnapshotStore(db)
	n := 0
	eng, err := Load(ctx, store,
		WithClock(fixedClock{t: testTime}),
		WithIDSource(func() string { n++; return fmt.Sprintf("id-%d", n) }),
	)
	if err != nil {
		t.Fatalf("load engine: %v", err)
	}
	return eng, store
}

func addTestTask(t *testing.T, eng *Engine, in AddTaskInput) *Task {
	t.Helper()
	task, err := eng.AddTask(context.Background(), in)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	return task
}

func TestFreshSaveDefaults(t *testing.T) {
	eng, _ := newTestEngine(t)

	st := eng.Snapshot()
	if st.HP != StartingHP || st.BaseMaxHP != StartingHP {
		t.Fatalf("hp=%d/%d, want %d/%d", st.HP, st.BaseMaxHP, StartingHP, StartingHP)
	}
	if st.Level != 1 || st.XP != 0 || st.XPToLevel != 100 {
		t.Fatalf("level=%d xp=%d/%d, want 1 0/100", st.Level, st.XP, st.XPToLevel)
	}
	if st.Souls != 0 || st.Flasks != 1 || st.MaxFlasks != 1 {
		t.Fatalf("souls=%d flasks=%d/%d, want 0 1/1", st.Souls, st.Flasks, st.MaxFlasks)
	}
	if st.IsDowned || st.HollowLevel != 0 || st.DeathCount != 0 {
		t.Fatalf("fresh save carries death state: %+v", st)
	}
	for _, c := range Categories {
		if st.CategoryXP[c] != 0 || st.CategoryStreak[c] != 0 {
			t.Fatalf("category %s not zeroed", c)
		}
	}
	if !st.SoundEnabled {
		t.Fatal("sound should default on")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	st := eng.Snapshot()
	st.Souls = 9999

	if _, err := eng.GainSouls(ctx, 10); err != nil {
		t.Fatalf("GainSouls: %v", err)
	}
	if got := eng.Snapshot().Souls; got != 10 {
		t.Fatalf("souls=%d, want 10 (snapshot mutation leaked)", got)
	}
}

func TestReloadRoundTrip(t *testing.T) {
	eng, store := newTestEngine(t)
	ctx := context.Background()

	addTestTask(t, eng, AddTaskInput{Type: TaskTodo, Title: "Slay the demon", Category: CategoryFitness})
	if _, err := eng.GainSouls(ctx, 42); err != nil {
		t.Fatalf("GainSouls: %v", err)
	}
	if _, err := eng.GainXP(ctx, 30); err != nil {
		t.Fatalf("GainXP: %v", err)
	}

	reloaded, err := Load(ctx, store)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	st := reloaded.Snapshot()
	if st.Souls != 42 || st.XP != 30 {
		t.Fatalf("reloaded souls=%d xp=%d, want 42 30", st.Souls, st.XP)
	}
	if len(st.Todos) != 1 || st.Todos[0].Title != "Slay the demon" {
		t.Fatalf("reloaded todos=%+v", st.Todos)
	}
	if st.Todos[0].Category != CategoryFitness {
		t.Fatalf("reloaded category=%s, want fitness", st.Todos[0].Category)
	}
}

func TestToggleSound(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	on, err := eng.ToggleSound(ctx)
	if err != nil || on {
		t.Fatalf("ToggleSound=%v,%v, want false,nil", on, err)
	}
	on, err = eng.ToggleSound(ctx)
	if err != nil || !on {
		t.Fatalf("ToggleSound=%v,%v, want true,nil", on, err)
	}
}
