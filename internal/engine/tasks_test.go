package engine

import (
	"context"
	"testing"
)

func TestAddTaskValidation(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	if _, err := eng.AddTask(ctx, AddTaskInput{Type: TaskTodo, Title: "  "}); err == nil {
		t.Fatal("blank title should error")
	}
	if _, err := eng.AddTask(ctx, AddTaskInput{Type: TaskType("chore"), Title: "x"}); err == nil {
		t.Fatal("invalid type should error")
	}
}

func TestAddTaskDefaults(t *testing.T) {
	eng, _ := newTestEngine(t)

	task := addTestTask(t, eng, AddTaskInput{Type: TaskDaily, Title: "  Morning run  "})
	if task.Title != "Morning run" {
		t.Fatalf("title=%q, want trimmed", task.Title)
	}
	if task.Category != DefaultCategory || task.Tier != DefaultTier {
		t.Fatalf("category=%s tier=%s, want defaults", task.Category, task.Tier)
	}
	if task.BaseSouls != 15 || task.BaseXP != 5 || task.HPStake != 3 {
		t.Fatalf("daily rewards=%d/%d/%d, want 15/5/3", task.BaseSouls, task.BaseXP, task.HPStake)
	}
	if !task.CreatedAt.Equal(testTime) {
		t.Fatalf("createdAt=%v, want pinned clock", task.CreatedAt)
	}

	// Critical is a habit-only flag.
	todo := addTestTask(t, eng, AddTaskInput{Type: TaskTodo, Title: "Ship it", IsCritical: true})
	if todo.IsCritical {
		t.Fatal("critical must not stick on a todo")
	}
}

func TestCompleteFreshTodo(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	todo := addTestTask(t, eng, AddTaskInput{Type: TaskTodo, Title: "Deadlift day", Category: CategoryFitness})

	res, err := eng.CompleteTask(ctx, TaskTodo, todo.ID)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if res == nil || res.Blocked {
		t.Fatalf("result=%+v, want completion", res)
	}
	if res.SoulsEarned != 25 || res.XPEarned != 10 {
		t.Fatalf("rewards=%d/%d, want 25/10", res.SoulsEarned, res.XPEarned)
	}
	if res.LevelUp || res.Streak != 1 || !res.Removed {
		t.Fatalf("result=%+v, want streak=1 removed", res)
	}

	st := eng.Snapshot()
	if st.Souls != 25 || st.XP != 10 || st.Level != 1 {
		t.Fatalf("souls=%d xp=%d level=%d, want 25 10 1", st.Souls, st.XP, st.Level)
	}
	if st.CategoryXP[CategoryFitness] != 1 || st.CategoryStreak[CategoryFitness] != 1 {
		t.Fatalf("fitness xp=%d streak=%d, want 1 1", st.CategoryXP[CategoryFitness], st.CategoryStreak[CategoryFitness])
	}
	if len(st.Todos) != 0 {
		t.Fatal("completed todo should be removed")
	}
	if len(st.History) != 1 || st.History[0].Action != ActionCompleted {
		t.Fatalf("history=%+v, want one completed entry", st.History)
	}
}

func TestCompleteUnknownTaskNoOp(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	res, err := eng.CompleteTask(ctx, TaskTodo, "missing")
	if err != nil || res != nil {
		t.Fatalf("CompleteTask=%+v,%v, want nil,nil", res, err)
	}
}

func TestCompleteDailyOncePerDay(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	daily := addTestTask(t, eng, AddTaskInput{Type: TaskDaily, Title: "Stretch"})
	if res, _ := eng.CompleteTask(ctx, TaskDaily, daily.ID); res == nil {
		t.Fatal("first completion refused")
	}
	if res, _ := eng.CompleteTask(ctx, TaskDaily, daily.ID); res != nil {
		t.Fatalf("second completion=%+v, want nil", res)
	}
	st := eng.Snapshot()
	if len(st.Dailies) != 1 || !st.Dailies[0].Completed {
		t.Fatalf("daily state=%+v, want kept and completed", st.Dailies)
	}
}

func TestHabitRepeatsAndStreakPenalty(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	habit := addTestTask(t, eng, AddTaskInput{Type: TaskHabit, Title: "Read", Category: CategoryCreativity})

	// Streak at reward time runs 0,1,2,3; the fourth completion takes the
	// first diminishing-returns step.
	wantSouls := []int{5, 5, 5, 4}
	for i, want := range wantSouls {
		res, err := eng.CompleteTask(ctx, TaskHabit, habit.ID)
		if err != nil || res == nil {
			t.Fatalf("completion %d: %+v, %v", i+1, res, err)
		}
		if res.SoulsEarned != want {
			t.Fatalf("completion %d souls=%d, want %d", i+1, res.SoulsEarned, want)
		}
	}

	st := eng.Snapshot()
	if st.CategoryStreak[CategoryCreativity] != 4 {
		t.Fatalf("streak=%d, want 4", st.CategoryStreak[CategoryCreativity])
	}
	if len(st.Habits) != 1 || st.Habits[0].Completed {
		t.Fatal("habits persist and never flip to completed")
	}
	if len(st.History) != 4 || st.History[0].Action != ActionPositive {
		t.Fatalf("history=%d entries, want 4 positive", len(st.History))
	}
}

func TestStreakResetsOnCategoryChange(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	fit := addTestTask(t, eng, AddTaskInput{Type: TaskHabit, Title: "Pushups", Category: CategoryFitness})
	work := addTestTask(t, eng, AddTaskInput{Type: TaskHabit, Title: "Inbox zero", Category: CategoryProductivity})

	for i := 0; i < 2; i++ {
		if res, _ := eng.CompleteTask(ctx, TaskHabit, fit.ID); res == nil {
			t.Fatal("fitness completion refused")
		}
	}
	if res, _ := eng.CompleteTask(ctx, TaskHabit, work.ID); res == nil {
		t.Fatal("productivity completion refused")
	}

	st := eng.Snapshot()
	if st.CategoryStreak[CategoryFitness] != 0 {
		t.Fatalf("fitness streak=%d, want 0 after category switch", st.CategoryStreak[CategoryFitness])
	}
	if st.CategoryStreak[CategoryProductivity] != 1 {
		t.Fatalf("productivity streak=%d, want 1", st.CategoryStreak[CategoryProductivity])
	}
	if st.LastCategory == nil || *st.LastCategory != CategoryProductivity {
		t.Fatalf("lastCategory=%v, want productivity", st.LastCategory)
	}
}

func TestChecklistGatesCompletion(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	todo := addTestTask(t, eng, AddTaskInput{
		Type: TaskTodo, Title: "Move house", Checklist: []string{"Pack", "Hire van"},
	})

	res, err := eng.CompleteTask(ctx, TaskTodo, todo.ID)
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if res == nil || !res.Blocked {
		t.Fatalf("result=%+v, want blocked", res)
	}
	if st := eng.Snapshot(); st.Souls != 0 || len(st.Todos) != 1 {
		t.Fatal("blocked completion must not mutate")
	}

	tog, err := eng.ToggleChecklistItem(ctx, TaskTodo, todo.ID, todo.Checklist[0].ID)
	if err != nil || tog == nil || !tog.Completed || tog.AutoCompleted != nil {
		t.Fatalf("first toggle=%+v,%v", tog, err)
	}

	// Checking the final item auto-completes and removes the todo.
	tog, err = eng.ToggleChecklistItem(ctx, TaskTodo, todo.ID, todo.Checklist[1].ID)
	if err != nil || tog == nil || tog.AutoCompleted == nil {
		t.Fatalf("final toggle=%+v,%v, want auto completion", tog, err)
	}
	if tog.AutoCompleted.SoulsEarned != 25 || !tog.AutoCompleted.Removed {
		t.Fatalf("auto completion=%+v", tog.AutoCompleted)
	}
	if st := eng.Snapshot(); len(st.Todos) != 0 || st.Souls != 25 {
		t.Fatal("auto-completed todo should be removed and paid")
	}
}

func TestToggleChecklistOnRemovedTask(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	todo := addTestTask(t, eng, AddTaskInput{
		Type: TaskTodo, Title: "Write letter", Checklist: []string{"Draft"},
	})
	itemID := todo.Checklist[0].ID

	if tog, _ := eng.ToggleChecklistItem(ctx, TaskTodo, todo.ID, itemID); tog == nil || tog.AutoCompleted == nil {
		t.Fatal("single-item check should auto-complete")
	}
	// Auto-completion removed the todo; further toggles find nothing.
	if tog, _ := eng.ToggleChecklistItem(ctx, TaskTodo, todo.ID, itemID); tog != nil {
		t.Fatalf("toggle on removed todo=%+v, want nil", tog)
	}
}

func TestFailTaskNoPartialCredit(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	daily := addTestTask(t, eng, AddTaskInput{Type: TaskDaily, Title: "Meditate", Category: CategorySelfCare})
	eng.state.Souls = 30
	eng.state.CategoryXP[CategorySelfCare] = 10

	res, err := eng.FailTask(ctx, TaskDaily, daily.ID)
	if err != nil {
		t.Fatalf("FailTask: %v", err)
	}
	if res.HPLost != 3 || res.Downed || res.SoulsLost != 0 {
		t.Fatalf("result=%+v, want hpLost=3 only", res)
	}

	st := eng.Snapshot()
	if st.HP != 47 || st.Souls != 30 || st.XP != 0 {
		t.Fatalf("hp=%d souls=%d xp=%d, want 47 30 0", st.HP, st.Souls, st.XP)
	}
	// Daily base XP 5 regresses the category bucket by floor(2.5)=2.
	if st.CategoryXP[CategorySelfCare] != 8 {
		t.Fatalf("category xp=%d, want 8", st.CategoryXP[CategorySelfCare])
	}
	if len(st.History) != 1 || st.History[0].Action != ActionFailed {
		t.Fatalf("history=%+v, want one failed entry", st.History)
	}
}

func TestFailUnknownTaskNoOp(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	res, err := eng.FailTask(ctx, TaskDaily, "missing")
	if err != nil || res != nil {
		t.Fatalf("FailTask=%+v,%v, want nil,nil", res, err)
	}
}

func TestDeductCategoryXPFloorsAtZero(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	todo := addTestTask(t, eng, AddTaskInput{Type: TaskTodo, Title: "Big lift", Category: CategorySports})
	eng.state.CategoryXP[CategorySports] = 3

	if _, err := eng.FailTask(ctx, TaskTodo, todo.ID); err != nil {
		t.Fatalf("FailTask: %v", err)
	}
	if got := eng.Snapshot().CategoryXP[CategorySports]; got != 0 {
		t.Fatalf("category xp=%d, want floored at 0", got)
	}
}

func TestUpdateTask(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	todo := addTestTask(t, eng, AddTaskInput{Type: TaskTodo, Title: "Old name"})

	title := "New name"
	souls := 40
	bad := -5
	ok, err := eng.UpdateTask(ctx, TaskTodo, todo.ID, UpdateTaskInput{
		Title: &title, BaseSouls: &souls, BaseXP: &bad,
	})
	if err != nil || !ok {
		t.Fatalf("UpdateTask=%v,%v, want true,nil", ok, err)
	}
	st := eng.Snapshot()
	got := st.Todos[0]
	if got.Title != "New name" || got.BaseSouls != 40 {
		t.Fatalf("task=%+v", got)
	}
	if got.BaseXP != 10 {
		t.Fatalf("baseXp=%d, want negative update ignored", got.BaseXP)
	}

	if ok, _ := eng.UpdateTask(ctx, TaskTodo, "missing", UpdateTaskInput{Title: &title}); ok {
		t.Fatal("unknown id should return false")
	}
}

func TestDeleteTask(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	todo := addTestTask(t, eng, AddTaskInput{Type: TaskTodo, Title: "Ephemeral"})
	if ok, _ := eng.DeleteTask(ctx, TaskTodo, todo.ID); !ok {
		t.Fatal("delete refused")
	}
	if ok, _ := eng.DeleteTask(ctx, TaskTodo, todo.ID); ok {
		t.Fatal("double delete should return false")
	}
	if len(eng.Snapshot().Todos) != 0 {
		t.Fatal("todo should be gone")
	}
}

func TestResetDailies(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	d1 := addTestTask(t, eng, AddTaskInput{Type: TaskDaily, Title: "Journal"})
	addTestTask(t, eng, AddTaskInput{Type: TaskDaily, Title: "Walk"})
	if res, _ := eng.CompleteTask(ctx, TaskDaily, d1.ID); res == nil {
		t.Fatal("completion refused")
	}

	n, err := eng.ResetDailies(ctx)
	if err != nil || n != 1 {
		t.Fatalf("ResetDailies=%d,%v, want 1,nil", n, err)
	}
	for _, d := range eng.Snapshot().Dailies {
		if d.Completed {
			t.Fatalf("daily %q still completed", d.Title)
		}
	}

	if n, _ := eng.ResetDailies(ctx); n != 0 {
		t.Fatalf("second reset=%d, want 0", n)
	}
}

func TestHistoryNewestFirst(t *testing.T) {
	eng, _ := newTestEngine(t)
	ctx := context.Background()

	a := addTestTask(t, eng, AddTaskInput{Type: TaskTodo, Title: "First"})
	b := addTestTask(t, eng, AddTaskInput{Type: TaskTodo, Title: "Second"})
	if res, _ := eng.CompleteTask(ctx, TaskTodo, a.ID); res == nil {
		t.Fatal("completion refused")
	}
	if res, _ := eng.CompleteTask(ctx, TaskTodo, b.ID); res == nil {
		t.Fatal("completion refused")
	}

	entries := eng.History()
	if len(entries) != 2 {
		t.Fatalf("entries=%d, want 2", len(entries))
	}
	if entries[0].TaskTitle != "Second" || entries[1].TaskTitle != "First" {
		t.Fatalf("order=%s,%s, want newest first", entries[0].TaskTitle, entries[1].TaskTitle)
	}
}
