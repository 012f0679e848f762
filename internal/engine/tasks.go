package engine

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"bonfire/internal/telemetry"
)

// Task lifecycle: Active → Completed for dailies/todos (todos are removed from
// their collection immediately on completion), habits just accumulate
// positive/negative history. Failure never grants partial credit.

type AddTaskInput struct {
	Type       TaskType
	Title      string
	Notes      string
	Category   Category
	Tier       Tier
	IsCritical bool
	DueDate    *time.Time
	Frequency  string
	Checklist  []string
}

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", errors.New("title is required")
	}
	return t, nil
}

// AddTask creates a task with type-determined base rewards and appends it to
// the matching collection.
func (e *Engine) AddTask(ctx context.Context, in AddTaskInput) (*Task, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	if !in.Type.IsValid() {
		return nil, errors.New("invalid task type")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	cat := in.Category
	if !cat.IsValid() {
		cat = DefaultCategory
	}
	tier := in.Tier
	if !tier.IsValid() {
		tier = DefaultTier
	}

	base := BaseRewardFor(in.Type)
	task := Task{
		ID:         e.newID(),
		Title:      title,
		Notes:      in.Notes,
		Type:       in.Type,
		Category:   cat,
		Tier:       tier,
		BaseSouls:  base.Souls,
		BaseXP:     base.XP,
		HPStake:    base.HPStake,
		IsCritical: in.IsCritical && in.Type == TaskHabit,
		DueDate:    in.DueDate,
		Frequency:  in.Frequency,
		CreatedAt:  e.now(),
	}
	for _, text := range in.Checklist {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		task.Checklist = append(task.Checklist, ChecklistItem{ID: e.newID(), Text: text})
	}

	col := e.collection(in.Type)
	*col = append(*col, task)

	cp := task
	if err := e.save(ctx); err != nil {
		return &cp, err
	}
	return &cp, nil
}

type CompleteResult struct {
	TaskID      string
	Title       string
	Type        TaskType
	Category    Category
	SoulsEarned int
	XPEarned    int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Streak      int
	Removed     bool
	// Blocked is set when an incomplete checklist refused the completion.
	Blocked bool
}

// CompleteTask resolves a successful task. Unknown ids no-op (nil result); an
// incomplete checklist refuses the completion (Blocked result, no mutation).
// Completion is permitted while downed; GainXP halves the XP there.
func (e *Engine) CompleteTask(ctx context.Context, t TaskType, id string) (*CompleteResult, error) {
	tracer := telemetry.Tracer("engine")
	ctx, span := tracer.Start(ctx, "engine.complete_task")
	defer span.End()
	span.SetAttributes(
		attribute.String("task.type", string(t)),
		attribute.String("task.id", id),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	res := e.completeTask(t, id)
	if res == nil || res.Blocked {
		return res, nil
	}
	span.SetAttributes(
		attribute.Int("reward.souls", res.SoulsEarned),
		attribute.Int("reward.xp", res.XPEarned),
		attribute.Bool("level_up", res.LevelUp),
	)
	return res, e.save(ctx)
}

// completeTask applies the completion bundle. Callers must hold e.mu and
// persist afterwards unless the result is nil or Blocked.
func (e *Engine) completeTask(t TaskType, id string) *CompleteResult {
	task := e.findTask(t, id)
	if task == nil {
		return nil
	}
	if t != TaskHabit && task.Completed {
		return nil
	}
	if len(task.Checklist) > 0 && !task.ChecklistDone() {
		return &CompleteResult{TaskID: id, Title: task.Title, Type: t, Blocked: true}
	}

	cat := task.Category
	attrLevel := e.attributeLevelFor(cat)
	streak := e.state.CategoryStreak[cat]

	levelBefore := e.state.Level
	souls := e.gainSouls(SoulsReward(task.BaseSouls, attrLevel, streak))
	xp := XPReward(task.BaseXP, attrLevel, streak)
	e.gainXP(xp)

	e.incrementCategoryCounter(cat)
	e.updateCategoryStreak(cat)

	action := ActionCompleted
	if t == TaskHabit {
		action = ActionPositive
	}
	e.appendHistory(HistoryEntry{
		TaskID:      task.ID,
		TaskTitle:   task.Title,
		TaskType:    string(t),
		Category:    cat,
		Action:      action,
		SoulsEarned: souls,
	})

	res := &CompleteResult{
		TaskID:      task.ID,
		Title:       task.Title,
		Type:        t,
		Category:    cat,
		SoulsEarned: souls,
		XPEarned:    xp,
		LevelBefore: levelBefore,
		LevelAfter:  e.state.Level,
		LevelUp:     e.state.Level > levelBefore,
		Streak:      e.state.CategoryStreak[cat],
	}

	switch t {
	case TaskDaily:
		task.Completed = true
	case TaskTodo:
		e.removeTask(t, id)
		res.Removed = true
	}
	return res
}

type FailResult struct {
	TaskID       string
	Title        string
	Type         TaskType
	HPLost       int
	Downed       bool
	InstantDeath bool
	SoulsLost    int
}

// FailTask resolves a failed task: HP loss plus a category-XP deduction, never
// any reward. A critical habit forces instant death regardless of current HP
// or active buffs.
func (e *Engine) FailTask(ctx context.Context, t TaskType, id string) (*FailResult, error) {
	tracer := telemetry.Tracer("engine")
	ctx, span := tracer.Start(ctx, "engine.fail_task")
	defer span.End()
	span.SetAttributes(
		attribute.String("task.type", string(t)),
		attribute.String("task.id", id),
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(t, id)
	if task == nil {
		return nil, nil
	}

	hpBefore := e.state.HP
	soulsBefore := e.state.Souls
	res := &FailResult{TaskID: task.ID, Title: task.Title, Type: t}

	if task.IsCritical && t == TaskHabit {
		// Not routed through loseHP: a critical fail must kill even when a
		// damage-reduction buff is active.
		res.InstantDeath = true
		e.state.HP = 0
		if !e.state.IsDowned {
			e.down()
			res.Downed = true
		}
	} else {
		res.Downed = e.loseHP(task.HPStake)
	}
	res.HPLost = hpBefore - e.state.HP
	res.SoulsLost = soulsBefore - e.state.Souls

	e.deductCategoryXP(task.Category, task.BaseXP)

	action := ActionFailed
	if t == TaskHabit {
		action = ActionNegative
	}
	e.appendHistory(HistoryEntry{
		TaskID:      task.ID,
		TaskTitle:   task.Title,
		TaskType:    string(t),
		Category:    task.Category,
		Action:      action,
		SoulsEarned: -res.SoulsLost,
	})

	span.SetAttributes(
		attribute.Int("hp.lost", res.HPLost),
		attribute.Bool("downed", res.Downed),
	)
	return res, e.save(ctx)
}

type ToggleChecklistResult struct {
	ItemID    string
	Completed bool
	// AutoCompleted carries the completion result when checking the last
	// open item finished the task.
	AutoCompleted *CompleteResult
}

// ToggleChecklistItem flips one checklist item; checking the final open item
// auto-completes the task.
func (e *Engine) ToggleChecklistItem(ctx context.Context, t TaskType, id, itemID string) (*ToggleChecklistResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(t, id)
	if task == nil {
		return nil, nil
	}
	var item *ChecklistItem
	for i := range task.Checklist {
		if task.Checklist[i].ID == itemID {
			item = &task.Checklist[i]
			break
		}
	}
	if item == nil {
		return nil, nil
	}

	item.Completed = !item.Completed
	res := &ToggleChecklistResult{ItemID: item.ID, Completed: item.Completed}

	if item.Completed && task.ChecklistDone() && !(t != TaskHabit && task.Completed) {
		res.AutoCompleted = e.completeTask(t, id)
	}
	return res, e.save(ctx)
}

type UpdateTaskInput struct {
	Title      *string
	Notes      *string
	Category   *Category
	Tier       *Tier
	BaseSouls  *int
	BaseXP     *int
	HPStake    *int
	IsCritical *bool
	DueDate    *time.Time
	Frequency  *string
}

// UpdateTask merges the provided fields into the task. No vitals side effects.
// Returns false when the task does not exist.
func (e *Engine) UpdateTask(ctx context.Context, t TaskType, id string, in UpdateTaskInput) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	task := e.findTask(t, id)
	if task == nil {
		return false, nil
	}

	if in.Title != nil {
		if title, err := normalizeTitle(*in.Title); err == nil {
			task.Title = title
		}
	}
	if in.Notes != nil {
		task.Notes = *in.Notes
	}
	if in.Category != nil && in.Category.IsValid() {
		task.Category = *in.Category
	}
	if in.Tier != nil && in.Tier.IsValid() {
		task.Tier = *in.Tier
	}
	if in.BaseSouls != nil && *in.BaseSouls >= 0 {
		task.BaseSouls = *in.BaseSouls
	}
	if in.BaseXP != nil && *in.BaseXP >= 0 {
		task.BaseXP = *in.BaseXP
	}
	if in.HPStake != nil && *in.HPStake >= 0 {
		task.HPStake = *in.HPStake
	}
	if in.IsCritical != nil {
		task.IsCritical = *in.IsCritical && task.Type == TaskHabit
	}
	if in.DueDate != nil {
		task.DueDate = in.DueDate
	}
	if in.Frequency != nil {
		task.Frequency = *in.Frequency
	}
	return true, e.save(ctx)
}

// DeleteTask removes a task by id. Returns false when absent.
func (e *Engine) DeleteTask(ctx context.Context, t TaskType, id string) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.findTask(t, id) == nil {
		return false, nil
	}
	e.removeTask(t, id)
	return true, e.save(ctx)
}

// ResetDailies clears the completed flag on every daily for a new day.
// Returns the number of dailies reset.
func (e *Engine) ResetDailies(ctx context.Context) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	reset := 0
	for i := range e.state.Dailies {
		if e.state.Dailies[i].Completed {
			e.state.Dailies[i].Completed = false
			reset++
		}
	}
	if reset == 0 {
		return 0, nil
	}
	return reset, e.save(ctx)
}

// removeTask drops a task from its collection. Callers must hold e.mu.
func (e *Engine) removeTask(t TaskType, id string) {
	col := e.collection(t)
	for i := range *col {
		if (*col)[i].ID == id {
			*col = append((*col)[:i], (*col)[i+1:]...)
			return
		}
	}
}
