package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store is the persistence adapter the engine saves through. Load returns the
// current-version snapshot JSON, or nil when no save exists yet; Save durably
// replaces it.
type Store interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// Clock supplies timestamps so tests can pin time.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// SystemClock returns the real UTC clock.
func SystemClock() Clock { return systemClock{} }

// Engine owns the whole mutable aggregate: player vitals, task collections,
// rewards and history. All mutation goes through its methods; each method runs
// under one mutex so every operation is atomic relative to the others, and the
// snapshot is persisted after every mutation.
type Engine struct {
	mu    sync.Mutex
	state *State
	store Store
	clock Clock
	newID func() string
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithClock overrides the engine clock.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithIDSource overrides the id generator.
func WithIDSource(fn func() string) Option {
	return func(e *Engine) { e.newID = fn }
}

// Load builds an Engine from the store's snapshot, creating the default state
// when no save exists yet.
func Load(ctx context.Context, store Store, opts ...Option) (*Engine, error) {
	e := &Engine{
		store: store,
		clock: SystemClock(),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}

	data, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if data == nil {
		e.state = NewState()
		if err := e.save(ctx); err != nil {
			return nil, err
		}
		return e, nil
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	normalizeState(&st)
	e.state = &st
	return e, nil
}

// normalizeState fills nil maps on snapshots that predate a field. Migrations
// supply defaults for known versions; this is the backstop for hand-edited
// saves.
func normalizeState(st *State) {
	if st.CategoryXP == nil {
		st.CategoryXP = zeroCategoryMap()
	}
	if st.CategoryStreak == nil {
		st.CategoryStreak = zeroCategoryMap()
	}
	if st.Inventory == nil {
		st.Inventory = map[ShopItemID]int{}
	}
	if st.Equipment == nil {
		st.Equipment = defaultEquipmentState()
	}
	for id := range EquipmentItems {
		if st.Equipment[id] == nil {
			st.Equipment[id] = &EquipmentState{}
		}
	}
}

// save persists the current state. Callers must hold e.mu.
func (e *Engine) save(ctx context.Context) error {
	data, err := json.Marshal(e.state)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := e.store.Save(ctx, data); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Snapshot returns a deep copy of the full state for display. Callers never
// see the live aggregate.
func (e *Engine) Snapshot() *State {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := json.Marshal(e.state)
	if err != nil {
		// State is plain data; marshal cannot fail on it.
		panic(fmt.Sprintf("snapshot marshal: %v", err))
	}
	var cp State
	if err := json.Unmarshal(data, &cp); err != nil {
		panic(fmt.Sprintf("snapshot unmarshal: %v", err))
	}
	normalizeState(&cp)
	return &cp
}

// ToggleSound flips the persisted sound preference and returns the new value.
func (e *Engine) ToggleSound(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.SoundEnabled = !e.state.SoundEnabled
	if err := e.save(ctx); err != nil {
		return e.state.SoundEnabled, err
	}
	return e.state.SoundEnabled, nil
}

// now returns the engine clock time.
func (e *Engine) now() time.Time { return e.clock.Now() }

// collection returns the live slice for a task type. Callers must hold e.mu.
func (e *Engine) collection(t TaskType) *[]Task {
	switch t {
	case TaskHabit:
		return &e.state.Habits
	case TaskDaily:
		return &e.state.Dailies
	default:
		return &e.state.Todos
	}
}

// findTask locates a task by id within its collection. Callers must hold e.mu.
func (e *Engine) findTask(t TaskType, id string) *Task {
	col := e.collection(t)
	for i := range *col {
		if (*col)[i].ID == id {
			return &(*col)[i]
		}
	}
	return nil
}
