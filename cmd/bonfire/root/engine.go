package root

import (
	"context"
	"errors"

	"bonfire/internal/config"
	"bonfire/internal/engine"
	"bonfire/internal/storage"
)

// openEngine opens the save file and loads the engine from it.
func openEngine(ctx context.Context) (*engine.Engine, func(), error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	eng, err := engine.Load(ctx, storage.NewSnapshotStore(db))
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return eng, cleanup, nil
}

// taskTypeArg parses the <type> positional argument.
func taskTypeArg(arg string) (engine.TaskType, error) {
	t, ok := engine.ParseTaskType(arg)
	if !ok {
		return "", errors.New("type must be habit, daily or todo")
	}
	return t, nil
}
