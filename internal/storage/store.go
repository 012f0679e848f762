package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// SnapshotKey is the single row the whole game state lives under.
const SnapshotKey = "game_state"

// SnapshotStore persists the engine state as one versioned JSON blob.
type SnapshotStore struct {
	db  *sql.DB
	key string
}

func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db, key: SnapshotKey}
}

// Load reads the snapshot, applies any pending migrations, and returns
// current-version JSON. Returns nil when no snapshot exists yet.
func (s *SnapshotStore) Load(ctx context.Context) ([]byte, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT version, data FROM snapshots WHERE key = ?`, s.key)

	var version int
	var data []byte
	if err := row.Scan(&version, &data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("snapshot load: %w", err)
	}

	if version > CurrentVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported %d", version, CurrentVersion)
	}
	if version == CurrentVersion {
		return data, nil
	}

	migrated, err := Migrate(version, data)
	if err != nil {
		return nil, err
	}
	// Persist the upgraded blob so the stored version stamp stays honest.
	if err := s.Save(ctx, migrated); err != nil {
		return nil, err
	}
	return migrated, nil
}

// Save durably replaces the snapshot at the current schema version.
func (s *SnapshotStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, version, data, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			version = excluded.version,
			data = excluded.data,
			updated_at = excluded.updated_at
	`, s.key, CurrentVersion, data)
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}

// SaveAt writes a snapshot stamped with an explicit version. Used by tests and
// import tooling to seed historical shapes.
func (s *SnapshotStore) SaveAt(ctx context.Context, version int, data []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, version, data, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET
			version = excluded.version,
			data = excluded.data,
			updated_at = excluded.updated_at
	`, s.key, version, data)
	if err != nil {
		return fmt.Errorf("snapshot save: %w", err)
	}
	return nil
}
