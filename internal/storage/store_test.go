package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) (*SnapshotStore, *sql.DB) {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSnapshotStore(db), db
}

func TestLoadEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	data, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if data != nil {
		t.Fatalf("data=%s, want nil for a fresh db", data)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	blob := []byte(`{"hp":42}`)
	if err := store.Save(ctx, blob); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(got) != string(blob) {
		t.Fatalf("loaded=%s, want %s", got, blob)
	}

	// Replaces in place: still one row after another save.
	if err := store.Save(ctx, []byte(`{"hp":7}`)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM snapshots`).Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("rows=%d, want 1", count)
	}
}

func TestLoadMigratesAndRestamps(t *testing.T) {
	store, db := newTestStore(t)
	ctx := context.Background()

	v1 := []byte(`{"hp":30,"maxHp":50,"xp":0,"xpToLevel":100,"level":1,"soundEnabled":true,"habits":[],"dailies":[],"todos":[]}`)
	if err := store.SaveAt(ctx, 1, v1); err != nil {
		t.Fatalf("SaveAt: %v", err)
	}

	data, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := doc["souls"]; !ok {
		t.Fatal("migrated blob should carry v2 fields")
	}
	if _, ok := doc["baseMaxHp"]; !ok {
		t.Fatal("migrated blob should carry the renamed hp cap")
	}

	// The stored row now carries the current version stamp.
	var version int
	if err := db.QueryRowContext(ctx,
		`SELECT version FROM snapshots WHERE key = ?`, SnapshotKey).Scan(&version); err != nil {
		t.Fatalf("version: %v", err)
	}
	if version != CurrentVersion {
		t.Fatalf("stored version=%d, want %d", version, CurrentVersion)
	}
}

func TestLoadRejectsFutureVersion(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.SaveAt(ctx, CurrentVersion+1, []byte(`{}`)); err != nil {
		t.Fatalf("SaveAt: %v", err)
	}
	if _, err := store.Load(ctx); err == nil {
		t.Fatal("future version should error")
	}
}
