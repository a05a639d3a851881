package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/javiermolinar/timegrid/internal/profile"
)

func TestSQLite_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, profile.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLite_PutGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Put(ctx, "k", []byte(`{"a":1}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	got, err := repo.Get(ctx, "k")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if string(got) != `{"a":1}` {
		t.Errorf("Get = %s", got)
	}

	if err := repo.Put(ctx, "k", []byte(`{"a":2}`)); err != nil {
		t.Fatalf("Put (upsert) failed: %v", err)
	}
	got, _ = repo.Get(ctx, "k")
	if string(got) != `{"a":2}` {
		t.Errorf("upsert did not replace value: %s", got)
	}
}

func TestSQLite_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "timegrid.db")
	ctx := context.Background()

	repo, err := New(path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := repo.Put(ctx, profile.StateKey, []byte(`{"version":4}`)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	_ = repo.Close()

	repo, err = New(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer func() { _ = repo.Close() }()

	got, err := repo.Get(ctx, profile.StateKey)
	if err != nil || string(got) != `{"version":4}` {
		t.Errorf("Get after reopen = %s, %v", got, err)
	}
}

func TestSQLite_StateRoundTrip(t *testing.T) {
	testStateRoundTrip(t, newTestRepo(t))
}

func testStateRoundTrip(t *testing.T, store profile.Store) {
	t.Helper()
	ctx := context.Background()
	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	st, _, err := profile.Load(ctx, store, profile.DefaultSettings(), now)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	p := st.Active()
	p.Grid(st.Settings.SlotMinutes).PaintRange("regular", 0, 2, 4, cell("수학", "#1e88e5"), true)
	p.SubjectColors["수학"] = "#1e88e5"

	if err := profile.Save(ctx, store, st); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, notes, err := profile.Load(ctx, store, profile.DefaultSettings(), now)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("unexpected repairs: %v", notes)
	}
	if loaded.ActiveProfileID != st.ActiveProfileID {
		t.Errorf("active profile = %s, want %s", loaded.ActiveProfileID, st.ActiveProfileID)
	}
	if got := len(loaded.Active().Regular); got != 3 {
		t.Errorf("expected 3 regular cells, got %d", got)
	}
}

func newTestRepo(t *testing.T) *SQLite {
	t.Helper()

	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	repo, err := New(dbPath)
	if err != nil {
		t.Fatalf("failed to create test repo: %v", err)
	}

	t.Cleanup(func() {
		_ = repo.Close()
	})

	return repo
}
