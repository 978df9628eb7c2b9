package storage

import (
	"bytes"
	"testing"
)

func openTestStore(t *testing.T) *SnapshotStore {
	t.Helper()
	db, err := OpenDB(t.TempDir())
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSnapshotStore(db)
}

func TestSetGetRoundTrip(t *testing.T) {
	ss := openTestStore(t)

	state := []byte(`{"route":"/guide","stack":{"back":[0],"current":0,"history":[0],"next":[]}}`)
	if err := ss.Set(0, state, false); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := ss.Get(0, nil, false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, state) {
		t.Errorf("get returned %s, want %s", got, state)
	}
}

func TestGetMissingReturnsDefault(t *testing.T) {
	ss := openTestStore(t)

	def := []byte(`{"route":"/"}`)
	got, err := ss.Get(42, def, false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !bytes.Equal(got, def) {
		t.Errorf("get returned %s, want default %s", got, def)
	}
}

func TestSetReplacesExisting(t *testing.T) {
	ss := openTestStore(t)

	if err := ss.Set(3, []byte("old"), false); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := ss.Set(3, []byte("new"), false); err != nil {
		t.Fatalf("set: %v", err)
	}

	got, err := ss.Get(3, nil, false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("get returned %s, want new", got)
	}
	if ss.Count() != 1 {
		t.Errorf("count = %d, want 1", ss.Count())
	}
}

func TestSkipCacheReadsDatabase(t *testing.T) {
	ss := openTestStore(t)

	if err := ss.Set(1, []byte("persisted"), false); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Poison the cache to prove skipCache bypasses it.
	ss.cache.Add(1, []byte("stale"))

	got, err := ss.Get(1, nil, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "persisted" {
		t.Errorf("skipCache read returned %s, want persisted", got)
	}

	got, err = ss.Get(1, nil, false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "stale" {
		t.Errorf("cached read returned %s, want stale", got)
	}
}

func TestSetSkipCacheDoesNotPopulate(t *testing.T) {
	ss := openTestStore(t)

	if err := ss.Set(7, []byte("db-only"), true); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, ok := ss.cache.Get(7); ok {
		t.Error("set with skipCache populated the cache")
	}

	got, err := ss.Get(7, nil, false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "db-only" {
		t.Errorf("get returned %s, want db-only", got)
	}
}

func TestClear(t *testing.T) {
	ss := openTestStore(t)

	for key := 0; key < 4; key++ {
		if err := ss.Set(key, []byte("x"), false); err != nil {
			t.Fatalf("set %d: %v", key, err)
		}
	}
	if err := ss.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if ss.Count() != 0 {
		t.Errorf("count after clear = %d, want 0", ss.Count())
	}
	got, err := ss.Get(0, []byte("gone"), false)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "gone" {
		t.Errorf("get after clear returned %s, want default", got)
	}
}

func TestStoredStateSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	db, err := OpenDB(dir)
	if err != nil {
		t.Fatalf("opening database: %v", err)
	}
	ss := NewSnapshotStore(db)
	if err := ss.Set(0, []byte("durable"), false); err != nil {
		t.Fatalf("set: %v", err)
	}
	db.Close()

	db, err = OpenDB(dir)
	if err != nil {
		t.Fatalf("reopening database: %v", err)
	}
	defer db.Close()
	ss = NewSnapshotStore(db)

	got, err := ss.Get(0, nil, true)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "durable" {
		t.Errorf("get after reopen returned %s, want durable", got)
	}
}
