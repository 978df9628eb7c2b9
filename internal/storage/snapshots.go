package storage

import (
	"database/sql"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// snapshotCacheSize bounds the in-memory cache in front of the database.
// A session rarely records more than a handful of entries; the bound only
// matters for long-lived sessions.
const snapshotCacheSize = 128

// SnapshotStore persists opaque state snapshots keyed by the integer keys
// minted by the navigation stack. Reads are served from an LRU cache in
// front of SQLite unless the caller asks to skip it.
type SnapshotStore struct {
	db    *sql.DB
	cache *lru.Cache[int, []byte]
}

// NewSnapshotStore creates a snapshot store using the given database.
func NewSnapshotStore(db *DB) *SnapshotStore {
	cache, _ := lru.New[int, []byte](snapshotCacheSize)
	return &SnapshotStore{db: db.Conn(), cache: cache}
}

// Set persists a snapshot under the given key, replacing any previous
// value. Unless skipCache is set, the cache is updated write-through.
func (ss *SnapshotStore) Set(key int, state []byte, skipCache bool) error {
	_, err := ss.db.Exec(
		`INSERT INTO snapshots (key, state, saved_at) VALUES (?, ?, datetime('now'))
		 ON CONFLICT(key) DO UPDATE SET state = excluded.state, saved_at = excluded.saved_at`,
		key, state,
	)
	if err != nil {
		return fmt.Errorf("saving snapshot %d: %w", key, err)
	}
	if !skipCache {
		ss.cache.Add(key, clone(state))
	}
	return nil
}

// Get returns the snapshot stored under key, or def if none exists.
// Unless skipCache is set, a cached copy is returned when present and the
// cache is populated on a database hit. A missing key is not an error.
func (ss *SnapshotStore) Get(key int, def []byte, skipCache bool) ([]byte, error) {
	if !skipCache {
		if state, ok := ss.cache.Get(key); ok {
			return clone(state), nil
		}
	}

	var state []byte
	err := ss.db.QueryRow(`SELECT state FROM snapshots WHERE key = ?`, key).Scan(&state)
	if err == sql.ErrNoRows {
		return def, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %d: %w", key, err)
	}

	if !skipCache {
		ss.cache.Add(key, clone(state))
	}
	return state, nil
}

// Count returns the number of persisted snapshots.
func (ss *SnapshotStore) Count() int {
	var count int
	ss.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count)
	return count
}

// Clear removes all persisted snapshots and empties the cache.
func (ss *SnapshotStore) Clear() error {
	if _, err := ss.db.Exec(`DELETE FROM snapshots`); err != nil {
		return fmt.Errorf("clearing snapshots: %w", err)
	}
	ss.cache.Purge()
	return nil
}

// clone copies state bytes so cache entries never alias caller buffers.
func clone(state []byte) []byte {
	out := make([]byte, len(state))
	copy(out, state)
	return out
}
