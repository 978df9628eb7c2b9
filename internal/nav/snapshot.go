package nav

import "encoding/json"

// Snapshot is the full application state persisted per navigation entry:
// the route being displayed plus the stack that got us there. The store
// treats it as opaque bytes keyed by the entry's integer key.
type Snapshot struct {
	Route string `json:"route"`
	Stack Stack  `json:"stack"`
}

// Marshal encodes the snapshot for storage.
func (s Snapshot) Marshal() ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSnapshot decodes a stored snapshot.
func UnmarshalSnapshot(data []byte) (Snapshot, error) {
	var s Snapshot
	err := json.Unmarshal(data, &s)
	return s, err
}
