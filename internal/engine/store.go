package engine

import (
	"sync"

	"github.com/dm/f5mon/internal/model"
)

// Store holds the latest committed snapshot plus connection status. Commit
// atomically replaces the visible snapshot: concurrent readers observe
// either the old snapshot or the new one in full, never a mix. Committed
// snapshots are never mutated afterwards, so Read can hand out the stored
// value without deep-copying.
type Store struct {
	mu     sync.RWMutex
	snap   model.Snapshot
	status model.ConnectionStatus
}

// NewStore returns a Store in the initial "not yet connected" state: empty
// snapshot, Connected=false. Queries served before the first successful
// poll see this well-defined empty view rather than an error.
func NewStore() *Store {
	return &Store{}
}

// Read returns the latest committed snapshot and connection status. It
// never blocks on an in-flight poll cycle.
func (s *Store) Read() (model.Snapshot, model.ConnectionStatus) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap, s.status
}

// Commit replaces the visible snapshot and marks the connection healthy,
// clearing any error recorded by a previous failed fetch.
func (s *Store) Commit(snap model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	s.status = model.ConnectionStatus{
		Connected:   true,
		LastUpdated: snap.CapturedAt,
	}
}

// Fail records a fetch failure. The previously committed snapshot stays
// visible and LastUpdated keeps the last successful fetch time; only the
// connectivity flag and error change.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Connected = false
	s.status.LastError = err
}
