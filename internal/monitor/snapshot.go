package monitor

import (
	"sync"
	"time"

	"github.com/iryanin/redfish-monitor/internal/redfish"
)

// Store is the single shared slot between the poller and the render loop.
// The poller replaces the whole snapshot once per cycle; the render loop
// reads it on every tick. Readers never observe a half-written snapshot
// because the write is one slot swap, never an in-place merge.
type Store struct {
	mu       sync.RWMutex
	snapshot redfish.Snapshot
	failures map[string]string
	updated  time.Time
}

// NewStore creates an empty store. Until the first Replace, Current returns
// an empty snapshot and LastUpdate reports the zero time.
func NewStore() *Store {
	return &Store{
		snapshot: redfish.Snapshot{},
		failures: map[string]string{},
	}
}

// Replace installs a complete poll cycle's result: the snapshot for every
// controller that answered, and the failure reason for every controller that
// did not. Both maps belong to the store after the call.
func (s *Store) Replace(snap redfish.Snapshot, failures map[string]string) {
	if snap == nil {
		snap = redfish.Snapshot{}
	}
	if failures == nil {
		failures = map[string]string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snap
	s.failures = failures
	s.updated = time.Now()
}

// Current returns the most recently completed snapshot. The returned map is
// shared with other readers and must be treated as read-only.
func (s *Store) Current() redfish.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot
}

// FailureReason returns why a controller has no entry in the current
// snapshot, or "" if it does have one (or no cycle has completed yet).
func (s *Store) FailureReason(addr string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failures[addr]
}

// LastUpdate returns when the current snapshot was installed.
func (s *Store) LastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}
