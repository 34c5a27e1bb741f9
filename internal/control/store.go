package control

import "sync/atomic"

// Store publishes immutable PlayerState snapshots to readers outside
// the update loop (the MPRIS adapter). Writers publish after every
// dispatch; readers get the most recent snapshot without locking.
type Store struct {
	v atomic.Pointer[PlayerState]
}

// NewStore creates a store seeded with st.
func NewStore(st PlayerState) *Store {
	s := &Store{}
	s.Publish(st)
	return s
}

// Publish replaces the current snapshot.
func (s *Store) Publish(st PlayerState) {
	s.v.Store(&st)
}

// Snapshot returns the most recently published state.
func (s *Store) Snapshot() PlayerState {
	return *s.v.Load()
}
