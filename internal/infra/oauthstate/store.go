// Package oauthstate implements the in-memory store for pending OAuth
// authorization states. States protect the callback against CSRF and replay:
// each one is random, expires after a short TTL and is consumed exactly once.
package oauthstate

import (
	"sync"
	"time"

	"vaultd/internal/domain/service"
)

// store is a mutex-guarded map keyed by the opaque state token. A restart
// drops pending states; in-flight authorizations simply have to be restarted,
// which is acceptable for a round-trip measured in seconds.
type store struct {
	mu      sync.Mutex
	pending map[string]*service.StateRecord
}

// New is the constructor for the in-memory state store.
func New() service.StateStore {
	return &store{
		pending: make(map[string]*service.StateRecord),
	}
}

// Put stores a pending state record.
func (s *store) Put(state string, rec *service.StateRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pending[state] = rec
}

// Consume removes and returns the record for a state token. The removal is
// unconditional so a replayed callback can never match the same state twice,
// even when the first use failed later in the flow.
func (s *store) Consume(state string) (*service.StateRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.pending[state]
	if !ok {
		return nil, false
	}
	delete(s.pending, state)

	return rec, true
}

// Sweep drops all records past their expiry and returns how many were removed.
func (s *store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for state, rec := range s.pending {
		if rec.Expired(now) {
			delete(s.pending, state)
			removed++
		}
	}

	return removed
}

// Len returns the number of pending records.
func (s *store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.pending)
}
