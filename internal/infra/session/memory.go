package session

import (
	"context"
	"sync"
	"time"

	"storefront/internal/pkg/clock"
	"storefront/internal/usecase/shared"

	"github.com/google/uuid"
)

type entry struct {
	state     *shared.SessionState
	expiresAt time.Time
}

// MemoryStore keeps session state in process memory with a sliding TTL.
// Loading an unknown or expired session yields a fresh empty state, so
// callers never have to special-case first contact. Load and Save
// exchange deep copies: concurrent requests on the same session id each
// work on their own state, and last save wins.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]entry
	ttl     time.Duration
	clock   clock.Clock
	done    chan struct{}
	once    sync.Once
}

func NewMemoryStore(ttl time.Duration, clk clock.Clock) *MemoryStore {
	s := &MemoryStore{
		entries: make(map[uuid.UUID]entry),
		ttl:     ttl,
		clock:   clk,
		done:    make(chan struct{}),
	}
	go s.sweep()
	return s
}

func (s *MemoryStore) Load(_ context.Context, sessionID uuid.UUID) (*shared.SessionState, error) {
	s.mu.RLock()
	e, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok || !s.clock.Now().Before(e.expiresAt) {
		return shared.NewSessionState(), nil
	}
	return e.state.Clone(), nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID uuid.UUID, state *shared.SessionState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = entry{
		state:     state.Clone(),
		expiresAt: s.clock.Now().Add(s.ttl),
	}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sessionID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

func (s *MemoryStore) Close() {
	s.once.Do(func() { close(s.done) })
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := s.clock.Now()
			s.mu.Lock()
			for id, e := range s.entries {
				if !now.Before(e.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
