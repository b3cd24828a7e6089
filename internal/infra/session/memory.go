package session

import (
	"sync"
	"time"

	"booking-intake/internal/domain/auth"
	"booking-intake/internal/pkg/clock"

	"github.com/google/uuid"
)

// MemoryStore keeps admin sessions in process memory. Sessions do not survive a restart.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]auth.Session
	clock    clock.Clock
	ttl      time.Duration
}

func NewMemoryStore(clk clock.Clock, ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]auth.Session),
		clock:    clk,
		ttl:      ttl,
	}
}

func (s *MemoryStore) Create() auth.Session {
	now := s.clock.Now()
	sess := auth.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess
}

// Get returns a live session. Expired sessions are removed on access.
func (s *MemoryStore) Get(id string) (auth.Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return auth.Session{}, false
	}

	if sess.IsExpired(s.clock.Now()) {
		s.Delete(id)
		return auth.Session{}, false
	}
	return sess, true
}

func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Sweep drops every expired session and returns how many were removed.
func (s *MemoryStore) Sweep() int {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if sess.IsExpired(now) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
