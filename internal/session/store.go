// Package session holds the in-memory registry of active conversations for
// the HTTP surface. Each session owns one dialogue state; a per-session
// lock serializes turns so a turn always runs to completion before the
// next is accepted. Nothing is persisted across process restarts.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/franchise-advisor/internal/dialogue"
)

// defaultIdleTTL is how long an untouched session survives before the next
// Create sweeps it away.
const defaultIdleTTL = 2 * time.Hour

// Session pairs a conversation state with its identity and turn lock.
type Session struct {
	ID         uuid.UUID
	CreatedAt  time.Time
	lastActive time.Time

	mu    sync.Mutex
	state *dialogue.State
}

// Do runs fn while holding the session's turn lock. All reads and writes of
// the dialogue state go through here.
func (s *Session) Do(fn func(st *dialogue.State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastActive = time.Now()
	fn(s.state)
}

// Store is the registry of live sessions.
type Store struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	idleTTL  time.Duration
}

// NewStore creates an empty session registry. idleTTL <= 0 selects the
// default.
func NewStore(idleTTL time.Duration) *Store {
	if idleTTL <= 0 {
		idleTTL = defaultIdleTTL
	}
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		idleTTL:  idleTTL,
	}
}

// Create registers a fresh conversation and returns its session. Idle
// sessions past the TTL are swept opportunistically here, keeping the map
// bounded without a background goroutine.
func (s *Store) Create() *Session {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := now.Sub(sess.lastActive) > s.idleTTL
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
		}
	}

	sess := &Session{
		ID:         uuid.New(),
		CreatedAt:  now,
		lastActive: now,
		state:      dialogue.NewState(),
	}
	s.sessions[sess.ID] = sess
	return sess
}

// Get looks up a live session by ID.
func (s *Store) Get(id uuid.UUID) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// Delete removes a session.
func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
