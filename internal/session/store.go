package session

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/types"
)

// Store keeps live sessions in memory, keyed by a random id.
type Store struct {
	deps Deps

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewStore returns an empty store whose sessions share deps.
func NewStore(deps Deps) *Store {
	return &Store{deps: deps, sessions: make(map[string]*Session)}
}

// Create starts a session over doc, or a default resume when doc is nil.
func (st *Store) Create(doc *types.Resume) *Session {
	s := New(uuid.NewString(), doc, st.deps)

	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()

	log.Printf("[SESSION] created %s", s.ID)
	return s
}

// Get returns the session with id.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Delete drops the session with id and reports whether it existed.
func (st *Store) Delete(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	if _, ok := st.sessions[id]; !ok {
		return false
	}
	delete(st.sessions, id)
	return true
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions unused for longer than idle and returns how many were dropped.
func (st *Store) Sweep(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	st.mu.Lock()
	defer st.mu.Unlock()
	n := 0
	for id, s := range st.sessions {
		if s.LastUsed().Before(cutoff) {
			delete(st.sessions, id)
			n++
		}
	}
	if n > 0 {
		log.Printf("[SESSION] swept %d idle sessions", n)
	}
	return n
}
