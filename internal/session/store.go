package session

import (
	"sync"

	"github.com/google/uuid"
)

// Store maps session IDs to their histories. One session's flow is strictly
// synchronous, but distinct browsers hit the server concurrently, so the map
// itself is guarded.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*History
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*History)}
}

// Get returns the history for a session ID, creating it if missing. An
// empty or unknown ID yields a fresh session; the returned ID should be
// handed back to the client.
func (s *Store) Get(id string) (string, *History) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id != "" {
		if h, ok := s.sessions[id]; ok {
			return id, h
		}
	}
	id = uuid.New().String()
	h := &History{}
	s.sessions[id] = h
	return id, h
}

// Clear discards the history of one session.
func (s *Store) Clear(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}
