package memory

import (
	"sync"

	"cyberguard-academy/internal/app"
)

// SessionStore is an in-memory implementation of app.SessionStore.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*app.ActiveSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*app.ActiveSession),
	}
}

func (s *SessionStore) Put(active *app.ActiveSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[active.ID] = active
}

func (s *SessionStore) Get(sessionID string) (*app.ActiveSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active, ok := s.sessions[sessionID]
	return active, ok
}

func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
