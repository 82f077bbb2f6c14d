package memory

import "sync"

// PreferenceStore keeps per-user theme flags. Dark mode defaults to on, as
// the client shipped.
type PreferenceStore struct {
	mu       sync.RWMutex
	darkMode map[string]bool
}

func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{darkMode: make(map[string]bool)}
}

func (s *PreferenceStore) DarkMode(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if enabled, ok := s.darkMode[userID]; ok {
		return enabled
	}
	return true
}

func (s *PreferenceStore) SetDarkMode(userID string, enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.darkMode[userID] = enabled
}
