package memory

import (
	"context"
	"sync"

	"cyberguard-academy/internal/domain"
)

// AttemptStore is the in-memory append-only attempt history. Records live for
// the duration of the process and are never mutated or removed.
type AttemptStore struct {
	mu       sync.RWMutex
	attempts []domain.Attempt
}

func NewAttemptStore() *AttemptStore {
	return &AttemptStore{}
}

func (s *AttemptStore) Append(_ context.Context, attempt domain.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = append(s.attempts, attempt)
	return nil
}

func (s *AttemptStore) ListByUser(_ context.Context, userID string) ([]domain.Attempt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Attempt
	for _, attempt := range s.attempts {
		if attempt.UserID == userID {
			out = append(out, attempt)
		}
	}
	return out, nil
}
