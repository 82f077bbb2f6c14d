package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"cyberguard-academy/internal/app"
	"cyberguard-academy/internal/infra/memory"
)

// SessionStore is a Redis-aware implementation of app.SessionStore.
// Notes:
//   - Runners are process-local state (they own goroutines and channels), so
//     the store keeps a local map and uses Redis only to mark session
//     liveness for operational visibility.
//   - For true distribution you'd pair this with snapshot sharing keyed by
//     session ID.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
	local  *memory.SessionStore
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{
		client: client,
		ttl:    ttl,
		local:  memory.NewSessionStore(),
	}
}

func (s *SessionStore) Put(active *app.ActiveSession) {
	s.local.Put(active)
	// best-effort liveness marker
	_ = s.client.Set(context.Background(), s.key(active.ID), active.User.ID, s.ttl).Err()
}

func (s *SessionStore) Get(sessionID string) (*app.ActiveSession, bool) {
	return s.local.Get(sessionID)
}

func (s *SessionStore) Delete(sessionID string) {
	s.local.Delete(sessionID)
	_ = s.client.Del(context.Background(), s.key(sessionID)).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return "session:live:" + sessionID
}
