package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"cyberguard-academy/internal/domain"
	"cyberguard-academy/internal/infra/memory"
)

// CatalogRepository caches serialized catalog content in Redis and falls back
// to a loader on cache miss. Entries are stored as:
//
//	SET catalog:quiz:{quizID}     {json}  EX ttl
//	SET catalog:scenario:{id}     {json}  EX ttl
//	SET catalog:quizzes           {json}  EX ttl (and scenarios/badges likewise)
type CatalogRepository struct {
	client *redis.Client
	loader memory.CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex
}

func NewCatalogRepository(client *redis.Client, loader memory.CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	var quiz domain.Quiz
	err := r.cached(ctx, "catalog:quiz:"+quizID, &quiz, func() (interface{}, error) {
		return r.loader.LoadQuiz(ctx, quizID)
	})
	return quiz, err
}

func (r *CatalogRepository) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	var quizzes []domain.Quiz
	err := r.cached(ctx, "catalog:quizzes", &quizzes, func() (interface{}, error) {
		return r.loader.ListQuizzes(ctx)
	})
	return quizzes, err
}

func (r *CatalogRepository) GetScenario(ctx context.Context, scenarioID string) (domain.Scenario, error) {
	var scenario domain.Scenario
	err := r.cached(ctx, "catalog:scenario:"+scenarioID, &scenario, func() (interface{}, error) {
		return r.loader.LoadScenario(ctx, scenarioID)
	})
	return scenario, err
}

func (r *CatalogRepository) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	var scenarios []domain.Scenario
	err := r.cached(ctx, "catalog:scenarios", &scenarios, func() (interface{}, error) {
		return r.loader.ListScenarios(ctx)
	})
	return scenarios, err
}

func (r *CatalogRepository) ListBadges(ctx context.Context) ([]domain.Badge, error) {
	var badges []domain.Badge
	err := r.cached(ctx, "catalog:badges", &badges, func() (interface{}, error) {
		return r.loader.ListBadges(ctx)
	})
	return badges, err
}

// cached fills out from the Redis key when present, otherwise loads through
// singleflight and writes the entry back with TTL. Cache write failures are
// best-effort; the loaded value is still returned.
func (r *CatalogRepository) cached(ctx context.Context, key string, out interface{}, load func() (interface{}, error)) error {
	if data, err := r.client.Get(ctx, key).Bytes(); err == nil {
		return json.Unmarshal(data, out)
	}

	value, err, _ := r.sf.Do(key, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if data, err := r.client.Get(ctx, key).Bytes(); err == nil {
			return data, nil
		}

		value, err := load()
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(value)
		if err != nil {
			return nil, err
		}
		_ = r.client.Set(ctx, key, data, r.ttlWithJitter()).Err()
		return data, nil
	})
	if err != nil {
		return err
	}
	return json.Unmarshal(value.([]byte), out)
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
