package memory

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"cyberguard-academy/internal/domain"
)

// CatalogLoader fetches training content from a backing store (static tables,
// Postgres, etc).
type CatalogLoader interface {
	LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	LoadScenario(ctx context.Context, scenarioID string) (domain.Scenario, error)
	ListScenarios(ctx context.Context) ([]domain.Scenario, error)
	ListBadges(ctx context.Context) ([]domain.Badge, error)
}

// CatalogRepository caches catalog content with TTL to avoid repeated loader
// hits. Lookups collapse concurrent misses through singleflight.
type CatalogRepository struct {
	loader CatalogLoader
	ttl    time.Duration
	clock  func() time.Time
	sf     singleflight.Group
	rnd    *rand.Rand
	rndMu  sync.Mutex

	mu    sync.RWMutex
	cache map[string]cachedEntry
}

type cachedEntry struct {
	value     interface{}
	expiresAt time.Time
}

func NewCatalogRepository(loader CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		loader: loader,
		ttl:    ttl,
		clock:  time.Now,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		cache:  make(map[string]cachedEntry),
	}
}

func (r *CatalogRepository) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	value, err := r.cached(ctx, "quiz:"+quizID, func() (interface{}, error) {
		return r.loader.LoadQuiz(ctx, quizID)
	})
	if err != nil {
		return domain.Quiz{}, err
	}
	return value.(domain.Quiz), nil
}

func (r *CatalogRepository) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	value, err := r.cached(ctx, "quizzes", func() (interface{}, error) {
		return r.loader.ListQuizzes(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.Quiz), nil
}

func (r *CatalogRepository) GetScenario(ctx context.Context, scenarioID string) (domain.Scenario, error) {
	value, err := r.cached(ctx, "scenario:"+scenarioID, func() (interface{}, error) {
		return r.loader.LoadScenario(ctx, scenarioID)
	})
	if err != nil {
		return domain.Scenario{}, err
	}
	return value.(domain.Scenario), nil
}

func (r *CatalogRepository) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	value, err := r.cached(ctx, "scenarios", func() (interface{}, error) {
		return r.loader.ListScenarios(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.Scenario), nil
}

func (r *CatalogRepository) ListBadges(ctx context.Context) ([]domain.Badge, error) {
	value, err := r.cached(ctx, "badges", func() (interface{}, error) {
		return r.loader.ListBadges(ctx)
	})
	if err != nil {
		return nil, err
	}
	return value.([]domain.Badge), nil
}

func (r *CatalogRepository) cached(_ context.Context, key string, load func() (interface{}, error)) (interface{}, error) {
	now := r.clock()

	r.mu.RLock()
	if entry, ok := r.cache[key]; ok && entry.expiresAt.After(now) {
		r.mu.RUnlock()
		return entry.value, nil
	}
	r.mu.RUnlock()

	value, err, _ := r.sf.Do(key, func() (interface{}, error) {
		now := r.clock()
		r.mu.RLock()
		if entry, ok := r.cache[key]; ok && entry.expiresAt.After(now) {
			r.mu.RUnlock()
			return entry.value, nil
		}
		r.mu.RUnlock()

		value, err := load()
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.cache[key] = cachedEntry{
			value:     value,
			expiresAt: now.Add(r.ttlWithJitter()),
		}
		r.mu.Unlock()
		return value, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	// add up to 10% jitter to spread expirations
	jitterMax := int64(r.ttl) / 10
	r.rndMu.Lock()
	defer r.rndMu.Unlock()
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}

// StaticCatalogLoader serves compile-time content (useful for tests/demos and
// the no-database deployment).
type StaticCatalogLoader struct {
	quizzes   []domain.Quiz
	scenarios []domain.Scenario
	badges    []domain.Badge
	quizIdx   map[string]domain.Quiz
	scenIdx   map[string]domain.Scenario
}

func NewStaticCatalogLoader(quizzes []domain.Quiz, scenarios []domain.Scenario, badges []domain.Badge) *StaticCatalogLoader {
	l := &StaticCatalogLoader{
		quizzes:   quizzes,
		scenarios: scenarios,
		badges:    badges,
		quizIdx:   make(map[string]domain.Quiz, len(quizzes)),
		scenIdx:   make(map[string]domain.Scenario, len(scenarios)),
	}
	for _, quiz := range quizzes {
		l.quizIdx[quiz.ID] = quiz
	}
	for _, scenario := range scenarios {
		l.scenIdx[scenario.ID] = scenario
	}
	return l
}

func (l *StaticCatalogLoader) LoadQuiz(_ context.Context, quizID string) (domain.Quiz, error) {
	if quiz, ok := l.quizIdx[quizID]; ok {
		return quiz, nil
	}
	return domain.Quiz{}, domain.ErrQuizNotFound
}

func (l *StaticCatalogLoader) ListQuizzes(_ context.Context) ([]domain.Quiz, error) {
	return l.quizzes, nil
}

func (l *StaticCatalogLoader) LoadScenario(_ context.Context, scenarioID string) (domain.Scenario, error) {
	if scenario, ok := l.scenIdx[scenarioID]; ok {
		return scenario, nil
	}
	return domain.Scenario{}, domain.ErrScenarioNotFound
}

func (l *StaticCatalogLoader) ListScenarios(_ context.Context) ([]domain.Scenario, error) {
	return l.scenarios, nil
}

func (l *StaticCatalogLoader) ListBadges(_ context.Context) ([]domain.Badge, error) {
	return l.badges, nil
}
