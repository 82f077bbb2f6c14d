package app

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cyberguard-academy/internal/domain"
	"cyberguard-academy/internal/session"
)

// CatalogRepository serves training content (from cache/backing store).
type CatalogRepository interface {
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error)
	ListScenarios(ctx context.Context) ([]domain.Scenario, error)
	GetScenario(ctx context.Context, scenarioID string) (domain.Scenario, error)
	ListBadges(ctx context.Context) ([]domain.Badge, error)
}

// SessionStore tracks active runs (in-memory, Redis-marked, etc).
type SessionStore interface {
	Put(s *ActiveSession)
	Get(sessionID string) (*ActiveSession, bool)
	Delete(sessionID string)
}

// AttemptStore is the append-only attempt history.
type AttemptStore interface {
	Append(ctx context.Context, attempt domain.Attempt) error
	ListByUser(ctx context.Context, userID string) ([]domain.Attempt, error)
}

// LeaderboardStore aggregates completed attempts into the scoreboard.
type LeaderboardStore interface {
	Seed(ctx context.Context, entries []domain.LeaderboardEntry) error
	RecordAttempt(ctx context.Context, user domain.User, attempt domain.Attempt) error
	Top(ctx context.Context, limit int) (domain.Leaderboard, error)
}

// ActiveSession binds one Runner to the user and content it runs. Exactly one
// of Quiz/Scenario is set, matching the mode.
type ActiveSession struct {
	ID       string
	User     domain.User
	Mode     session.Mode
	Quiz     *domain.Quiz
	Scenario *domain.Scenario
	Runner   *session.Runner

	results chan Completed
}

// Completed pairs the engine's final result with the attempt record built
// from it.
type Completed struct {
	Result  session.Result
	Attempt domain.Attempt
}

// Results delivers the session outcome exactly once, whether completion came
// from the user or from the countdown.
func (s *ActiveSession) Results() <-chan Completed {
	return s.results
}

// ActivityID names the content this session runs.
func (s *ActiveSession) ActivityID() string {
	if s.Quiz != nil {
		return s.Quiz.ID
	}
	return s.Scenario.ID
}

// TrainingService contains the quiz and scenario use cases: catalog browsing,
// session lifecycle, and attempt recording. The Runner computes scores; this
// service is the caller that turns a final result into the immutable attempt
// record and feeds the leaderboard.
type TrainingService struct {
	catalog     CatalogRepository
	sessions    SessionStore
	attempts    AttemptStore
	leaderboard LeaderboardStore
	now         func() time.Time
	newID       func() string
}

func NewTrainingService(catalog CatalogRepository, sessions SessionStore, attempts AttemptStore, leaderboard LeaderboardStore) *TrainingService {
	return &TrainingService{
		catalog:     catalog,
		sessions:    sessions,
		attempts:    attempts,
		leaderboard: leaderboard,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

// NewTrainingServiceWithClock is test-only for deterministic attempt timestamps.
func NewTrainingServiceWithClock(catalog CatalogRepository, sessions SessionStore, attempts AttemptStore, leaderboard LeaderboardStore, now func() time.Time) *TrainingService {
	s := NewTrainingService(catalog, sessions, attempts, leaderboard)
	s.now = now
	return s
}

func (s *TrainingService) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	return s.catalog.ListQuizzes(ctx)
}

func (s *TrainingService) GetQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	return s.catalog.GetQuiz(ctx, quizID)
}

func (s *TrainingService) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	return s.catalog.ListScenarios(ctx)
}

func (s *TrainingService) ListBadges(ctx context.Context) ([]domain.Badge, error) {
	return s.catalog.ListBadges(ctx)
}

func (s *TrainingService) Leaderboard(ctx context.Context, limit int) (domain.Leaderboard, error) {
	return s.leaderboard.Top(ctx, limit)
}

func (s *TrainingService) AttemptHistory(ctx context.Context, userID string) ([]domain.Attempt, error) {
	return s.attempts.ListByUser(ctx, userID)
}

// StartQuiz creates a timed quiz run for the user and begins its countdown.
func (s *TrainingService) StartQuiz(ctx context.Context, user domain.User, quizID string) (*ActiveSession, error) {
	quiz, err := s.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	runner, err := session.New(quiz.Questions, session.Config{
		Mode:      session.ModeQuiz,
		TimeLimit: quiz.TimeLimit,
	})
	if err != nil {
		return nil, err
	}

	active := &ActiveSession{
		ID:      s.newID(),
		User:    user,
		Mode:    session.ModeQuiz,
		Quiz:    &quiz,
		Runner:  runner,
		results: make(chan Completed, 1),
	}
	s.sessions.Put(active)
	go s.watch(active)
	runner.Start()
	return active, nil
}

// StartScenario creates an untimed scenario walkthrough for the user.
func (s *TrainingService) StartScenario(ctx context.Context, user domain.User, scenarioID string) (*ActiveSession, error) {
	scenario, err := s.catalog.GetScenario(ctx, scenarioID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Question, len(scenario.Items))
	for i, item := range scenario.Items {
		items[i] = item.Question
	}
	runner, err := session.New(items, session.Config{Mode: session.ModeScenario})
	if err != nil {
		return nil, err
	}

	active := &ActiveSession{
		ID:       s.newID(),
		User:     user,
		Mode:     session.ModeScenario,
		Scenario: &scenario,
		Runner:   runner,
		results:  make(chan Completed, 1),
	}
	s.sessions.Put(active)
	go s.watch(active)
	return active, nil
}

// watch waits for the run to finish, persists the attempt, updates the
// leaderboard, and announces the outcome on the session's results channel.
// Completion reaches Done exactly once, so the attempt is recorded exactly once.
func (s *TrainingService) watch(active *ActiveSession) {
	result, ok := <-active.Runner.Done()
	if !ok {
		// Abandoned before completion; nothing to record.
		return
	}
	ctx := context.Background()

	attempt := domain.Attempt{
		ID:             s.newID(),
		UserID:         active.User.ID,
		ActivityID:     active.ActivityID(),
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		CompletedAt:    s.now(),
		TimeSpent:      result.TimeSpent,
	}
	_ = s.attempts.Append(ctx, attempt)
	_ = s.leaderboard.RecordAttempt(ctx, active.User, attempt)

	s.sessions.Delete(active.ID)
	active.results <- Completed{Result: result, Attempt: attempt}
}

// Snapshot returns the current view of a live session, for clients that
// reconnect mid-run.
func (s *TrainingService) Snapshot(sessionID string) (session.Snapshot, error) {
	active, ok := s.sessions.Get(sessionID)
	if !ok {
		return session.Snapshot{}, domain.ErrSessionNotFound
	}
	return active.Runner.Snapshot(), nil
}

// Select records the chosen option for the session's current item.
func (s *TrainingService) Select(sessionID string, optionIndex int) (session.Snapshot, error) {
	active, ok := s.sessions.Get(sessionID)
	if !ok {
		return session.Snapshot{}, domain.ErrSessionNotFound
	}
	if err := active.Runner.Select(optionIndex); err != nil {
		return session.Snapshot{}, err
	}
	return active.Runner.Snapshot(), nil
}

// Advance moves the session forward; at the last item this completes the run
// and the outcome arrives on the session's Results channel.
func (s *TrainingService) Advance(sessionID string) (session.Snapshot, error) {
	active, ok := s.sessions.Get(sessionID)
	if !ok {
		return session.Snapshot{}, domain.ErrSessionNotFound
	}
	if _, err := active.Runner.Advance(); err != nil {
		return session.Snapshot{}, err
	}
	return active.Runner.Snapshot(), nil
}

// Retreat moves a quiz session back one item without resetting its selection.
func (s *TrainingService) Retreat(sessionID string) (session.Snapshot, error) {
	active, ok := s.sessions.Get(sessionID)
	if !ok {
		return session.Snapshot{}, domain.ErrSessionNotFound
	}
	if err := active.Runner.Retreat(); err != nil {
		return session.Snapshot{}, err
	}
	return active.Runner.Snapshot(), nil
}

// Finish completes the session early; remaining items score as wrong.
func (s *TrainingService) Finish(sessionID string) error {
	active, ok := s.sessions.Get(sessionID)
	if !ok {
		return domain.ErrSessionNotFound
	}
	active.Runner.Complete()
	return nil
}

// Abandon discards an unfinished session: the countdown is torn down and no
// attempt is recorded.
func (s *TrainingService) Abandon(sessionID string) {
	active, ok := s.sessions.Get(sessionID)
	if !ok {
		return
	}
	if snap := active.Runner.Snapshot(); !snap.Completed {
		active.Runner.Close()
		s.sessions.Delete(sessionID)
	}
}
