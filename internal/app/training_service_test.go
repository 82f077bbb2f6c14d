package app_test

import (
	"context"
	"testing"
	"time"

	"cyberguard-academy/internal/app"
	"cyberguard-academy/internal/catalog"
	"cyberguard-academy/internal/domain"
	"cyberguard-academy/internal/infra/memory"
)

type testEnv struct {
	service     *app.TrainingService
	sessions    *memory.SessionStore
	attempts    *memory.AttemptStore
	leaderboard *memory.LeaderboardStore
}

func newTestEnv() *testEnv {
	loader := memory.NewStaticCatalogLoader(catalog.Quizzes(), catalog.Scenarios(), catalog.Badges())
	repo := memory.NewCatalogRepository(loader, 5*time.Minute)
	sessions := memory.NewSessionStore()
	attempts := memory.NewAttemptStore()
	leaderboard := memory.NewLeaderboardStore()
	return &testEnv{
		service:     app.NewTrainingService(repo, sessions, attempts, leaderboard),
		sessions:    sessions,
		attempts:    attempts,
		leaderboard: leaderboard,
	}
}

func waitForResult(t *testing.T, active *app.ActiveSession) app.Completed {
	t.Helper()
	select {
	case completed := <-active.Results():
		return completed
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for session result")
		return app.Completed{}
	}
}

func TestStartQuizUnknownID(t *testing.T) {
	env := newTestEnv()
	_, err := env.service.StartQuiz(context.Background(), catalog.DemoUser(), "no-such-quiz")
	if err != domain.ErrQuizNotFound {
		t.Fatalf("expected ErrQuizNotFound, got %v", err)
	}
}

func TestQuizFlowRecordsAttempt(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	user := catalog.DemoUser()

	active, err := env.service.StartQuiz(ctx, user, "phishing-fundamentals")
	if err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	if active.Quiz == nil || len(active.Quiz.Questions) != 5 {
		t.Fatalf("expected 5-question quiz, got %+v", active.Quiz)
	}

	// Answer every question correctly and walk to completion.
	for i, q := range active.Quiz.Questions {
		if _, err := env.service.Select(active.ID, q.CorrectIndex); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		if _, err := env.service.Advance(active.ID); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	completed := waitForResult(t, active)
	if completed.Result.Score != 100 {
		t.Fatalf("expected perfect score, got %d", completed.Result.Score)
	}
	if completed.Attempt.ActivityID != "phishing-fundamentals" || completed.Attempt.TotalQuestions != 5 {
		t.Fatalf("unexpected attempt %+v", completed.Attempt)
	}

	history, err := env.service.AttemptHistory(ctx, user.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != completed.Attempt.ID {
		t.Fatalf("expected recorded attempt, got %+v", history)
	}

	if _, ok := env.sessions.Get(active.ID); ok {
		t.Fatalf("expected session torn down after completion")
	}

	lb, err := env.service.Leaderboard(ctx, 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	found := false
	for _, e := range lb.Entries {
		if e.UserID == user.ID && e.TotalQuizzes == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected attempt reflected on leaderboard, got %+v", lb.Entries)
	}
}

func TestScenarioFlow(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	active, err := env.service.StartScenario(ctx, catalog.DemoUser(), "threat-spotting")
	if err != nil {
		t.Fatalf("start scenario: %v", err)
	}
	items := active.Scenario.Items

	// First item right, second wrong: round(100*1/2) = 50.
	if _, err := env.service.Select(active.ID, items[0].CorrectIndex); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := env.service.Advance(active.ID); err != nil {
		t.Fatalf("advance: %v", err)
	}
	wrong := (items[1].CorrectIndex + 1) % len(items[1].Options)
	if _, err := env.service.Select(active.ID, wrong); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := env.service.Advance(active.ID); err != nil {
		t.Fatalf("advance: %v", err)
	}

	completed := waitForResult(t, active)
	if completed.Result.Score != 50 {
		t.Fatalf("expected score 50, got %d", completed.Result.Score)
	}
	if completed.Result.XP != 0 || completed.Attempt.TimeSpent != 0 {
		t.Fatalf("scenario mode awards no XP and tracks no time, got %+v", completed.Result)
	}
}

func TestFinishEarly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	active, err := env.service.StartQuiz(ctx, catalog.DemoUser(), "password-security")
	if err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	if _, err := env.service.Select(active.ID, active.Quiz.Questions[0].CorrectIndex); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := env.service.Finish(active.ID); err != nil {
		t.Fatalf("finish: %v", err)
	}

	completed := waitForResult(t, active)
	// 1 of 4 correct, unanswered count wrong: round(100/4) = 25.
	if completed.Result.Score != 25 {
		t.Fatalf("expected score 25, got %d", completed.Result.Score)
	}
}

func TestAbandonRecordsNothing(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	user := catalog.DemoUser()

	active, err := env.service.StartQuiz(ctx, user, "malware-threats")
	if err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	env.service.Abandon(active.ID)

	if _, ok := env.sessions.Get(active.ID); ok {
		t.Fatalf("expected abandoned session removed")
	}
	history, err := env.service.AttemptHistory(ctx, user.ID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("expected no attempt for abandoned session, got %+v", history)
	}
}

func TestSnapshotOfLiveSession(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	active, err := env.service.StartQuiz(ctx, catalog.DemoUser(), "password-security")
	if err != nil {
		t.Fatalf("start quiz: %v", err)
	}
	defer env.service.Abandon(active.ID)

	snap, err := env.service.Snapshot(active.ID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Position != 0 || snap.Total != len(active.Quiz.Questions) {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.Remaining <= 0 || snap.Remaining > active.Quiz.TimeLimit {
		t.Fatalf("expected a running countdown within budget, got %d", snap.Remaining)
	}

	if _, err := env.service.Snapshot("missing"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestActionsOnUnknownSession(t *testing.T) {
	env := newTestEnv()
	if _, err := env.service.Select("missing", 0); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := env.service.Advance("missing"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
	if err := env.service.Finish("missing"); err != domain.ErrSessionNotFound {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
