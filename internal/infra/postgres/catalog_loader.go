package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"cyberguard-academy/internal/domain"
)

// CatalogLoader loads catalog content stored as JSONB rows.
type CatalogLoader struct {
	pool *pgxpool.Pool
}

func NewCatalogLoader(pool *pgxpool.Pool) *CatalogLoader {
	return &CatalogLoader{pool: pool}
}

func (l *CatalogLoader) LoadQuiz(ctx context.Context, quizID string) (domain.Quiz, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM quizzes WHERE id=$1`, quizID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("load quiz: %w", err)
	}
	var quiz domain.Quiz
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return domain.Quiz{}, fmt.Errorf("unmarshal quiz: %w", err)
	}
	return quiz, nil
}

func (l *CatalogLoader) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM quizzes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	var quizzes []domain.Quiz
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		var quiz domain.Quiz
		if err := json.Unmarshal(raw, &quiz); err != nil {
			return nil, fmt.Errorf("unmarshal quiz: %w", err)
		}
		quizzes = append(quizzes, quiz)
	}
	return quizzes, rows.Err()
}

func (l *CatalogLoader) LoadScenario(ctx context.Context, scenarioID string) (domain.Scenario, error) {
	var raw []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM scenarios WHERE id=$1`, scenarioID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Scenario{}, domain.ErrScenarioNotFound
	}
	if err != nil {
		return domain.Scenario{}, fmt.Errorf("load scenario: %w", err)
	}
	var scenario domain.Scenario
	if err := json.Unmarshal(raw, &scenario); err != nil {
		return domain.Scenario{}, fmt.Errorf("unmarshal scenario: %w", err)
	}
	return scenario, nil
}

func (l *CatalogLoader) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM scenarios ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	defer rows.Close()

	var scenarios []domain.Scenario
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan scenario: %w", err)
		}
		var scenario domain.Scenario
		if err := json.Unmarshal(raw, &scenario); err != nil {
			return nil, fmt.Errorf("unmarshal scenario: %w", err)
		}
		scenarios = append(scenarios, scenario)
	}
	return scenarios, rows.Err()
}

func (l *CatalogLoader) ListBadges(ctx context.Context) ([]domain.Badge, error) {
	rows, err := l.pool.Query(ctx, `SELECT data FROM badges ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	defer rows.Close()

	var badges []domain.Badge
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		var badge domain.Badge
		if err := json.Unmarshal(raw, &badge); err != nil {
			return nil, fmt.Errorf("unmarshal badge: %w", err)
		}
		badges = append(badges, badge)
	}
	return badges, rows.Err()
}
