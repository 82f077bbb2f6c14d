package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"

	"cyberguard-academy/internal/domain"
)

// SeedCatalog upserts catalog content into the JSONB tables. Safe to run
// repeatedly; rows are keyed by content ID.
func SeedCatalog(ctx context.Context, pool *pgxpool.Pool, quizzes []domain.Quiz, scenarios []domain.Scenario, badges []domain.Badge) error {
	for i, quiz := range quizzes {
		if err := upsert(ctx, pool, "quizzes", quiz.ID, i, quiz); err != nil {
			return err
		}
	}
	for i, scenario := range scenarios {
		if err := upsert(ctx, pool, "scenarios", scenario.ID, i, scenario); err != nil {
			return err
		}
	}
	for i, badge := range badges {
		if err := upsert(ctx, pool, "badges", badge.ID, i, badge); err != nil {
			return err
		}
	}
	return nil
}

func upsert(ctx context.Context, pool *pgxpool.Pool, table, id string, position int, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s %s: %w", table, id, err)
	}
	query := fmt.Sprintf(
		`INSERT INTO %s (id, position, data) VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET position = EXCLUDED.position, data = EXCLUDED.data`, table)
	if _, err := pool.Exec(ctx, query, id, position, data); err != nil {
		return fmt.Errorf("seed %s %s: %w", table, id, err)
	}
	return nil
}
