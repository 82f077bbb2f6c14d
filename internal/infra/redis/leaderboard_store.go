package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"cyberguard-academy/internal/domain"
)

const (
	leaderboardScoreKey    = "leaderboard:score"
	leaderboardQuizzesKey  = "leaderboard:quizzes"
	leaderboardScoreSumKey = "leaderboard:scoresum"
	leaderboardMetaKey     = "leaderboard:meta"
)

// LeaderboardStore keeps the scoreboard in a Redis ZSet keyed by total score,
// with per-user counters and display metadata in companion hashes.
type LeaderboardStore struct {
	client *redis.Client
	clock  func() time.Time
}

type leaderboardMeta struct {
	UserName  string `json:"userName"`
	AvatarURL string `json:"avatar,omitempty"`
	Badges    int    `json:"badges"`
	Level     int    `json:"level"`
}

func NewLeaderboardStore(client *redis.Client) *LeaderboardStore {
	return &LeaderboardStore{client: client, clock: time.Now}
}

func (s *LeaderboardStore) Seed(ctx context.Context, entries []domain.LeaderboardEntry) error {
	pipe := s.client.Pipeline()
	for _, e := range entries {
		meta, err := json.Marshal(leaderboardMeta{
			UserName:  e.UserName,
			AvatarURL: e.AvatarURL,
			Badges:    e.Badges,
			Level:     e.Level,
		})
		if err != nil {
			return err
		}
		pipe.ZAdd(ctx, leaderboardScoreKey, redis.Z{Score: float64(e.TotalScore), Member: e.UserID})
		pipe.HSet(ctx, leaderboardQuizzesKey, e.UserID, e.TotalQuizzes)
		pipe.HSet(ctx, leaderboardScoreSumKey, e.UserID, e.AverageScore*e.TotalQuizzes)
		pipe.HSet(ctx, leaderboardMetaKey, e.UserID, meta)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *LeaderboardStore) RecordAttempt(ctx context.Context, user domain.User, attempt domain.Attempt) error {
	meta, err := json.Marshal(leaderboardMeta{
		UserName:  user.Name,
		AvatarURL: user.AvatarURL,
		Badges:    len(user.Badges),
		Level:     user.Level,
	})
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.ZIncrBy(ctx, leaderboardScoreKey, float64(attempt.Score), user.ID)
	pipe.HIncrBy(ctx, leaderboardQuizzesKey, user.ID, 1)
	pipe.HIncrBy(ctx, leaderboardScoreSumKey, user.ID, int64(attempt.Score))
	pipe.HSet(ctx, leaderboardMetaKey, user.ID, meta)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *LeaderboardStore) Top(ctx context.Context, limit int) (domain.Leaderboard, error) {
	if limit <= 0 {
		limit = 10
	}
	// ZREVRANGE returns highest to lowest.
	results, err := s.client.ZRevRangeWithScores(ctx, leaderboardScoreKey, 0, int64(limit)-1).Result()
	if err != nil {
		return domain.Leaderboard{}, err
	}

	quizzes, _ := s.client.HGetAll(ctx, leaderboardQuizzesKey).Result()
	scoreSums, _ := s.client.HGetAll(ctx, leaderboardScoreSumKey).Result()
	metas, _ := s.client.HGetAll(ctx, leaderboardMetaKey).Result()

	entries := make([]domain.LeaderboardEntry, len(results))
	for i, result := range results {
		userID := result.Member.(string)
		entry := domain.LeaderboardEntry{
			UserID:     userID,
			TotalScore: int(result.Score),
			Rank:       i + 1,
		}
		if raw, ok := metas[userID]; ok {
			var meta leaderboardMeta
			if err := json.Unmarshal([]byte(raw), &meta); err == nil {
				entry.UserName = meta.UserName
				entry.AvatarURL = meta.AvatarURL
				entry.Badges = meta.Badges
				entry.Level = meta.Level
			}
		}
		if n, err := strconv.Atoi(quizzes[userID]); err == nil {
			entry.TotalQuizzes = n
		}
		if sum, err := strconv.Atoi(scoreSums[userID]); err == nil && entry.TotalQuizzes > 0 {
			entry.AverageScore = sum / entry.TotalQuizzes
		}
		entries[i] = entry
	}

	return domain.Leaderboard{Entries: entries, UpdatedAt: s.clock()}, nil
}
