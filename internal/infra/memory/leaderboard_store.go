package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"cyberguard-academy/internal/domain"
)

// LeaderboardStore aggregates attempt scores per user in memory. Seeded demo
// rows and live rows share one table; ranking is total score descending with
// a name tie-break.
type LeaderboardStore struct {
	mu    sync.RWMutex
	rows  map[string]*leaderboardRow
	clock func() time.Time
}

type leaderboardRow struct {
	userID    string
	userName  string
	avatarURL string
	total     int
	quizzes   int
	scoreSum  int
	badges    int
	level     int
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{
		rows:  make(map[string]*leaderboardRow),
		clock: time.Now,
	}
}

func (s *LeaderboardStore) Seed(_ context.Context, entries []domain.LeaderboardEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.rows[e.UserID] = &leaderboardRow{
			userID:    e.UserID,
			userName:  e.UserName,
			avatarURL: e.AvatarURL,
			total:     e.TotalScore,
			quizzes:   e.TotalQuizzes,
			scoreSum:  e.AverageScore * e.TotalQuizzes,
			badges:    e.Badges,
			level:     e.Level,
		}
	}
	return nil
}

func (s *LeaderboardStore) RecordAttempt(_ context.Context, user domain.User, attempt domain.Attempt) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.rows[user.ID]
	if !ok {
		row = &leaderboardRow{
			userID:    user.ID,
			userName:  user.Name,
			avatarURL: user.AvatarURL,
			badges:    len(user.Badges),
			level:     user.Level,
		}
		s.rows[user.ID] = row
	}
	row.total += attempt.Score
	row.scoreSum += attempt.Score
	row.quizzes++
	return nil
}

func (s *LeaderboardStore) Top(_ context.Context, limit int) (domain.Leaderboard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.LeaderboardEntry, 0, len(s.rows))
	for _, row := range s.rows {
		average := 0
		if row.quizzes > 0 {
			average = row.scoreSum / row.quizzes
		}
		entries = append(entries, domain.LeaderboardEntry{
			UserID:       row.userID,
			UserName:     row.userName,
			AvatarURL:    row.avatarURL,
			TotalScore:   row.total,
			TotalQuizzes: row.quizzes,
			AverageScore: average,
			Badges:       row.badges,
			Level:        row.level,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].UserName < entries[j].UserName
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}

	return domain.Leaderboard{Entries: entries, UpdatedAt: s.clock()}, nil
}
