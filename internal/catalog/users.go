package catalog

import "cyberguard-academy/internal/domain"

// DemoUser is the profile handed out by the mock authentication flow. Its XP,
// level, streak and badge stats are static demo values.
func DemoUser() domain.User {
	return domain.User{
		ID:        "demo-1",
		Name:      "Alex Chen",
		Email:     "alex.chen@example.com",
		Role:      "user",
		AvatarURL: "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg?auto=compress&cs=tinysrgb&w=400",
		XP:        2450,
		Level:     8,
		Streak:    12,
		Badges:    []domain.Badge{},
	}
}

// SeedLeaderboard returns the demo scoreboard the service starts with.
// Live attempt scores are layered on top by the leaderboard store.
func SeedLeaderboard() []domain.LeaderboardEntry {
	return []domain.LeaderboardEntry{
		{
			UserID:       "demo-1",
			UserName:     "Alex Chen",
			AvatarURL:    "https://images.pexels.com/photos/1040880/pexels-photo-1040880.jpeg?auto=compress&cs=tinysrgb&w=400",
			TotalScore:   2450,
			TotalQuizzes: 25,
			AverageScore: 92,
			Badges:       12,
			Level:        8,
		},
		{
			UserID:       "demo-2",
			UserName:     "Sarah Johnson",
			AvatarURL:    "https://images.pexels.com/photos/1542085/pexels-photo-1542085.jpeg?auto=compress&cs=tinysrgb&w=400",
			TotalScore:   2380,
			TotalQuizzes: 28,
			AverageScore: 89,
			Badges:       10,
			Level:        7,
		},
		{
			UserID:       "demo-3",
			UserName:     "Mike Rodriguez",
			AvatarURL:    "https://images.pexels.com/photos/1239288/pexels-photo-1239288.jpeg?auto=compress&cs=tinysrgb&w=400",
			TotalScore:   2200,
			TotalQuizzes: 22,
			AverageScore: 94,
			Badges:       8,
			Level:        7,
		},
	}
}
