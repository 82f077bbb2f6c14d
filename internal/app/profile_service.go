package app

import (
	"context"

	"cyberguard-academy/internal/domain"
)

// PreferenceStore keeps per-user presentation preferences (currently only the
// theme flag). Single-writer-at-a-time by construction.
type PreferenceStore interface {
	DarkMode(userID string) bool
	SetDarkMode(userID string, enabled bool)
}

// ProfileService serves the profile screen: the user's stats, their attempt
// history, and the theme preference. Profile XP/streak/badge numbers are the
// seeded demo values; completed attempts do not mutate them.
type ProfileService struct {
	users    UserDirectory
	attempts AttemptStore
	prefs    PreferenceStore
}

func NewProfileService(users UserDirectory, attempts AttemptStore, prefs PreferenceStore) *ProfileService {
	return &ProfileService{users: users, attempts: attempts, prefs: prefs}
}

// ProfileView is the profile screen's read model.
type ProfileView struct {
	User     domain.User `json:"user"`
	DarkMode bool        `json:"darkMode"`
}

func (s *ProfileService) Profile(userID string) (ProfileView, error) {
	user, err := s.users.ByID(userID)
	if err != nil {
		return ProfileView{}, err
	}
	return ProfileView{
		User:     user,
		DarkMode: s.prefs.DarkMode(userID),
	}, nil
}

func (s *ProfileService) ToggleDarkMode(userID string) bool {
	next := !s.prefs.DarkMode(userID)
	s.prefs.SetDarkMode(userID, next)
	return next
}

func (s *ProfileService) History(ctx context.Context, userID string) ([]domain.Attempt, error) {
	return s.attempts.ListByUser(ctx, userID)
}
