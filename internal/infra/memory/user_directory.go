package memory

import "cyberguard-academy/internal/domain"

// UserDirectory is the demo implementation of app.UserDirectory: one seeded
// profile that every mock login resolves to.
type UserDirectory struct {
	demo domain.User
}

func NewUserDirectory(demo domain.User) *UserDirectory {
	return &UserDirectory{demo: demo}
}

func (d *UserDirectory) Demo() domain.User {
	return d.demo
}

func (d *UserDirectory) ByID(userID string) (domain.User, error) {
	if userID == d.demo.ID {
		return d.demo, nil
	}
	return domain.User{}, domain.ErrUserNotFound
}
