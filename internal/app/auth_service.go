package app

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cyberguard-academy/internal/domain"
)

// UserDirectory resolves user profiles. The demo directory accepts any
// credentials and hands out the seeded profile; authentication is mocked.
type UserDirectory interface {
	Demo() domain.User
	ByID(userID string) (domain.User, error)
}

// AuthService issues and validates bearer tokens for the mock login flow.
// Credentials are never checked against anything; every login succeeds with
// the demo profile.
type AuthService struct {
	users    UserDirectory
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time
}

func NewAuthService(users UserDirectory, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:    users,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		now:      time.Now,
	}
}

// Login accepts any email/password pair and returns the demo profile plus a
// signed token.
func (s *AuthService) Login(email, password string) (domain.User, string, error) {
	user := s.users.Demo()
	token, err := s.issueToken(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Register behaves like Login but stamps the supplied name and email onto the
// demo profile. Nothing is persisted.
func (s *AuthService) Register(name, email, password string) (domain.User, string, error) {
	user := s.users.Demo()
	if name != "" {
		user.Name = name
	}
	if email != "" {
		user.Email = email
	}
	token, err := s.issueToken(user)
	if err != nil {
		return domain.User{}, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token back to its user.
func (s *AuthService) Authenticate(tokenString string) (domain.User, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return domain.User{}, domain.ErrInvalidToken
	}
	return s.users.ByID(claims.Subject)
}

func (s *AuthService) issueToken(user domain.User) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
