package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskboard/internal/auth"
	apperrors "taskboard/internal/errors"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration, login, and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, username, password string) (identity, token string, err error)
	Login(ctx context.Context, username, password string) (identity, token string, err error)
	Logout(ctx context.Context, token string) error
	CurrentIdentity(ctx context.Context, token string) (string, error)
}

type authService struct {
	users    repository.UserRepository
	sessions *auth.Manager
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, sessions *auth.Manager) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
	}
}

// Register stores a new credential record and opens a session for it.
// Usernames are matched case-insensitively: "Alice" collides with "alice".
func (s *authService) Register(ctx context.Context, username, password string) (string, string, error) {
	username = normalizeUsername(username)

	existing, err := s.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return "", "", apperrors.ErrDuplicateUser
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", "", fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", "", fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.sessions.Issue(ctx, username)
	if err != nil {
		return "", "", fmt.Errorf("issue session: %w", err)
	}
	return username, token, nil
}

// Login verifies credentials and opens a session. No record is written.
func (s *authService) Login(ctx context.Context, username, password string) (string, string, error) {
	username = normalizeUsername(username)

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", "", apperrors.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(ctx, username)
	if err != nil {
		return "", "", fmt.Errorf("issue session: %w", err)
	}
	return username, token, nil
}

// Logout revokes the session bound to token. Fails with ErrNoActiveSession
// when the session was already ended.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// CurrentIdentity returns the session-bound username or ErrUnauthenticated.
func (s *authService) CurrentIdentity(ctx context.Context, token string) (string, error) {
	return s.sessions.Resolve(ctx, token)
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
