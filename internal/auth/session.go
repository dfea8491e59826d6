package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "taskboard/internal/errors"
)

// CookieName is the cookie carrying the session token.
const CookieName = "taskboard_session"

// ContextKeyIdentity is the echo context key under which middleware stores
// the resolved session username.
const ContextKeyIdentity = "identity"

// Claims is the session cookie payload. The jti points at the server-side
// session record.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Manager issues, resolves, and revokes cookie-bound sessions. Tokens are
// HMAC-signed JWTs whose jti keys a redis record with the session TTL. The
// record is the source of truth: revocation wins over a still-valid cookie.
type Manager struct {
	secret []byte
	ttl    time.Duration
	store  SessionStore
}

// NewManager creates a session manager with the given signing secret.
func NewManager(secret string, ttl time.Duration, store SessionStore) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		store:  store,
	}
}

// TTL returns the configured session lifetime, used for cookie expiry.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue establishes a session bound to username and returns the signed token.
func (m *Manager) Issue(ctx context.Context, username string) (string, error) {
	id := uuid.New().String()
	now := time.Now()
	claims := &Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	if err := m.store.Put(ctx, id, username, m.ttl); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

// Resolve returns the identity bound to token, or ErrUnauthenticated when
// the token is invalid, expired, or its session record is gone.
func (m *Manager) Resolve(ctx context.Context, token string) (string, error) {
	claims, err := m.parse(token)
	if err != nil {
		return "", apperrors.ErrUnauthenticated
	}
	username, err := m.store.Get(ctx, claims.ID)
	if err != nil || username == "" || username != claims.Username {
		return "", apperrors.ErrUnauthenticated
	}
	return username, nil
}

// Revoke ends the session bound to token. Revoking a token whose session
// record is already gone fails with ErrNoActiveSession.
func (m *Manager) Revoke(ctx context.Context, token string) error {
	claims, err := m.parse(token)
	if err != nil {
		return apperrors.ErrNoActiveSession
	}
	username, err := m.store.Get(ctx, claims.ID)
	if err != nil || username == "" {
		return apperrors.ErrNoActiveSession
	}
	return m.store.Delete(ctx, claims.ID)
}

func (m *Manager) parse(token string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid || claims.ID == "" {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
