package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	apperrors "taskboard/internal/errors"
)

// memSessionStore is an in-memory SessionStore for tests.
type memSessionStore struct {
	records map[string]string
}

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{records: map[string]string{}}
}

func (s *memSessionStore) Put(ctx context.Context, id, username string, ttl time.Duration) error {
	s.records[id] = username
	return nil
}

func (s *memSessionStore) Get(ctx context.Context, id string) (string, error) {
	return s.records[id], nil
}

func (s *memSessionStore) Delete(ctx context.Context, id string) error {
	delete(s.records, id)
	return nil
}

func TestManager_IssueResolve(t *testing.T) {
	ctx := context.Background()
	manager := NewManager("test-secret", time.Hour, newMemSessionStore())

	token, err := manager.Issue(ctx, "alice")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	username, err := manager.Resolve(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, "alice", username)
}

func TestManager_ResolveRejectsForeignToken(t *testing.T) {
	ctx := context.Background()
	store := newMemSessionStore()
	manager := NewManager("test-secret", time.Hour, store)
	other := NewManager("other-secret", time.Hour, store)

	token, err := other.Issue(ctx, "alice")
	assert.NoError(t, err)

	_, err = manager.Resolve(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestManager_ResolveRejectsGarbage(t *testing.T) {
	manager := NewManager("test-secret", time.Hour, newMemSessionStore())

	_, err := manager.Resolve(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)
}

func TestManager_Revoke(t *testing.T) {
	ctx := context.Background()
	manager := NewManager("test-secret", time.Hour, newMemSessionStore())

	token, err := manager.Issue(ctx, "alice")
	assert.NoError(t, err)

	assert.NoError(t, manager.Revoke(ctx, token))

	// Revocation wins over the still-valid cookie.
	_, err = manager.Resolve(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

	// A second revoke has no session left to end.
	err = manager.Revoke(ctx, token)
	assert.ErrorIs(t, err, apperrors.ErrNoActiveSession)
}
