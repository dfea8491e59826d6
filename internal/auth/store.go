package auth

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore persists server-side session records.
type SessionStore interface {
	Put(ctx context.Context, id, username string, ttl time.Duration) error
	Get(ctx context.Context, id string) (string, error)
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps one redis key per session id, expiring with the
// session TTL. Lookup trouble degrades to a miss, which signs the client
// out rather than failing the request.
type RedisSessionStore struct {
	client *redis.Client
}

// Ensure RedisSessionStore implements SessionStore.
var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a redis-backed session store.
func NewRedisSessionStore(addr, password string, db int) *RedisSessionStore {
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &RedisSessionStore{client: redis.NewClient(opts)}
}

// Put stores the session record with TTL.
func (s *RedisSessionStore) Put(ctx context.Context, id, username string, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKeyPrefix+id, username, ttl).Err()
}

// Get returns the username for a session id, or "" if the record is missing
// or redis is unavailable.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (string, error) {
	res, err := s.client.Get(ctx, sessionKeyPrefix+id).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		// fail safe: behave like a missing session
		return "", nil
	}
	return res, nil
}

// Delete removes a session record.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}
