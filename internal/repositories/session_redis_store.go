package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"servermart/internal/models"
)

// RedisSessionStore keeps checkout sessions in Redis with a TTL bound to
// the expected visit lifetime. It lets multiple storefront instances share
// one checkout attempt.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore creates a session store backed by the Redis instance
// at addr. A non-positive ttl falls back to one hour.
func NewRedisSessionStore(addr string, ttl time.Duration) *RedisSessionStore {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisSessionStore{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    ttl,
	}
}

func sessionKey(id string) string {
	return fmt.Sprintf("checkout:session:%s", id)
}

// Save stores or replaces a session, refreshing its TTL.
func (s *RedisSessionStore) Save(ctx context.Context, session *models.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal checkout session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save checkout session %s: %w", session.ID, err)
	}
	return nil
}

// Get returns a session by its ID.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*models.CheckoutSession, error) {
	data, err := s.client.Get(ctx, sessionKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("checkout session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checkout session %s: %w", id, err)
	}

	var session models.CheckoutSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal checkout session %s: %w", id, err)
	}
	return &session, nil
}

// Delete removes a session by its ID.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete checkout session %s: %w", id, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
