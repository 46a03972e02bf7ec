// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store persists session carts. The cart container itself has no
// persistence; a Store layers it on per session so the container stays
// substitutable in tests.
type Store interface {
	// Load returns the cart for the session, or a fresh empty cart when
	// none is stored yet.
	Load(ctx context.Context, sessionID string) (*Cart, error)
	// Save persists the cart under its session id.
	Save(ctx context.Context, c *Cart) error
	// Delete drops the stored cart for the session.
	Delete(ctx context.Context, sessionID string) error
}

// RedisStore stores session carts as JSON in Redis with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed cart store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load retrieves the session cart from Redis
func (s *RedisStore) Load(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required for cart")
	}

	data, err := s.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		// Cart doesn't exist yet, start empty
		return New(sessionID), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	return &c, nil
}

// Save persists the session cart to Redis with the configured expiration
func (s *RedisStore) Save(ctx context.Context, c *Cart) error {
	if c.SessionID == "" {
		return fmt.Errorf("session ID required for cart")
	}

	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	return s.client.Set(ctx, cartKey(c.SessionID), data, s.ttl).Err()
}

// Delete removes the session cart from Redis
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, cartKey(sessionID)).Err()
}
