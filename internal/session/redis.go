package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/streetbrew/coffee-cart-api/internal/models"
)

// RedisStore implements CartStore on Redis so session carts survive process
// restarts and can be shared by multiple replicas. Entries expire after the
// TTL plus a small jitter to avoid synchronized eviction.
type RedisStore struct {
	client  *redis.Client
	baseTTL time.Duration
}

// NewRedisStore creates a Redis-backed cart store
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client:  client,
		baseTTL: ttl,
	}
}

// Get returns the cart stored for the session key
func (s *RedisStore) Get(ctx context.Context, sessionKey string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return &cart, nil
}

// Put stores the cart for the session key with a jittered TTL
func (s *RedisStore) Put(ctx context.Context, sessionKey string, cart models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	if err := s.client.Set(ctx, cartKey(sessionKey), data, s.baseTTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Delete removes the session's cart
func (s *RedisStore) Delete(ctx context.Context, sessionKey string) error {
	if err := s.client.Del(ctx, cartKey(sessionKey)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(sessionKey string) string {
	return fmt.Sprintf("cart:%s", sessionKey)
}
