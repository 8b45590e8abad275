package session

import (
	"context"
	"sync"

	"github.com/streetbrew/coffee-cart-api/internal/models"
)

// MemoryStore implements CartStore with a mutex-guarded map. It is the
// default store when no Redis address is configured, and the one used by
// tests.
type MemoryStore struct {
	mu    sync.RWMutex
	carts map[string]models.Cart
}

// NewMemoryStore creates an empty in-memory cart store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		carts: make(map[string]models.Cart),
	}
}

// Get returns the cart stored for the session key
func (s *MemoryStore) Get(ctx context.Context, sessionKey string) (*models.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[sessionKey]
	if !ok {
		return nil, ErrCartNotFound
	}
	return &cart, nil
}

// Put stores the cart for the session key, replacing any previous value
func (s *MemoryStore) Put(ctx context.Context, sessionKey string, cart models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts[sessionKey] = cart
	return nil
}

// Delete removes the session's cart. Deleting an absent cart is a no-op.
func (s *MemoryStore) Delete(ctx context.Context, sessionKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionKey)
	return nil
}
