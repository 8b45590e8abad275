// Package session stores the per-session shopping cart. Each session key
// maps to exactly one cart; there is no cross-session sharing.
package session

import (
	"context"
	"errors"

	"github.com/streetbrew/coffee-cart-api/internal/models"
)

// ErrCartNotFound is returned when no cart exists for the session key.
var ErrCartNotFound = errors.New("no cart for session")

// CartStore is the interface for session cart persistence
type CartStore interface {
	Get(ctx context.Context, sessionKey string) (*models.Cart, error)
	Put(ctx context.Context, sessionKey string, cart models.Cart) error
	Delete(ctx context.Context, sessionKey string) error
}
