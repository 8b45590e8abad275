package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/streetbrew/coffee-cart-api/internal/models"
)

var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order history access.
// Orders are append-only; status transitions happen outside this service.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Add(ctx context.Context, order models.Order) error
}

// InMemoryOrderRepository implements OrderRepository with in-memory storage.
// Insertion order is preserved so list views stay stable.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewInMemoryOrderRepository creates an order repository seeded with the
// demo order history.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	orders := []models.Order{
		{
			ID:             "o1",
			StorefrontID:   "1",
			StorefrontName: "Coffee Planet",
			StorefrontLogo: "https://images.unsplash.com/photo-1567016526105-22da7c13161a?w=100&q=80",
			Status:         models.StatusPending,
			StatusText:     models.StatusPending.Label(),
			CreatedAt:      time.Date(2023, 6, 20, 14, 30, 0, 0, time.UTC),
			PickupTime:     "2023-06-20 15:00",
			Items: []models.OrderItem{
				{ID: "c1", Name: "Americano", Price: 1800, Quantity: 1, Options: "Medium, less sugar"},
				{ID: "c2", Name: "Latte", Price: 2200, Quantity: 2, Options: "Large, regular sugar"},
			},
			TotalAmount:   6200,
			Discount:      500,
			FinalAmount:   5700,
			PaymentMethod: "wechat",
			Note:          "One extra sugar packet please",
		},
		{
			ID:             "o2",
			StorefrontID:   "2",
			StorefrontName: "Wander Coffee",
			StorefrontLogo: "https://images.unsplash.com/photo-1498804103079-a6351b050096?w=100&q=80",
			Status:         models.StatusCompleted,
			StatusText:     models.StatusCompleted.Label(),
			CreatedAt:      time.Date(2023, 6, 18, 10, 15, 0, 0, time.UTC),
			PickupTime:     "2023-06-18 10:45",
			Items: []models.OrderItem{
				{ID: "c3", Name: "Cappuccino", Price: 2500, Quantity: 1, Options: "Medium, regular sugar"},
			},
			TotalAmount:   2500,
			Discount:      0,
			FinalAmount:   2500,
			PaymentMethod: "alipay",
		},
	}

	return &InMemoryOrderRepository{
		orders: orders,
	}
}

// GetAll returns all orders in insertion order
func (r *InMemoryOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Order, len(r.orders))
	copy(result, r.orders)
	return result, nil
}

// GetByID returns an order by its ID
func (r *InMemoryOrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

// Add appends a new order to the history
func (r *InMemoryOrderRepository) Add(ctx context.Context, order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, order)
	return nil
}
