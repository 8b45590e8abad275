package service

import (
	"context"
	"errors"

	"github.com/streetbrew/coffee-cart-api/internal/models"
	"github.com/streetbrew/coffee-cart-api/internal/order"
	"github.com/streetbrew/coffee-cart-api/internal/repository"
)

var ErrInvalidStatus = errors.New("unknown order status filter")

// OrderService provides the read side of the order history
type OrderService struct {
	repo repository.OrderRepository
}

// NewOrderService creates a new order service
func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{
		repo: repo,
	}
}

// List returns the orders matching the status filter and search term, in
// their stored order. Status must be "all" or one of the four statuses.
func (s *OrderService) List(ctx context.Context, status, search string) ([]models.Order, error) {
	if status == "" {
		status = order.StatusAll
	}
	if status != order.StatusAll && !models.OrderStatus(status).Valid() {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return order.Filter(orders, status, search), nil
}

// Get returns an order by ID
func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// Counts returns the number of orders per status for the list tab badges
func (s *OrderService) Counts(ctx context.Context) (map[models.OrderStatus]int, error) {
	orders, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return order.CountByStatus(orders), nil
}
