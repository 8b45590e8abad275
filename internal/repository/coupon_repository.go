package repository

import (
	"context"

	"github.com/streetbrew/coffee-cart-api/internal/models"
)

// CouponRepository provides the coupons available to a session's cart.
// Coupons are immutable reference data.
type CouponRepository interface {
	GetAvailable(ctx context.Context) ([]models.Coupon, error)
}

// InMemoryCouponRepository implements CouponRepository with a fixed list
type InMemoryCouponRepository struct {
	coupons []models.Coupon
}

// NewInMemoryCouponRepository creates a coupon repository seeded with the
// demo coupons.
func NewInMemoryCouponRepository() *InMemoryCouponRepository {
	return &InMemoryCouponRepository{
		coupons: []models.Coupon{
			{ID: "cp1", Name: "New customer coupon", Discount: 500, MinAmount: 2000, ExpireDate: "2026-07-31"},
			{ID: "cp2", Name: "10 off over 50", Discount: 1000, MinAmount: 5000, ExpireDate: "2026-06-30"},
		},
	}
}

// GetAvailable returns the coupons a new cart starts with
func (r *InMemoryCouponRepository) GetAvailable(ctx context.Context) ([]models.Coupon, error) {
	result := make([]models.Coupon, len(r.coupons))
	copy(result, r.coupons)
	return result, nil
}
