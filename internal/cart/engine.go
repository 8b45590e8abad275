// Package cart implements the pricing engine for session shopping carts.
//
// All operations are value-in/value-out: the caller passes a cart, gets the
// updated cart back, and is responsible for storing it. Input carts are never
// mutated, so a stored cart can be shared safely with readers while a
// mutation is in flight.
package cart

import (
	"errors"
	"io"
	"log/slog"

	"github.com/streetbrew/coffee-cart-api/internal/models"
)

var (
	// ErrInvalidCoupon is returned when the selected coupon id is not among
	// the cart's available coupons.
	ErrInvalidCoupon = errors.New("coupon is not available on this cart")

	// ErrCouponNotQualified is returned when the cart subtotal is below the
	// coupon's minimum qualifying amount.
	ErrCouponNotQualified = errors.New("cart subtotal does not qualify for coupon")
)

// Engine applies mutations to carts and keeps the derived monetary fields
// consistent: FinalAmount == TotalAmount - Discount, with the discount
// clamped so the final amount can never go negative.
type Engine struct {
	log *slog.Logger
}

// NewEngine creates a pricing engine. A nil logger disables the
// integrity-clamp warning log.
func NewEngine(log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Engine{log: log}
}

// Subtotal returns the sum of price*quantity over all items, in minor units.
func Subtotal(items []models.CartItem) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// AddItem adds an item to the cart. If an item with the same id already
// exists its quantity is incremented by the incoming quantity instead of
// appending a duplicate line. A non-positive incoming quantity defaults to 1.
// Insertion order is preserved for display.
func (e *Engine) AddItem(c models.Cart, item models.CartItem) models.Cart {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	items := cloneItems(c.Items)
	merged := false
	for i := range items {
		if items[i].ID == item.ID {
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	c.Items = items
	return e.recompute(c)
}

// UpdateQuantity sets the quantity of the matching item. Quantities below 1
// are ignored, and an unknown item id is a no-op; neither is an error.
func (e *Engine) UpdateQuantity(c models.Cart, itemID string, quantity int) models.Cart {
	if quantity < 1 {
		return c
	}

	items := cloneItems(c.Items)
	for i := range items {
		if items[i].ID == itemID {
			items[i].Quantity = quantity
			c.Items = items
			return e.recompute(c)
		}
	}
	return c
}

// RemoveItem removes the item with the matching id. An unknown id is a
// no-op. The selected coupon, if any, stays selected and the totals are
// recomputed against the smaller subtotal.
func (e *Engine) RemoveItem(c models.Cart, itemID string) models.Cart {
	items := make([]models.CartItem, 0, len(c.Items))
	found := false
	for _, item := range c.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		items = append(items, item)
	}
	if !found {
		return c
	}

	c.Items = items
	return e.recompute(c)
}

// SelectCoupon applies the coupon with the given id. The id must refer to
// one of the cart's available coupons and the current subtotal must reach
// the coupon's minimum qualifying amount; otherwise the cart is returned
// unchanged alongside the error.
func (e *Engine) SelectCoupon(c models.Cart, couponID string) (models.Cart, error) {
	coupon, ok := findCoupon(c.Coupons, couponID)
	if !ok {
		return c, ErrInvalidCoupon
	}

	if Subtotal(c.Items) < coupon.MinAmount {
		return c, ErrCouponNotQualified
	}

	c.SelectedCoupon = couponID
	return e.recompute(c), nil
}

// ClearCoupon removes the coupon selection and recomputes the totals.
func (e *Engine) ClearCoupon(c models.Cart) models.Cart {
	c.SelectedCoupon = ""
	return e.recompute(c)
}

// recompute refreshes the derived monetary fields from the items and the
// selected coupon. The discount is clamped to the subtotal; a clamp means
// the stored cart drifted out of qualification (e.g. items were removed
// after selection) and is logged as an integrity warning, not an error.
func (e *Engine) recompute(c models.Cart) models.Cart {
	c.TotalAmount = Subtotal(c.Items)
	c.Discount = 0

	if c.SelectedCoupon != "" {
		if coupon, ok := findCoupon(c.Coupons, c.SelectedCoupon); ok {
			c.Discount = coupon.Discount
			if c.Discount > c.TotalAmount {
				e.log.Warn("coupon discount exceeds subtotal, clamping",
					"coupon_id", coupon.ID,
					"discount", coupon.Discount,
					"subtotal", c.TotalAmount,
				)
				c.Discount = c.TotalAmount
			}
		}
	}

	c.FinalAmount = c.TotalAmount - c.Discount
	return c
}

func findCoupon(coupons []models.Coupon, id string) (models.Coupon, bool) {
	for _, coupon := range coupons {
		if coupon.ID == id {
			return coupon, true
		}
	}
	return models.Coupon{}, false
}

func cloneItems(items []models.CartItem) []models.CartItem {
	cloned := make([]models.CartItem, len(items))
	copy(cloned, items)
	return cloned
}
