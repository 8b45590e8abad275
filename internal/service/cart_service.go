package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/streetbrew/coffee-cart-api/internal/cart"
	"github.com/streetbrew/coffee-cart-api/internal/models"
	"github.com/streetbrew/coffee-cart-api/internal/repository"
	"github.com/streetbrew/coffee-cart-api/internal/session"
)

var (
	ErrEmptyCart           = errors.New("cart is empty")
	ErrPickupTimeRequired  = errors.New("pickup time is required")
	ErrStorefrontMismatch  = errors.New("cart already holds items from another storefront")
	ErrInvalidPromoCode    = errors.New("promo code is not valid")
	ErrMenuItemUnavailable = errors.New("menu item is not available")
)

// PromoValidator validates promotional codes applied at checkout
type PromoValidator interface {
	IsValid(ctx context.Context, code string) bool
}

// CartService owns the session cart lifecycle: load the cart for a session,
// run a pricing-engine mutation, persist the result. One cart per session
// key; the store is the single writer path.
type CartService struct {
	store          session.CartStore
	storefrontRepo repository.StorefrontRepository
	couponRepo     repository.CouponRepository
	orderRepo      repository.OrderRepository
	promoValidator PromoValidator
	engine         *cart.Engine
	log            *slog.Logger
}

// NewCartService creates a new cart service
func NewCartService(
	store session.CartStore,
	storefrontRepo repository.StorefrontRepository,
	couponRepo repository.CouponRepository,
	orderRepo repository.OrderRepository,
	promoValidator PromoValidator,
	log *slog.Logger,
) *CartService {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CartService{
		store:          store,
		storefrontRepo: storefrontRepo,
		couponRepo:     couponRepo,
		orderRepo:      orderRepo,
		promoValidator: promoValidator,
		engine:         cart.NewEngine(log),
		log:            log,
	}
}

// GetCart returns the session's cart, creating an empty one on first use
func (s *CartService) GetCart(ctx context.Context, sessionKey string) (models.Cart, error) {
	stored, err := s.store.Get(ctx, sessionKey)
	if err == nil {
		return *stored, nil
	}
	if !errors.Is(err, session.ErrCartNotFound) {
		return models.Cart{}, fmt.Errorf("load cart: %w", err)
	}

	coupons, err := s.couponRepo.GetAvailable(ctx)
	if err != nil {
		return models.Cart{}, fmt.Errorf("load coupons: %w", err)
	}
	return models.Cart{Items: []models.CartItem{}, Coupons: coupons}, nil
}

// AddItem adds a storefront menu item to the session cart. All items in a
// cart must come from the same storefront.
func (s *CartService) AddItem(ctx context.Context, sessionKey string, req models.AddItemRequest) (models.Cart, error) {
	c, err := s.GetCart(ctx, sessionKey)
	if err != nil {
		return models.Cart{}, err
	}

	if c.StorefrontID != "" && c.StorefrontID != req.StorefrontID {
		return c, ErrStorefrontMismatch
	}

	item, err := s.storefrontRepo.FindMenuItem(ctx, req.StorefrontID, req.ItemID)
	if err != nil {
		if errors.Is(err, repository.ErrStorefrontNotFound) || errors.Is(err, repository.ErrMenuItemNotFound) {
			return c, ErrMenuItemUnavailable
		}
		return c, fmt.Errorf("find menu item: %w", err)
	}

	c.StorefrontID = req.StorefrontID
	c = s.engine.AddItem(c, models.CartItem{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: req.Quantity,
		Options:  req.Options,
		Image:    item.Image,
	})

	return c, s.save(ctx, sessionKey, c)
}

// UpdateQuantity sets a line item's quantity. Quantities below 1 and
// unknown item ids are no-ops, mirroring the pricing engine.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionKey, itemID string, quantity int) (models.Cart, error) {
	c, err := s.GetCart(ctx, sessionKey)
	if err != nil {
		return models.Cart{}, err
	}

	c = s.engine.UpdateQuantity(c, itemID, quantity)
	return c, s.save(ctx, sessionKey, c)
}

// RemoveItem removes a line item from the session cart
func (s *CartService) RemoveItem(ctx context.Context, sessionKey, itemID string) (models.Cart, error) {
	c, err := s.GetCart(ctx, sessionKey)
	if err != nil {
		return models.Cart{}, err
	}

	c = s.engine.RemoveItem(c, itemID)
	return c, s.save(ctx, sessionKey, c)
}

// SelectCoupon applies one of the cart's available coupons. The rejected
// cart is left untouched in the store.
func (s *CartService) SelectCoupon(ctx context.Context, sessionKey, couponID string) (models.Cart, error) {
	c, err := s.GetCart(ctx, sessionKey)
	if err != nil {
		return models.Cart{}, err
	}

	c, err = s.engine.SelectCoupon(c, couponID)
	if err != nil {
		return c, err
	}
	return c, s.save(ctx, sessionKey, c)
}

// Checkout snapshots the session cart into an immutable order, appends it
// to the order history and clears the cart. An optional promo code is
// validated before anything is written.
func (s *CartService) Checkout(ctx context.Context, sessionKey string, req models.CheckoutRequest) (*models.Order, error) {
	c, err := s.GetCart(ctx, sessionKey)
	if err != nil {
		return nil, err
	}

	if len(c.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if req.PickupTime == "" {
		return nil, ErrPickupTimeRequired
	}
	if req.PromoCode != "" && s.promoValidator != nil {
		if !s.promoValidator.IsValid(ctx, req.PromoCode) {
			return nil, ErrInvalidPromoCode
		}
	}

	var storefrontName, storefrontLogo string
	if sf, err := s.storefrontRepo.GetByID(ctx, c.StorefrontID); err == nil {
		storefrontName = sf.Name
		storefrontLogo = sf.Image
	}

	items := make([]models.OrderItem, len(c.Items))
	for i, item := range c.Items {
		items[i] = models.OrderItem{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Options:  item.Options,
		}
	}

	order := models.Order{
		ID:             uuid.New().String(),
		StorefrontID:   c.StorefrontID,
		StorefrontName: storefrontName,
		StorefrontLogo: storefrontLogo,
		Status:         models.StatusPending,
		StatusText:     models.StatusPending.Label(),
		CreatedAt:      time.Now().UTC(),
		PickupTime:     req.PickupTime,
		Items:          items,
		TotalAmount:    c.TotalAmount,
		Discount:       c.Discount,
		FinalAmount:    c.FinalAmount,
		PaymentMethod:  req.PaymentMethod,
		Note:           req.Note,
	}

	if err := s.orderRepo.Add(ctx, order); err != nil {
		return nil, fmt.Errorf("store order: %w", err)
	}
	if err := s.store.Delete(ctx, sessionKey); err != nil {
		// The order is already placed; a stale cart is the lesser problem.
		s.log.Warn("failed to clear cart after checkout", "session", sessionKey, "error", err)
	}

	s.log.Info("order placed",
		"order_id", order.ID,
		"storefront_id", order.StorefrontID,
		"items_count", len(order.Items),
		"final_amount", order.FinalAmount,
	)
	return &order, nil
}

func (s *CartService) save(ctx context.Context, sessionKey string, c models.Cart) error {
	if err := s.store.Put(ctx, sessionKey, c); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}
