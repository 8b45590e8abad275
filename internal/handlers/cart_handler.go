package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/streetbrew/coffee-cart-api/internal/cart"
	"github.com/streetbrew/coffee-cart-api/internal/middleware"
	"github.com/streetbrew/coffee-cart-api/internal/models"
	"github.com/streetbrew/coffee-cart-api/internal/service"
)

// CartHandler handles session cart HTTP requests. All routes sit behind the
// session middleware, so the session key is always present in the context.
type CartHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, log *slog.Logger) *CartHandler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionKey := middleware.SessionFromContext(r.Context())

	c, err := h.cartService.GetCart(r.Context(), sessionKey)
	if err != nil {
		h.log.Error("failed to load cart", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	writeJSON(w, http.StatusOK, c, h.log)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionKey := middleware.SessionFromContext(r.Context())

	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}
	if req.StorefrontID == "" || req.ItemID == "" {
		writeError(w, http.StatusBadRequest, "storefrontId and itemId are required", h.log)
		return
	}

	c, err := h.cartService.AddItem(r.Context(), sessionKey, req)
	if err != nil {
		h.writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c, h.log)
}

// UpdateQuantity handles PUT /api/cart/items/{itemId}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionKey := middleware.SessionFromContext(r.Context())
	itemID := chi.URLParam(r, "itemId")

	var req models.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	c, err := h.cartService.UpdateQuantity(r.Context(), sessionKey, itemID, req.Quantity)
	if err != nil {
		h.writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c, h.log)
}

// RemoveItem handles DELETE /api/cart/items/{itemId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionKey := middleware.SessionFromContext(r.Context())
	itemID := chi.URLParam(r, "itemId")

	c, err := h.cartService.RemoveItem(r.Context(), sessionKey, itemID)
	if err != nil {
		h.writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c, h.log)
}

// SelectCoupon handles POST /api/cart/coupon
func (h *CartHandler) SelectCoupon(w http.ResponseWriter, r *http.Request) {
	sessionKey := middleware.SessionFromContext(r.Context())

	var req models.SelectCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	c, err := h.cartService.SelectCoupon(r.Context(), sessionKey, req.CouponID)
	if err != nil {
		h.writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c, h.log)
}

// Checkout handles POST /api/checkout
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionKey := middleware.SessionFromContext(r.Context())

	var req models.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.cartService.Checkout(r.Context(), sessionKey, req)
	if err != nil {
		h.writeCartError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order, h.log)
}

// writeCartError maps service and pricing-engine errors to HTTP statuses
func (h *CartHandler) writeCartError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, cart.ErrInvalidCoupon):
		writeError(w, http.StatusBadRequest, "Coupon is not available on this cart", h.log)
	case errors.Is(err, cart.ErrCouponNotQualified):
		writeError(w, http.StatusBadRequest, "Cart subtotal does not qualify for coupon", h.log)
	case errors.Is(err, service.ErrMenuItemUnavailable):
		writeError(w, http.StatusBadRequest, "Menu item is not available", h.log)
	case errors.Is(err, service.ErrStorefrontMismatch):
		writeError(w, http.StatusConflict, "Cart already holds items from another storefront", h.log)
	case errors.Is(err, service.ErrEmptyCart):
		writeError(w, http.StatusBadRequest, "Cart is empty", h.log)
	case errors.Is(err, service.ErrPickupTimeRequired):
		writeError(w, http.StatusBadRequest, "Pickup time is required", h.log)
	case errors.Is(err, service.ErrInvalidPromoCode):
		writeError(w, http.StatusBadRequest, "Promo code is not valid", h.log)
	default:
		h.log.Error("cart operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
	}
}
