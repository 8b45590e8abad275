package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/streetbrew/coffee-cart-api/internal/models"
	"github.com/streetbrew/coffee-cart-api/internal/repository"
	"github.com/streetbrew/coffee-cart-api/internal/service"
)

// OrderHandler handles order history HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// OrderListResponse is the list view plus the per-status tab counts
type OrderListResponse struct {
	Orders []models.Order             `json:"orders"`
	Counts map[models.OrderStatus]int `json:"counts"`
}

// ListOrders handles GET /api/order
// Query parameters: status (all|pending|processing|completed|canceled,
// default all) and q (storefront name search, case-insensitive).
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	status := r.URL.Query().Get("status")
	search := r.URL.Query().Get("q")

	orders, err := h.orderService.List(ctx, status, search)
	if err != nil {
		if errors.Is(err, service.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, "Unknown status filter", h.log)
			return
		}
		h.log.Error("failed to list orders", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	counts, err := h.orderService.Counts(ctx)
	if err != nil {
		h.log.Error("failed to count orders", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeJSON(w, http.StatusOK, OrderListResponse{Orders: orders, Counts: counts}, h.log)
}

// GetOrder handles GET /api/order/{orderId}
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "orderId")

	if orderID == "" {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	order, err := h.orderService.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			h.log.Info("order not found", "orderId", orderID)
			writeError(w, http.StatusNotFound, "Order not found", h.log)
			return
		}
		h.log.Error("failed to get order", "orderId", orderID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeJSON(w, http.StatusOK, order, h.log)
}
