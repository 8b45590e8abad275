package handlers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// promoValidator is the interface for promo code validation
type promoValidator interface {
	IsValid(ctx context.Context, code string) bool
	Stats() map[string]interface{}
}

// PromoHandler handles promo code validation requests
type PromoHandler struct {
	validator promoValidator
	log       *slog.Logger
}

// NewPromoHandler creates a new promo handler
func NewPromoHandler(validator promoValidator, log *slog.Logger) *PromoHandler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &PromoHandler{
		validator: validator,
		log:       log,
	}
}

// ValidateCode handles GET /api/promo/{code}
func (h *PromoHandler) ValidateCode(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if h.validator.IsValid(r.Context(), code) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"valid": true,
			"code":  code,
		}, h.log)
		return
	}

	writeJSON(w, http.StatusNotFound, map[string]interface{}{
		"valid":   false,
		"code":    code,
		"message": "Promo code not found or invalid",
	}, h.log)
}

// GetStats handles GET /api/promo/stats (monitoring)
func (h *PromoHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.validator.Stats(), h.log)
}
