package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/streetbrew/coffee-cart-api/internal/repository"
	"github.com/streetbrew/coffee-cart-api/internal/service"
)

// StorefrontHandler handles storefront catalog HTTP requests
type StorefrontHandler struct {
	service *service.StorefrontService
	log     *slog.Logger
}

// NewStorefrontHandler creates a new storefront handler
func NewStorefrontHandler(service *service.StorefrontService, log *slog.Logger) *StorefrontHandler {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &StorefrontHandler{
		service: service,
		log:     log,
	}
}

// ListStorefronts handles GET /api/storefront
// With lat and lng query parameters the result is annotated with distances
// and sorted nearest first; otherwise catalog display order is kept.
func (h *StorefrontHandler) ListStorefronts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	latStr := r.URL.Query().Get("lat")
	lngStr := r.URL.Query().Get("lng")

	if latStr != "" || lngStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lng, lngErr := strconv.ParseFloat(lngStr, 64)
		if latErr != nil || lngErr != nil {
			h.log.Warn("invalid coordinates", "lat", latStr, "lng", lngStr)
			writeError(w, http.StatusBadRequest, "Invalid lat/lng", h.log)
			return
		}

		nearby, err := h.service.ListNearby(ctx, lat, lng)
		if err != nil {
			h.log.Error("failed to list nearby storefronts", "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
			return
		}
		writeJSON(w, http.StatusOK, nearby, h.log)
		return
	}

	storefronts, err := h.service.ListStorefronts(ctx)
	if err != nil {
		h.log.Error("failed to list storefronts", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}
	writeJSON(w, http.StatusOK, storefronts, h.log)
}

// GetStorefront handles GET /api/storefront/{storefrontId}
func (h *StorefrontHandler) GetStorefront(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	storefrontID := chi.URLParam(r, "storefrontId")

	if storefrontID == "" {
		writeError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	storefront, err := h.service.GetStorefront(ctx, storefrontID)
	if err != nil {
		if errors.Is(err, repository.ErrStorefrontNotFound) {
			h.log.Info("storefront not found", "storefrontId", storefrontID)
			writeError(w, http.StatusNotFound, "Storefront not found", h.log)
			return
		}
		h.log.Error("failed to get storefront", "storefrontId", storefrontID, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	writeJSON(w, http.StatusOK, storefront, h.log)
}
