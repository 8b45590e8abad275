package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/streetbrew/coffee-cart-api/internal/models"
	"github.com/streetbrew/coffee-cart-api/internal/repository"
	"github.com/streetbrew/coffee-cart-api/internal/service"
)

func newStorefrontHandler() *StorefrontHandler {
	return NewStorefrontHandler(service.NewStorefrontService(repository.NewInMemoryStorefrontRepository()), nil)
}

func TestStorefrontHandler_ListStorefronts(t *testing.T) {
	h := newStorefrontHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/storefront", nil)
	w := httptest.NewRecorder()

	h.ListStorefronts(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var storefronts []models.Storefront
	if err := json.Unmarshal(w.Body.Bytes(), &storefronts); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(storefronts) != 3 {
		t.Fatalf("storefronts count = %d, want 3", len(storefronts))
	}
	// catalog display order is preserved without coordinates
	if storefronts[0].ID != "1" || storefronts[2].ID != "3" {
		t.Errorf("unexpected order: %s, %s, %s", storefronts[0].ID, storefronts[1].ID, storefronts[2].ID)
	}
}

func TestStorefrontHandler_ListStorefronts_Nearby(t *testing.T) {
	h := newStorefrontHandler()

	// Coordinates of the first storefront, so it must sort first at 0m
	req := httptest.NewRequest(http.MethodGet, "/api/storefront?lat=31.2304&lng=121.4737", nil)
	w := httptest.NewRecorder()

	h.ListStorefronts(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var nearby []models.NearbyStorefront
	if err := json.Unmarshal(w.Body.Bytes(), &nearby); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(nearby) != 3 {
		t.Fatalf("storefronts count = %d, want 3", len(nearby))
	}
	if nearby[0].ID != "1" {
		t.Errorf("nearest storefront = %s, want 1", nearby[0].ID)
	}
	for i := 1; i < len(nearby); i++ {
		if nearby[i].DistanceMeters < nearby[i-1].DistanceMeters {
			t.Errorf("storefronts not sorted by distance: %f before %f",
				nearby[i-1].DistanceMeters, nearby[i].DistanceMeters)
		}
	}
	if nearby[0].Distance == "" {
		t.Error("formatted distance is empty")
	}
}

func TestStorefrontHandler_ListStorefronts_InvalidCoordinates(t *testing.T) {
	h := newStorefrontHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/storefront?lat=abc&lng=121.4737", nil)
	w := httptest.NewRecorder()

	h.ListStorefronts(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestStorefrontHandler_GetStorefront(t *testing.T) {
	h := newStorefrontHandler()

	tests := []struct {
		name         string
		storefrontID string
		wantStatus   int
	}{
		{
			name:         "existing storefront",
			storefrontID: "1",
			wantStatus:   http.StatusOK,
		},
		{
			name:         "unknown storefront",
			storefrontID: "999",
			wantStatus:   http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/storefront/"+tt.storefrontID, nil)

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("storefrontId", tt.storefrontID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()
			h.GetStorefront(w, req)

			if w.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus != http.StatusOK {
				return
			}

			var sf models.Storefront
			if err := json.Unmarshal(w.Body.Bytes(), &sf); err != nil {
				t.Fatalf("decode storefront: %v", err)
			}
			if sf.ID != tt.storefrontID {
				t.Errorf("storefront ID = %s, want %s", sf.ID, tt.storefrontID)
			}
			if len(sf.Menu) == 0 {
				t.Error("menu is empty")
			}
		})
	}
}
