package service

import (
	"context"
	"sort"

	"github.com/streetbrew/coffee-cart-api/internal/geo"
	"github.com/streetbrew/coffee-cart-api/internal/models"
	"github.com/streetbrew/coffee-cart-api/internal/repository"
)

// StorefrontService handles business logic for the storefront catalog
type StorefrontService struct {
	repo repository.StorefrontRepository
}

// NewStorefrontService creates a new storefront service
func NewStorefrontService(repo repository.StorefrontRepository) *StorefrontService {
	return &StorefrontService{
		repo: repo,
	}
}

// ListStorefronts returns all storefronts in display order
func (s *StorefrontService) ListStorefronts(ctx context.Context) ([]models.Storefront, error) {
	return s.repo.GetAll(ctx)
}

// GetStorefront returns a storefront by ID
func (s *StorefrontService) GetStorefront(ctx context.Context, id string) (*models.Storefront, error) {
	return s.repo.GetByID(ctx, id)
}

// ListNearby returns all storefronts annotated with their distance from the
// given position, nearest first. Ties keep the catalog display order.
func (s *StorefrontService) ListNearby(ctx context.Context, lat, lng float64) ([]models.NearbyStorefront, error) {
	storefronts, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	nearby := make([]models.NearbyStorefront, len(storefronts))
	for i, sf := range storefronts {
		meters := geo.Distance(lat, lng, sf.Location.Lat, sf.Location.Lng)
		nearby[i] = models.NearbyStorefront{
			Storefront:     sf,
			DistanceMeters: meters,
			Distance:       geo.FormatDistance(meters),
		}
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].DistanceMeters < nearby[j].DistanceMeters
	})

	return nearby, nil
}
