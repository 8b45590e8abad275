package repository

import (
	"context"
	"errors"

	"github.com/streetbrew/coffee-cart-api/internal/models"
)

var (
	ErrStorefrontNotFound = errors.New("storefront not found")
	ErrMenuItemNotFound   = errors.New("menu item not found")
)

// StorefrontRepository defines the interface for storefront catalog access
type StorefrontRepository interface {
	GetAll(ctx context.Context) ([]models.Storefront, error)
	GetByID(ctx context.Context, id string) (*models.Storefront, error)
	FindMenuItem(ctx context.Context, storefrontID, itemID string) (*models.MenuItem, error)
}

// InMemoryStorefrontRepository implements StorefrontRepository with a fixed
// catalog. Slice order is the display order.
type InMemoryStorefrontRepository struct {
	storefronts []models.Storefront
}

// NewInMemoryStorefrontRepository creates an in-memory catalog seeded with
// the demo storefronts.
func NewInMemoryStorefrontRepository() *InMemoryStorefrontRepository {
	storefronts := []models.Storefront{
		{
			ID:            "1",
			Name:          "Coffee Planet",
			Image:         "https://images.unsplash.com/photo-1567016526105-22da7c13161a?w=1480&q=80",
			Rating:        4.8,
			Status:        "open",
			BusinessHours: "08:00 - 20:00",
			Phone:         "13800138000",
			Location:      models.Location{Lat: 31.2304, Lng: 121.4737},
			Menu: []models.MenuCategory{
				{
					Category: "Coffee",
					Items: []models.MenuItem{
						{
							ID:          "c1",
							Name:        "Americano",
							Price:       1800,
							Image:       "https://images.unsplash.com/photo-1520031607503-2d59cfa3d390?w=1470&q=80",
							Description: "Rich aroma with a clean finish",
							Options:     []string{"Medium", "Large"},
						},
						{
							ID:          "c2",
							Name:        "Latte",
							Price:       2200,
							Image:       "https://images.unsplash.com/photo-1541167760496-1628856ab772?w=1637&q=80",
							Description: "Silky milk foam over a full-bodied shot",
							Options:     []string{"Medium", "Large"},
						},
					},
				},
				{
					Category: "Tea",
					Items: []models.MenuItem{
						{
							ID:          "t1",
							Name:        "Matcha Latte",
							Price:       2400,
							Image:       "https://images.unsplash.com/photo-1546039907-8d3112854ef9?w=1470&q=80",
							Description: "Japanese matcha blended with steamed milk",
						},
					},
				},
			},
			Reviews: []models.Review{
				{ID: "r1", User: "Li Xiaoming", Rating: 5, Content: "Great coffee, great service.", Date: "2023-06-15"},
				{ID: "r2", User: "Wang Xiaohong", Rating: 4, Content: "The latte is lovely, a bit pricey.", Date: "2023-06-10"},
			},
		},
		{
			ID:       "2",
			Name:     "Wander Coffee",
			Image:    "https://images.unsplash.com/photo-1498804103079-a6351b050096?w=1374&q=80",
			Rating:   4.5,
			Status:   "open",
			Location: models.Location{Lat: 31.233, Lng: 121.475},
			Menu: []models.MenuCategory{
				{
					Category: "Coffee",
					Items: []models.MenuItem{
						{ID: "c3", Name: "Cappuccino", Price: 2500, Description: "Classic foam-topped espresso"},
					},
				},
			},
		},
		{
			ID:       "3",
			Name:     "Leisure Coffee House",
			Image:    "https://images.unsplash.com/photo-1485182708500-e8f1f318ba72?w=1420&q=80",
			Rating:   4.3,
			Status:   "closed",
			Location: models.Location{Lat: 31.228, Lng: 121.472},
		},
	}

	return &InMemoryStorefrontRepository{
		storefronts: storefronts,
	}
}

// GetAll returns all storefronts in display order
func (r *InMemoryStorefrontRepository) GetAll(ctx context.Context) ([]models.Storefront, error) {
	result := make([]models.Storefront, len(r.storefronts))
	copy(result, r.storefronts)
	return result, nil
}

// GetByID returns a storefront by its ID
func (r *InMemoryStorefrontRepository) GetByID(ctx context.Context, id string) (*models.Storefront, error) {
	for _, sf := range r.storefronts {
		if sf.ID == id {
			return &sf, nil
		}
	}
	return nil, ErrStorefrontNotFound
}

// FindMenuItem looks up a menu item within a storefront's menu
func (r *InMemoryStorefrontRepository) FindMenuItem(ctx context.Context, storefrontID, itemID string) (*models.MenuItem, error) {
	sf, err := r.GetByID(ctx, storefrontID)
	if err != nil {
		return nil, err
	}

	for _, category := range sf.Menu {
		for _, item := range category.Items {
			if item.ID == itemID {
				return &item, nil
			}
		}
	}
	return nil, ErrMenuItemNotFound
}
