package models

// Location is a WGS84 coordinate pair
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// MenuItem is a purchasable item on a storefront menu
type MenuItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       int64    `json:"price"`
	Image       string   `json:"image,omitempty"`
	Description string   `json:"description,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// MenuCategory groups menu items under a display heading
type MenuCategory struct {
	Category string     `json:"category"`
	Items    []MenuItem `json:"items"`
}

// Review is a customer review left on a storefront
type Review struct {
	ID      string  `json:"id"`
	User    string  `json:"user"`
	Avatar  string  `json:"avatar,omitempty"`
	Rating  float64 `json:"rating"`
	Content string  `json:"content"`
	Date    string  `json:"date"`
}

// Storefront represents a coffee cart available for ordering
type Storefront struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Image         string         `json:"image,omitempty"`
	Images        []string       `json:"images,omitempty"`
	Rating        float64        `json:"rating"`
	Status        string         `json:"status"` // open or closed
	BusinessHours string         `json:"businessHours,omitempty"`
	Phone         string         `json:"phone,omitempty"`
	Location      Location       `json:"location"`
	Menu          []MenuCategory `json:"menu,omitempty"`
	Reviews       []Review       `json:"reviews,omitempty"`
}

// NearbyStorefront is a storefront annotated with its distance from the
// caller's position, used by the nearby listing.
type NearbyStorefront struct {
	Storefront
	DistanceMeters float64 `json:"distanceMeters"`
	Distance       string  `json:"distance"`
}
