package models

import "time"

// OrderStatus is the lifecycle status of an order. Transitions are driven by
// an external fulfilment system; this service only records the value.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusCompleted  OrderStatus = "completed"
	StatusCanceled   OrderStatus = "canceled"
)

// Valid reports whether s is one of the four known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Label returns the display text shown for the status.
func (s OrderStatus) Label() string {
	switch s {
	case StatusPending:
		return "Awaiting pickup"
	case StatusProcessing:
		return "Preparing"
	case StatusCompleted:
		return "Completed"
	case StatusCanceled:
		return "Canceled"
	}
	return string(s)
}

// OrderItem is a snapshot of a cart line item taken at checkout time.
// It is not linked to any live cart item.
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Options  string `json:"options,omitempty"`
}

// Order is an immutable historical record of a completed checkout
type Order struct {
	ID             string      `json:"id"`
	StorefrontID   string      `json:"storefrontId"`
	StorefrontName string      `json:"storefrontName"`
	StorefrontLogo string      `json:"storefrontLogo,omitempty"`
	Status         OrderStatus `json:"status"`
	StatusText     string      `json:"statusText"`
	CreatedAt      time.Time   `json:"createdAt"`
	PickupTime     string      `json:"pickupTime"`
	Items          []OrderItem `json:"items"`
	TotalAmount    int64       `json:"totalAmount"`
	Discount       int64       `json:"discount"`
	FinalAmount    int64       `json:"finalAmount"`
	PaymentMethod  string      `json:"paymentMethod"`
	Note           string      `json:"note,omitempty"`
}
