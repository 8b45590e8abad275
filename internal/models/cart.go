package models

// Prices are carried as int64 minor units (fen) so that totals are exact
// integer arithmetic with no float drift.

// CartItem represents a single line item in a shopping cart
type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity"`
	Options  string `json:"options,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Coupon is an immutable discount rule attached to a cart.
// Discount applies only when the cart subtotal reaches MinAmount.
type Coupon struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Discount   int64  `json:"discount"`
	MinAmount  int64  `json:"minAmount"`
	ExpireDate string `json:"expireDate"`
}

// Cart is the session-scoped, mutable collection of selected items plus
// coupon state and derived totals. Derived fields are recomputed by the
// pricing engine after every mutation and satisfy:
// FinalAmount == TotalAmount - Discount.
type Cart struct {
	StorefrontID   string     `json:"storefrontId,omitempty"`
	Items          []CartItem `json:"items"`
	Coupons        []Coupon   `json:"coupons"`
	SelectedCoupon string     `json:"selectedCoupon,omitempty"`
	TotalAmount    int64      `json:"totalAmount"`
	Discount       int64      `json:"discount"`
	FinalAmount    int64      `json:"finalAmount"`
}
