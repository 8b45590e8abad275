package models

// AddItemRequest asks for a storefront menu item to be added to the
// session cart
type AddItemRequest struct {
	StorefrontID string `json:"storefrontId"`
	ItemID       string `json:"itemId"`
	Quantity     int    `json:"quantity,omitempty"`
	Options      string `json:"options,omitempty"`
}

// UpdateQuantityRequest sets the quantity of a cart line item
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// SelectCouponRequest applies one of the cart's available coupons
type SelectCouponRequest struct {
	CouponID string `json:"couponId"`
}

// CheckoutRequest turns the session cart into an order
type CheckoutRequest struct {
	PickupTime    string `json:"pickupTime"`
	PaymentMethod string `json:"paymentMethod"`
	Note          string `json:"note,omitempty"`
	PromoCode     string `json:"promoCode,omitempty"`
}
