package order

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidCheckout = errors.New("invalid checkout")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidStatus   = errors.New("invalid order status")
	ErrInvalidChange   = errors.New("change must be at least the order total")

	// -- Resource State --
	ErrOrderNotFound     = errors.New("order not found")
	ErrBelowMinimum      = errors.New("subtotal below the business minimum order")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrStatusConflict    = errors.New("order status changed concurrently")
	ErrNotDeliveryOrder  = errors.New("order is not for delivery")
	ErrDriverUnavailable = errors.New("driver unavailable")
)
