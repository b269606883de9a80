package cart

import "errors"

var (
	// -- Validation & Input --
	ErrQuantityOutOfRange = errors.New("quantity must be between 1 and 99")
	ErrObservationTooLong = errors.New("observation must have at most 200 characters")

	// -- Resource State --
	ErrLineNotFound         = errors.New("cart line not found")
	ErrProductUnavailable   = errors.New("product unavailable")
	ErrCouponAlreadyApplied = errors.New("another coupon is already applied")
)
