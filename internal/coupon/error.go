package coupon

import "errors"

var (
	ErrCouponNotFound      = errors.New("coupon not found or no longer valid")
	ErrCouponMinimumNotMet = errors.New("order subtotal below coupon minimum")
	ErrCouponCodeExists    = errors.New("coupon code already exists")
	ErrInvalidCoupon       = errors.New("invalid coupon")

	PgUniqueViolation = "23505"
)
