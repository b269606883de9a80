package coupon

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

func (d DiscountType) Valid() bool {
	return d == DiscountFixed || d == DiscountPercentage
}

type Coupon struct {
	ID            string          `json:"id"`
	BusinessID    string          `json:"business_id"`
	Code          string          `json:"code"`
	DiscountType  DiscountType    `json:"discount_type"`
	DiscountValue decimal.Decimal `json:"discount_value"`
	MinimumOrder  decimal.Decimal `json:"minimum_order"`
	MaxUses       *int            `json:"max_uses,omitempty"`
	CurrentUses   int             `json:"current_uses"`
	ExpiresAt     *time.Time      `json:"expires_at,omitempty"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     time.Time       `json:"created_at"`
}

// NormalizeCode gives the comparison form of a code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Usable reports whether the coupon can still be redeemed at now.
func (c *Coupon) Usable(now time.Time) bool {
	if !c.IsActive {
		return false
	}
	if c.ExpiresAt != nil && !now.Before(*c.ExpiresAt) {
		return false
	}
	if c.MaxUses != nil && c.CurrentUses >= *c.MaxUses {
		return false
	}
	return true
}

// DiscountFor computes the discount on subtotal, never more than subtotal.
func (c *Coupon) DiscountFor(subtotal decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch c.DiscountType {
	case DiscountPercentage:
		d = subtotal.Mul(c.DiscountValue).Div(decimal.NewFromInt(100)).Round(2)
	default:
		d = c.DiscountValue
	}

	if d.GreaterThan(subtotal) {
		return subtotal
	}
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

type CreateCouponParams struct {
	BusinessID    string
	Code          string
	DiscountType  DiscountType
	DiscountValue decimal.Decimal
	MinimumOrder  decimal.Decimal
	MaxUses       *int
	ExpiresAt     *time.Time
}
