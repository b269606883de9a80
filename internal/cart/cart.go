package cart

import (
	"context"
	"strings"

	"cardapio-be/internal/coupon"
	"cardapio-be/internal/pricing"
	"cardapio-be/internal/product"

	"github.com/shopspring/decimal"
)

// CouponLookup resolves a redeemable coupon of a business by code.
type CouponLookup interface {
	Lookup(ctx context.Context, businessID, code string) (*coupon.Coupon, error)
}

// NewLine validates the configuration of p and prices it.
func NewLine(p *product.Product, sel pricing.Selections, quantity int, observation string) (Line, error) {
	if !p.IsAvailable {
		return Line{}, ErrProductUnavailable
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return Line{}, ErrQuantityOutOfRange
	}
	observation = strings.TrimSpace(observation)
	if len([]rune(observation)) > MaxObservationLen {
		return Line{}, ErrObservationTooLong
	}

	item := p.Item()
	clamped, err := pricing.ClampSelections(item, sel)
	if err != nil {
		return Line{}, err
	}
	if err := pricing.ValidateSelections(item, clamped); err != nil {
		return Line{}, err
	}

	return Line{
		ProductID:   p.ID,
		Name:        p.Name,
		BasePrice:   p.Price,
		Quantity:    quantity,
		Selections:  clamped,
		Addons:      pricing.Snapshot(item, clamped),
		Observation: observation,
		Total:       pricing.ComputeLineTotal(item, clamped, quantity),
	}, nil
}

// Cart is the in-progress order of one customer at one business. Not safe
// for concurrent use.
type Cart struct {
	businessID   string
	deliveryFee  decimal.Decimal
	minimumOrder decimal.Decimal
	pickup       bool

	lines  []Line
	coupon *coupon.Coupon
}

func New(businessID string, deliveryFee, minimumOrder decimal.Decimal) *Cart {
	return &Cart{
		businessID:   businessID,
		deliveryFee:  deliveryFee,
		minimumOrder: minimumOrder,
	}
}

// SetPickup switches between delivery and pickup; pickup carries no fee.
func (c *Cart) SetPickup(pickup bool) {
	c.pickup = pickup
}

func (c *Cart) AddItem(line Line) {
	c.lines = append(c.lines, line)
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// UpdateQuantity rescales the line at index keeping its per-unit rate.
// Out of range quantities leave the cart untouched.
func (c *Cart) UpdateQuantity(index, quantity int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return ErrQuantityOutOfRange
	}

	line := &c.lines[index]
	line.Total = line.Total.Mul(decimal.NewFromInt(int64(quantity))).Div(decimal.NewFromInt(int64(line.Quantity)))
	line.Quantity = quantity
	return nil
}

// RemoveItem deletes by position; later lines shift down.
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.lines) {
		return ErrLineNotFound
	}
	c.lines = append(c.lines[:index], c.lines[index+1:]...)
	return nil
}

func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Total)
	}
	return sum
}

func (c *Cart) DeliveryFee() decimal.Decimal {
	if c.pickup {
		return decimal.Zero
	}
	return c.deliveryFee
}

// Discount is what the applied coupon is worth on the current subtotal.
// It drops to zero while the subtotal sits below the coupon minimum.
func (c *Cart) Discount() decimal.Decimal {
	if c.coupon == nil {
		return decimal.Zero
	}
	subtotal := c.Subtotal()
	if subtotal.LessThan(c.coupon.MinimumOrder) {
		return decimal.Zero
	}
	return c.coupon.DiscountFor(subtotal)
}

// GrandTotal is subtotal + fee - discount, never below the delivery fee.
func (c *Cart) GrandTotal() decimal.Decimal {
	fee := c.DeliveryFee()
	total := c.Subtotal().Add(fee).Sub(c.Discount())
	return decimal.Max(total, fee)
}

// CanCheckout holds when the subtotal reaches the business minimum, inclusive.
func (c *Cart) CanCheckout() bool {
	return c.Subtotal().GreaterThanOrEqual(c.minimumOrder)
}

// ApplyCoupon redeems code through lookup. Re-applying the applied code is
// a no-op; a different code must wait for RemoveCoupon.
func (c *Cart) ApplyCoupon(ctx context.Context, code string, lookup CouponLookup) error {
	normalized := coupon.NormalizeCode(code)
	if normalized == "" {
		return coupon.ErrCouponNotFound
	}
	if c.coupon != nil {
		if coupon.NormalizeCode(c.coupon.Code) == normalized {
			return nil
		}
		return ErrCouponAlreadyApplied
	}

	cp, err := lookup.Lookup(ctx, c.businessID, normalized)
	if err != nil {
		return err
	}
	if c.Subtotal().LessThan(cp.MinimumOrder) {
		return coupon.ErrCouponMinimumNotMet
	}

	c.coupon = cp
	return nil
}

func (c *Cart) RemoveCoupon() {
	c.coupon = nil
}

// Coupon returns the applied coupon, nil when none.
func (c *Cart) Coupon() *coupon.Coupon {
	return c.coupon
}

func (c *Cart) Summary() Summary {
	s := Summary{
		Lines:        c.Lines(),
		Subtotal:     c.Subtotal(),
		DeliveryFee:  c.DeliveryFee(),
		Discount:     c.Discount(),
		Total:        c.GrandTotal(),
		MinimumOrder: c.minimumOrder,
		CanCheckout:  c.CanCheckout(),
	}
	if c.coupon != nil {
		code := c.coupon.Code
		s.CouponCode = &code
	}
	return s
}
