package cart

import (
	"cardapio-be/internal/pricing"

	"github.com/shopspring/decimal"
)

const (
	MinQuantity       = 1
	MaxQuantity       = 99
	MaxObservationLen = 200
)

// Line is one configured product occurrence. Identical configurations are
// kept as separate lines.
type Line struct {
	ProductID   string                  `json:"product_id"`
	Name        string                  `json:"name"`
	BasePrice   decimal.Decimal         `json:"base_price"`
	Quantity    int                     `json:"quantity"`
	Selections  pricing.Selections      `json:"selections"`
	Addons      []pricing.SelectedAddon `json:"addons"`
	Observation string                  `json:"observation,omitempty"`
	Total       decimal.Decimal         `json:"total"`
}

// UnitPrice is the frozen per-unit rate of the line.
func (l Line) UnitPrice() decimal.Decimal {
	return l.Total.Div(decimal.NewFromInt(int64(l.Quantity)))
}

// Summary is the read model of a cart returned by quotes.
type Summary struct {
	Lines        []Line          `json:"lines"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	Discount     decimal.Decimal `json:"discount"`
	Total        decimal.Decimal `json:"total"`
	CouponCode   *string         `json:"coupon_code,omitempty"`
	MinimumOrder decimal.Decimal `json:"minimum_order"`
	CanCheckout  bool            `json:"can_checkout"`
}
