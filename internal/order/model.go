package order

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"cardapio-be/internal/pricing"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentDinheiro      PaymentMethod = "dinheiro"
	PaymentCartaoCredito PaymentMethod = "cartao_credito"
	PaymentCartaoDebito  PaymentMethod = "cartao_debito"
	PaymentPix           PaymentMethod = "pix"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentDinheiro, PaymentCartaoCredito, PaymentCartaoDebito, PaymentPix:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryEntrega  DeliveryType = "entrega"
	DeliveryRetirada DeliveryType = "retirada"
)

func (d DeliveryType) Valid() bool {
	return d == DeliveryEntrega || d == DeliveryRetirada
}

type Order struct {
	ID                 string           `json:"id"`
	OrderNumber        int64            `json:"order_number"`
	BusinessID         string           `json:"business_id"`
	CustomerID         *string          `json:"customer_id,omitempty"`
	CustomerName       string           `json:"customer_name"`
	CustomerPhone      string           `json:"customer_phone"`
	DeliveryType       DeliveryType     `json:"delivery_type"`
	CustomerAddress    *string          `json:"customer_address,omitempty"`
	CustomerComplement *string          `json:"customer_complement,omitempty"`
	CustomerReference  *string          `json:"customer_reference,omitempty"`
	PaymentMethod      PaymentMethod    `json:"payment_method"`
	ChangeFor          *decimal.Decimal `json:"change_for,omitempty"`
	Notes              *string          `json:"notes,omitempty"`
	Subtotal           decimal.Decimal  `json:"subtotal"`
	DeliveryFee        decimal.Decimal  `json:"delivery_fee"`
	Discount           decimal.Decimal  `json:"discount"`
	Total              decimal.Decimal  `json:"total"`
	CouponCode         *string          `json:"coupon_code,omitempty"`
	Status             Status           `json:"status"`
	DriverID           *string          `json:"driver_id,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`

	Items   []Item         `json:"items"`
	History []HistoryEntry `json:"history,omitempty"`
}

// Item is the frozen copy of a cart line; later catalog edits never reach it.
type Item struct {
	ID          string          `json:"id"`
	OrderID     string          `json:"order_id"`
	ProductID   *string         `json:"product_id,omitempty"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Addons      Addons          `json:"addons"`
	Notes       *string         `json:"notes,omitempty"`
}

type HistoryEntry struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Status    Status    `json:"status"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Addons is the JSONB snapshot of the options chosen for an item.
type Addons []pricing.SelectedAddon

func (a Addons) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

func (a *Addons) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*a = Addons{}
		return nil
	case []byte:
		return json.Unmarshal(v, a)
	case string:
		return json.Unmarshal([]byte(v), a)
	default:
		return errors.New("addons: unsupported type")
	}
}

// CheckoutLine is one line as posted by the customer. Prices are never
// taken from the client.
type CheckoutLine struct {
	ProductID   string
	Quantity    int
	Selections  pricing.Selections
	Observation string
}

type CheckoutParams struct {
	BusinessID    string
	CustomerID    *string
	CustomerName  string
	CustomerPhone string
	DeliveryType  DeliveryType
	Address       *string
	Complement    *string
	Reference     *string
	PaymentMethod PaymentMethod
	ChangeFor     *decimal.Decimal
	Notes         *string
	CouponCode    *string
	Lines         []CheckoutLine
}

// QuoteParams is what pricing a cart needs.
type QuoteParams struct {
	BusinessID   string
	DeliveryType DeliveryType
	CouponCode   *string
	Lines        []CheckoutLine
}

type ListFilter struct {
	Status *Status
}

// Transition is one accepted status change.
type Transition struct {
	OrderID string
	From    Status
	To      Status
	Notes   *string
	// CreditDriver, when set, gets one more completed delivery.
	CreditDriver *string
}
