package product

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"cardapio-be/internal/pricing"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	BusinessID  string          `json:"business_id"`
	CategoryID  *string         `json:"category_id"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    *string         `json:"image_url,omitempty"`
	IsAvailable bool            `json:"is_available"`
	Position    int             `json:"position"`
	Addons      AddonGroups     `json:"addons"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Item is the priced view used by the pricing engine.
func (p *Product) Item() pricing.Item {
	return pricing.Item{BasePrice: p.Price, Groups: p.Addons}
}

// AddonGroups is stored as a JSONB array.
type AddonGroups []pricing.AddonGroup

func (a AddonGroups) Value() (driver.Value, error) {
	if a == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(a)
}

func (a *AddonGroups) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*a = AddonGroups{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("addons: unsupported type %T", src)
	}
	if len(raw) == 0 {
		*a = AddonGroups{}
		return nil
	}
	return json.Unmarshal(raw, a)
}

type CreateProductParams struct {
	BusinessID  string
	CategoryID  *string
	Name        string
	Description *string
	Price       decimal.Decimal
	ImageURL    *string
	IsAvailable *bool
	Addons      AddonGroups
}

// UpdateProductParams carries only the fields to change. ClearCategory moves
// the product to "uncategorized".
type UpdateProductParams struct {
	ID            string
	BusinessID    string
	CategoryID    *string
	ClearCategory bool
	Name          *string
	Description   *string
	Price         *decimal.Decimal
	ImageURL      *string
	IsAvailable   *bool
	Addons        *AddonGroups
}

type ListOptions struct {
	CategoryID    *string
	OnlyAvailable bool
	Search        *string
}
