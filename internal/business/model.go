package business

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Business struct {
	ID           string          `json:"id"`
	OwnerID      string          `json:"owner_id"`
	Name         string          `json:"name"`
	Description  *string         `json:"description,omitempty"`
	Phone        string          `json:"phone"`
	Address      string          `json:"address"`
	City         *string         `json:"city,omitempty"`
	State        *string         `json:"state,omitempty"`
	CEP          *string         `json:"cep,omitempty"`
	Instagram    *string         `json:"instagram,omitempty"`
	LogoURL      *string         `json:"logo_url,omitempty"`
	CoverURL     *string         `json:"cover_url,omitempty"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	MinimumOrder decimal.Decimal `json:"minimum_order"`
	Plan         Plan            `json:"plan"`
	IsActive     bool            `json:"is_active"`
	OpeningHours OpeningHours    `json:"opening_hours,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// DayHours is the schedule of one weekday, "HH:MM" local time.
type DayHours struct {
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed,omitempty"`
}

// OpeningHours is keyed by weekday ("segunda" .. "domingo") and stored as JSONB.
type OpeningHours map[string]DayHours

func (o OpeningHours) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

func (o *OpeningHours) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*o = nil
		return nil
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return errors.New("opening_hours: unsupported type")
	}
}

type CreateBusinessParams struct {
	OwnerID      string
	Name         string
	Description  *string
	Phone        string
	Address      string
	City         *string
	State        *string
	CEP          *string
	Instagram    *string
	LogoURL      *string
	CoverURL     *string
	DeliveryFee  decimal.Decimal
	MinimumOrder decimal.Decimal
	OpeningHours OpeningHours
}

type UpdateBusinessParams struct {
	ID           string
	OwnerID      string
	Name         *string
	Description  *string
	Phone        *string
	Address      *string
	City         *string
	State        *string
	CEP          *string
	Instagram    *string
	LogoURL      *string
	CoverURL     *string
	DeliveryFee  *decimal.Decimal
	MinimumOrder *decimal.Decimal
	OpeningHours OpeningHours
}

// AdminUpdateParams are the fields only the platform admin may change.
type AdminUpdateParams struct {
	ID       string
	Plan     *Plan
	IsActive *bool
}
