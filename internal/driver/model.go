package driver

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type VehicleType string

const (
	VehicleMoto      VehicleType = "moto"
	VehicleBicicleta VehicleType = "bicicleta"
	VehicleCarro     VehicleType = "carro"
)

func (v VehicleType) Valid() bool {
	switch v {
	case VehicleMoto, VehicleBicicleta, VehicleCarro:
		return true
	}
	return false
}

type Driver struct {
	ID              string          `json:"id"`
	BusinessID      string          `json:"business_id"`
	UserID          string          `json:"user_id"`
	VehicleType     *VehicleType    `json:"vehicle_type,omitempty"`
	LicensePlate    *string         `json:"license_plate,omitempty"`
	IsAvailable     bool            `json:"is_available"`
	CurrentLocation *Location       `json:"current_location,omitempty"`
	Rating          decimal.Decimal `json:"rating"`
	TotalDeliveries int             `json:"total_deliveries"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	FullName *string `json:"full_name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// Location is the last reported position, stored as JSONB.
type Location struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lng >= -180 && l.Lng <= 180
}

func (l *Location) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

func (l *Location) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("current_location: unsupported type")
	}
}

type CreateDriverParams struct {
	BusinessID   string
	OwnerID      string // owner account of the business; cannot become its driver
	Email        string
	VehicleType  *VehicleType
	LicensePlate *string
}

// newDriver is what the repository inserts once the profile is resolved.
type newDriver struct {
	BusinessID   string
	UserID       string
	VehicleType  *VehicleType
	LicensePlate *string
}
