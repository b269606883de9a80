package category

import "time"

type Category struct {
	ID           string    `json:"id"`
	BusinessID   string    `json:"business_id"`
	Name         string    `json:"name"`
	Emoji        string    `json:"emoji"`
	Position     int       `json:"position"`
	IsActive     bool      `json:"is_active"`
	ProductCount int       `json:"product_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Placement string

const (
	PlaceBefore Placement = "before"
	PlaceAfter  Placement = "after"
)

func (p Placement) Valid() bool {
	return p == PlaceBefore || p == PlaceAfter
}

type CreateCategoryParams struct {
	BusinessID string
	Name       string
	Emoji      string
}

type UpdateCategoryParams struct {
	ID         string
	BusinessID string
	Name       *string
	Emoji      *string
	IsActive   *bool
}

// MoveParams places category ID before or after RefID.
type MoveParams struct {
	BusinessID string
	ID         string
	RefID      string
	Placement  Placement
}
