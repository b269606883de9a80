package admin

import (
	"time"

	"cardapio-be/internal/business"

	"github.com/shopspring/decimal"
)

// PlanCount is one row of the businesses-per-plan breakdown.
type PlanCount struct {
	Plan   business.Plan `json:"plan"`
	Total  int           `json:"total"`
	Active int           `json:"active"`
}

type OrderStats struct {
	Total     int             `json:"total"`
	Recent    int             `json:"recent"`
	Delivered int             `json:"delivered"`
	Cancelled int             `json:"cancelled"`
	GMV       decimal.Decimal `json:"gmv"`
}

// Metrics is the platform overview shown on the admin console.
type Metrics struct {
	TotalBusinesses  int             `json:"total_businesses"`
	ActiveBusinesses int             `json:"active_businesses"`
	ByPlan           []PlanCount     `json:"by_plan"`
	MRR              decimal.Decimal `json:"mrr"`
	ARR              decimal.Decimal `json:"arr"`
	Orders           OrderStats      `json:"orders"`
	RecentSince      time.Time       `json:"recent_since"`
	GeneratedAt      time.Time       `json:"generated_at"`
}
