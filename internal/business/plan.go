package business

import "github.com/shopspring/decimal"

type Plan string

const (
	PlanBasico       Plan = "basico"
	PlanProfissional Plan = "profissional"
	PlanEmpresarial  Plan = "empresarial"
)

func (p Plan) Valid() bool {
	switch p {
	case PlanBasico, PlanProfissional, PlanEmpresarial:
		return true
	}
	return false
}

// PlanInfo describes a tier. ProductLimit 0 means unlimited.
type PlanInfo struct {
	Plan         Plan            `json:"plan"`
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthly_price"`
	ProductLimit int             `json:"product_limit"`
}

var plans = map[Plan]PlanInfo{
	PlanBasico: {
		Plan:         PlanBasico,
		Name:         "Básico",
		MonthlyPrice: decimal.Zero,
		ProductLimit: 20,
	},
	PlanProfissional: {
		Plan:         PlanProfissional,
		Name:         "Profissional",
		MonthlyPrice: decimal.RequireFromString("49.90"),
	},
	PlanEmpresarial: {
		Plan:         PlanEmpresarial,
		Name:         "Empresarial",
		MonthlyPrice: decimal.RequireFromString("99.90"),
	},
}

// Info returns the tier description; unknown plans fall back to basico.
func (p Plan) Info() PlanInfo {
	if info, ok := plans[p]; ok {
		return info
	}
	return plans[PlanBasico]
}

// Plans lists every tier, cheapest first.
func Plans() []PlanInfo {
	return []PlanInfo{plans[PlanBasico], plans[PlanProfissional], plans[PlanEmpresarial]}
}
