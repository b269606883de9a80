package admin

import (
	"context"
	"time"

	"cardapio-be/internal/business"
	"cardapio-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// RecentWindow is how far back "recent" orders reach.
const RecentWindow = 30 * 24 * time.Hour

type Service interface {
	Metrics(ctx context.Context) (*Metrics, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Metrics(ctx context.Context) (*Metrics, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Metrics"),
	)
	log.Info("Metrics started")

	counts, err := s.repo.CountBusinessesByPlan(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	since := now.Add(-RecentWindow)
	orders, err := s.repo.OrderStats(ctx, since)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		ByPlan:      completePlans(counts),
		Orders:      *orders,
		RecentSince: since,
		GeneratedAt: now,
	}
	m.MRR = decimal.Zero
	for _, pc := range m.ByPlan {
		m.TotalBusinesses += pc.Total
		m.ActiveBusinesses += pc.Active
		price := pc.Plan.Info().MonthlyPrice
		m.MRR = m.MRR.Add(price.Mul(decimal.NewFromInt(int64(pc.Active))))
	}
	m.ARR = m.MRR.Mul(decimal.NewFromInt(12))

	log.Info("Metrics success",
		zap.Int("businesses", m.TotalBusinesses),
		zap.String("mrr", m.MRR.StringFixed(2)),
	)
	return m, nil
}

// completePlans lists every tier in price order, zero when nobody is on it.
// Rows with an unknown plan are counted as basico.
func completePlans(counts []PlanCount) []PlanCount {
	byPlan := make(map[business.Plan]PlanCount, len(counts))
	for _, c := range counts {
		p := c.Plan.Info().Plan
		acc := byPlan[p]
		acc.Total += c.Total
		acc.Active += c.Active
		byPlan[p] = acc
	}

	out := make([]PlanCount, 0, 3)
	for _, info := range business.Plans() {
		pc := byPlan[info.Plan]
		pc.Plan = info.Plan
		out = append(out, pc)
	}
	return out
}
