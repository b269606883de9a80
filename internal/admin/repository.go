package admin

import (
	"context"
	"database/sql"
	"time"

	"cardapio-be/internal/business"
	"cardapio-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	CountBusinessesByPlan(ctx context.Context) ([]PlanCount, error)
	OrderStats(ctx context.Context, since time.Time) (*OrderStats, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountBusinessesByPlan(ctx context.Context) ([]PlanCount, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CountBusinessesByPlan"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT plan,
		       COUNT(*) AS total,
		       COUNT(*) FILTER (WHERE is_active) AS active
		FROM businesses
		GROUP BY plan
		ORDER BY plan ASC
	`)
	if err != nil {
		log.Error("failed to count businesses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := []PlanCount{}
	for rows.Next() {
		var (
			pc   PlanCount
			plan string
		)
		if err := rows.Scan(&plan, &pc.Total, &pc.Active); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		pc.Plan = business.Plan(plan)
		out = append(out, pc)
	}
	return out, rows.Err()
}

// OrderStats aggregates every order; GMV only counts delivered ones.
func (r *repository) OrderStats(ctx context.Context, since time.Time) (*OrderStats, error) {
	var s OrderStats
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE created_at >= $1),
		       COUNT(*) FILTER (WHERE status = 'entregue'),
		       COUNT(*) FILTER (WHERE status = 'cancelado'),
		       COALESCE(SUM(total) FILTER (WHERE status = 'entregue'), 0)
		FROM orders
	`, since).Scan(&s.Total, &s.Recent, &s.Delivered, &s.Cancelled, &s.GMV)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to aggregate orders",
			zap.String("layer", "repository"),
			zap.String("method", "OrderStats"),
			zap.Error(err),
		)
		return nil, err
	}
	return &s, nil
}
