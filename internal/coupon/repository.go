package coupon

import (
	"context"
	"database/sql"
	"errors"

	"cardapio-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	FindByCode(ctx context.Context, businessID, code string) (*Coupon, error)
	ListByBusiness(ctx context.Context, businessID string) ([]*Coupon, error)
	Create(ctx context.Context, params CreateCouponParams) (*Coupon, error)
	SetActive(ctx context.Context, businessID, id string, active bool) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const couponColumns = `id, business_id, code, discount_type, discount_value, minimum_order,
	max_uses, current_uses, expires_at, is_active, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanCoupon(s scanner) (*Coupon, error) {
	var c Coupon
	var maxUses sql.NullInt64
	var expiresAt sql.NullTime
	err := s.Scan(
		&c.ID, &c.BusinessID, &c.Code, &c.DiscountType, &c.DiscountValue, &c.MinimumOrder,
		&maxUses, &c.CurrentUses, &expiresAt, &c.IsActive, &c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if maxUses.Valid {
		n := int(maxUses.Int64)
		c.MaxUses = &n
	}
	if expiresAt.Valid {
		c.ExpiresAt = &expiresAt.Time
	}
	return &c, nil
}

func (r *repository) FindByCode(ctx context.Context, businessID, code string) (*Coupon, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "FindByCode"),
	)

	query := `SELECT ` + couponColumns + `
		FROM coupons
		WHERE business_id = $1 AND UPPER(code) = $2`

	c, err := scanCoupon(r.db.QueryRowContext(ctx, query, businessID, NormalizeCode(code)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCouponNotFound
		}
		log.Error("failed to find coupon", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *repository) ListByBusiness(ctx context.Context, businessID string) ([]*Coupon, error) {
	query := `SELECT ` + couponColumns + `
		FROM coupons
		WHERE business_id = $1
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list coupons", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	out := []*Coupon{}
	for rows.Next() {
		c, err := scanCoupon(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *repository) Create(ctx context.Context, p CreateCouponParams) (*Coupon, error) {
	query := `
		INSERT INTO coupons (business_id, code, discount_type, discount_value, minimum_order, max_uses, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + couponColumns

	c, err := scanCoupon(r.db.QueryRowContext(ctx, query,
		p.BusinessID, NormalizeCode(p.Code), p.DiscountType, p.DiscountValue, p.MinimumOrder, p.MaxUses, p.ExpiresAt,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == PgUniqueViolation {
			return nil, ErrCouponCodeExists
		}
		logger.FromCtx(ctx).Error("failed to create coupon", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *repository) SetActive(ctx context.Context, businessID, id string, active bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE coupons SET is_active = $3 WHERE id = $1 AND business_id = $2`,
		id, businessID, active,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCouponNotFound
	}
	return nil
}
