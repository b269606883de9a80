package coupon

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cardapio-be/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service interface {
	Lookup(ctx context.Context, businessID, code string) (*Coupon, error)
	List(ctx context.Context, businessID string) ([]*Coupon, error)
	Create(ctx context.Context, params CreateCouponParams) (*Coupon, error)
	SetActive(ctx context.Context, businessID, id string, active bool) error
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Lookup returns a redeemable coupon. Inactive, expired and exhausted codes
// are reported as not found.
func (s *service) Lookup(ctx context.Context, businessID, code string) (*Coupon, error) {
	if businessID == "" || strings.TrimSpace(code) == "" {
		return nil, ErrCouponNotFound
	}

	c, err := s.repo.FindByCode(ctx, businessID, code)
	if err != nil {
		return nil, err
	}
	if !c.Usable(s.now()) {
		logger.FromCtx(ctx).Info("coupon not usable",
			zap.String("code", c.Code),
			zap.Bool("active", c.IsActive),
			zap.Int("current_uses", c.CurrentUses),
		)
		return nil, ErrCouponNotFound
	}
	return c, nil
}

func (s *service) List(ctx context.Context, businessID string) ([]*Coupon, error) {
	if businessID == "" {
		return []*Coupon{}, nil
	}
	return s.repo.ListByBusiness(ctx, businessID)
}

func (s *service) Create(ctx context.Context, p CreateCouponParams) (*Coupon, error) {
	code := NormalizeCode(p.Code)
	switch {
	case len(code) < 3 || len(code) > 30:
		return nil, fmt.Errorf("%w: code must have 3 to 30 characters", ErrInvalidCoupon)
	case !p.DiscountType.Valid():
		return nil, fmt.Errorf("%w: discount type must be fixed or percentage", ErrInvalidCoupon)
	case !p.DiscountValue.IsPositive():
		return nil, fmt.Errorf("%w: discount must be positive", ErrInvalidCoupon)
	case p.DiscountType == DiscountPercentage && p.DiscountValue.GreaterThan(decimal.NewFromInt(100)):
		return nil, fmt.Errorf("%w: percentage cannot exceed 100", ErrInvalidCoupon)
	case p.MinimumOrder.IsNegative():
		return nil, fmt.Errorf("%w: minimum order must not be negative", ErrInvalidCoupon)
	case p.MaxUses != nil && *p.MaxUses < 1:
		return nil, fmt.Errorf("%w: max uses must be at least 1", ErrInvalidCoupon)
	}
	p.Code = code
	return s.repo.Create(ctx, p)
}

func (s *service) SetActive(ctx context.Context, businessID, id string, active bool) error {
	return s.repo.SetActive(ctx, businessID, id, active)
}
