package business

import (
	"context"
	"errors"

	"cardapio-be/internal/cache"
	"cardapio-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	Get(ctx context.Context, id string) (*Business, error)
	GetPublic(ctx context.Context, id string) (*Business, error)
	GetByOwner(ctx context.Context, ownerID string) (*Business, error)
	List(ctx context.Context, plan *Plan) ([]*Business, error)
	Create(ctx context.Context, params CreateBusinessParams) (*Business, error)
	Update(ctx context.Context, params UpdateBusinessParams) (*Business, error)
	AdminUpdate(ctx context.Context, params AdminUpdateParams) (*Business, error)
	ProductLimit(ctx context.Context, businessID string) (int, error)
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

func (s *service) Get(ctx context.Context, id string) (*Business, error) {
	if id == "" {
		return nil, ErrBusinessNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// GetPublic is the menu view of a business; deactivated ones are hidden.
func (s *service) GetPublic(ctx context.Context, id string) (*Business, error) {
	b, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.IsActive {
		return nil, ErrBusinessNotFound
	}
	return b, nil
}

func (s *service) GetByOwner(ctx context.Context, ownerID string) (*Business, error) {
	if ownerID == "" {
		return nil, ErrBusinessNotFound
	}
	return s.repo.GetByOwner(ctx, ownerID)
}

// List is the admin listing, newest first, optionally narrowed to one plan.
func (s *service) List(ctx context.Context, plan *Plan) ([]*Business, error) {
	parent := "all"
	if plan != nil {
		if !plan.Valid() {
			return nil, invalid("unknown plan %q", string(*plan))
		}
		parent = string(*plan)
	}
	return cache.GetOrLoad(ctx, s.cache, cache.EntityBusiness, parent, func(ctx context.Context) ([]*Business, error) {
		return s.repo.List(ctx, plan)
	})
}

func (s *service) Create(ctx context.Context, params CreateBusinessParams) (*Business, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateBusiness"),
		zap.String("owner_id", params.OwnerID),
	)
	log.Info("CreateBusiness started")

	if params.OwnerID == "" {
		return nil, invalid("owner is required")
	}
	if err := params.normalize(); err != nil {
		log.Info("invalid business input", zap.Error(err))
		return nil, err
	}

	b, err := s.repo.Create(ctx, params)
	if err != nil {
		if errors.Is(err, ErrBusinessExists) {
			log.Info("owner already has a business")
		} else {
			log.Error("failed to create business", zap.Error(err))
		}
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityBusiness)
	log.Info("CreateBusiness success", zap.String("business_id", b.ID))
	return b, nil
}

func (s *service) Update(ctx context.Context, params UpdateBusinessParams) (*Business, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateBusiness"),
		zap.String("business_id", params.ID),
	)
	log.Info("UpdateBusiness started")

	if err := params.normalize(); err != nil {
		return nil, err
	}

	b, err := s.repo.Update(ctx, params)
	if err != nil {
		log.Error("failed to update business", zap.Error(err))
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityBusiness)
	log.Info("UpdateBusiness success")
	return b, nil
}

func (s *service) AdminUpdate(ctx context.Context, params AdminUpdateParams) (*Business, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "AdminUpdateBusiness"),
		zap.String("business_id", params.ID),
	)

	if params.Plan != nil && !params.Plan.Valid() {
		return nil, invalid("unknown plan %q", string(*params.Plan))
	}

	b, err := s.repo.AdminUpdate(ctx, params)
	if err != nil {
		log.Error("failed to update business", zap.Error(err))
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityBusiness)
	log.Info("AdminUpdateBusiness success", zap.String("plan", string(b.Plan)), zap.Bool("is_active", b.IsActive))
	return b, nil
}

// ProductLimit reports how many products the business plan allows; 0 is unlimited.
func (s *service) ProductLimit(ctx context.Context, businessID string) (int, error) {
	b, err := s.Get(ctx, businessID)
	if err != nil {
		return 0, err
	}
	return b.Plan.Info().ProductLimit, nil
}
