package product

import (
	"context"
	"fmt"

	"cardapio-be/internal/cache"
	"cardapio-be/internal/logger"

	"go.uber.org/zap"
)

// LimitProvider reports how many products the business plan allows; 0 is unlimited.
type LimitProvider interface {
	ProductLimit(ctx context.Context, businessID string) (int, error)
}

type Service interface {
	List(ctx context.Context, businessID string) ([]*Product, error)
	ListAvailable(ctx context.Context, businessID string) ([]*Product, error)
	Get(ctx context.Context, businessID, id string) (*Product, error)
	GetMany(ctx context.Context, businessID string, ids []string) (map[string]*Product, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	Update(ctx context.Context, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, businessID, id string) error
}

type service struct {
	repo   Repository
	limits LimitProvider
	cache  *cache.Cache
}

func NewService(repo Repository, limits LimitProvider, c *cache.Cache) Service {
	return &service{repo: repo, limits: limits, cache: c}
}

// List returns every product of the business, newest first.
func (s *service) List(ctx context.Context, businessID string) ([]*Product, error) {
	if businessID == "" {
		return []*Product{}, nil
	}
	return cache.GetOrLoad(ctx, s.cache, cache.EntityProduct, businessID, func(ctx context.Context) ([]*Product, error) {
		return s.repo.ListByBusiness(ctx, businessID, ListOptions{})
	})
}

// ListAvailable is the public menu view.
func (s *service) ListAvailable(ctx context.Context, businessID string) ([]*Product, error) {
	if businessID == "" {
		return []*Product{}, nil
	}
	return cache.GetOrLoad(ctx, s.cache, cache.EntityProduct, businessID+":menu", func(ctx context.Context) ([]*Product, error) {
		return s.repo.ListByBusiness(ctx, businessID, ListOptions{OnlyAvailable: true})
	})
}

func (s *service) Get(ctx context.Context, businessID, id string) (*Product, error) {
	return s.repo.GetByID(ctx, businessID, id)
}

func (s *service) GetMany(ctx context.Context, businessID string, ids []string) (map[string]*Product, error) {
	return s.repo.GetByIDs(ctx, businessID, ids)
}

func (s *service) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateProduct"),
	)
	log.Info("CreateProduct started")

	if err := params.normalize(); err != nil {
		log.Info("invalid product input", zap.Error(err))
		return nil, err
	}

	if err := s.checkCategory(ctx, params.BusinessID, params.CategoryID); err != nil {
		return nil, err
	}

	if s.limits != nil {
		limit, err := s.limits.ProductLimit(ctx, params.BusinessID)
		if err != nil {
			log.Error("failed to resolve plan limit", zap.Error(err))
			return nil, err
		}
		if limit > 0 {
			count, err := s.repo.CountByBusiness(ctx, params.BusinessID)
			if err != nil {
				log.Error("failed to count products", zap.Error(err))
				return nil, err
			}
			if count >= limit {
				log.Info("plan product limit reached", zap.Int("limit", limit))
				return nil, fmt.Errorf("%w (%d)", ErrPlanLimitReached, limit)
			}
		}
	}

	p, err := s.repo.Create(ctx, params)
	if err != nil {
		log.Error("failed to create product", zap.Error(err))
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityProduct)
	s.cache.InvalidateEntity(ctx, cache.EntityCategory)
	log.Info("CreateProduct success", zap.String("product_id", p.ID))
	return p, nil
}

func (s *service) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateProduct"),
		zap.String("product_id", params.ID),
	)
	log.Info("UpdateProduct started")

	if err := params.normalize(); err != nil {
		return nil, err
	}
	if !params.ClearCategory {
		if err := s.checkCategory(ctx, params.BusinessID, params.CategoryID); err != nil {
			return nil, err
		}
	}

	p, err := s.repo.Update(ctx, params)
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityProduct)
	// product_count on categories follows product moves
	s.cache.InvalidateEntity(ctx, cache.EntityCategory)
	log.Info("UpdateProduct success")
	return p, nil
}

func (s *service) Delete(ctx context.Context, businessID, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteProduct"),
		zap.String("product_id", id),
	)

	if err := s.repo.Delete(ctx, businessID, id); err != nil {
		log.Error("failed to delete product", zap.Error(err))
		return err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityProduct)
	s.cache.InvalidateEntity(ctx, cache.EntityCategory)
	log.Info("DeleteProduct success")
	return nil
}

func (s *service) checkCategory(ctx context.Context, businessID string, categoryID *string) error {
	if categoryID == nil || *categoryID == "" {
		return nil
	}
	ok, err := s.repo.CategoryBelongs(ctx, businessID, *categoryID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCategoryNotFound
	}
	return nil
}
