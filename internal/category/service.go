package category

import (
	"context"

	"cardapio-be/internal/cache"
	"cardapio-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	List(ctx context.Context, businessID string) ([]*Category, error)
	Create(ctx context.Context, params CreateCategoryParams) (*Category, error)
	Update(ctx context.Context, params UpdateCategoryParams) (*Category, error)
	Delete(ctx context.Context, businessID, id string) error
	Reorder(ctx context.Context, params MoveParams) ([]*Category, error)
}

type service struct {
	repo  Repository
	cache *cache.Cache
}

func NewService(repo Repository, c *cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

// List returns the categories of a business in display order.
func (s *service) List(ctx context.Context, businessID string) ([]*Category, error) {
	if businessID == "" {
		return []*Category{}, nil
	}
	return cache.GetOrLoad(ctx, s.cache, cache.EntityCategory, businessID, func(ctx context.Context) ([]*Category, error) {
		return s.repo.ListByBusiness(ctx, businessID)
	})
}

func (s *service) Create(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateCategory"),
	)
	log.Info("CreateCategory started")

	if err := params.normalize(); err != nil {
		return nil, err
	}

	c, err := s.repo.Create(ctx, params)
	if err != nil {
		log.Error("failed to create category", zap.Error(err))
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityCategory)
	log.Info("CreateCategory success", zap.String("category_id", c.ID), zap.Int("position", c.Position))
	return c, nil
}

func (s *service) Update(ctx context.Context, params UpdateCategoryParams) (*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateCategory"),
		zap.String("category_id", params.ID),
	)
	log.Info("UpdateCategory started")

	if err := params.normalize(); err != nil {
		return nil, err
	}

	c, err := s.repo.Update(ctx, params)
	if err != nil {
		log.Error("failed to update category", zap.Error(err))
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityCategory)
	log.Info("UpdateCategory success")
	return c, nil
}

// Delete removes the category; its products become uncategorized.
func (s *service) Delete(ctx context.Context, businessID, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "DeleteCategory"),
		zap.String("category_id", id),
	)
	log.Info("DeleteCategory started")

	if err := s.repo.DeleteTx(ctx, businessID, id); err != nil {
		log.Error("failed to delete category", zap.Error(err))
		return err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityCategory)
	s.cache.InvalidateEntity(ctx, cache.EntityProduct)
	log.Info("DeleteCategory success")
	return nil
}

// Reorder moves one category next to another and persists the dense
// sequence. On a failed write the stored order stays as it was.
func (s *service) Reorder(ctx context.Context, params MoveParams) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "ReorderCategory"),
		zap.String("category_id", params.ID),
		zap.String("ref_id", params.RefID),
		zap.String("placement", string(params.Placement)),
	)
	log.Info("ReorderCategory started")

	// read from the store, never the cache
	current, err := s.repo.ListByBusiness(ctx, params.BusinessID)
	if err != nil {
		log.Error("failed to load categories", zap.Error(err))
		return nil, err
	}

	moved, err := MoveRelative(current, params.ID, params.RefID, params.Placement)
	if err != nil {
		log.Info("invalid move", zap.Error(err))
		return nil, err
	}
	Renumber(moved)

	if err := s.repo.UpdatePositionsTx(ctx, params.BusinessID, moved); err != nil {
		log.Error("failed to persist positions", zap.Error(err))
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityCategory)
	log.Info("ReorderCategory success", zap.Int("count", len(moved)))
	return moved, nil
}
