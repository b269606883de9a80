package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cardapio-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	ListByBusiness(ctx context.Context, businessID string, opts ListOptions) ([]*Product, error)
	GetByID(ctx context.Context, businessID, id string) (*Product, error)
	GetByIDs(ctx context.Context, businessID string, ids []string) (map[string]*Product, error)
	CountByBusiness(ctx context.Context, businessID string) (int, error)
	CategoryBelongs(ctx context.Context, businessID, categoryID string) (bool, error)
	Create(ctx context.Context, params CreateProductParams) (*Product, error)
	Update(ctx context.Context, params UpdateProductParams) (*Product, error)
	Delete(ctx context.Context, businessID, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const productColumns = `p.id, p.business_id, p.category_id, p.name, p.description, p.price,
	p.image_url, p.is_available, p.position, p.addons, p.created_at, p.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*Product, error) {
	var p Product
	err := s.Scan(
		&p.ID, &p.BusinessID, &p.CategoryID, &p.Name, &p.Description, &p.Price,
		&p.ImageURL, &p.IsAvailable, &p.Position, &p.Addons, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) ListByBusiness(ctx context.Context, businessID string, opts ListOptions) ([]*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListByBusiness"),
	)

	/* ---------- BASE QUERY ---------- */
	query := `SELECT ` + productColumns + ` FROM products p`

	where := []string{"p.business_id = $1"}
	args := []interface{}{businessID}

	/* ---------- FILTERS ---------- */
	if opts.CategoryID != nil && *opts.CategoryID != "" {
		args = append(args, *opts.CategoryID)
		where = append(where, fmt.Sprintf("p.category_id = $%d", len(args)))
	}
	if opts.OnlyAvailable {
		where = append(where, "p.is_available = TRUE")
	}
	if opts.Search != nil && strings.TrimSpace(*opts.Search) != "" {
		args = append(args, "%"+strings.TrimSpace(*opts.Search)+"%")
		where = append(where, fmt.Sprintf("p.name ILIKE $%d", len(args)))
	}

	query += " WHERE " + strings.Join(where, " AND ")
	query += " ORDER BY p.created_at DESC"

	log.Debug("executing ListByBusiness query", zap.String("query", query), zap.Any("args", args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed ListByBusiness", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	products := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, err
	}

	return products, nil
}

func (r *repository) GetByID(ctx context.Context, businessID, id string) (*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products p WHERE p.id = $1 AND p.business_id = $2`

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id, businessID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		logger.FromCtx(ctx).Error("failed to get product", zap.String("product_id", id), zap.Error(err))
		return nil, err
	}
	return p, nil
}

// GetByIDs loads the given products of a business keyed by id. Missing ids are absent from the map.
func (r *repository) GetByIDs(ctx context.Context, businessID string, ids []string) (map[string]*Product, error) {
	out := make(map[string]*Product, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := `SELECT ` + productColumns + ` FROM products p WHERE p.business_id = $1 AND p.id = ANY($2)`

	rows, err := r.db.QueryContext(ctx, query, businessID, pq.Array(ids))
	if err != nil {
		logger.FromCtx(ctx).Error("failed to load products by ids", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out[p.ID] = p
	}
	return out, rows.Err()
}

func (r *repository) CountByBusiness(ctx context.Context, businessID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM products WHERE business_id = $1`, businessID,
	).Scan(&n)
	return n, err
}

func (r *repository) CategoryBelongs(ctx context.Context, businessID, categoryID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1 AND business_id = $2)`,
		categoryID, businessID,
	).Scan(&ok)
	return ok, err
}

func (r *repository) Create(ctx context.Context, params CreateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
	)

	isAvailable := true
	if params.IsAvailable != nil {
		isAvailable = *params.IsAvailable
	}

	query := `
		INSERT INTO products AS p (business_id, category_id, name, description, price, image_url, is_available, addons, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM products WHERE business_id = $1))
		RETURNING ` + productColumns

	p, err := scanProduct(r.db.QueryRowContext(ctx, query,
		params.BusinessID,
		params.CategoryID,
		params.Name,
		params.Description,
		params.Price,
		params.ImageURL,
		isAvailable,
		params.Addons,
	))
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (r *repository) Update(ctx context.Context, params UpdateProductParams) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProduct"),
		zap.String("product_id", params.ID),
	)

	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Description != nil {
		add("description", *params.Description)
	}
	if params.Price != nil {
		add("price", *params.Price)
	}
	if params.ImageURL != nil {
		add("image_url", *params.ImageURL)
	}
	if params.IsAvailable != nil {
		add("is_available", *params.IsAvailable)
	}
	if params.Addons != nil {
		add("addons", *params.Addons)
	}
	if params.ClearCategory {
		set = append(set, "category_id = NULL")
	} else if params.CategoryID != nil {
		add("category_id", *params.CategoryID)
	}

	if len(set) == 0 {
		return nil, ErrNothingToUpdate
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, params.ID, params.BusinessID)
	query := fmt.Sprintf(
		`UPDATE products AS p SET %s WHERE p.id = $%d AND p.business_id = $%d RETURNING `+productColumns,
		strings.Join(set, ", "), len(args)-1, len(args),
	)

	p, err := scanProduct(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductNotFound
		}
		log.Error("failed to update product", zap.Error(err))
		return nil, err
	}

	return p, nil
}

func (r *repository) Delete(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM products WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete product", zap.String("product_id", id), zap.Error(err))
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProductNotFound
	}
	return nil
}
