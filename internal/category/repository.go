package category

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"cardapio-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	ListByBusiness(ctx context.Context, businessID string) ([]*Category, error)
	GetByID(ctx context.Context, businessID, id string) (*Category, error)
	Create(ctx context.Context, params CreateCategoryParams) (*Category, error)
	Update(ctx context.Context, params UpdateCategoryParams) (*Category, error)
	UpdatePositionsTx(ctx context.Context, businessID string, list []*Category) error
	DeleteTx(ctx context.Context, businessID, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const categoryColumns = `c.id, c.business_id, c.name, c.emoji, c.position, c.is_active, c.created_at, c.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanCategory(s scanner, withCount bool) (*Category, error) {
	var c Category
	dest := []any{&c.ID, &c.BusinessID, &c.Name, &c.Emoji, &c.Position, &c.IsActive, &c.CreatedAt, &c.UpdatedAt}
	if withCount {
		dest = append(dest, &c.ProductCount)
	}
	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) ListByBusiness(ctx context.Context, businessID string) ([]*Category, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListCategories"),
	)

	query := `
		SELECT ` + categoryColumns + `, COUNT(p.id) AS product_count
		FROM categories c
		LEFT JOIN products p ON p.category_id = c.id
		WHERE c.business_id = $1
		GROUP BY c.id
		ORDER BY c.position ASC`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		log.Error("DB query failed ListCategories", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	categories := []*Category{}
	for rows.Next() {
		c, err := scanCategory(rows, true)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return categories, nil
}

func (r *repository) GetByID(ctx context.Context, businessID, id string) (*Category, error) {
	query := `
		SELECT ` + categoryColumns + `,
			(SELECT COUNT(*) FROM products p WHERE p.category_id = c.id) AS product_count
		FROM categories c
		WHERE c.id = $1 AND c.business_id = $2`

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id, businessID), true)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		logger.FromCtx(ctx).Error("failed to get category", zap.String("category_id", id), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// Create appends the category at position N+1.
func (r *repository) Create(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	query := `
		INSERT INTO categories AS c (business_id, name, emoji, position)
		VALUES ($1, $2, $3,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM categories WHERE business_id = $1))
		RETURNING ` + categoryColumns

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, params.BusinessID, params.Name, params.Emoji), false)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to insert category", zap.Error(err))
		return nil, err
	}
	return c, nil
}

func (r *repository) Update(ctx context.Context, params UpdateCategoryParams) (*Category, error) {
	set := []string{}
	args := []interface{}{}

	add := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Name != nil {
		add("name", *params.Name)
	}
	if params.Emoji != nil {
		add("emoji", *params.Emoji)
	}
	if params.IsActive != nil {
		add("is_active", *params.IsActive)
	}
	if len(set) == 0 {
		return nil, ErrNothingToUpdate
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, params.ID, params.BusinessID)
	query := fmt.Sprintf(
		`UPDATE categories AS c SET %s WHERE c.id = $%d AND c.business_id = $%d RETURNING `+categoryColumns,
		strings.Join(set, ", "), len(args)-1, len(args),
	)

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, args...), false)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		logger.FromCtx(ctx).Error("failed to update category", zap.String("category_id", params.ID), zap.Error(err))
		return nil, err
	}
	return c, nil
}

// UpdatePositionsTx stores the position of every category in list atomically.
func (r *repository) UpdatePositionsTx(ctx context.Context, businessID string, list []*Category) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdatePositionsTx"),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, c := range list {
		res, err := tx.ExecContext(ctx, `
			UPDATE categories
			SET position = $1, updated_at = NOW()
			WHERE id = $2 AND business_id = $3
		`, c.Position, c.ID, businessID)
		if err != nil {
			log.Error("failed to update position", zap.String("category_id", c.ID), zap.Error(err))
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrCategoryNotFound
		}
	}

	return tx.Commit()
}

// DeleteTx removes the category, leaves its products uncategorized and
// closes the gap in the remaining positions.
func (r *repository) DeleteTx(ctx context.Context, businessID, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeleteTx"),
		zap.String("category_id", id),
	)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// 1. Detach products
	if _, err := tx.ExecContext(ctx, `
		UPDATE products
		SET category_id = NULL, updated_at = NOW()
		WHERE category_id = $1 AND business_id = $2
	`, id, businessID); err != nil {
		log.Error("failed to detach products", zap.Error(err))
		return err
	}

	// 2. Delete the row
	res, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		log.Error("failed to delete category", zap.Error(err))
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrCategoryNotFound
	}

	// 3. Renumber what is left
	if _, err := tx.ExecContext(ctx, `
		UPDATE categories AS c
		SET position = ranked.rn
		FROM (
			SELECT id, ROW_NUMBER() OVER (ORDER BY position ASC, created_at ASC) AS rn
			FROM categories
			WHERE business_id = $1
		) AS ranked
		WHERE c.id = ranked.id AND c.position <> ranked.rn
	`, businessID); err != nil {
		log.Error("failed to renumber categories", zap.Error(err))
		return err
	}

	return tx.Commit()
}
