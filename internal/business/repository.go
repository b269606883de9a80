package business

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
	GetByID(ctx context.Context, id string) (*Business, error)
	GetByOwner(ctx context.Context, ownerID string) (*Business, error)
	List(ctx context.Context, plan *Plan) ([]*Business, error)
	Create(ctx context.Context, params CreateBusinessParams) (*Business, error)
	Update(ctx context.Context, params UpdateBusinessParams) (*Business, error)
	AdminUpdate(ctx context.Context, params AdminUpdateParams) (*Business, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const businessColumns = `b.id, b.owner_id, b.name, b.description, b.phone, b.address, b.city, b.state,
	b.cep, b.instagram, b.logo_url, b.cover_url, b.delivery_fee, b.minimum_order, b.plan,
	b.is_active, b.opening_hours, b.created_at, b.updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanBusiness(s scanner) (*Business, error) {
	var b Business
	err := s.Scan(
		&b.ID, &b.OwnerID, &b.Name, &b.Description, &b.Phone, &b.Address, &b.City, &b.State,
		&b.CEP, &b.Instagram, &b.LogoURL, &b.CoverURL, &b.DeliveryFee, &b.MinimumOrder, &b.Plan,
		&b.IsActive, &b.OpeningHours, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) getOne(ctx context.Context, where string, arg string) (*Business, error) {
	query := `SELECT ` + businessColumns + ` FROM businesses b WHERE ` + where

	b, err := scanBusiness(r.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		logger.FromCtx(ctx).Error("failed to get business", zap.String("where", where), zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *repository) GetByID(ctx context.Context, id string) (*Business, error) {
	return r.getOne(ctx, "b.id = $1", id)
}

func (r *repository) GetByOwner(ctx context.Context, ownerID string) (*Business, error) {
	return r.getOne(ctx, "b.owner_id = $1", ownerID)
}

func (r *repository) List(ctx context.Context, plan *Plan) ([]*Business, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListBusinesses"),
	)

	query := `SELECT ` + businessColumns + ` FROM businesses b`
	args := []interface{}{}

	/* ---------- FILTERS ---------- */
	if plan != nil {
		args = append(args, string(*plan))
		query += fmt.Sprintf(" WHERE b.plan = $%d", len(args))
	}
	query += " ORDER BY b.created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("DB query failed ListBusinesses", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	list := []*Business{}
	for rows.Next() {
		b, err := scanBusiness(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

func (r *repository) Create(ctx context.Context, params CreateBusinessParams) (*Business, error) {
	query := `
		INSERT INTO businesses AS b (
			owner_id, name, description, phone, address, city, state, cep,
			instagram, logo_url, cover_url, delivery_fee, minimum_order, opening_hours
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING ` + businessColumns

	b, err := scanBusiness(r.db.QueryRowContext(ctx, query,
		params.OwnerID,
		params.Name,
		params.Description,
		params.Phone,
		params.Address,
		params.City,
		params.State,
		params.CEP,
		params.Instagram,
		params.LogoURL,
		params.CoverURL,
		params.DeliveryFee,
		params.MinimumOrder,
		params.OpeningHours,
	))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == PgUniqueViolation {
			return nil, ErrBusinessExists
		}
		logger.FromCtx(ctx).Error("failed to insert business", zap.Error(err))
		return nil, err
	}
	return b, nil
}

func (r *repository) update(ctx context.Context, set []string, args []interface{}, where string) (*Business, error) {
	if len(set) == 0 {
		return nil, ErrNothingToUpdate
	}
	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE businesses AS b SET %s WHERE %s RETURNING `+businessColumns,
		strings.Join(set, ", "), where)

	b, err := scanBusiness(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBusinessNotFound
		}
		logger.FromCtx(ctx).Error("failed to update business", zap.Error(err))
		return nil, err
	}
	return b, nil
}

// Update changes owner-editable fields; the row must belong to OwnerID.
func (r *repository) Update(ctx context.Context, params UpdateBusinessParams) (*Business, error) {
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
	if params.Phone != nil {
		add("phone", *params.Phone)
	}
	if params.Address != nil {
		add("address", *params.Address)
	}
	if params.City != nil {
		add("city", *params.City)
	}
	if params.State != nil {
		add("state", *params.State)
	}
	if params.CEP != nil {
		add("cep", *params.CEP)
	}
	if params.Instagram != nil {
		add("instagram", *params.Instagram)
	}
	if params.LogoURL != nil {
		add("logo_url", *params.LogoURL)
	}
	if params.CoverURL != nil {
		add("cover_url", *params.CoverURL)
	}
	if params.DeliveryFee != nil {
		add("delivery_fee", *params.DeliveryFee)
	}
	if params.MinimumOrder != nil {
		add("minimum_order", *params.MinimumOrder)
	}
	if params.OpeningHours != nil {
		add("opening_hours", params.OpeningHours)
	}

	args = append(args, params.ID, params.OwnerID)
	where := fmt.Sprintf("b.id = $%d AND b.owner_id = $%d", len(args)-1, len(args))
	return r.update(ctx, set, args, where)
}

func (r *repository) AdminUpdate(ctx context.Context, params AdminUpdateParams) (*Business, error) {
	set := []string{}
	args := []interface{}{}

	if params.Plan != nil {
		args = append(args, string(*params.Plan))
		set = append(set, fmt.Sprintf("plan = $%d", len(args)))
	}
	if params.IsActive != nil {
		args = append(args, *params.IsActive)
		set = append(set, fmt.Sprintf("is_active = $%d", len(args)))
	}

	args = append(args, params.ID)
	return r.update(ctx, set, args, fmt.Sprintf("b.id = $%d", len(args)))
}
