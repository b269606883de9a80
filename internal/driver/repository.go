package driver

import (
	"context"
	"database/sql"
	"errors"

	"cardapio-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

type Repository interface {
	ListByBusiness(ctx context.Context, businessID string) ([]*Driver, error)
	GetByID(ctx context.Context, businessID, id string) (*Driver, error)
	GetByUserID(ctx context.Context, userID string) (*Driver, error)
	Create(ctx context.Context, d newDriver) (*Driver, error)
	SetAvailability(ctx context.Context, id string, available bool) (*Driver, error)
	UpdateLocation(ctx context.Context, id string, loc *Location) (*Driver, error)
	Delete(ctx context.Context, businessID, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const driverColumns = `d.id, d.business_id, d.user_id, d.vehicle_type, d.license_plate,
	COALESCE(d.is_available, FALSE), d.current_location, COALESCE(d.rating, 0),
	COALESCE(d.total_deliveries, 0), d.created_at, d.updated_at, p.full_name, p.phone`

type scanner interface {
	Scan(dest ...any) error
}

func scanDriver(s scanner) (*Driver, error) {
	var d Driver
	err := s.Scan(
		&d.ID, &d.BusinessID, &d.UserID, &d.VehicleType, &d.LicensePlate,
		&d.IsAvailable, &d.CurrentLocation, &d.Rating,
		&d.TotalDeliveries, &d.CreatedAt, &d.UpdatedAt, &d.FullName, &d.Phone,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) ListByBusiness(ctx context.Context, businessID string) ([]*Driver, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListDrivers"),
	)

	query := `
		SELECT ` + driverColumns + `
		FROM delivery_drivers d
		LEFT JOIN profiles p ON p.id = d.user_id
		WHERE d.business_id = $1
		ORDER BY d.created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, businessID)
	if err != nil {
		log.Error("DB query failed ListDrivers", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	drivers := []*Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, err
		}
		drivers = append(drivers, d)
	}
	return drivers, rows.Err()
}

func (r *repository) getOne(ctx context.Context, where string, args ...any) (*Driver, error) {
	query := `
		SELECT ` + driverColumns + `
		FROM delivery_drivers d
		LEFT JOIN profiles p ON p.id = d.user_id
		WHERE ` + where

	d, err := scanDriver(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDriverNotFound
		}
		logger.FromCtx(ctx).Error("failed to get driver", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *repository) GetByID(ctx context.Context, businessID, id string) (*Driver, error) {
	return r.getOne(ctx, "d.id = $1 AND d.business_id = $2", id, businessID)
}

func (r *repository) GetByUserID(ctx context.Context, userID string) (*Driver, error) {
	return r.getOne(ctx, "d.user_id = $1", userID)
}

// mutate runs a single-row write and returns the row joined with its profile.
func (r *repository) mutate(ctx context.Context, write string, args ...any) (*Driver, error) {
	query := `
		WITH d AS (` + write + ` RETURNING *)
		SELECT ` + driverColumns + `
		FROM d
		LEFT JOIN profiles p ON p.id = d.user_id`

	d, err := scanDriver(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDriverNotFound
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == PgUniqueViolation {
			return nil, ErrDriverExists
		}
		logger.FromCtx(ctx).Error("driver write failed", zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (r *repository) Create(ctx context.Context, nd newDriver) (*Driver, error) {
	return r.mutate(ctx, `
		INSERT INTO delivery_drivers (business_id, user_id, vehicle_type, license_plate, is_available)
		VALUES ($1, $2, $3, $4, FALSE)`,
		nd.BusinessID, nd.UserID, nd.VehicleType, nd.LicensePlate,
	)
}

func (r *repository) SetAvailability(ctx context.Context, id string, available bool) (*Driver, error) {
	return r.mutate(ctx, `
		UPDATE delivery_drivers
		SET is_available = $1, updated_at = NOW()
		WHERE id = $2`,
		available, id,
	)
}

func (r *repository) UpdateLocation(ctx context.Context, id string, loc *Location) (*Driver, error) {
	return r.mutate(ctx, `
		UPDATE delivery_drivers
		SET current_location = $1, updated_at = NOW()
		WHERE id = $2`,
		loc, id,
	)
}

func (r *repository) Delete(ctx context.Context, businessID, id string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM delivery_drivers WHERE id = $1 AND business_id = $2`, id, businessID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to delete driver", zap.String("driver_id", id), zap.Error(err))
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDriverNotFound
	}
	return nil
}
