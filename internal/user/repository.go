package user

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"cardapio-be/internal/logger"

	"go.uber.org/zap"
)

type Repository interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	UpdateProfile(ctx context.Context, p UpdateProfileParams) (*Profile, error)
	GetRoles(ctx context.Context, userID string) ([]Role, error)
	HasRole(ctx context.Context, userID string, role Role) (bool, error)
	AssignRole(ctx context.Context, userID string, role Role) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "GetProfile"),
		zap.String("user_id", userID),
	)

	query := `
		SELECT id, full_name, phone, email, created_at, updated_at
		FROM profiles
		WHERE id = $1
	`

	var p Profile
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&p.ID, &p.FullName, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Info("profile not found")
			return nil, ErrProfileNotFound
		}
		log.Error("failed to scan profile", zap.Error(err))
		return nil, err
	}

	return &p, nil
}

// FindByEmail matches the address case-insensitively.
func (r *repository) FindByEmail(ctx context.Context, email string) (*Profile, error) {
	query := `
		SELECT id, full_name, phone, email, created_at, updated_at
		FROM profiles
		WHERE LOWER(email) = LOWER($1)
	`

	var p Profile
	err := r.db.QueryRowContext(ctx, query, strings.TrimSpace(email)).Scan(
		&p.ID, &p.FullName, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		logger.FromCtx(ctx).Error("failed to find profile by email", zap.Error(err))
		return nil, err
	}

	return &p, nil
}

func (r *repository) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*Profile, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProfile"),
		zap.String("user_id", params.UserID),
	)

	query := `
		UPDATE profiles
		SET full_name = COALESCE($2, full_name),
			phone = COALESCE($3, phone),
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, full_name, phone, email, created_at, updated_at
	`

	var p Profile
	err := r.db.QueryRowContext(ctx, query, params.UserID, params.FullName, params.Phone).Scan(
		&p.ID, &p.FullName, &p.Phone, &p.Email, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		log.Error("failed to update profile", zap.Error(err))
		return nil, err
	}

	log.Info("profile updated successfully")
	return &p, nil
}

func (r *repository) GetRoles(ctx context.Context, userID string) ([]Role, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT role FROM user_roles WHERE user_id = $1`, userID)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to query roles", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var roles []Role
	for rows.Next() {
		var role Role
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, rows.Err()
}

func (r *repository) HasRole(ctx context.Context, userID string, role Role) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_roles WHERE user_id = $1 AND role = $2)`,
		userID, role,
	).Scan(&ok)
	return ok, err
}

func (r *repository) AssignRole(ctx context.Context, userID string, role Role) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT (user_id, role) DO NOTHING`,
		userID, role,
	)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to assign role",
			zap.String("user_id", userID),
			zap.String("role", string(role)),
			zap.Error(err),
		)
	}
	return err
}
