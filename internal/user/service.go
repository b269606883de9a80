package user

import (
	"context"
	"slices"
	"strings"

	"cardapio-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	GetProfile(ctx context.Context, userID string) (*Profile, error)
	FindByEmail(ctx context.Context, email string) (*Profile, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*Profile, error)
	PrimaryRole(ctx context.Context, userID string) (Role, error)
	HasRole(ctx context.Context, userID string, role Role) (bool, error)
	AssignRole(ctx context.Context, userID string, role Role) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetProfile(ctx, userID)
}

func (s *service) FindByEmail(ctx context.Context, email string) (*Profile, error) {
	if strings.TrimSpace(email) == "" {
		return nil, ErrProfileNotFound
	}
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*Profile, error) {
	return s.repo.UpdateProfile(ctx, params)
}

// PrimaryRole picks the strongest role the user holds: admin, then entregador, then cliente.
func (s *service) PrimaryRole(ctx context.Context, userID string) (Role, error) {
	roles, err := s.repo.GetRoles(ctx, userID)
	if err != nil {
		return "", err
	}

	for _, candidate := range rolePriority {
		if slices.Contains(roles, candidate) {
			return candidate, nil
		}
	}

	logger.FromCtx(ctx).Info("user has no role", zap.String("user_id", userID))
	return "", ErrNoRole
}

func (s *service) HasRole(ctx context.Context, userID string, role Role) (bool, error) {
	if !role.Valid() {
		return false, ErrInvalidRole
	}
	return s.repo.HasRole(ctx, userID, role)
}

func (s *service) AssignRole(ctx context.Context, userID string, role Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	return s.repo.AssignRole(ctx, userID, role)
}
