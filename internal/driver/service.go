package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"cardapio-be/internal/cache"
	"cardapio-be/internal/logger"
	"cardapio-be/internal/user"

	"go.uber.org/zap"
)

// UserDirectory resolves the profile a driver is registered with.
type UserDirectory interface {
	FindByEmail(ctx context.Context, email string) (*user.Profile, error)
	AssignRole(ctx context.Context, userID string, role user.Role) error
}

type Service interface {
	List(ctx context.Context, businessID string) ([]*Driver, error)
	Get(ctx context.Context, businessID, id string) (*Driver, error)
	Create(ctx context.Context, params CreateDriverParams) (*Driver, error)
	SetAvailability(ctx context.Context, businessID, id string, available bool) (*Driver, error)
	Delete(ctx context.Context, businessID, id string) error

	Me(ctx context.Context, userID string) (*Driver, error)
	SetMyAvailability(ctx context.Context, userID string, available bool) (*Driver, error)
	UpdateMyLocation(ctx context.Context, userID string, lat, lng float64) (*Driver, error)
}

type service struct {
	repo  Repository
	users UserDirectory
	cache *cache.Cache
	now   func() time.Time
}

func NewService(repo Repository, users UserDirectory, c *cache.Cache) Service {
	return &service{repo: repo, users: users, cache: c, now: time.Now}
}

// List returns the drivers of a business, newest first.
func (s *service) List(ctx context.Context, businessID string) ([]*Driver, error) {
	if businessID == "" {
		return []*Driver{}, nil
	}
	return cache.GetOrLoad(ctx, s.cache, cache.EntityDriver, businessID, func(ctx context.Context) ([]*Driver, error) {
		return s.repo.ListByBusiness(ctx, businessID)
	})
}

func (s *service) Get(ctx context.Context, businessID, id string) (*Driver, error) {
	return s.repo.GetByID(ctx, businessID, id)
}

// Create registers an existing user, found by email, as a driver of the
// business and grants them the courier role. When the grant fails the
// driver row is deleted again.
func (s *service) Create(ctx context.Context, params CreateDriverParams) (*Driver, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "CreateDriver"),
	)
	log.Info("CreateDriver started")

	if params.VehicleType != nil && !params.VehicleType.Valid() {
		return nil, fmt.Errorf("%w: unknown vehicle type %q", ErrInvalidDriver, string(*params.VehicleType))
	}
	if params.LicensePlate != nil {
		plate := strings.ToUpper(strings.TrimSpace(*params.LicensePlate))
		params.LicensePlate = &plate
	}

	profile, err := s.users.FindByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			log.Info("no account for driver email")
		} else {
			log.Error("failed to find driver profile", zap.Error(err))
		}
		return nil, err
	}
	if params.OwnerID != "" && profile.ID == params.OwnerID {
		log.Info("owner tried to register as driver")
		return nil, fmt.Errorf("%w: the business owner cannot be a driver", ErrInvalidDriver)
	}

	d, err := s.repo.Create(ctx, newDriver{
		BusinessID:   params.BusinessID,
		UserID:       profile.ID,
		VehicleType:  params.VehicleType,
		LicensePlate: params.LicensePlate,
	})
	if err != nil {
		log.Error("failed to create driver", zap.Error(err))
		return nil, err
	}

	if err := s.users.AssignRole(ctx, profile.ID, user.RoleEntregador); err != nil {
		log.Error("failed to grant courier role", zap.Error(err))
		if delErr := s.repo.Delete(ctx, params.BusinessID, d.ID); delErr != nil {
			log.Error("failed to remove driver after role grant failure",
				zap.String("driver_id", d.ID),
				zap.Error(delErr),
			)
			return nil, errors.Join(err, delErr)
		}
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityDriver)
	log.Info("CreateDriver success", zap.String("driver_id", d.ID))
	return d, nil
}

func (s *service) SetAvailability(ctx context.Context, businessID, id string, available bool) (*Driver, error) {
	if _, err := s.repo.GetByID(ctx, businessID, id); err != nil {
		return nil, err
	}
	return s.setAvailability(ctx, id, available)
}

func (s *service) setAvailability(ctx context.Context, id string, available bool) (*Driver, error) {
	d, err := s.repo.SetAvailability(ctx, id, available)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to set availability", zap.String("driver_id", id), zap.Error(err))
		return nil, err
	}

	s.cache.InvalidateEntity(ctx, cache.EntityDriver)
	logger.FromCtx(ctx).Info("driver availability changed",
		zap.String("driver_id", id),
		zap.Bool("is_available", available),
	)
	return d, nil
}

func (s *service) Delete(ctx context.Context, businessID, id string) error {
	if err := s.repo.Delete(ctx, businessID, id); err != nil {
		logger.FromCtx(ctx).Error("failed to delete driver", zap.String("driver_id", id), zap.Error(err))
		return err
	}
	s.cache.InvalidateEntity(ctx, cache.EntityDriver)
	return nil
}

func (s *service) Me(ctx context.Context, userID string) (*Driver, error) {
	if userID == "" {
		return nil, ErrDriverNotFound
	}
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) SetMyAvailability(ctx context.Context, userID string, available bool) (*Driver, error) {
	me, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.setAvailability(ctx, me.ID, available)
}

// UpdateMyLocation stores the courier position without invalidating cached lists.
func (s *service) UpdateMyLocation(ctx context.Context, userID string, lat, lng float64) (*Driver, error) {
	loc := &Location{Lat: lat, Lng: lng, UpdatedAt: s.now().UTC()}
	if !loc.Valid() {
		return nil, ErrInvalidLocation
	}

	me, err := s.Me(ctx, userID)
	if err != nil {
		return nil, err
	}

	d, err := s.repo.UpdateLocation(ctx, me.ID, loc)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to update location", zap.String("driver_id", me.ID), zap.Error(err))
		return nil, err
	}
	return d, nil
}
