package business

import (
	"context"
	"testing"
	"time"

	"cardapio-be/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Business), args.Error(1)
}

func (m *MockRepository) GetByOwner(ctx context.Context, ownerID string) (*Business, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Business), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, plan *Plan) ([]*Business, error) {
	args := m.Called(ctx, plan)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Business), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, params CreateBusinessParams) (*Business, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Business), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, params UpdateBusinessParams) (*Business, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Business), args.Error(1)
}

func (m *MockRepository) AdminUpdate(ctx context.Context, params AdminUpdateParams) (*Business, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Business), args.Error(1)
}

func TestService_GetPublic(t *testing.T) {
	ctx := context.Background()

	t.Run("Active", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", ctx, "biz-1").Return(&Business{ID: "biz-1", IsActive: true}, nil)

		b, err := NewService(repo, nil).GetPublic(ctx, "biz-1")
		require.NoError(t, err)
		assert.Equal(t, "biz-1", b.ID)
	})

	t.Run("Inactive is hidden", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("GetByID", ctx, "biz-1").Return(&Business{ID: "biz-1"}, nil)

		_, err := NewService(repo, nil).GetPublic(ctx, "biz-1")
		assert.ErrorIs(t, err, ErrBusinessNotFound)
	})

	t.Run("Empty id", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := NewService(repo, nil).GetPublic(ctx, "")
		assert.ErrorIs(t, err, ErrBusinessNotFound)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestService_ProductLimit(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	repo.On("GetByID", ctx, "biz-free").Return(&Business{Plan: PlanBasico}, nil)
	repo.On("GetByID", ctx, "biz-pro").Return(&Business{Plan: PlanProfissional}, nil)
	repo.On("GetByID", ctx, "biz-x").Return(nil, ErrBusinessNotFound)
	svc := NewService(repo, nil)

	n, err := svc.ProductLimit(ctx, "biz-free")
	require.NoError(t, err)
	assert.Equal(t, 20, n)

	n, err = svc.ProductLimit(ctx, "biz-pro")
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = svc.ProductLimit(ctx, "biz-x")
	assert.ErrorIs(t, err, ErrBusinessNotFound)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	svc := NewService(repo, cache.New(time.Minute, nil))
	repo.On("List", ctx, (*Plan)(nil)).Return([]*Business{{ID: "biz-1"}}, nil)

	for i := 0; i < 2; i++ {
		list, err := svc.List(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	}
	repo.AssertNumberOfCalls(t, "List", 1)

	bad := Plan("ouro")
	_, err := svc.List(ctx, &bad)
	assert.ErrorIs(t, err, ErrInvalidBusiness)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.MatchedBy(func(p CreateBusinessParams) bool {
			return p.Name == "Burger House" && p.OwnerID == "owner-1"
		})).Return(&Business{ID: "biz-1", Plan: PlanBasico}, nil)

		b, err := NewService(repo, nil).Create(ctx, validCreate())
		require.NoError(t, err)
		assert.Equal(t, "biz-1", b.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Missing owner", func(t *testing.T) {
		repo := new(MockRepository)
		p := validCreate()
		p.OwnerID = ""

		_, err := NewService(repo, nil).Create(ctx, p)
		assert.ErrorIs(t, err, ErrInvalidBusiness)
	})

	t.Run("Duplicate", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, mock.Anything).Return(nil, ErrBusinessExists)

		_, err := NewService(repo, nil).Create(ctx, validCreate())
		assert.ErrorIs(t, err, ErrBusinessExists)
	})
}

func TestService_AdminUpdate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	bad := Plan("gold")

	_, err := NewService(repo, nil).AdminUpdate(ctx, AdminUpdateParams{ID: "biz-1", Plan: &bad})
	assert.ErrorIs(t, err, ErrInvalidBusiness)
	repo.AssertNotCalled(t, "AdminUpdate", mock.Anything, mock.Anything)
}
