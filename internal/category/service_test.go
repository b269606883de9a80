package category

import (
	"context"
	"errors"
	"testing"
	"time"

	"cardapio-be/internal/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListByBusiness(ctx context.Context, businessID string) ([]*Category, error) {
	args := m.Called(ctx, businessID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Category), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, businessID, id string) (*Category, error) {
	args := m.Called(ctx, businessID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, params CreateCategoryParams) (*Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, params UpdateCategoryParams) (*Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Category), args.Error(1)
}

func (m *MockRepository) UpdatePositionsTx(ctx context.Context, businessID string, list []*Category) error {
	args := m.Called(ctx, businessID, list)
	return args.Error(0)
}

func (m *MockRepository) DeleteTx(ctx context.Context, businessID, id string) error {
	args := m.Called(ctx, businessID, id)
	return args.Error(0)
}

// --- Tests ---

func TestService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("Empty business fails closed", func(t *testing.T) {
		repo := new(MockRepository)
		list, err := NewService(repo, nil).List(ctx, "")

		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
		repo.AssertNotCalled(t, "ListByBusiness", mock.Anything, mock.Anything)
	})

	t.Run("Cached until a write", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo, cache.New(time.Minute, nil))
		repo.On("ListByBusiness", ctx, "biz-1").Return(fixture("a", "b"), nil)
		repo.On("Create", ctx, mock.AnythingOfType("CreateCategoryParams")).
			Return(&Category{ID: "c", Position: 3}, nil)

		for i := 0; i < 3; i++ {
			list, err := svc.List(ctx, "biz-1")
			require.NoError(t, err)
			assert.Equal(t, []string{"a", "b"}, idsOf(list))
		}
		repo.AssertNumberOfCalls(t, "ListByBusiness", 1)

		_, err := svc.Create(ctx, CreateCategoryParams{BusinessID: "biz-1", Name: "Novos", Emoji: "✨"})
		require.NoError(t, err)

		_, err = svc.List(ctx, "biz-1")
		require.NoError(t, err)
		repo.AssertNumberOfCalls(t, "ListByBusiness", 2)
	})
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Create", ctx, CreateCategoryParams{BusinessID: "biz-1", Name: "Lanches", Emoji: "🍔"}).
			Return(&Category{ID: "cat-1", Name: "Lanches", Position: 1}, nil)

		c, err := NewService(repo, nil).Create(ctx, CreateCategoryParams{BusinessID: "biz-1", Name: " Lanches ", Emoji: "🍔"})
		require.NoError(t, err)
		assert.Equal(t, 1, c.Position)
		repo.AssertExpectations(t)
	})

	t.Run("Invalid never reaches the store", func(t *testing.T) {
		repo := new(MockRepository)
		_, err := NewService(repo, nil).Create(ctx, CreateCategoryParams{BusinessID: "biz-1", Name: "", Emoji: "🍔"})

		assert.ErrorIs(t, err, ErrInvalidCategory)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	repo := new(MockRepository)
	name := "Bebidas"
	repo.On("Update", ctx, mock.AnythingOfType("UpdateCategoryParams")).Return(nil, ErrCategoryNotFound)

	_, err := NewService(repo, nil).Update(ctx, UpdateCategoryParams{ID: "x", BusinessID: "biz-1", Name: &name})
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success invalidates products too", func(t *testing.T) {
		repo := new(MockRepository)
		c := cache.New(time.Minute, nil)
		_, _ = cache.GetOrLoad(ctx, c, cache.EntityProduct, "biz-1", func(context.Context) ([]string, error) {
			return []string{"p-1"}, nil
		})
		require.Equal(t, 1, c.Len())

		repo.On("DeleteTx", ctx, "biz-1", "cat-1").Return(nil)

		require.NoError(t, NewService(repo, c).Delete(ctx, "biz-1", "cat-1"))
		assert.Zero(t, c.Len())
	})

	t.Run("Error", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("DeleteTx", ctx, "biz-1", "cat-1").Return(errors.New("fk violation"))

		err := NewService(repo, nil).Delete(ctx, "biz-1", "cat-1")
		assert.EqualError(t, err, "fk violation")
	})
}

func TestService_Reorder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success persists dense positions", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListByBusiness", ctx, "biz-1").Return(fixture("a", "b", "c"), nil)
		repo.On("UpdatePositionsTx", ctx, "biz-1", mock.MatchedBy(func(list []*Category) bool {
			if len(list) != 3 || list[0].ID != "c" {
				return false
			}
			for i, c := range list {
				if c.Position != i+1 {
					return false
				}
			}
			return true
		})).Return(nil)

		got, err := NewService(repo, nil).Reorder(ctx, MoveParams{BusinessID: "biz-1", ID: "c", RefID: "a", Placement: PlaceBefore})
		require.NoError(t, err)
		assert.Equal(t, []string{"c", "a", "b"}, idsOf(got))
		repo.AssertExpectations(t)
	})

	t.Run("Invalid move skips the write", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListByBusiness", ctx, "biz-1").Return(fixture("a", "b"), nil)

		_, err := NewService(repo, nil).Reorder(ctx, MoveParams{BusinessID: "biz-1", ID: "zz", RefID: "a", Placement: PlaceAfter})
		assert.ErrorIs(t, err, ErrCategoryNotFound)
		repo.AssertNotCalled(t, "UpdatePositionsTx", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Failed write surfaces the error", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("ListByBusiness", ctx, "biz-1").Return(fixture("a", "b"), nil)
		repo.On("UpdatePositionsTx", ctx, "biz-1", mock.Anything).Return(errors.New("conflict"))

		got, err := NewService(repo, nil).Reorder(ctx, MoveParams{BusinessID: "biz-1", ID: "a", RefID: "b", Placement: PlaceAfter})
		assert.EqualError(t, err, "conflict")
		assert.Nil(t, got)
	})
}
