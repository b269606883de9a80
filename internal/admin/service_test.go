package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"cardapio-be/internal/business"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CountBusinessesByPlan(ctx context.Context) ([]PlanCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]PlanCount), args.Error(1)
}

func (m *MockRepository) OrderStats(ctx context.Context, since time.Time) (*OrderStats, error) {
	args := m.Called(ctx, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*OrderStats), args.Error(1)
}

func TestService_Metrics(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Success", func(t *testing.T) {
		repo := new(MockRepository)
		svc := &service{repo: repo, now: func() time.Time { return now }}

		repo.On("CountBusinessesByPlan", ctx).Return([]PlanCount{
			{Plan: business.PlanBasico, Total: 10, Active: 8},
			{Plan: business.PlanProfissional, Total: 4, Active: 3},
			{Plan: business.PlanEmpresarial, Total: 2, Active: 1},
		}, nil)
		repo.On("OrderStats", ctx, now.Add(-RecentWindow)).Return(&OrderStats{
			Total: 50, Delivered: 40, GMV: decimal.RequireFromString("2000.00"),
		}, nil)

		m, err := svc.Metrics(ctx)
		require.NoError(t, err)

		assert.Equal(t, 16, m.TotalBusinesses)
		assert.Equal(t, 12, m.ActiveBusinesses)
		// 3 x 49.90 + 1 x 99.90
		assert.Equal(t, "249.60", m.MRR.StringFixed(2))
		assert.Equal(t, "2995.20", m.ARR.StringFixed(2))
		assert.Equal(t, 40, m.Orders.Delivered)
		assert.Equal(t, now, m.GeneratedAt)
	})

	t.Run("MissingPlansAreZero", func(t *testing.T) {
		repo := new(MockRepository)
		svc := &service{repo: repo, now: func() time.Time { return now }}

		repo.On("CountBusinessesByPlan", ctx).Return([]PlanCount{
			{Plan: business.PlanProfissional, Total: 1, Active: 0},
			{Plan: business.Plan("legado"), Total: 2, Active: 2},
		}, nil)
		repo.On("OrderStats", ctx, mock.Anything).Return(&OrderStats{}, nil)

		m, err := svc.Metrics(ctx)
		require.NoError(t, err)

		assert.Equal(t, []PlanCount{
			{Plan: business.PlanBasico, Total: 2, Active: 2},
			{Plan: business.PlanProfissional, Total: 1, Active: 0},
			{Plan: business.PlanEmpresarial},
		}, m.ByPlan)
		assert.True(t, m.MRR.IsZero())
	})

	t.Run("RepoError", func(t *testing.T) {
		repo := new(MockRepository)
		svc := NewService(repo)

		repo.On("CountBusinessesByPlan", ctx).Return(nil, errors.New("db down"))

		_, err := svc.Metrics(ctx)
		assert.EqualError(t, err, "db down")
		repo.AssertNotCalled(t, "OrderStats", mock.Anything, mock.Anything)
	})
}
