package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"cardapio-be/internal/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func counting(calls *int, out []row) func(context.Context) ([]row, error) {
	return func(context.Context) ([]row, error) {
		*calls++
		return out, nil
	}
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()
	reg := metrics.NewRegistry()
	c := New(time.Minute, reg)

	calls := 0
	load := counting(&calls, []row{{ID: "1", Name: "Lanches"}})

	first, err := GetOrLoad(ctx, c, EntityCategory, "biz-1", load)
	require.NoError(t, err)
	second, err := GetOrLoad(ctx, c, EntityCategory, "biz-1", load)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, first, second)
	assert.Equal(t, uint64(1), reg.Counter("cache_hits").Load())
	assert.Equal(t, uint64(1), reg.Counter("cache_misses").Load())

	t.Run("cached value is a copy", func(t *testing.T) {
		second[0].Name = "mutated"
		third, _ := GetOrLoad(ctx, c, EntityCategory, "biz-1", load)
		assert.Equal(t, "Lanches", third[0].Name)
	})

	t.Run("parents are isolated", func(t *testing.T) {
		_, _ = GetOrLoad(ctx, c, EntityCategory, "biz-2", load)
		assert.Equal(t, 2, calls)
	})
}

func TestGetOrLoad_Expiry(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute, nil)
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	calls := 0
	load := counting(&calls, []row{{ID: "1"}})

	_, _ = GetOrLoad(ctx, c, EntityProduct, "biz-1", load)
	now = now.Add(2 * time.Minute)
	_, _ = GetOrLoad(ctx, c, EntityProduct, "biz-1", load)

	assert.Equal(t, 2, calls)
}

func TestGetOrLoad_ErrorNotCached(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute, nil)

	calls := 0
	failing := func(context.Context) ([]row, error) {
		calls++
		return nil, errors.New("db down")
	}

	_, err := GetOrLoad(ctx, c, EntityOrder, "biz-1", failing)
	assert.Error(t, err)
	_, err = GetOrLoad(ctx, c, EntityOrder, "biz-1", failing)
	assert.Error(t, err)
	assert.Equal(t, 2, calls)
	assert.Zero(t, c.Len())
}

func TestGetOrLoad_Disabled(t *testing.T) {
	ctx := context.Background()
	calls := 0
	load := counting(&calls, []row{{ID: "1"}})

	for _, c := range []*Cache{nil, New(0, nil)} {
		_, _ = GetOrLoad(ctx, c, EntityDriver, "biz-1", load)
		_, _ = GetOrLoad(ctx, c, EntityDriver, "biz-1", load)
	}
	assert.Equal(t, 4, calls)
}

func TestInvalidateEntity(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute, nil)

	calls := 0
	load := counting(&calls, []row{{ID: "1"}})

	_, _ = GetOrLoad(ctx, c, EntityProduct, "biz-1", load)
	_, _ = GetOrLoad(ctx, c, EntityProduct, "biz-2", load)
	_, _ = GetOrLoad(ctx, c, EntityCategory, "biz-1", load)
	require.Equal(t, 3, c.Len())

	c.InvalidateEntity(ctx, EntityProduct)
	assert.Equal(t, 1, c.Len())

	_, _ = GetOrLoad(ctx, c, EntityProduct, "biz-1", load)
	assert.Equal(t, 4, calls)

	assert.NotPanics(t, func() { (*Cache)(nil).InvalidateEntity(ctx, EntityProduct) })
}

func TestGetOrLoad_InvalidatedDuringLoad(t *testing.T) {
	ctx := context.Background()
	c := New(time.Minute, nil)

	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan []row)

	go func() {
		v, _ := GetOrLoad(ctx, c, EntityProduct, "biz-1", func(context.Context) ([]row, error) {
			close(started)
			<-release
			return []row{{ID: "1", Name: "old"}}, nil
		})
		done <- v
	}()

	<-started
	c.InvalidateEntity(ctx, EntityProduct)
	close(release)
	assert.Equal(t, "old", (<-done)[0].Name)
	assert.Zero(t, c.Len())

	calls := 0
	fresh, err := GetOrLoad(ctx, c, EntityProduct, "biz-1", counting(&calls, []row{{ID: "1", Name: "new"}}))
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "new", fresh[0].Name)

	t.Run("other entities still cache", func(t *testing.T) {
		calls := 0
		load := counting(&calls, []row{{ID: "c-1"}})
		_, _ = GetOrLoad(ctx, c, EntityCategory, "biz-1", load)
		_, _ = GetOrLoad(ctx, c, EntityCategory, "biz-1", load)
		assert.Equal(t, 1, calls)
	})
}
