package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/construct-hq/tenderbase/pkg/cache"
)

func TestMemory_SetGet(t *testing.T) {
	c := cache.NewMemory()
	ctx := context.Background()

	gt.NoError(t, c.Set(ctx, "k", "v", time.Minute))

	got, err := c.Get(ctx, "k")
	gt.NoError(t, err)
	gt.Value(t, got).Equal("v")
}

func TestMemory_MissReturnsNil(t *testing.T) {
	c := cache.NewMemory()

	got, err := c.Get(context.Background(), "absent")
	gt.NoError(t, err)
	gt.Value(t, got).Nil()
}

func TestMemory_Expiry(t *testing.T) {
	now := time.Now()
	c := cache.NewMemory(cache.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	gt.NoError(t, c.Set(ctx, "k", "v", time.Hour))

	got, err := c.Get(ctx, "k")
	gt.NoError(t, err)
	gt.Value(t, got).Equal("v")

	now = now.Add(time.Hour + time.Second)

	got, err = c.Get(ctx, "k")
	gt.NoError(t, err)
	gt.Value(t, got).Nil()
}

func TestMemory_SetRefreshesTTL(t *testing.T) {
	now := time.Now()
	c := cache.NewMemory(cache.WithClock(func() time.Time { return now }))
	ctx := context.Background()

	gt.NoError(t, c.Set(ctx, "k", "old", time.Hour))
	now = now.Add(30 * time.Minute)
	gt.NoError(t, c.Set(ctx, "k", "new", time.Hour))
	now = now.Add(45 * time.Minute)

	got, err := c.Get(ctx, "k")
	gt.NoError(t, err)
	gt.Value(t, got).Equal("new")
}

func TestMemory_Delete(t *testing.T) {
	c := cache.NewMemory()
	ctx := context.Background()

	gt.NoError(t, c.Set(ctx, "k", "v", time.Minute))
	gt.NoError(t, c.Delete(ctx, "k"))

	got, err := c.Get(ctx, "k")
	gt.NoError(t, err)
	gt.Value(t, got).Nil()
}
