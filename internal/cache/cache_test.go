package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCacheDelegates(t *testing.T) {
	ctx := context.Background()
	f := &FakeCache{
		GetFn: func(_ context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("value-of-"+key, nil)
		},
		SetFn: func(_ context.Context, _ string, _ any, _ time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("OK", nil)
		},
		SetNXFn: func(_ context.Context, _ string, _ any, _ time.Duration) *redis.BoolCmd {
			return redis.NewBoolResult(true, nil)
		},
	}

	val, err := f.Get(ctx, "k").Result()
	require.NoError(t, err)
	require.Equal(t, "value-of-k", val)

	require.NoError(t, f.Set(ctx, "k", "v", time.Minute).Err())

	ok, err := f.SetNX(ctx, "k", "v", time.Minute).Result()
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, f.Close())
}

func TestFakeCachePanicsOnUnexpectedCall(t *testing.T) {
	f := &FakeCache{}
	require.Panics(t, func() { f.Get(context.Background(), "k") })
	require.Panics(t, func() { f.SetNX(context.Background(), "k", "v", 0) })
}
