package gateway

import (
	"context"
	"testing"
	"time"

	"shareit/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRedisLimiterWindow(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	lim := newRedisLimiter(client, config.RateLimitConfig{Requests: 3, WindowSeconds: 60})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := lim.Allow(ctx, "1")
		require.NoError(t, err)
		require.True(t, allowed)
	}
	allowed, err := lim.Allow(ctx, "1")
	require.NoError(t, err)
	require.False(t, allowed)

	// keys are independent
	allowed, err = lim.Allow(ctx, "2")
	require.NoError(t, err)
	require.True(t, allowed)

	mr.FastForward(61 * time.Second)
	allowed, err = lim.Allow(ctx, "1")
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestLocalLimiter(t *testing.T) {
	lim := newLocalLimiter(config.RateLimitConfig{Requests: 2, WindowSeconds: 60})
	ctx := context.Background()

	allowed, err := lim.Allow(ctx, "1")
	require.NoError(t, err)
	require.True(t, allowed)
	allowed, err = lim.Allow(ctx, "1")
	require.NoError(t, err)
	require.True(t, allowed)
	allowed, err = lim.Allow(ctx, "1")
	require.NoError(t, err)
	require.False(t, allowed)

	allowed, err = lim.Allow(ctx, "2")
	require.NoError(t, err)
	require.True(t, allowed)
}

func TestFailoverLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := config.RateLimitConfig{Requests: 1, WindowSeconds: 60}
	logger := zerolog.Nop()
	lim := newFailoverLimiter(newRedisLimiter(client, cfg), newLocalLimiter(cfg), logger)
	ctx := context.Background()

	allowed, err := lim.Allow(ctx, "1")
	require.NoError(t, err)
	require.True(t, allowed)
	allowed, err = lim.Allow(ctx, "1")
	require.NoError(t, err)
	require.False(t, allowed)

	// redis gone, the in-process bucket takes over without errors
	mr.Close()
	_, err = lim.Allow(ctx, "3")
	require.NoError(t, err)
}
