package gateway

import (
	"context"
	"fmt"
	"sync"
	"time"

	"shareit/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// limiter answers whether a caller may proceed. Keys are user ids or, for
// anonymous requests, remote addresses.
type limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// NewRedisClient builds a client from config. The connection is verified
// by the caller, not here.
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})
}

// redisLimiter counts requests in a shared fixed window. The first INCR
// of a window sets the expiry.
type redisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func newRedisLimiter(client *redis.Client, cfg config.RateLimitConfig) *redisLimiter {
	return &redisLimiter{
		client: client,
		limit:  cfg.Requests,
		window: time.Duration(cfg.WindowSeconds) * time.Second,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.client == nil {
		return false, fmt.Errorf("redis client is nil")
	}
	redisKey := fmt.Sprintf("rate_limit:%s", key)
	count, err := l.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit: %w", err)
	}
	if count == 1 {
		l.client.Expire(ctx, redisKey, l.window)
	}
	return count <= int64(l.limit), nil
}

// localLimiter is the in-process fallback: a token bucket per key.
type localLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
}

func newLocalLimiter(cfg config.RateLimitConfig) *localLimiter {
	window := time.Duration(cfg.WindowSeconds) * time.Second
	if window <= 0 {
		window = time.Minute
	}
	burst := cfg.Requests
	if burst <= 0 {
		burst = 5
	}
	return &localLimiter{
		rps:   rate.Limit(float64(cfg.Requests) / window.Seconds()),
		burst: burst,
	}
}

func (l *localLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return l.getLimiter(key).Allow(), nil
}

func (l *localLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		return v.(*rate.Limiter)
	}
	lim := rate.NewLimiter(l.rps, l.burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		return actual.(*rate.Limiter)
	}
	return lim
}

// failoverLimiter prefers the shared redis window and falls back to the
// in-process bucket when redis is unreachable.
type failoverLimiter struct {
	primary  limiter
	fallback limiter
	logger   zerolog.Logger
}

func newFailoverLimiter(primary, fallback limiter, logger zerolog.Logger) *failoverLimiter {
	return &failoverLimiter{primary: primary, fallback: fallback, logger: logger}
}

func (l *failoverLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if l.primary != nil {
		allowed, err := l.primary.Allow(ctx, key)
		if err == nil {
			return allowed, nil
		}
		l.logger.Warn().Err(err).Msg("rate limit primary failed, using fallback")
	}
	return l.fallback.Allow(ctx, key)
}
