package middlewares

import (
	"context"
	"fmt"
	"time"

	"github.com/dkuaegis/aegis-adminpage/internal/app/errors"
	"github.com/dkuaegis/aegis-adminpage/internal/app/pkg"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// RateLimiter defines the interface for rate limiting implementations
type RateLimiter interface {
	Allow(key string, limit Rate) (bool, RateLimitInfo)
	Reset(key string) error
}

// Rate defines the rate limit configuration
type Rate struct {
	Requests int
	Window   time.Duration
}

// RateLimitInfo contains information about the current rate limit status
type RateLimitInfo struct {
	Limit     int
	Remaining int
	Reset     time.Time
}

// RateLimitMiddleware throttles console traffic per client. Mutating admin
// endpoints get the tighter limit since every hit is an upstream write.
type RateLimitMiddleware struct {
	limiter RateLimiter
}

func NewRateLimitMiddleware(limiter RateLimiter) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
	}
}

// RedisRateLimiter implements RateLimiter using Redis
type RedisRateLimiter struct {
	redis     *redis.Client
	keyPrefix string
}

func NewRedisRateLimiter(redis *redis.Client, keyPrefix string) *RedisRateLimiter {
	return &RedisRateLimiter{
		redis:     redis,
		keyPrefix: keyPrefix,
	}
}

// Allow implements RateLimiter.Allow with a sliding window over a Redis
// sorted set.
func (l *RedisRateLimiter) Allow(key string, limit Rate) (bool, RateLimitInfo) {
	ctx := context.Background()
	now := time.Now()
	windowKey := fmt.Sprintf("%s:ratelimit:%s", l.keyPrefix, key)

	pipe := l.redis.Pipeline()

	windowStart := now.Add(-limit.Window).UnixNano()
	pipe.ZRemRangeByScore(ctx, windowKey, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZCard(ctx, windowKey)
	pipe.ZAdd(ctx, windowKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	pipe.Expire(ctx, windowKey, limit.Window)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		// Redis unavailable: fail open so the console stays usable.
		return true, RateLimitInfo{
			Limit:     limit.Requests,
			Remaining: 0,
			Reset:     now.Add(limit.Window),
		}
	}

	count := cmds[1].(*redis.IntCmd).Val()
	remaining := limit.Requests - int(count)
	allowed := remaining >= 0

	return allowed, RateLimitInfo{
		Limit:     limit.Requests,
		Remaining: remaining,
		Reset:     now.Add(limit.Window),
	}
}

// Reset implements RateLimiter.Reset
func (l *RedisRateLimiter) Reset(key string) error {
	ctx := context.Background()
	windowKey := fmt.Sprintf("%s:ratelimit:%s", l.keyPrefix, key)
	return l.redis.Del(ctx, windowKey).Err()
}

// Limits for the two classes of console traffic.
var (
	// QueryLimit covers read endpoints (120 req/min).
	QueryLimit = Rate{
		Requests: 120,
		Window:   time.Minute,
	}

	// MutationLimit covers grant, coupon, flag and demotion writes (30 req/min).
	MutationLimit = Rate{
		Requests: 30,
		Window:   time.Minute,
	}
)

// LimitByIP rate limits by the caller's address.
func (m *RateLimitMiddleware) LimitByIP(limit Rate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "ip:" + c.IP()
		allowed, info := m.limiter.Allow(key, limit)

		c.Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		c.Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.Reset.Unix()))

		if !allowed {
			return pkg.ErrorResponse(c, errors.NewTooManyRequestsError("요청이 너무 잦습니다. 잠시 후 다시 시도해주세요."))
		}
		return c.Next()
	}
}

// LimitByOperator rate limits by the authenticated operator key when present,
// falling back to the caller's address.
func (m *RateLimitMiddleware) LimitByOperator(limit Rate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := "ip:" + c.IP()
		if operator, ok := c.Locals("operator_key").(string); ok && operator != "" {
			key = "operator:" + operator
		}
		allowed, info := m.limiter.Allow(key, limit)

		c.Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		c.Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		c.Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.Reset.Unix()))

		if !allowed {
			return pkg.ErrorResponse(c, errors.NewTooManyRequestsError("요청이 너무 잦습니다. 잠시 후 다시 시도해주세요."))
		}
		return c.Next()
	}
}
