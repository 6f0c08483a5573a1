package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"

	"github.com/tair/storefront/pkg/logger"
)

// RateLimiter implements a per-client sliding window limit using Redis
type RateLimiter struct {
	redis       *redis.Client
	maxRequests int
	window      time.Duration
	now         func() time.Time
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(redisClient *redis.Client, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:       redisClient,
		maxRequests: maxRequests,
		window:      window,
		now:         time.Now,
	}
}

// Middleware returns the rate limiting middleware. A nil limiter lets every request through.
func (rl *RateLimiter) Middleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		if rl == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identifier := clientIP(r)

			allowed, remaining, resetTime, err := rl.checkLimit(r.Context(), identifier)
			if err != nil {
				// On error, allow request but log it
				logger.Error(r.Context()).
					Err(err).
					Str("identifier", identifier).
					Msg("Rate limiter error")
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

			if !allowed {
				logger.Warn(r.Context()).
					Str("identifier", identifier).
					Int("limit", rl.maxRequests).
					Msg("Rate limit exceeded")

				w.Header().Set("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
				respondJSON(w, http.StatusTooManyRequests, Response{
					Success: false,
					Message: fmt.Sprintf("Too many requests. Try again in %v", time.Until(resetTime).Round(time.Second)),
					Error:   "Rate limit exceeded",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// checkLimit records the request and reports whether it fits in the window
func (rl *RateLimiter) checkLimit(ctx context.Context, identifier string) (bool, int, time.Time, error) {
	key := "ratelimit:" + identifier
	now := rl.now()
	windowStart := now.Add(-rl.window)

	pipe := rl.redis.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	countCmd := pipe.ZCard(ctx, key)
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString()),
	})
	pipe.Expire(ctx, key, rl.window+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := countCmd.Val()
	remaining := max(rl.maxRequests-int(count)-1, 0)
	return count < int64(rl.maxRequests), remaining, now.Add(rl.window), nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
