package http

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/contactkeeper/go-contact-keeper/internal/config"
	"github.com/contactkeeper/go-contact-keeper/internal/logger"
	"github.com/contactkeeper/go-contact-keeper/internal/utils"
	"github.com/redis/go-redis/v9"
)

// RateLimiter enforces a fixed-window request cap per client and route
// group, backed by a shared Redis counter store.
//
// Each (group, client IP) pair owns one counter key. The first request in a
// window creates the key with the window's TTL; once the counter exceeds
// the configured cap, further requests are rejected with 429 until the key
// expires.
type RateLimiter struct {
	client   *redis.Client
	requests int
	window   time.Duration
	logger   *logger.Logger
}

// NewRateLimiter constructs a RateLimiter on top of the given Redis client.
func NewRateLimiter(client *redis.Client, cfg config.Redis, logger *logger.Logger) *RateLimiter {
	return &RateLimiter{
		client:   client,
		requests: cfg.LimitRequests,
		window:   cfg.LimitWindow,
		logger:   logger,
	}
}

// Limit returns a middleware enforcing the limiter for the named route
// group. Requests over the cap are rejected before reaching the handler.
//
// When the counter store is unreachable the limiter fails open: the error
// is logged and the request is allowed through, so a Redis outage degrades
// rate limiting rather than the whole API.
func (rl *RateLimiter) Limit(group string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)
			ctx := r.Context()

			key := fmt.Sprintf("ratelimit:%s:%s", group, clientIP(r))

			count, err := rl.client.Incr(ctx, key).Result()
			if err != nil {
				log.Err(err).Str("key", key).Msg("rate-limit counter unavailable, failing open")
				next.ServeHTTP(w, r)
				return
			}

			if count == 1 {
				if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
					log.Err(err).Str("key", key).Msg("error setting rate-limit window expiry")
				}
			}

			if count > int64(rl.requests) {
				log.Warn().Str("key", key).Int64("count", count).Msg("rate limit exceeded")
				utils.WriteError(w, "Too Many Requests", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP extracts the caller's address, dropping the ephemeral port.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
