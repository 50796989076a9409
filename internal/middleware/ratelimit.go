package middleware

import (
	"context"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RateLimiter tracks request timestamps per client IP inside a sliding
// window. It guards the portal login endpoints against brute force attempts.
type RateLimiter struct {
	requests map[string][]time.Time
	mu       sync.Mutex
	limit    int
	window   time.Duration
}

// NewRateLimiter builds a limiter allowing limit requests per window per IP.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		requests: make(map[string][]time.Time),
		limit:    limit,
		window:   window,
	}
}

// Middleware returns the Fiber handler enforcing the limit.
func (rl *RateLimiter) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ip := c.IP()
		now := time.Now()

		rl.mu.Lock()

		var fresh []time.Time
		for _, t := range rl.requests[ip] {
			if now.Sub(t) < rl.window {
				fresh = append(fresh, t)
			}
		}

		if len(fresh) >= rl.limit {
			rl.requests[ip] = fresh
			rl.mu.Unlock()
			return fiber.NewError(fiber.StatusTooManyRequests, "too many requests, please try later")
		}

		rl.requests[ip] = append(fresh, now)
		rl.mu.Unlock()

		return c.Next()
	}
}

// StartCleanup drops idle IP buckets periodically until ctx is cancelled.
func (rl *RateLimiter) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				rl.purge(time.Now())
			}
		}
	}()
}

func (rl *RateLimiter) purge(now time.Time) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, times := range rl.requests {
		var fresh []time.Time
		for _, t := range times {
			if now.Sub(t) < rl.window {
				fresh = append(fresh, t)
			}
		}
		if len(fresh) == 0 {
			delete(rl.requests, ip)
		} else {
			rl.requests[ip] = fresh
		}
	}
}
