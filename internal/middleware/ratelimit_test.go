package middleware

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestRateLimiterBlocksAfterLimit(t *testing.T) {
	app := fiber.New()
	rl := NewRateLimiter(3, time.Minute)
	app.Post("/login", rl.Middleware(), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true})
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
		if err != nil {
			t.Fatalf("request %d: %v", i, err)
		}
		if resp.StatusCode != fiber.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, resp.StatusCode)
		}
	}

	resp, err := app.Test(httptest.NewRequest("POST", "/login", nil))
	if err != nil {
		t.Fatalf("over-limit request: %v", err)
	}
	if resp.StatusCode != fiber.StatusTooManyRequests {
		t.Errorf("over-limit status = %d, want 429", resp.StatusCode)
	}
}

func TestRateLimiterRecoversAfterWindow(t *testing.T) {
	app := fiber.New()
	rl := NewRateLimiter(1, 50*time.Millisecond)
	app.Post("/login", rl.Middleware(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	if resp, _ := app.Test(httptest.NewRequest("POST", "/login", nil)); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("first request blocked")
	}
	if resp, _ := app.Test(httptest.NewRequest("POST", "/login", nil)); resp.StatusCode != fiber.StatusTooManyRequests {
		t.Fatalf("second request not limited")
	}

	time.Sleep(60 * time.Millisecond)
	if resp, _ := app.Test(httptest.NewRequest("POST", "/login", nil)); resp.StatusCode != fiber.StatusOK {
		t.Errorf("request after window still limited")
	}
}

func TestCleanupDropsIdleBuckets(t *testing.T) {
	rl := NewRateLimiter(5, 10*time.Millisecond)
	now := time.Now()
	rl.requests["198.51.100.1"] = []time.Time{now.Add(-time.Second)}
	rl.requests["198.51.100.2"] = []time.Time{now.Add(-time.Second), now}

	rl.purge(now)

	if _, ok := rl.requests["198.51.100.1"]; ok {
		t.Errorf("idle bucket not dropped")
	}
	if got := len(rl.requests["198.51.100.2"]); got != 1 {
		t.Errorf("active bucket has %d entries, want 1", got)
	}
}

func TestCleanupStopsOnContextCancel(t *testing.T) {
	rl := NewRateLimiter(5, time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	rl.StartCleanup(ctx, time.Millisecond)
	cancel()

	// After cancellation new stale entries must survive: the goroutine is gone.
	time.Sleep(20 * time.Millisecond)
	rl.mu.Lock()
	rl.requests["203.0.113.9"] = []time.Time{time.Now().Add(-time.Hour)}
	rl.mu.Unlock()

	time.Sleep(10 * time.Millisecond)
	rl.mu.Lock()
	_, ok := rl.requests["203.0.113.9"]
	rl.mu.Unlock()
	if !ok {
		t.Errorf("cleanup goroutine still running after cancel")
	}
}
