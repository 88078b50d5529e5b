package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	helper "dancebook_backend/internals/helpers"
)

func newLimiter(max int, window time.Duration, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}

// Global limiter: every endpoint
func GlobalRateLimiter() fiber.Handler {
	return newLimiter(120, time.Minute, "❌ Too many requests. Please try again later.")
}

// Login limiter (stricter)
func LoginRateLimiter() fiber.Handler {
	return newLimiter(5, time.Minute, "❌ Too many login attempts. Try again in a moment.")
}

func RegisterRateLimiter() fiber.Handler {
	return newLimiter(3, 5*time.Minute, "❌ Too many sign-up attempts. Wait a few minutes.")
}
