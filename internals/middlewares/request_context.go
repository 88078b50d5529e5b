package middlewares

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"go.uber.org/zap"

	helper "dancebook_backend/internals/helpers"
	"dancebook_backend/internals/metrics"
)

// RequestContext assigns X-Request-ID, bounds the request with timeout and records latency.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUIDv4()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals(helper.LocRequestID, id)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		route := c.Route().Path
		dur := time.Since(start)
		metrics.ObserveHTTP(c.Method(), route, status, dur)
		zap.L().Debug("request",
			zap.String("id", id),
			zap.String("method", c.Method()),
			zap.String("route", route),
			zap.Int("status", status),
			zap.Duration("dur", dur),
		)
		return err
	}
}
