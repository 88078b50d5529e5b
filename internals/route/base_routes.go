package routes

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/configs"
	database "dancebook_backend/internals/databases"
	"dancebook_backend/internals/metrics"
)

func BaseRoutes(app *fiber.App, db *gorm.DB, rc *cache.RedisCache) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Dance school booking API 💃")
	})

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK
		if err := database.Ping(ctx, db); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		cacheStatus := "disabled"
		if rc.Enabled() {
			cacheStatus = "Connected"
			if err := rc.Ping(ctx); err != nil {
				cacheStatus = "Redis connection error"
			}
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"database":       dbStatus,
			"cache":          cacheStatus,
			"server_time":    time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
			"environment":    configs.AppEnv,
		})
	})
}
