package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"dancebook_backend/internals/configs"
	"dancebook_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain in order.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(RequestContext(5 * time.Second))
	app.Use(logger.LoggerMiddleware(configs.GetEnv("SCHOOL_TIMEZONE", "Europe/Warsaw")))
	app.Use(CorsMiddleware(configs.CorsOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(GlobalRateLimiter())
}
