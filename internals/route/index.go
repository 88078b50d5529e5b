package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	helper "dancebook_backend/internals/helpers"
	routeDetails "dancebook_backend/internals/route/details"
)

var startTime time.Time

// SetupRoutes mounts /health, /metrics and every feature under /api.
// rc may be nil; report caching is then skipped.
func SetupRoutes(app *fiber.App, db *gorm.DB, rc *cache.RedisCache) {
	startTime = time.Now()
	v := helper.NewValidator()

	BaseRoutes(app, db, rc)

	api := app.Group("/api")

	zap.L().Info("Setting up user routes...")
	routeDetails.UserRoutes(api, db, v, rc)

	zap.L().Info("Setting up school routes...")
	routeDetails.SchoolRoutes(api, db, v, rc)

	app.Use(func(c *fiber.Ctx) error {
		return helper.JsonError(c, fiber.StatusNotFound, "Not found.")
	})
}
