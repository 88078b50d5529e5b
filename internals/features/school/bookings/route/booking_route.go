package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/features/school/bookings/controller"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	authMiddleware "dancebook_backend/internals/middlewares/auth"
)

func BookingRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, rc *cache.RedisCache) {
	ctl := controller.NewBookingController(db, v, rc)

	g := r.Group("/bookings", authMiddleware.Require(db, helpersAuth.ActBookingOwn)...)
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:id", ctl.Get)
	g.Delete("/:id", ctl.Cancel)
}
