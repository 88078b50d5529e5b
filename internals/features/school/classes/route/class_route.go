package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/constants"
	"dancebook_backend/internals/features/school/classes/controller"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	authMiddleware "dancebook_backend/internals/middlewares/auth"
)

// ClassRoutes: reads are public, writes need staff.
func ClassRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, rc *cache.RedisCache) {
	ctl := controller.NewClassController(db, v, rc)

	g := r.Group("/classes")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Get)
	g.Get("/:id/occurrences", ctl.Occurrences)

	write := authMiddleware.Require(db, helpersAuth.ActClassWrite, constants.RoleErrorStaff("class management"))
	g.Post("/", append(write, ctl.Create)...)
	g.Patch("/:id", append(write, ctl.Update)...)
	g.Put("/:id", append(write, ctl.Update)...)
	g.Delete("/:id", append(write, ctl.Delete)...)
}
