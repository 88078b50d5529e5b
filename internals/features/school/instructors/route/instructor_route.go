package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/constants"
	"dancebook_backend/internals/features/school/instructors/controller"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	authMiddleware "dancebook_backend/internals/middlewares/auth"
)

func InstructorRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, rc *cache.RedisCache) {
	ctl := controller.NewInstructorController(db, v, rc)

	g := r.Group("/instructors", authMiddleware.AuthMiddleware(db))
	g.Get("/", authMiddleware.Allow(helpersAuth.ActInstructorList, constants.RoleErrorAdmin("the instructor list")), ctl.List)
	g.Get("/:id", authMiddleware.Allow(helpersAuth.ActInstructorRead), ctl.Get)

	write := authMiddleware.Allow(helpersAuth.ActInstructorWrite, constants.RoleErrorAdmin("instructor management"))
	g.Post("/", write, ctl.Create)
	g.Patch("/:id", write, ctl.Update)
	g.Put("/:id", write, ctl.Update)
	g.Delete("/:id", write, ctl.Delete)
}
