package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/constants"
	"dancebook_backend/internals/features/users/students/controller"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	authMiddleware "dancebook_backend/internals/middlewares/auth"
)

// StudentRoutes mounts /student/profile (self) and /students (staff).
func StudentRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, rc *cache.RedisCache) {
	ctl := controller.NewStudentController(db, v, rc)

	profile := r.Group("/student/profile", authMiddleware.Require(db, helpersAuth.ActProfile)...)
	profile.Get("/", ctl.Profile)
	profile.Patch("/", ctl.UpdateProfile)
	profile.Put("/", ctl.UpdateProfile)

	staff := r.Group("/students", authMiddleware.AuthMiddleware(db))
	staff.Get("/", authMiddleware.Allow(helpersAuth.ActStudentRead, constants.RoleErrorStaff("students")), ctl.List)
	staff.Get("/:id", authMiddleware.Allow(helpersAuth.ActStudentRead, constants.RoleErrorStaff("students")), ctl.Get)

	adminOnly := authMiddleware.Allow(helpersAuth.ActStudentWrite, constants.RoleErrorAdmin("student management"))
	staff.Post("/", adminOnly, ctl.Create)
	staff.Patch("/:id", adminOnly, ctl.Update)
	staff.Delete("/:id", adminOnly, ctl.Delete)
}
