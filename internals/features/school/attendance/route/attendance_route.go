package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/constants"
	"dancebook_backend/internals/features/school/attendance/controller"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	authMiddleware "dancebook_backend/internals/middlewares/auth"
)

// AttendanceRoutes nests attendance under /classes/:id.
func AttendanceRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctl := controller.NewAttendanceController(db, v)

	g := r.Group("/classes/:id/attendance",
		authMiddleware.Require(db, helpersAuth.ActAttendanceManage, constants.RoleErrorStaff("attendance"))...)
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Get("/:student_id", ctl.Get)
	g.Patch("/:student_id", ctl.Update)
	g.Put("/:student_id", ctl.Update)
	g.Delete("/:student_id", ctl.Delete)
}
