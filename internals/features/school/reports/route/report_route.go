package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	"dancebook_backend/internals/constants"
	"dancebook_backend/internals/features/school/reports/controller"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	authMiddleware "dancebook_backend/internals/middlewares/auth"
)

// ReportRoutes mounts the admin-only /reports endpoints. A missing period means "month".
func ReportRoutes(r fiber.Router, db *gorm.DB, rc *cache.RedisCache) {
	ctl := controller.NewReportController(db, rc)

	g := r.Group("/reports", authMiddleware.Require(db, helpersAuth.ActReportRead, constants.RoleErrorAdmin("reports"))...)
	g.Get("/attendance/:period/export", ctl.ExportAttendance)
	g.Get("/attendance/:period?", ctl.Attendance)
	g.Get("/analytics/:period?", ctl.Analytics)
}
