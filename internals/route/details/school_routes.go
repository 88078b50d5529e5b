package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	AttendanceRoutes "dancebook_backend/internals/features/school/attendance/route"
	BookingRoutes "dancebook_backend/internals/features/school/bookings/route"
	ClassRoutes "dancebook_backend/internals/features/school/classes/route"
	InstructorRoutes "dancebook_backend/internals/features/school/instructors/route"
	PaymentRoutes "dancebook_backend/internals/features/school/payments/route"
	ReportRoutes "dancebook_backend/internals/features/school/reports/route"
	SchoolInfoRoutes "dancebook_backend/internals/features/school/school_info/route"
)

// SchoolRoutes mounts the dance school domain under api.
// Attendance goes before classes so /classes/:id/attendance is not swallowed.
func SchoolRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, rc *cache.RedisCache) {
	SchoolInfoRoutes.SchoolInfoRoutes(api, db, v)
	InstructorRoutes.InstructorRoutes(api, db, v, rc)
	AttendanceRoutes.AttendanceRoutes(api, db, v)
	ClassRoutes.ClassRoutes(api, db, v, rc)
	BookingRoutes.BookingRoutes(api, db, v, rc)
	PaymentRoutes.PaymentRoutes(api, db, v)
	ReportRoutes.ReportRoutes(api, db, rc)
}
