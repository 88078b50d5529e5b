package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"dancebook_backend/internals/cache"
	authRoute "dancebook_backend/internals/features/users/auth/route"
	studentRoute "dancebook_backend/internals/features/users/students/route"
)

// UserRoutes covers accounts: auth flow, own profile and student administration.
func UserRoutes(api fiber.Router, db *gorm.DB, v *validator.Validate, rc *cache.RedisCache) {
	authRoute.AuthRoutes(api, db, v)
	studentRoute.StudentRoutes(api, db, v, rc)
}
