package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	controller "dancebook_backend/internals/features/users/auth/controller"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	rateLimiter "dancebook_backend/internals/middlewares"
	authMiddleware "dancebook_backend/internals/middlewares/auth"
)

// AuthRoutes mounts /auth under r (r is the /api group).
func AuthRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	authController := controller.NewAuthController(db, v)

	baseAuth := r.Group("/auth")

	// 🔓 public
	baseAuth.Post("/register", rateLimiter.RegisterRateLimiter(), authController.Register)
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/refresh", authController.RefreshToken)

	// 🔐 authenticated
	account := func(h fiber.Handler) []fiber.Handler {
		return append(authMiddleware.Require(db, helpersAuth.ActAccount), h)
	}
	baseAuth.Post("/logout", account(authController.Logout)...)
	baseAuth.Get("/me", account(authController.Me)...)
	baseAuth.Post("/change-password", account(authController.ChangePassword)...)
}
