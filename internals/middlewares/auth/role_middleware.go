package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	helpersAuth "dancebook_backend/internals/helpers/auth"
)

// Allow gates a route on helpersAuth.Allows. It expects AuthMiddleware earlier in the chain
// unless the action is public.
func Allow(act helpersAuth.Action, forbiddenMessage ...string) fiber.Handler {
	msg := "You do not have permission to perform this action."
	if len(forbiddenMessage) > 0 && forbiddenMessage[0] != "" {
		msg = forbiddenMessage[0]
	}
	return func(c *fiber.Ctx) error {
		id := IdentityFrom(c)
		if helpersAuth.Allows(id, act) {
			return c.Next()
		}
		if !id.Authenticated {
			return fiber.NewError(fiber.StatusUnauthorized, errNoToken.Error())
		}
		return fiber.NewError(fiber.StatusForbidden, msg)
	}
}

// Require is AuthMiddleware followed by Allow; public actions skip authentication.
func Require(db *gorm.DB, act helpersAuth.Action, forbiddenMessage ...string) []fiber.Handler {
	if helpersAuth.IsPublic(act) {
		return []fiber.Handler{Allow(act)}
	}
	return []fiber.Handler{AuthMiddleware(db), Allow(act, forbiddenMessage...)}
}
