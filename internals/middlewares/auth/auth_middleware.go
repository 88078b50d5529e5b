package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dancebook_backend/internals/configs"
	helper "dancebook_backend/internals/helpers"
	helpersAuth "dancebook_backend/internals/helpers/auth"
)

// AuthMiddleware requires a valid, non-blacklisted access token for an active user.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			zap.L().Error("JWT_SECRET is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		ctx := helper.ReqCtx(c)
		blacklisted, err := helpersAuth.IsBlacklisted(ctx, db, tokenString, secretKey)
		if err != nil {
			zap.L().Error("blacklist lookup failed", zap.Error(err))
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if blacklisted {
			return fiber.NewError(fiber.StatusUnauthorized, "Token has been revoked.")
		}

		userID, claims, err := helpersAuth.ParseAccessToken(tokenString, secretKey)
		if err != nil {
			if errors.Is(err, helpersAuth.ErrTokenExpired) {
				return fiber.NewError(fiber.StatusUnauthorized, "Token has expired.")
			}
			return fiber.NewError(fiber.StatusUnauthorized, "Given token not valid.")
		}

		st, err := loadUserState(db.WithContext(ctx), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "User not found.")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}
		if !st.IsActive {
			return fiber.NewError(fiber.StatusUnauthorized, "User is inactive.")
		}

		email, _ := claims["email"].(string)
		storeIdentity(c, helpersAuth.Identity{
			UserID:        userID,
			Role:          st.Role,
			Authenticated: true,
			Active:        true,
		}, email, tokenString)
		return c.Next()
	}
}
