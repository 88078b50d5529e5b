package service

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	authRepo "dancebook_backend/internals/features/users/auth/repository"
	helpers "dancebook_backend/internals/helpers"
	helpersAuth "dancebook_backend/internals/helpers/auth"
)

type refreshInput struct {
	Refresh string `json:"refresh"`
}

// ========================== REFRESH TOKEN ==========================
// POST /api/auth/refresh
// The presented refresh token is revoked and a new pair is issued (rotation).
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	var in refreshInput
	_ = c.BodyParser(&in)
	raw := strings.TrimSpace(in.Refresh)
	if raw == "" {
		raw = strings.TrimSpace(c.Cookies(cookieRefresh))
	}
	if raw == "" {
		return helpers.JsonFieldError(c, "refresh", "This field is required.")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return fiberErr(c, err)
	}
	userID, err := helpersAuth.ParseRefreshToken(raw, refreshSecret)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Token is invalid or expired")
	}

	ctx := helpers.ReqCtx(c)
	stored, err := authRepo.FindActiveRefreshToken(ctx, db, helpersAuth.RefreshHash(raw, refreshSecret))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Token is invalid or expired")
		}
		return fiberErr(c, err)
	}
	if stored.UserID != userID {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Token is invalid or expired")
	}

	user, err := authRepo.FindUserByID(ctx, db, userID)
	if err != nil || !user.IsActive {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Token is invalid or expired")
	}

	// a concurrent refresh with the same token loses here
	if err := authRepo.RevokeRefreshToken(ctx, db, stored.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Token is invalid or expired")
		}
		return fiberErr(c, err)
	}

	pair, err := issueTokenPair(c, db, user)
	if err != nil {
		return fiberErr(c, err)
	}
	setAuthCookies(c, pair)

	zap.L().Debug("🔄 refresh token rotated", zap.String("user_id", userID.String()))
	return helpers.JsonOK(c, "Token refreshed", fiber.Map{
		"access":  pair.Access,
		"refresh": pair.Refresh,
	})
}
