package service

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authHelper "dancebook_backend/internals/features/users/auth/helper"
	authRepo "dancebook_backend/internals/features/users/auth/repository"
	helper "dancebook_backend/internals/helpers"
)

type changePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// ========================== CHANGE PASSWORD ==========================
// Every refresh token of the user is revoked; the current access token stays valid until it expires.
func ChangePassword(db *gorm.DB, v *validator.Validate, c *fiber.Ctx) error {
	var in changePasswordInput
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if errs := helper.ValidateStruct(v, in); errs != nil {
		return helper.JsonValidationError(c, errs)
	}
	if err := authHelper.ValidatePassword(in.NewPassword); err != nil {
		return helper.JsonFieldError(c, "new_password", err.Error())
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return fiberErr(c, err)
	}

	ctx := helper.ReqCtx(c)
	user, err := authRepo.FindUserByID(ctx, db, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}
	if err := authHelper.CheckPasswordHash(user.Password, in.CurrentPassword); err != nil {
		return helper.JsonFieldError(c, "current_password", "Current password is incorrect.")
	}

	newHash, err := authHelper.HashPassword(in.NewPassword)
	if err != nil {
		return helper.Escalate(c, "hash new password", err)
	}

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := authRepo.UpdateUserPassword(ctx, tx, userID, newHash); err != nil {
			return err
		}
		return authRepo.RevokeAllForUser(ctx, tx, userID)
	})
	if err != nil {
		return helper.Escalate(c, "change password", err)
	}

	return helper.JsonUpdated(c, "Password changed successfully", nil)
}
