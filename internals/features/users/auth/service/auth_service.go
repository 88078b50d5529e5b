package service

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"dancebook_backend/internals/configs"
	authHelper "dancebook_backend/internals/features/users/auth/helper"
	authModel "dancebook_backend/internals/features/users/auth/model"
	authRepo "dancebook_backend/internals/features/users/auth/repository"
	studentDTO "dancebook_backend/internals/features/users/students/dto"
	studentService "dancebook_backend/internals/features/users/students/service"
	userModel "dancebook_backend/internals/features/users/user/model"
	helpers "dancebook_backend/internals/helpers"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	"dancebook_backend/internals/helpers/dbtime"
)

/* ==========================
   Small Helpers
========================== */

const (
	cookieAccess  = "access_token"
	cookieRefresh = "refresh_token"

	msgBadCredentials = "No active account found with the given credentials"
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET is not configured")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET is not configured")
	}
	return secret, nil
}

func strptr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func fiberErr(c *fiber.Ctx, err error) error {
	return helpers.Escalate(c, "auth", err)
}

/* ==========================
   REGISTER
========================== */

// Register creates a student account: users row plus students row in one transaction.
func Register(db *gorm.DB, v *validator.Validate, c *fiber.Ctx) error {
	var req studentDTO.StudentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()

	errs := helpers.ValidateStruct(v, req)
	if req.Password != "" {
		if err := authHelper.ValidatePassword(req.Password); err != nil {
			errs = helpers.MergeFieldErrors(errs, map[string][]string{"password": {err.Error()}})
		}
	}
	if errs != nil {
		return helpers.JsonValidationError(c, errs)
	}

	dob, err := dbtime.ParseDate(req.DateOfBirth)
	if err != nil {
		return helpers.JsonFieldError(c, "date_of_birth", "Date has wrong format. Use 2006-01-02.")
	}

	user, student, err := studentService.CreateWithUser(helpers.ReqCtx(c), db, studentService.NewStudent{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		DateOfBirth: dob,
	})
	if err != nil {
		if errors.Is(err, studentService.ErrEmailTaken) {
			return helpers.JsonFieldError(c, "email", err.Error())
		}
		return fiberErr(c, err)
	}

	zap.L().Info("✅ student registered", zap.String("user_id", user.ID.String()))
	return helpers.JsonCreated(c, "Registration successful", fiber.Map{
		"user": fiber.Map{
			"id":    user.ID,
			"email": user.Email,
			"role":  user.Role,
		},
		"student": studentDTO.FromModel(student),
	})
}

/* ==========================
   LOGIN (email + password)
========================== */

type loginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func Login(db *gorm.DB, v *validator.Validate, c *fiber.Ctx) error {
	var in loginInput
	if err := c.BodyParser(&in); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	in.Email = userModel.NormalizeEmail(in.Email)
	if errs := helpers.ValidateStruct(v, in); errs != nil {
		return helpers.JsonValidationError(c, errs)
	}

	ctx := helpers.ReqCtx(c)
	user, err := authRepo.FindUserByEmail(ctx, db, in.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, msgBadCredentials)
		}
		return fiberErr(c, err)
	}
	if err := authHelper.CheckPasswordHash(user.Password, in.Password); err != nil || !user.IsActive {
		return helpers.JsonError(c, fiber.StatusUnauthorized, msgBadCredentials)
	}

	pair, err := issueTokenPair(c, db, user)
	if err != nil {
		return fiberErr(c, err)
	}
	setAuthCookies(c, pair)

	return helpers.JsonOK(c, "Login successful", fiber.Map{
		"access":    pair.Access,
		"refresh":   pair.Refresh,
		"email":     user.Email,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"role":      user.Role,
	})
}

/* ==========================
   ISSUE TOKENS
========================== */

type tokenPair struct {
	Access     string
	AccessExp  time.Time
	Refresh    string
	RefreshExp time.Time
}

// issueTokenPair signs both tokens and stores the refresh hash.
func issueTokenPair(c *fiber.Ctx, db *gorm.DB, user *userModel.UserModel) (tokenPair, error) {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return tokenPair{}, err
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return tokenPair{}, err
	}

	now := nowUTC()
	var out tokenPair
	out.Access, out.AccessExp, err = helpersAuth.IssueAccessToken(helpersAuth.TokenSubject{
		ID:        user.ID,
		Email:     user.Email,
		Role:      user.Role,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}, jwtSecret, configs.AccessTTL, now)
	if err != nil {
		return tokenPair{}, err
	}
	out.Refresh, out.RefreshExp, err = helpersAuth.IssueRefreshToken(user.ID, refreshSecret, configs.RefreshTTL, now)
	if err != nil {
		return tokenPair{}, err
	}

	if err := authRepo.CreateRefreshToken(helpers.ReqCtx(c), db, &authModel.RefreshTokenModel{
		UserID:    user.ID,
		TokenHash: helpersAuth.RefreshHash(out.Refresh, refreshSecret),
		ExpiresAt: out.RefreshExp,
		UserAgent: strptr(c.Get(fiber.HeaderUserAgent)),
		IP:        strptr(c.IP()),
	}); err != nil {
		return tokenPair{}, err
	}
	return out, nil
}

func cookie(name, value string, expires time.Time) *fiber.Cookie {
	sameSite := "Lax"
	if configs.IsProduction() {
		sameSite = "None"
	}
	return &fiber.Cookie{
		Name:     name,
		Value:    value,
		HTTPOnly: true,
		Secure:   configs.IsProduction(),
		SameSite: sameSite,
		Path:     "/",
		Expires:  expires,
	}
}

func setAuthCookies(c *fiber.Ctx, p tokenPair) {
	c.Cookie(cookie(cookieAccess, p.Access, p.AccessExp))
	c.Cookie(cookie(cookieRefresh, p.Refresh, p.RefreshExp))
}

func clearAuthCookies(c *fiber.Ctx) {
	expired := nowUTC().Add(-time.Hour)
	for _, name := range []string{cookieAccess, cookieRefresh} {
		ck := cookie(name, "", expired)
		ck.MaxAge = -1
		c.Cookie(ck)
	}
}

/* ==========================
   ME
========================== */

func Me(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return fiberErr(c, err)
	}
	ctx := helpers.ReqCtx(c)
	user, err := authRepo.FindUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return fiberErr(c, err)
	}

	var studentID *uuid.UUID
	if s, err := studentService.FindByUserID(ctx, db, userID); err == nil {
		studentID = &s.ID
	}

	return helpers.JsonOK(c, "ok", fiber.Map{
		"id":         user.ID,
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"role":       user.Role,
		"is_active":  user.IsActive,
		"is_staff":   user.IsStaff,
		"student_id": studentID,
	})
}

/* ==========================
   LOGOUT
========================== */

type logoutInput struct {
	Refresh string `json:"refresh"`
}

// Logout blacklists the presented access token and revokes the refresh token if one is sent.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	ctx := helpers.ReqCtx(c)

	if raw := helpers.GetRawAccessToken(c); raw != "" {
		if jwtSecret, err := getJWTSecret(); err == nil {
			exp := nowUTC().Add(configs.AccessTTL)
			if _, claims, err := helpersAuth.ParseAccessToken(raw, jwtSecret); err == nil {
				if e := helpersAuth.ExpiryOf(claims); !e.IsZero() {
					exp = e.Add(helpersAuth.ClockSkew)
				}
			}
			if err := helpersAuth.AddToBlacklist(ctx, db, raw, jwtSecret, exp); err != nil {
				zap.L().Warn("failed to blacklist token", zap.Error(err))
			}
		}
	}

	var in logoutInput
	_ = c.BodyParser(&in)
	rt := strings.TrimSpace(in.Refresh)
	if rt == "" {
		rt = strings.TrimSpace(c.Cookies(cookieRefresh))
	}
	if rt != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			if err := authRepo.RevokeRefreshTokenByHash(ctx, db, helpersAuth.RefreshHash(rt, refreshSecret)); err != nil {
				zap.L().Warn("failed to revoke refresh token", zap.Error(err))
			}
		}
	}

	clearAuthCookies(c)
	return helpers.JsonOK(c, "Logout successful", nil)
}
