package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "dancebook_backend/internals/helpers"
	helpersAuth "dancebook_backend/internals/helpers/auth"
)

const locIdentity = "identity"

var (
	errNoToken        = errors.New("Authentication credentials were not provided.")
	errBadTokenFormat = errors.New("Invalid token header.")
)

// extractBearerToken reads "Authorization: Bearer <jwt>", falling back to the access_token cookie.
func extractBearerToken(c *fiber.Ctx) (string, error) {
	auth := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if auth == "" {
		if cookieTok := strings.TrimSpace(c.Cookies("access_token")); cookieTok != "" {
			return cookieTok, nil
		}
		return "", errNoToken
	}

	fields := strings.Fields(auth)
	if len(fields) != 2 || !strings.EqualFold(fields[0], "Bearer") {
		return "", errBadTokenFormat
	}
	tok := strings.Trim(strings.TrimSpace(fields[1]), "\"'")
	if tok == "" {
		return "", errBadTokenFormat
	}
	return tok, nil
}

type userState struct {
	Role     string
	IsActive bool
}

// loadUserState reads role and is_active fresh, so demotion or deactivation applies to live tokens.
func loadUserState(db *gorm.DB, userID uuid.UUID) (userState, error) {
	var st userState
	err := db.Table("users").
		Select("role, is_active").
		Where("id = ?", userID).
		Take(&st).Error
	return st, err
}

func storeIdentity(c *fiber.Ctx, id helpersAuth.Identity, email, raw string) {
	c.Locals(locIdentity, id)
	c.Locals(helper.LocUserID, id.UserID.String())
	c.Locals(helper.LocUserRole, id.Role)
	c.Locals(helper.LocUserEmail, email)
	c.Locals(helper.LocRawToken, raw)
}

// IdentityFrom returns the caller identity or Anonymous when no auth ran.
func IdentityFrom(c *fiber.Ctx) helpersAuth.Identity {
	if id, ok := c.Locals(locIdentity).(helpersAuth.Identity); ok {
		return id
	}
	return helpersAuth.Anonymous()
}
