package helper

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys set by the auth middleware
const (
	LocUserID    = "user_id"
	LocUserRole  = "userRole"
	LocUserEmail = "user_email"
	LocRawToken  = "raw_token"
	LocRequestID = "reqid"
)

// ReqCtx returns the per-request context (deadline set in main).
func ReqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

// GetUserIDFromToken reads c.Locals("user_id"): 401 when absent or malformed.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	switch t := c.Locals(LocUserID).(type) {
	case uuid.UUID:
		if t != uuid.Nil {
			return t, nil
		}
	case string:
		if id, err := uuid.Parse(strings.TrimSpace(t)); err == nil && id != uuid.Nil {
			return id, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Authentication credentials were not provided.")
}

func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals(LocUserRole).(string)
	return role
}

func GetRawAccessToken(c *fiber.Ctx) string {
	raw, _ := c.Locals(LocRawToken).(string)
	return raw
}

// ParseUUIDParam treats a malformed id like a missing row.
func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Not found.")
	}
	return id, nil
}
