package middlewares

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	helper "dancebook_backend/internals/helpers"
	"dancebook_backend/internals/observability"
)

// ErrorHandler is fiber's global handler: *fiber.Error keeps its code, anything else is a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		if fe.Code >= fiber.StatusInternalServerError {
			report(c, err)
		}
		return helper.JsonError(c, fe.Code, fe.Message)
	}

	report(c, err)
	return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}

func report(c *fiber.Ctx, err error) {
	reqID, _ := c.Locals(helper.LocRequestID).(string)
	zap.L().Error("request failed",
		zap.String("id", reqID),
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	observability.CaptureRequestErr(err, reqID, c.Method(), c.Path())
}
