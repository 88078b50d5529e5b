package controller

import (
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"dancebook_backend/internals/features/school/bookings/service"
	helper "dancebook_backend/internals/helpers"
)

func TestWriteError(t *testing.T) {
	reset := errors.New("connection reset")
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantField   string
		wantHandled bool
	}{
		{"capacity", fmt.Errorf("create: %w", service.ErrCapacityExceeded), fiber.StatusBadRequest, "class_id", false},
		{"duplicate", service.ErrDuplicateBooking, fiber.StatusBadRequest, "class_id", false},
		{"not owned", service.ErrBookingNotFound, fiber.StatusNotFound, "", false},
		{"database failure", reset, fiber.StatusInternalServerError, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var handled error
			app := fiber.New(fiber.Config{
				ErrorHandler: func(c *fiber.Ctx, err error) error {
					handled = err
					return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
				},
			})
			app.Get("/", func(c *fiber.Ctx) error { return writeError(c, tt.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if (handled != nil) != tt.wantHandled {
				t.Fatalf("error handler reached = %v, want %v", handled != nil, tt.wantHandled)
			}
			if tt.wantHandled && !errors.Is(handled, reset) {
				t.Fatalf("handler got %v", handled)
			}
			if tt.wantField != "" {
				body, _ := io.ReadAll(resp.Body)
				var got helper.ErrorResponse
				if err := sonic.Unmarshal(body, &got); err != nil {
					t.Fatalf("decode: %v", err)
				}
				if len(got.Errors[tt.wantField]) == 0 {
					t.Fatalf("errors = %v, want a %s entry", got.Errors, tt.wantField)
				}
			}
		})
	}
}
