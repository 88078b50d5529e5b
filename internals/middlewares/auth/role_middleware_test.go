package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dancebook_backend/internals/constants"
	helpersAuth "dancebook_backend/internals/helpers/auth"
)

func withIdentity(id helpersAuth.Identity) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(locIdentity, id)
		return c.Next()
	}
}

func TestAllowStatusCodes(t *testing.T) {
	ok := func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }
	student := helpersAuth.Identity{UserID: uuid.New(), Role: constants.RoleStudent, Authenticated: true, Active: true}
	admin := helpersAuth.Identity{UserID: uuid.New(), Role: constants.RoleAdmin, Authenticated: true, Active: true}

	tests := []struct {
		name string
		id   *helpersAuth.Identity
		act  helpersAuth.Action
		want int
	}{
		{"public without identity", nil, helpersAuth.ActClassRead, fiber.StatusOK},
		{"anonymous on protected", nil, helpersAuth.ActReportRead, fiber.StatusUnauthorized},
		{"student on admin route", &student, helpersAuth.ActReportRead, fiber.StatusForbidden},
		{"admin on admin route", &admin, helpersAuth.ActReportRead, fiber.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			handlers := []fiber.Handler{}
			if tt.id != nil {
				handlers = append(handlers, withIdentity(*tt.id))
			}
			handlers = append(handlers, Allow(tt.act), ok)
			app.Get("/", handlers...)

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			if err != nil {
				t.Fatalf("app.Test: %v", err)
			}
			if resp.StatusCode != tt.want {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tt.want)
			}
		})
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer   'abc'", "abc", true},
		{"Token abc", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		app := fiber.New()
		var got string
		var gotErr error
		app.Get("/", func(c *fiber.Ctx) error {
			got, gotErr = extractBearerToken(c)
			return nil
		})
		req := httptest.NewRequest("GET", "/", nil)
		if tt.header != "" {
			req.Header.Set("Authorization", tt.header)
		}
		if _, err := app.Test(req); err != nil {
			t.Fatalf("app.Test: %v", err)
		}
		if (gotErr == nil) != tt.ok || got != tt.want {
			t.Errorf("header %q: got %q err %v", tt.header, got, gotErr)
		}
	}
}
