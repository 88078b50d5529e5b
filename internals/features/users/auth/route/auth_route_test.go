package route

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

// Requests rejected by validation never reach the database, so a nil DB is fine here.
func TestRegisterValidation(t *testing.T) {
	app := fiber.New()
	AuthRoutes(app.Group("/api"), nil, nil)

	body, _ := json.Marshal(map[string]string{
		"email":         "not-an-email",
		"password":      "short",
		"first_name":    "  ",
		"last_name":     "Nowak",
		"phone_number":  "500600700",
		"date_of_birth": "12.04.2001",
	})
	req := httptest.NewRequest("POST", "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var env struct {
		Errors map[string][]string `json:"errors"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, f := range []string{"email", "password", "first_name", "date_of_birth"} {
		if len(env.Errors[f]) == 0 {
			t.Errorf("missing error for %s: %v", f, env.Errors)
		}
	}
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	app := fiber.New()
	AuthRoutes(app.Group("/api"), nil, nil)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/auth/me", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
