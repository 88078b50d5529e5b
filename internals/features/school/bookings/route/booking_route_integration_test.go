//go:build integration

package route

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"dancebook_backend/internals/configs"
	"dancebook_backend/internals/databases/testdb"
	helpersAuth "dancebook_backend/internals/helpers/auth"
	"dancebook_backend/internals/middlewares"
)

type envelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
	Data    json.RawMessage     `json:"data"`
}

type bookingBody struct {
	ID      uuid.UUID `json:"id"`
	ClassID uuid.UUID `json:"class_id"`
	Status  string    `json:"status"`
}

func call(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	return resp.StatusCode, env
}

func tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	tok, _, err := helpersAuth.IssueAccessToken(helpersAuth.TokenSubject{ID: userID, Role: "student"},
		configs.JWTSecret, time.Hour, time.Now())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}

func TestBookingEndpoints(t *testing.T) {
	h := testdb.MustStart(t)
	h.Reset(t)
	configs.JWTSecret = "test-access-secret"

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	BookingRoutes(app.Group("/api"), h.Gorm, nil, nil)

	instructor := h.Instructor(t, "Marta", "Lis")
	tango := h.Class(t, testdb.ClassFixture{Name: "Tango", MaxParticipants: 1, InstructorID: instructor, StartTime: time.Now().Add(48 * time.Hour)})
	userA, _ := h.Student(t, "a@school.test")
	userB, _ := h.Student(t, "b@school.test")
	tokA, tokB := tokenFor(t, userA), tokenFor(t, userB)

	status := func(t *testing.T, id uuid.UUID) string {
		t.Helper()
		var s string
		if err := h.Gorm.Raw(`SELECT status FROM bookings WHERE id = ?`, id).Row().Scan(&s); err != nil {
			t.Fatalf("read status: %v", err)
		}
		return s
	}

	code, env := call(t, app, http.MethodPost, "/api/bookings", tokA, map[string]string{"class_id": tango.String()})
	if code != fiber.StatusCreated {
		t.Fatalf("create = %d %+v", code, env)
	}
	var booked bookingBody
	if err := json.Unmarshal(env.Data, &booked); err != nil {
		t.Fatalf("decode booking: %v", err)
	}
	if booked.Status != "confirmed" || booked.ClassID != tango {
		t.Fatalf("booking = %+v", booked)
	}

	t.Run("duplicate is a class_id field error", func(t *testing.T) {
		code, env := call(t, app, http.MethodPost, "/api/bookings", tokA, map[string]string{"class_id": tango.String()})
		if code != fiber.StatusBadRequest || len(env.Errors["class_id"]) == 0 {
			t.Fatalf("duplicate = %d %+v", code, env)
		}
	})

	t.Run("full class is a class_id field error and writes nothing", func(t *testing.T) {
		before := h.Count(t, "bookings")
		code, env := call(t, app, http.MethodPost, "/api/bookings", tokB, map[string]string{"class_id": tango.String()})
		if code != fiber.StatusBadRequest || len(env.Errors["class_id"]) == 0 {
			t.Fatalf("capacity = %d %+v", code, env)
		}
		if h.Count(t, "bookings") != before {
			t.Fatal("rejected booking was written")
		}
	})

	t.Run("unknown class is a class_id field error", func(t *testing.T) {
		code, env := call(t, app, http.MethodPost, "/api/bookings", tokB, map[string]string{"class_id": uuid.NewString()})
		if code != fiber.StatusBadRequest || len(env.Errors["class_id"]) == 0 {
			t.Fatalf("unknown class = %d %+v", code, env)
		}
	})

	t.Run("someone else's booking is not found", func(t *testing.T) {
		path := "/api/bookings/" + booked.ID.String()
		if code, env := call(t, app, http.MethodGet, path, tokB, nil); code != fiber.StatusNotFound {
			t.Fatalf("get foreign = %d %+v", code, env)
		}
		if code, env := call(t, app, http.MethodDelete, path, tokB, nil); code != fiber.StatusNotFound {
			t.Fatalf("delete foreign = %d %+v", code, env)
		}
		if s := status(t, booked.ID); s != "confirmed" {
			t.Fatalf("foreign delete changed status to %q", s)
		}
	})

	t.Run("delete cancels and keeps the row", func(t *testing.T) {
		before := h.Count(t, "bookings")
		path := "/api/bookings/" + booked.ID.String()
		for i := 0; i < 2; i++ {
			if code, env := call(t, app, http.MethodDelete, path, tokA, nil); code != fiber.StatusNoContent {
				t.Fatalf("delete #%d = %d %+v", i+1, code, env)
			}
		}
		if h.Count(t, "bookings") != before {
			t.Fatal("delete removed the row")
		}
		if s := status(t, booked.ID); s != "cancelled" {
			t.Fatalf("status = %q, want cancelled", s)
		}
	})

	t.Run("caller without a profile", func(t *testing.T) {
		var row struct{ ID uuid.UUID }
		if err := h.Gorm.Raw(`INSERT INTO users (email, password, first_name, last_name, role)
			VALUES ('staff@school.test', 'x', 'No', 'Profile', 'instructor') RETURNING id`).Scan(&row).Error; err != nil {
			t.Fatalf("insert user: %v", err)
		}
		tok := tokenFor(t, row.ID)

		code, env := call(t, app, http.MethodGet, "/api/bookings", tok, nil)
		if code != fiber.StatusOK || string(env.Data) != "[]" {
			t.Fatalf("list = %d data=%s", code, env.Data)
		}
		if code, env := call(t, app, http.MethodPost, "/api/bookings", tok, map[string]string{"class_id": tango.String()}); code != fiber.StatusNotFound {
			t.Fatalf("create without profile = %d %+v", code, env)
		}
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		if code, _ := call(t, app, http.MethodGet, "/api/bookings", "", nil); code != fiber.StatusUnauthorized {
			t.Fatalf("anonymous list = %d, want 401", code)
		}
	})
}
