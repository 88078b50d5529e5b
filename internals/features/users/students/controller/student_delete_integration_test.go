//go:build integration

package controller

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"dancebook_backend/internals/databases/testdb"
	reportService "dancebook_backend/internals/features/school/reports/service"
	"dancebook_backend/internals/middlewares"
)

func TestDeleteStudentDropsCachedReports(t *testing.T) {
	h := testdb.MustStart(t)
	rc := testdb.MustStartRedis(t)
	ctx := context.Background()
	now := time.Now().UTC()

	instructor := h.Instructor(t, "Anna", "Nowak")
	class := h.Class(t, testdb.ClassFixture{Name: "Bachata", MaxParticipants: 4, InstructorID: instructor, StartTime: now.Add(-24 * time.Hour)})
	_, studentID := h.Student(t, "leaving@school.test")
	h.Booking(t, studentID, class, "confirmed")

	reports := reportService.NewReportService(h.Gorm, rc)
	reports.Now = func() time.Time { return now }

	rep, err := reports.AttendanceReport(ctx, "week")
	if err != nil {
		t.Fatalf("AttendanceReport: %v", err)
	}
	if len(rep.Rows) != 1 || rep.Rows[0].BookedSlots != 1 {
		t.Fatalf("before delete rows = %+v, want one row with 1 booked slot", rep.Rows)
	}

	app := fiber.New(fiber.Config{ErrorHandler: middlewares.ErrorHandler})
	ctl := NewStudentController(h.Gorm, nil, rc)
	app.Delete("/students/:id", ctl.Delete)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/students/"+studentID.String(), nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusNoContent {
		t.Fatalf("status = %d, want 204", resp.StatusCode)
	}
	if n := h.Count(t, "bookings"); n != 0 {
		t.Fatalf("bookings left = %d, want the cascade to remove them", n)
	}

	rep, err = reports.AttendanceReport(ctx, "week")
	if err != nil {
		t.Fatalf("AttendanceReport after delete: %v", err)
	}
	if len(rep.Rows) != 1 || rep.Rows[0].BookedSlots != 0 || rep.Rows[0].AttendanceRate != 0 {
		t.Fatalf("after delete rows = %+v, want the cached report to be rebuilt with 0 booked", rep.Rows)
	}
}
