//go:build integration

package service

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"dancebook_backend/internals/databases/testdb"
)

var h *testdb.DBHandle

func TestMain(m *testing.M) {
	var err error
	h, err = testdb.Start(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "start postgres: %v\n", err)
		os.Exit(1)
	}
	code := m.Run()
	h.Close()
	os.Exit(code)
}

func newService(now time.Time) *ReportService {
	s := NewReportService(h.Gorm, nil)
	s.Now = func() time.Time { return now }
	return s
}

func TestAttendanceReport(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	instructor := h.Instructor(t, "Jan", "Kowalski")
	recent := h.Class(t, testdb.ClassFixture{Name: "Salsa", MaxParticipants: 4, InstructorID: instructor, StartTime: now.Add(-2 * 24 * time.Hour)})
	older := h.Class(t, testdb.ClassFixture{Name: "Tango", MaxParticipants: 10, InstructorID: instructor, StartTime: now.Add(-5 * 24 * time.Hour)})
	h.Class(t, testdb.ClassFixture{Name: "Old", MaxParticipants: 10, InstructorID: instructor, StartTime: now.Add(-20 * 24 * time.Hour)})

	for i := 0; i < 3; i++ {
		_, sid := h.Student(t, fmt.Sprintf("s%d@school.test", i))
		h.Booking(t, sid, recent, "confirmed")
		if i == 0 {
			h.Booking(t, sid, older, "cancelled")
		}
	}

	rep, err := newService(now).AttendanceReport(ctx, "week")
	if err != nil {
		t.Fatalf("AttendanceReport: %v", err)
	}
	if rep.Period != "week" || len(rep.Rows) != 2 {
		t.Fatalf("period %q with %d rows, want week with 2", rep.Period, len(rep.Rows))
	}

	first, second := rep.Rows[0], rep.Rows[1]
	if first.ClassID != recent || second.ClassID != older {
		t.Fatalf("rows not ordered by start_time desc: %+v", rep.Rows)
	}
	if first.BookedSlots != 3 || first.MaxSlots != 4 || first.AttendanceRate != 75 {
		t.Fatalf("recent row = %+v", first)
	}
	if first.InstructorName != "Jan Kowalski" {
		t.Fatalf("instructor = %q", first.InstructorName)
	}
	if second.BookedSlots != 1 || second.AttendanceRate != 10 {
		t.Fatalf("older row = %+v", second)
	}

	wide, err := newService(now).AttendanceReport(ctx, "unknown")
	if err != nil {
		t.Fatalf("quarter fallback: %v", err)
	}
	if wide.Period != "quarter" || len(wide.Rows) != 3 {
		t.Fatalf("fallback period %q with %d rows", wide.Period, len(wide.Rows))
	}
}

func TestClassAnalytics(t *testing.T) {
	h.Reset(t)
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	instructor := h.Instructor(t, "Ewa", "Lis")

	at := func(daysAgo, hour int) time.Time {
		d := now.AddDate(0, 0, -daysAgo)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
	}
	salsaA := h.Class(t, testdb.ClassFixture{Name: "Salsa A", Style: "salsa", MaxParticipants: 10, InstructorID: instructor, StartTime: at(3, 18)})
	h.Class(t, testdb.ClassFixture{Name: "Salsa B", Style: "salsa", MaxParticipants: 10, InstructorID: instructor, StartTime: at(4, 18)})
	tango := h.Class(t, testdb.ClassFixture{Name: "Tango", Style: "tango", MaxParticipants: 10, InstructorID: instructor, StartTime: at(5, 10)})
	h.Class(t, testdb.ClassFixture{Name: "Ancient", Style: "waltz", MaxParticipants: 10, InstructorID: instructor, StartTime: at(400, 9)})

	_, s1 := h.Student(t, "a@school.test")
	_, s2 := h.Student(t, "b@school.test")
	h.Booking(t, s1, tango, "confirmed")
	h.Booking(t, s2, tango, "confirmed")
	h.Booking(t, s1, salsaA, "confirmed")

	got, err := newService(now).ClassAnalytics(ctx, "year")
	if err != nil {
		t.Fatalf("ClassAnalytics: %v", err)
	}

	if len(got.PopularClasses) != 3 {
		t.Fatalf("popular = %+v", got.PopularClasses)
	}
	if got.PopularClasses[0].Name != "Tango" || got.PopularClasses[0].BookingCount != 2 {
		t.Fatalf("most popular = %+v", got.PopularClasses[0])
	}
	if got.PopularClasses[1].Name != "Salsa A" || got.PopularClasses[2].Name != "Salsa B" {
		t.Fatalf("tie-break order = %+v", got.PopularClasses)
	}

	if len(got.PeakHours) != 2 || got.PeakHours[0].Hour != 10 || got.PeakHours[1].Hour != 18 || got.PeakHours[1].ClassCount != 2 {
		t.Fatalf("peak hours = %+v", got.PeakHours)
	}

	var total int64
	for _, s := range got.StyleDistribution {
		total += s.Count
	}
	if total != 3 {
		t.Fatalf("style counts sum to %d, want 3 classes in window", total)
	}
	if got.StyleDistribution[0].Style != "salsa" || got.StyleDistribution[0].Count != 2 {
		t.Fatalf("style distribution = %+v", got.StyleDistribution)
	}
}

func TestExportAttendanceXLSX(t *testing.T) {
	h.Reset(t)
	now := time.Now().UTC()
	instructor := h.Instructor(t, "Ola", "Wrona")
	h.Class(t, testdb.ClassFixture{Name: "Jive", MaxParticipants: 6, InstructorID: instructor, StartTime: now.Add(-24 * time.Hour)})

	data, name, err := newService(now).ExportAttendanceXLSX(context.Background(), "month")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(data) == 0 || name == "" {
		t.Fatalf("empty export %q", name)
	}
}
