//go:build integration

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"dancebook_backend/internals/databases/testdb"
	"dancebook_backend/internals/features/school/attendance/dto"
	"dancebook_backend/internals/features/school/attendance/model"
)

func TestAttendanceDerivesIsBooked(t *testing.T) {
	h := testdb.MustStart(t)
	h.Reset(t)
	ctx := context.Background()

	instructor := h.Instructor(t, "Piotr", "Zając")
	classID := h.Class(t, testdb.ClassFixture{MaxParticipants: 10, InstructorID: instructor, StartTime: time.Now()})
	_, booked := h.Student(t, "booked@school.test")
	_, walkIn := h.Student(t, "walkin@school.test")
	h.Booking(t, booked, classID, "confirmed")

	a, err := Create(ctx, h.Gorm, classID, dto.AttendanceCreateRequest{StudentID: booked.String(), Status: "present"})
	if err != nil {
		t.Fatalf("create booked: %v", err)
	}
	if !a.IsBooked {
		t.Fatal("student with a confirmed booking should be marked booked")
	}

	b, err := Create(ctx, h.Gorm, classID, dto.AttendanceCreateRequest{StudentID: walkIn.String(), Status: "late"})
	if err != nil {
		t.Fatalf("create walk-in: %v", err)
	}
	if b.IsBooked {
		t.Fatal("walk-in marked as booked")
	}

	explicit := true
	if _, err := Create(ctx, h.Gorm, classID, dto.AttendanceCreateRequest{StudentID: walkIn.String(), Status: "present", IsBooked: &explicit}); !errors.Is(err, ErrAttendanceExists) {
		t.Fatalf("second record err = %v", err)
	}
	if _, err := Create(ctx, h.Gorm, uuid.New(), dto.AttendanceCreateRequest{StudentID: walkIn.String(), Status: "present"}); !errors.Is(err, ErrClassNotFound) {
		t.Fatalf("unknown class err = %v", err)
	}

	absent := "absent"
	updated, err := Update(ctx, h.Gorm, classID, walkIn, dto.AttendanceUpdateRequest{Status: &absent})
	if err != nil || updated.Status != model.AttendanceAbsent {
		t.Fatalf("update: %v %+v", err, updated)
	}

	rows, err := ListForClass(ctx, h.Gorm, classID)
	if err != nil || len(rows) != 2 {
		t.Fatalf("list: %v (%d rows)", err, len(rows))
	}

	if err := Delete(ctx, h.Gorm, classID, walkIn); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := Get(ctx, h.Gorm, classID, walkIn); !errors.Is(err, ErrAttendanceNotFound) {
		t.Fatalf("get after delete err = %v", err)
	}
}
